package commands

import (
	"context"
	"log/slog"

	"pickup-rsvp/internal/domain/operator"
	"pickup-rsvp/internal/infra"
	"pickup-rsvp/internal/pkg/clock"
	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/pkg/jwt"
	"pickup-rsvp/internal/pkg/password"
	"pickup-rsvp/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	OperatorID  uuid.UUID
	Role        string
	AccessToken string
	ExpiresIn   int
}

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock
type AuthCommands interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	// EnsureOperator creates the operator unless one with that email exists.
	EnsureOperator(ctx context.Context, email, plainPassword, role string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := operator.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	op, err := a.validateOperator(ctx, credentials)
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.Issue(op.ID(), op.Role().String())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Operators().UpdateLastLogin(ctx, tx.DB(), op.ID(), a.clock.Now())
	})
	if err != nil {
		// Login already succeeded; only the bookkeeping failed.
		slog.Warn("failed to update last login", "operator_id", op.ID(), "error", err.Error())
	}

	return &LoginResult{
		OperatorID:  op.ID(),
		Role:        op.Role().String(),
		AccessToken: token,
		ExpiresIn:   int(a.jwtService.TTL().Seconds()),
	}, nil
}

func (a *authCommandsImpl) EnsureOperator(ctx context.Context, email, plainPassword, role string) error {
	addr, err := operator.NewEmail(email)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}
	r, err := operator.NewRole(role)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Operators().FindByEmail(ctx, tx.DB(), addr); err == nil {
			return nil
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		op := operator.NewOperator(addr, hash, r, a.clock.Now())
		if err := tx.Operators().Create(ctx, tx.DB(), op); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		slog.Info("operator created", "operator_id", op.ID(), "role", r.String())
		return nil
	})
}

func (a *authCommandsImpl) validateOperator(ctx context.Context, credentials operator.Credentials) (*operator.Operator, error) {
	var op *operator.Operator
	err := a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var ferr error
		op, ferr = tx.Operators().FindByEmail(ctx, tx.DB(), credentials.Email())
		return ferr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a wrong password so unknown emails stay hidden.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Verify(op.PasswordHash(), credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !op.IsActive() {
		return nil, ErrOperatorInactive
	}

	return op, nil
}
