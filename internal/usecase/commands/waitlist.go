package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/domain/waitlist"
	"pickup-rsvp/internal/infra"
	"pickup-rsvp/internal/pkg/clock"
	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/usecase/shared"
)

type JoinWaitlistRequest struct {
	GameID   string
	Name     string
	Email    string
	Phone    string
	Language string
}

type JoinWaitlistResult struct {
	Position int
}

//go:generate mockgen -source=waitlist.go -destination=../../../tests/mock/commands/waitlist_mock.go -package=commandsmock
type WaitlistCommands interface {
	Join(ctx context.Context, req JoinWaitlistRequest) (*JoinWaitlistResult, error)
}

type waitlistUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewWaitlistUseCase(uow shared.UnitOfWork, clk clock.Clock) WaitlistCommands {
	return &waitlistUseCaseImpl{uow: uow, clock: clk}
}

func (uc *waitlistUseCaseImpl) Join(ctx context.Context, req JoinWaitlistRequest) (*JoinWaitlistResult, error) {
	contact, err := reservation.NewContact(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	gameID := strings.TrimSpace(req.GameID)
	if gameID == "" {
		return nil, ErrValidation
	}

	var position int
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		g, err := tx.Games().FindByID(ctx, tx.DB(), gameID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrGameNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := mapBookableErr(g.CheckBookable(now)); err != nil {
			return err
		}

		if _, err := tx.Reservations().FindLiveByHolder(ctx, tx.DB(), gameID, contact.Email()); err == nil {
			return ErrAlreadyReserved
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if _, err := tx.Waitlist().FindByEmail(ctx, tx.DB(), gameID, contact.Email()); err == nil {
			return ErrAlreadyWaitlisted
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entry := waitlist.NewEntry(gameID, contact, reservation.NewLanguage(req.Language), now)
		position, err = tx.Waitlist().Enqueue(ctx, tx.DB(), entry)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrAlreadyWaitlisted
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("waitlist joined", "game_id", gameID, "position", position)
	return &JoinWaitlistResult{Position: position}, nil
}

// promoteNext notifies the earliest waiting entry. It returns nil when
// nobody is waiting. Promotion grants no spot; the holder still has to book.
func promoteNext(ctx context.Context, tx shared.Tx, gameID string, now time.Time) (*waitlist.Entry, error) {
	entry, err := tx.Waitlist().PromoteNext(ctx, tx.DB(), gameID, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entry, nil
}

// promoteUpTo promotes at most n entries, stopping early when the queue runs dry.
func promoteUpTo(ctx context.Context, tx shared.Tx, gameID string, n int, now time.Time) ([]*waitlist.Entry, error) {
	var promoted []*waitlist.Entry
	for range n {
		entry, err := promoteNext(ctx, tx, gameID, now)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			break
		}
		promoted = append(promoted, entry)
	}
	return promoted, nil
}
