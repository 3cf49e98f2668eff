package commands

import (
	"context"
	"log/slog"
	"time"

	"pickup-rsvp/internal/domain/game"
	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/domain/waitlist"
	"pickup-rsvp/internal/infra"
	"pickup-rsvp/internal/pkg/clock"
	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/pkg/patch"
	"pickup-rsvp/internal/pkg/telemetry"
	"pickup-rsvp/internal/usecase/queries"
	"pickup-rsvp/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
)

type CreateGameRequest struct {
	GameID          string
	StartsAt        time.Time
	DurationMinutes int
	Venue           string
	Address         string
	PriceCents      int64
	Currency        string
	Capacity        int
	Notes           string
}

// UpdateGameRequest carries only the fields to change; nil leaves a field as is.
type UpdateGameRequest struct {
	StartsAt        *time.Time
	DurationMinutes *int
	Venue           *string
	Address         *string
	PriceCents      *int64
	Currency        *string
	Capacity        *int
	Status          *string
	Notes           *string
}

type UpdateGameResult struct {
	Game     *queries.GameView
	Promoted int
}

type RefundResult struct {
	ConfirmationCode string
	RefundID         string
	PaymentStatus    string
	AlreadyRefunded  bool
}

type NoShowResult struct {
	ConfirmationCode string
	Status           string
}

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin_mock.go -package=commandsmock
type AdminCommands interface {
	CreateGame(ctx context.Context, req CreateGameRequest) (*queries.GameView, error)
	UpdateGame(ctx context.Context, gameID string, req UpdateGameRequest) (*UpdateGameResult, error)
	RefundReservation(ctx context.Context, code string) (*RefundResult, error)
	MarkNoShow(ctx context.Context, code string) (*NoShowResult, error)
}

type adminUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	notifier Notifier
	cache    GameCacheInvalidator
	clock    clock.Clock
	policy   BookingPolicy
}

func NewAdminUseCase(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	notifier Notifier,
	cache GameCacheInvalidator,
	clk clock.Clock,
	policy BookingPolicy,
) AdminCommands {
	return &adminUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		notifier: notifier,
		cache:    cache,
		clock:    clk,
		policy:   policy,
	}
}

func (uc *adminUseCaseImpl) CreateGame(ctx context.Context, req CreateGameRequest) (*queries.GameView, error) {
	id, err := game.NewID(req.GameID)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	schedule, err := game.NewSchedule(req.StartsAt, time.Duration(req.DurationMinutes)*time.Minute, req.Venue, req.Address)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	price, err := game.NewPrice(req.PriceCents, req.Currency)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	g, err := game.NewGame(id, schedule, price, req.Capacity, req.Notes, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Games().Create(ctx, tx.DB(), g); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrGameExists
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("game created", "game_id", g.ID().String(), "capacity", g.Capacity())
	uc.cache.Invalidate(ctx, g.ID().String())
	return queries.NewGameView(g), nil
}

func (uc *adminUseCaseImpl) UpdateGame(ctx context.Context, gameID string, req UpdateGameRequest) (_ *UpdateGameResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "admin.UpdateGame", attribute.String("game_id", gameID))
	defer func() { telemetry.EndSpan(span, err) }()

	var (
		updated  *game.Game
		promoted []*waitlist.Entry
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated, promoted = nil, nil
		now := uc.clock.Now()

		g, err := tx.Games().FindByIDForUpdate(ctx, tx.DB(), gameID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrGameNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := uc.applyDetails(g, req, now); err != nil {
			return err
		}
		g, err = tx.Games().UpdateDetails(ctx, tx.DB(), g)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if patch.Changed(req.Capacity, g.Capacity()) {
			before := g.SpotsRemaining()
			if _, err := g.Resize(*req.Capacity); err != nil {
				return mapResizeErr(err)
			}
			g, err = tx.Games().Resize(ctx, tx.DB(), gameID, *req.Capacity)
			if err != nil {
				if infra.IsKind(err, infra.KindConditionFailed) {
					return ErrCapacityBelowBooked
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}

			if freed := g.SpotsRemaining() - before; freed > 0 && !g.Status().IsTerminal() {
				promoted, err = promoteUpTo(ctx, tx, gameID, freed, now)
				if err != nil {
					return err
				}
			}
		}

		updated = g
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("game updated",
		"game_id", gameID,
		"capacity", updated.Capacity(),
		"spots_remaining", updated.SpotsRemaining(),
		"status", updated.Status().String(),
		"waitlist_promoted", len(promoted))

	uc.cache.Invalidate(ctx, gameID)
	if len(promoted) > 0 {
		notes := make([]Notification, len(promoted))
		for i, e := range promoted {
			notes[i] = waitlistSpotOpened(e, updated)
		}
		uc.notifier.Dispatch(ctx, notes...)
	}

	return &UpdateGameResult{Game: queries.NewGameView(updated), Promoted: len(promoted)}, nil
}

// applyDetails updates everything except capacity on the locked game.
func (uc *adminUseCaseImpl) applyDetails(g *game.Game, req UpdateGameRequest, now time.Time) error {
	current := g.Schedule()
	duration := current.Duration()
	if req.DurationMinutes != nil {
		duration = time.Duration(*req.DurationMinutes) * time.Minute
	}
	schedule, err := game.NewSchedule(
		patch.Or(req.StartsAt, current.StartsAt()),
		duration,
		patch.Or(req.Venue, current.Venue()),
		patch.Or(req.Address, current.Address()),
	)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}
	price, err := game.NewPrice(
		patch.Or(req.PriceCents, g.Price().AmountCents()),
		patch.Or(req.Currency, g.Price().Currency()),
	)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}
	g.Reschedule(schedule, price, patch.Or(req.Notes, g.Notes()), now)

	if req.Status != nil {
		next, err := game.NewStatus(*req.Status)
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}
		if err := g.ChangeStatus(next, now); err != nil {
			if errs.Is(err, game.ErrGameClosed) {
				return ErrGameClosed
			}
			return errs.Mark(err, ErrValidation)
		}
	}
	return nil
}

// RefundReservation executes the provider refund for a reservation that was
// cancelled inside the refund window. A second call reports the first refund.
func (uc *adminUseCaseImpl) RefundReservation(ctx context.Context, code string) (_ *RefundResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "admin.RefundReservation")
	defer func() { telemetry.EndSpan(span, err) }()

	var result *RefundResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.findByCode(ctx, tx, code)
		if err != nil {
			return err
		}

		if res.PaymentStatus() == reservation.PaymentRefunded {
			result = &RefundResult{
				ConfirmationCode: res.Code().String(),
				RefundID:         res.Refs().RefundID,
				PaymentStatus:    res.PaymentStatus().String(),
				AlreadyRefunded:  true,
			}
			return nil
		}

		if err := res.CheckRefundable(); err != nil {
			return ErrNotRefundable
		}

		refundID, err := uc.gateway.IssueRefund(ctx, res.Refs().PaymentIntentID)
		if err != nil {
			return errs.Mark(err, ErrPaymentProvider)
		}
		if err := res.MarkRefunded(refundID, uc.clock.Now()); err != nil {
			return ErrNotRefundable
		}
		if err := tx.Reservations().UpdateState(ctx, tx.DB(), res); err != nil {
			slog.Error("refund issued but not recorded",
				"confirmation_code", res.Code().String(),
				"refund_id", refundID,
				"error", err.Error())
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = &RefundResult{
			ConfirmationCode: res.Code().String(),
			RefundID:         refundID,
			PaymentStatus:    res.PaymentStatus().String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.AlreadyRefunded {
		slog.Info("reservation refunded", "confirmation_code", result.ConfirmationCode, "refund_id", result.RefundID)
	}
	return result, nil
}

func (uc *adminUseCaseImpl) MarkNoShow(ctx context.Context, code string) (*NoShowResult, error) {
	var res *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := uc.findByCode(ctx, tx, code)
		if err != nil {
			return err
		}
		g, err := tx.Games().FindByID(ctx, tx.DB(), found.GameID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrGameNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := found.MarkNoShow(uc.clock.Now(), g.StartsAt()); err != nil {
			return ErrInvalidTransition
		}
		if err := tx.Reservations().UpdateState(ctx, tx.DB(), found); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		res = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation marked no-show", "game_id", res.GameID(), "confirmation_code", res.Code().String())
	return &NoShowResult{ConfirmationCode: res.Code().String(), Status: res.Status().String()}, nil
}

// findByCode locks a reservation by code for operator actions. Operators are
// not asked for the holder email.
func (uc *adminUseCaseImpl) findByCode(ctx context.Context, tx shared.Tx, raw string) (*reservation.Reservation, error) {
	for _, code := range reservation.ParseCode(raw, uc.policy.CodePrefix) {
		res, err := tx.Reservations().FindByCodeForUpdate(ctx, tx.DB(), code)
		if err == nil {
			return res, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil, ErrReservationNotFound
}

func mapResizeErr(err error) error {
	if errs.Is(err, game.ErrCapacityBelowBooked) {
		return ErrCapacityBelowBooked
	}
	return errs.Mark(err, ErrValidation)
}
