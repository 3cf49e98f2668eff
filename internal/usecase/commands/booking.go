package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pickup-rsvp/internal/domain/game"
	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/domain/waitlist"
	"pickup-rsvp/internal/infra"
	"pickup-rsvp/internal/pkg/clock"
	"pickup-rsvp/internal/pkg/config"
	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/pkg/telemetry"
	"pickup-rsvp/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
)

const maxCodeAttempts = 3

var errCodeCollision = errs.New("confirmation code collision")

type FinalizeOutcome string

const (
	FinalizeProcessed        FinalizeOutcome = "processed"
	FinalizeDuplicate        FinalizeOutcome = "duplicate"
	FinalizeIgnored          FinalizeOutcome = "ignored"
	FinalizeCapacityExceeded FinalizeOutcome = "capacity_exceeded"
	FinalizeGameMissing      FinalizeOutcome = "game_missing"
	FinalizeGameClosed       FinalizeOutcome = "game_closed"
	FinalizeGameStarted      FinalizeOutcome = "game_started"
	FinalizeHolderConflict   FinalizeOutcome = "holder_conflict"
	FinalizeInvalidMetadata  FinalizeOutcome = "invalid_metadata"
)

// NeedsRefund reports outcomes where money was taken but no spot was booked.
func (o FinalizeOutcome) NeedsRefund() bool {
	switch o {
	case FinalizeCapacityExceeded, FinalizeGameMissing, FinalizeGameClosed, FinalizeGameStarted,
		FinalizeHolderConflict, FinalizeInvalidMetadata:
		return true
	default:
		return false
	}
}

type ReserveRequest struct {
	GameID         string
	Name           string
	Email          string
	Phone          string
	Guests         []string
	WaiverAccepted bool
	RequesterIP    string
	Language       string
}

type ReserveResult struct {
	ConfirmationCode string
	TotalPlayers     int
	TotalAmount      int64
	Currency         string
	PaymentStatus    string
	SpotsRemaining   int
}

type CheckoutResult struct {
	ConfirmationCode string
	SessionID        string
	RedirectURL      string
}

type FinalizeResult struct {
	Outcome          FinalizeOutcome
	ConfirmationCode string
}

type CancelRequest struct {
	Code  string
	Email string
}

type CancelResult struct {
	ConfirmationCode string
	RefundEligible   *bool
}

// BookingPolicy carries the tunables the booking flows read from configuration.
type BookingPolicy struct {
	CodePrefix    string
	RefundWindow  time.Duration
	SuccessURL    string
	CancelURL     string
	OperatorEmail string
}

func NewBookingPolicy(cfg config.Config) BookingPolicy {
	return BookingPolicy{
		CodePrefix:    cfg.Booking.CodePrefix,
		RefundWindow:  cfg.Booking.RefundWindow,
		SuccessURL:    cfg.Stripe.SuccessURL,
		CancelURL:     cfg.Stripe.CancelURL,
		OperatorEmail: cfg.Booking.OperatorEmail,
	}
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock
type BookingCommands interface {
	Reserve(ctx context.Context, req ReserveRequest) (*ReserveResult, error)
	InitiateCheckout(ctx context.Context, req ReserveRequest) (*CheckoutResult, error)
	HandlePaymentWebhook(ctx context.Context, payload []byte, signatureHeader string) (*FinalizeResult, error)
	FinalizeOnlineReservation(ctx context.Context, ev PaymentEvent) (*FinalizeResult, error)
	Cancel(ctx context.Context, req CancelRequest) (*CancelResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	codes    reservation.CodeGenerator
	gateway  PaymentGateway
	notifier Notifier
	cache    GameCacheInvalidator
	clock    clock.Clock
	policy   BookingPolicy
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	codes reservation.CodeGenerator,
	gateway PaymentGateway,
	notifier Notifier,
	cache GameCacheInvalidator,
	clk clock.Clock,
	policy BookingPolicy,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		codes:    codes,
		gateway:  gateway,
		notifier: notifier,
		cache:    cache,
		clock:    clk,
		policy:   policy,
	}
}

func (uc *bookingUseCaseImpl) Reserve(ctx context.Context, req ReserveRequest) (_ *ReserveResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "booking.Reserve", attribute.String("game_id", req.GameID))
	defer func() { telemetry.EndSpan(span, err) }()

	draft, err := uc.buildDraft(req)
	if err != nil {
		return nil, err
	}

	var (
		booked  *reservation.Reservation
		updated *game.Game
	)
	err = uc.withFreshCode(func(code reservation.Code) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			now := uc.clock.Now()
			g, err := uc.checkBookable(ctx, tx, draft, now)
			if err != nil {
				return err
			}

			res := reservation.NewCashReservation(code, draft, g.Price().AmountCents(), g.Price().Currency(), now)
			if err := uc.insertReservation(ctx, tx, res); err != nil {
				return err
			}

			claimed, err := uc.claimSpots(ctx, tx, draft.GameID, draft.TotalPlayers())
			if err != nil {
				return err
			}

			// A promoted waitlister who books leaves the queue.
			if err := tx.Waitlist().Remove(ctx, tx.DB(), draft.GameID, draft.Contact.Email()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}

			booked, updated = res, claimed
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation created",
		"game_id", booked.GameID(),
		"confirmation_code", booked.Code().String(),
		"players", booked.TotalPlayers(),
		"payment_method", booked.PaymentMethod().String())

	uc.cache.Invalidate(ctx, booked.GameID())
	uc.notifier.Dispatch(ctx, reservationConfirmed(booked, updated))

	return &ReserveResult{
		ConfirmationCode: booked.Code().String(),
		TotalPlayers:     booked.TotalPlayers(),
		TotalAmount:      booked.TotalAmount(),
		Currency:         booked.Currency(),
		PaymentStatus:    booked.PaymentStatus().String(),
		SpotsRemaining:   updated.SpotsRemaining(),
	}, nil
}

func (uc *bookingUseCaseImpl) InitiateCheckout(ctx context.Context, req ReserveRequest) (_ *CheckoutResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "booking.InitiateCheckout", attribute.String("game_id", req.GameID))
	defer func() { telemetry.EndSpan(span, err) }()

	draft, err := uc.buildDraft(req)
	if err != nil {
		return nil, err
	}

	var g *game.Game
	err = uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		g, cerr = uc.checkBookable(ctx, tx, draft, uc.clock.Now())
		return cerr
	})
	if err != nil {
		return nil, err
	}

	code, err := uc.codes.Generate()
	if err != nil {
		return nil, errs.Mark(err, ErrCodeGeneration)
	}

	meta, err := encodeCheckoutMetadata(code, draft, g.Price().AmountCents(), g.Price().Currency())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	session, err := uc.gateway.CreateSession(ctx, CheckoutRequest{
		ProductName:   checkoutProductName(g),
		UnitAmount:    g.Price().AmountCents(),
		Currency:      g.Price().Currency(),
		Quantity:      draft.TotalPlayers(),
		CustomerEmail: draft.Contact.Email().String(),
		SuccessURL:    strings.ReplaceAll(uc.policy.SuccessURL, "{CODE}", code.String()),
		CancelURL:     uc.policy.CancelURL,
		Metadata:      meta,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentProvider)
	}

	slog.Info("checkout session created",
		"game_id", draft.GameID,
		"confirmation_code", code.String(),
		"session_id", session.SessionID)

	return &CheckoutResult{
		ConfirmationCode: code.String(),
		SessionID:        session.SessionID,
		RedirectURL:      session.RedirectURL,
	}, nil
}

func (uc *bookingUseCaseImpl) HandlePaymentWebhook(ctx context.Context, payload []byte, signatureHeader string) (*FinalizeResult, error) {
	ev, err := uc.gateway.VerifyWebhook(payload, signatureHeader)
	if err != nil {
		return nil, errs.Mark(err, ErrSignature)
	}
	return uc.FinalizeOnlineReservation(ctx, *ev)
}

func (uc *bookingUseCaseImpl) FinalizeOnlineReservation(ctx context.Context, ev PaymentEvent) (_ *FinalizeResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "booking.FinalizeOnlineReservation",
		attribute.String("event_type", ev.Type),
		attribute.String("session_id", ev.SessionID))
	defer func() { telemetry.EndSpan(span, err) }()

	if ev.Type != EventCheckoutCompleted || !ev.Paid {
		slog.Info("payment event ignored", "event_type", ev.Type, "session_id", ev.SessionID)
		return &FinalizeResult{Outcome: FinalizeIgnored}, nil
	}

	meta, err := decodeCheckoutMetadata(ev.Metadata)
	if err != nil {
		slog.Error("paid checkout carries unusable metadata", "session_id", ev.SessionID, "error", err.Error())
		uc.notifier.Dispatch(ctx, operatorRefundAlert(uc.policy.OperatorEmail, RefundAlert{
			Reason:          string(FinalizeInvalidMetadata),
			SessionID:       ev.SessionID,
			PaymentIntentID: ev.PaymentIntentID,
		}))
		return &FinalizeResult{Outcome: FinalizeInvalidMetadata}, nil
	}

	var (
		outcome FinalizeOutcome
		booked  *reservation.Reservation
		updated *game.Game
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var ferr error
		outcome, booked, updated, ferr = uc.finalizeInTx(ctx, tx, ev, meta)
		return ferr
	})
	if err != nil {
		// A concurrent delivery of the same session won the insert.
		if errs.Is(err, errSessionFinalized) {
			return &FinalizeResult{Outcome: FinalizeDuplicate, ConfirmationCode: meta.Code.String()}, nil
		}
		return nil, err
	}

	logArgs := []any{
		"outcome", string(outcome),
		"game_id", meta.Draft.GameID,
		"confirmation_code", meta.Code.String(),
		"session_id", ev.SessionID,
	}
	switch {
	case outcome == FinalizeProcessed:
		slog.Info("online reservation finalized", logArgs...)
		uc.cache.Invalidate(ctx, booked.GameID())
		uc.notifier.Dispatch(ctx, reservationConfirmed(booked, updated))
		return &FinalizeResult{Outcome: outcome, ConfirmationCode: booked.Code().String()}, nil
	case outcome.NeedsRefund():
		slog.Error("payment taken without a spot; operator refund required", logArgs...)
		uc.notifier.Dispatch(ctx, operatorRefundAlert(uc.policy.OperatorEmail, RefundAlert{
			Reason:           string(outcome),
			ConfirmationCode: meta.Code.String(),
			GameID:           meta.Draft.GameID,
			SessionID:        ev.SessionID,
			PaymentIntentID:  ev.PaymentIntentID,
			Amount:           meta.UnitAmount * int64(meta.Draft.TotalPlayers()),
			Currency:         meta.Currency,
		}))
	default:
		slog.Info("payment event already handled", logArgs...)
	}
	return &FinalizeResult{Outcome: outcome, ConfirmationCode: meta.Code.String()}, nil
}

var errSessionFinalized = errs.New("checkout session already finalized")

func (uc *bookingUseCaseImpl) finalizeInTx(
	ctx context.Context,
	tx shared.Tx,
	ev PaymentEvent,
	meta *checkoutMetadata,
) (FinalizeOutcome, *reservation.Reservation, *game.Game, error) {
	fresh, err := tx.PaymentEvents().Record(ctx, tx.DB(), shared.PaymentEvent{
		EventID:          ev.ID,
		EventType:        ev.Type,
		SessionID:        ev.SessionID,
		ConfirmationCode: meta.Code.String(),
	})
	if err != nil {
		return "", nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !fresh {
		return FinalizeDuplicate, nil, nil, nil
	}

	outcome, res, updated, err := uc.bookPaidCheckout(ctx, tx, ev, meta)
	if err != nil {
		return "", nil, nil, err
	}
	if err := tx.PaymentEvents().SetOutcome(ctx, tx.DB(), ev.ID, string(outcome)); err != nil {
		return "", nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return outcome, res, updated, nil
}

func (uc *bookingUseCaseImpl) bookPaidCheckout(
	ctx context.Context,
	tx shared.Tx,
	ev PaymentEvent,
	meta *checkoutMetadata,
) (FinalizeOutcome, *reservation.Reservation, *game.Game, error) {
	// The game row lock serializes deliveries for the same session, so the
	// session check below sees any booking a concurrent delivery committed.
	g, err := tx.Games().FindByIDForUpdate(ctx, tx.DB(), meta.Draft.GameID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return FinalizeGameMissing, nil, nil, nil
		}
		return "", nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	code := meta.Code
	existing, err := tx.Reservations().FindBySessionOrCode(ctx, tx.DB(), ev.SessionID, code)
	switch {
	case err == nil && existing.Refs().SessionID == ev.SessionID:
		return FinalizeDuplicate, nil, nil, nil
	case err == nil:
		// The code was taken by another booking after checkout issued it.
		if code, err = uc.codes.Generate(); err != nil {
			return "", nil, nil, errs.Mark(err, ErrCodeGeneration)
		}
	case !infra.IsKind(err, infra.KindNotFound):
		return "", nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	switch err := g.CheckBookable(uc.clock.Now()); {
	case errs.Is(err, game.ErrGameClosed):
		return FinalizeGameClosed, nil, nil, nil
	case errs.Is(err, game.ErrGameStarted):
		// Payment settled after kickoff.
		return FinalizeGameStarted, nil, nil, nil
	}

	if _, err := tx.Reservations().FindLiveByHolder(ctx, tx.DB(), g.ID().String(), meta.Draft.Contact.Email()); err == nil {
		return FinalizeHolderConflict, nil, nil, nil
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return "", nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	updated, err := tx.Games().ClaimSpots(ctx, tx.DB(), g.ID().String(), meta.Draft.TotalPlayers())
	if err != nil {
		if infra.IsKind(err, infra.KindConditionFailed) {
			return FinalizeCapacityExceeded, nil, nil, nil
		}
		return "", nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	res := reservation.NewOnlineReservation(code, meta.Draft, meta.UnitAmount, meta.Currency, reservation.PaymentRefs{
		SessionID:       ev.SessionID,
		PaymentIntentID: ev.PaymentIntentID,
	}, uc.clock.Now())
	if err := uc.insertReservation(ctx, tx, res); err != nil {
		return "", nil, nil, err
	}

	if err := tx.Waitlist().Remove(ctx, tx.DB(), res.GameID(), res.Contact().Email()); err != nil {
		return "", nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return FinalizeProcessed, res, updated, nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, req CancelRequest) (_ *CancelResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "booking.Cancel")
	defer func() { telemetry.EndSpan(span, err) }()

	var (
		cancelled *reservation.Reservation
		released  *game.Game
		promoted  *waitlist.Entry
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cancelled, released, promoted = nil, nil, nil
		now := uc.clock.Now()

		res, err := findOwnedReservation(ctx, tx, req.Code, req.Email, uc.policy.CodePrefix, true)
		if err != nil {
			return err
		}

		g, err := tx.Games().FindByID(ctx, tx.DB(), res.GameID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := res.Cancel(now, g.StartsAt(), uc.policy.RefundWindow); err != nil {
			switch {
			case errs.Is(err, reservation.ErrAlreadyCancelled):
				return ErrAlreadyCancelled
			case errs.Is(err, reservation.ErrGameStarted):
				return ErrPastGame
			default:
				return errs.Mark(err, ErrValidation)
			}
		}
		if err := tx.Reservations().UpdateState(ctx, tx.DB(), res); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		released, err = tx.Games().ReleaseSpots(ctx, tx.DB(), res.GameID(), res.TotalPlayers())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !released.Status().IsTerminal() {
			promoted, err = promoteNext(ctx, tx, res.GameID(), now)
			if err != nil {
				return err
			}
		}
		cancelled = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation cancelled",
		"game_id", cancelled.GameID(),
		"confirmation_code", cancelled.Code().String(),
		"refund_eligible", cancelled.IsRefundEligible(),
		"waitlist_promoted", promoted != nil)

	uc.cache.Invalidate(ctx, cancelled.GameID())

	notes := []Notification{reservationCancelled(cancelled, released)}
	if promoted != nil {
		notes = append(notes, waitlistSpotOpened(promoted, released))
	}
	if cancelled.IsRefundEligible() {
		notes = append(notes, operatorRefundAlert(uc.policy.OperatorEmail, RefundAlert{
			Reason:           "cancelled_within_refund_window",
			ConfirmationCode: cancelled.Code().String(),
			GameID:           cancelled.GameID(),
			SessionID:        cancelled.Refs().SessionID,
			PaymentIntentID:  cancelled.Refs().PaymentIntentID,
			Amount:           cancelled.TotalAmount(),
			Currency:         cancelled.Currency(),
		}))
	}
	uc.notifier.Dispatch(ctx, notes...)

	return &CancelResult{
		ConfirmationCode: cancelled.Code().String(),
		RefundEligible:   cancelled.RefundEligible(),
	}, nil
}

func (uc *bookingUseCaseImpl) buildDraft(req ReserveRequest) (reservation.Draft, error) {
	contact, err := reservation.NewContact(req.Name, req.Email, req.Phone)
	if err != nil {
		return reservation.Draft{}, errs.Mark(err, ErrValidation)
	}
	guests, err := reservation.NewGuests(req.Guests)
	if err != nil {
		return reservation.Draft{}, errs.Mark(err, ErrValidation)
	}
	waiver, err := reservation.NewWaiver(req.WaiverAccepted, uc.clock.Now(), req.RequesterIP)
	if err != nil {
		return reservation.Draft{}, errs.Mark(err, ErrValidation)
	}
	gameID := strings.TrimSpace(req.GameID)
	if gameID == "" {
		return reservation.Draft{}, ErrValidation
	}
	return reservation.Draft{
		GameID:   gameID,
		Contact:  contact,
		Guests:   guests,
		Waiver:   waiver,
		Language: reservation.NewLanguage(req.Language),
	}, nil
}

// checkBookable runs the read-side checks shared by cash booking and checkout.
func (uc *bookingUseCaseImpl) checkBookable(ctx context.Context, tx shared.Tx, draft reservation.Draft, now time.Time) (*game.Game, error) {
	g, err := tx.Games().FindByID(ctx, tx.DB(), draft.GameID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := mapBookableErr(g.CheckBookable(now)); err != nil {
		return nil, err
	}

	_, err = tx.Reservations().FindLiveByHolder(ctx, tx.DB(), draft.GameID, draft.Contact.Email())
	switch {
	case err == nil:
		return nil, ErrDuplicateBooking
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !g.HasRoomFor(draft.TotalPlayers()) {
		return nil, ErrCapacityExceeded
	}
	return g, nil
}

func (uc *bookingUseCaseImpl) claimSpots(ctx context.Context, tx shared.Tx, gameID string, players int) (*game.Game, error) {
	claimed, err := tx.Games().ClaimSpots(ctx, tx.DB(), gameID, players)
	if err == nil {
		return claimed, nil
	}
	if !infra.IsKind(err, infra.KindConditionFailed) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Rejected by the conditional update; re-read to report the real cause.
	current, rerr := tx.Games().FindByID(ctx, tx.DB(), gameID)
	if rerr != nil {
		return nil, errs.Mark(rerr, ErrDatabaseOperationFailed)
	}
	if current.Status().IsTerminal() {
		return nil, ErrGameClosed
	}
	return nil, ErrCapacityExceeded
}

func (uc *bookingUseCaseImpl) insertReservation(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error {
	err := tx.Reservations().Create(ctx, tx.DB(), res)
	if err == nil {
		return nil
	}
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	switch infra.ConstraintOf(err) {
	case infra.ConstraintReservationsPK:
		return errs.Mark(err, errCodeCollision)
	case infra.ConstraintStripeSession:
		return errs.Mark(err, errSessionFinalized)
	default:
		return errs.Mark(err, ErrDuplicateBooking)
	}
}

// withFreshCode runs fn with a newly generated code, regenerating on collision.
// Each attempt is its own transaction since the failed insert aborts the one it ran in.
func (uc *bookingUseCaseImpl) withFreshCode(fn func(code reservation.Code) error) error {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := uc.codes.Generate()
		if err != nil {
			return errs.Mark(err, ErrCodeGeneration)
		}
		err = fn(code)
		if !errs.Is(err, errCodeCollision) {
			return err
		}
		slog.Warn("confirmation code collision, regenerating", "attempt", attempt)
	}
	return ErrCodeGeneration
}

func mapBookableErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errs.Is(err, game.ErrGameClosed):
		return ErrGameClosed
	case errs.Is(err, game.ErrGameStarted):
		return ErrPastGame
	default:
		return errs.Mark(err, ErrValidation)
	}
}

func checkoutProductName(g *game.Game) string {
	s := g.Schedule()
	return "Pickup soccer " + s.Date() + " " + s.TimeOfDay() + " @ " + s.Venue()
}
