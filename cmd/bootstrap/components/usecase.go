package components

import (
	"context"
	"log/slog"

	"pickup-rsvp/internal/domain/operator"
	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/pkg/clock"
	"pickup-rsvp/internal/pkg/config"
	"pickup-rsvp/internal/usecase"
	"pickup-rsvp/internal/usecase/commands"
	"pickup-rsvp/internal/usecase/queries"
	"pickup-rsvp/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	fx.Invoke(seedAdmin),
)

var usecaseBaseOption = fx.Provide(
	clock.System,
	commands.NewBookingPolicy,
	fx.Annotate(
		newCodeGenerator,
		fx.As(new(reservation.CodeGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewWaitlistUseCase,
		commands.NewAdminUseCase,
		commands.NewAuthCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewGameQueries,
		newReservationQueries,
		queries.NewOperatorQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewOperatorTokens,
	),
)

func newCodeGenerator(cfg config.Config) *reservation.RandomCodeGenerator {
	return reservation.NewRandomCodeGenerator(cfg.Booking.CodePrefix, cfg.Booking.CodeLength)
}

func newReservationQueries(
	uow shared.UnitOfWork,
	readStore queries.ReservationReadStore,
	games queries.GameReadStore,
	cfg config.Config,
) queries.ReservationQueries {
	return queries.NewReservationQueries(uow, readStore, games, cfg.Booking.CodePrefix)
}

// seedAdmin creates the bootstrap operator once the database is reachable.
func seedAdmin(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands) {
	if !cfg.Admin.Enabled() {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := auth.EnsureOperator(ctx, cfg.Admin.BootstrapEmail, cfg.Admin.BootstrapPassword, operator.RoleAdmin.String()); err != nil {
				slog.Error("failed to seed admin operator", "error", err.Error())
				return err
			}
			return nil
		},
	})
}
