package components

import (
	"pickup-rsvp/internal/infra/readstore"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/infra/uow"
	"pickup-rsvp/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule exposes the read stores to the queries and the unit of
// work to the commands. Write repositories are built per transaction inside
// the unit of work, so they are not provided here.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		sqlc.New,
		func(pool *pgxpool.Pool) sqlc.DBTX { return pool },
		fx.Annotate(
			func(q *sqlc.Queries) *sqlc.Queries { return q },
			fx.As(
				new(readstore.GameViewQueries),
				new(readstore.ReservationViewQueries),
				new(readstore.OperatorViewQueries),
			),
		),
		fx.Annotate(readstore.NewGameReadStore, fx.As(new(queries.GameReadStore))),
		fx.Annotate(readstore.NewReservationReadStore, fx.As(new(queries.ReservationReadStore))),
		fx.Annotate(readstore.NewOperatorReadStore, fx.As(new(queries.OperatorReadStore))),
		uow.NewPostgresUoW,
	),
)
