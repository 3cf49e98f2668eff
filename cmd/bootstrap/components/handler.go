package components

import (
	"pickup-rsvp/internal/handler"
	"pickup-rsvp/internal/handler/api"
	"pickup-rsvp/internal/handler/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(api.NewHealthHandler, fx.From(new(*pgxpool.Pool))),
		api.NewGameHandler,
		api.NewBookingHandler,
		api.NewWebhookHandler,
		api.NewAdminHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
