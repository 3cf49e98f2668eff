package handler

import (
	"log/slog"
	"net/http"

	"pickup-rsvp/internal/handler/api"
	"pickup-rsvp/internal/handler/httperr"
	"pickup-rsvp/internal/handler/middleware"
	"pickup-rsvp/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Health  *api.HealthHandler
	Games   *api.GameHandler
	Booking *api.BookingHandler
	Webhook *api.WebhookHandler
	Admin   *api.AdminHandler
}

func NewHandlers(health *api.HealthHandler, games *api.GameHandler, booking *api.BookingHandler, webhook *api.WebhookHandler, admin *api.AdminHandler) Handlers {
	return Handlers{Health: health, Games: games, Booking: booking, Webhook: webhook, Admin: admin}
}

// endpoint is one route. guards run between the group middleware and the handler.
type endpoint struct {
	method  string
	path    string
	handler gin.HandlerFunc
	guards  []gin.HandlerFunc
}

func mount(g *gin.RouterGroup, eps ...endpoint) {
	for _, ep := range eps {
		chain := append(append([]gin.HandlerFunc{}, ep.guards...), ep.handler)
		g.Handle(ep.method, ep.path, chain...)
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, auth *middleware.AuthMiddleware) {
	httperr.UseJSONFieldNames()

	// Recovery is outermost so it also catches panics in the other middleware.
	engine.Use(
		middleware.Recovery(),
		middleware.Tracing(),
		middleware.NewCORSMiddleware(cfg.CORS),
		middleware.RequestLogger(logger),
		middleware.ErrorHandler(),
	)

	mount(&engine.RouterGroup,
		endpoint{method: http.MethodGet, path: "/health", handler: h.Health.Live},
		endpoint{method: http.MethodGet, path: "/health/ready", handler: h.Health.Ready},
	)
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := engine.Group("/api/v1")

	// Public booking surface. Players identify themselves by code and email.
	mount(v1.Group("/games"),
		endpoint{method: http.MethodGet, path: "", handler: h.Games.List},
		endpoint{method: http.MethodGet, path: "/:gameId", handler: h.Games.Get},
		endpoint{method: http.MethodPost, path: "/:gameId/reservations", handler: h.Booking.Reserve},
		endpoint{method: http.MethodPost, path: "/:gameId/checkout", handler: h.Booking.Checkout},
		endpoint{method: http.MethodPost, path: "/:gameId/waitlist", handler: h.Booking.JoinWaitlist},
	)
	mount(v1.Group("/reservations"),
		endpoint{method: http.MethodPost, path: "/cancel", handler: h.Booking.Cancel},
		endpoint{method: http.MethodGet, path: "/:code", handler: h.Booking.Lookup},
	)
	mount(v1.Group("/webhooks"),
		endpoint{method: http.MethodPost, path: "/stripe", handler: h.Webhook.Stripe},
	)

	admin := v1.Group("/admin")
	mount(admin, endpoint{method: http.MethodPost, path: "/login", handler: h.Admin.Login})

	// Any operator may read rosters and mark no-shows; changing games and
	// money needs a game manager.
	manager := []gin.HandlerFunc{auth.RequireGameManager()}
	mount(admin.Group("", auth.RequireAuth()),
		endpoint{method: http.MethodGet, path: "/me", handler: h.Admin.Me},
		endpoint{method: http.MethodGet, path: "/games/:gameId/roster", handler: h.Admin.Roster},
		endpoint{method: http.MethodPost, path: "/reservations/:code/no-show", handler: h.Admin.NoShow},
		endpoint{method: http.MethodPost, path: "/games", handler: h.Admin.CreateGame, guards: manager},
		endpoint{method: http.MethodPatch, path: "/games/:gameId", handler: h.Admin.UpdateGame, guards: manager},
		endpoint{method: http.MethodPost, path: "/reservations/:code/refund", handler: h.Admin.Refund, guards: manager},
	)
}
