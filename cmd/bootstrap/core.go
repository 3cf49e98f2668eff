package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"pickup-rsvp/cmd/bootstrap/components"
	"pickup-rsvp/internal/handler/middleware"
	"pickup-rsvp/internal/infra/db"
	"pickup-rsvp/internal/pkg/config"
	"pickup-rsvp/internal/pkg/jwt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const minJWTSecretLen = 16

// Module is the whole API process: infrastructure first, then the layers that
// depend on it.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	DBModule,
	JWTModule,
	CacheModule,
	NotificationModule,
	PaymentModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

var LoggerModule = fx.Module("logger",
	fx.Provide(NewLogger),
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

// NewLogger builds the process logger and installs it as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).With("service", cfg.Telemetry.ServiceName)
}

// NewDB opens the booking database pool. The pool is closed when the app stops
// so in-flight bookings finish before connections go away.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "database", cfg.DB.DBName)

	lc.Append(fx.StopHook(closePool))
	return pool, nil
}

// NewJWTService signs operator tokens. It refuses to start with a short secret.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if len(cfg.JWT.Secret) < minJWTSecretLen {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLen)
	}
	if cfg.JWT.TTL <= 0 {
		return nil, fmt.Errorf("JWT_DURATION must be positive, got %s", cfg.JWT.TTL)
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.TTL), nil
}
