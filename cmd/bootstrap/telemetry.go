package bootstrap

import (
	"context"

	"pickup-rsvp/internal/pkg/config"
	"pickup-rsvp/internal/pkg/telemetry"

	"go.uber.org/fx"
)

// TelemetryModule installs the global tracer provider before anything opens
// a span, and flushes it on stop.
var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(startTracing),
)

func startTracing(lc fx.Lifecycle, cfg config.Config) error {
	provider, err := telemetry.NewProvider(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	lc.Append(fx.StopHook(provider.Shutdown))
	return nil
}
