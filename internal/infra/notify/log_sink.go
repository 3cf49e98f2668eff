package notify

import (
	"context"
	"log/slog"

	"pickup-rsvp/internal/usecase/commands"
)

// LogSink records notifications in the application log instead of sending
// them anywhere. Recipients are not logged.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) Send(_ context.Context, n commands.Notification) error {
	slog.Info("notification",
		"kind", string(n.Kind),
		"language", n.Language,
		"game_id", n.Data["game_id"],
		"confirmation_code", n.Data["confirmation_code"])
	return nil
}
