package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pickup-rsvp/internal/usecase/commands"
)

// Dispatcher sends notifications on a background goroutine so callers never
// wait on delivery. Each batch gets its own deadline, detached from the
// request that produced it.
type Dispatcher struct {
	sink    commands.NotificationSink
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(sink commands.NotificationSink, timeout time.Duration) *Dispatcher {
	return &Dispatcher{sink: sink, timeout: timeout}
}

func (d *Dispatcher) Dispatch(ctx context.Context, notifications ...commands.Notification) {
	if len(notifications) == 0 {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		for _, n := range notifications {
			if err := d.sink.Send(sendCtx, n); err != nil {
				slog.Error("notification delivery failed",
					"kind", string(n.Kind),
					"language", n.Language,
					"error", err.Error())
			}
		}
	}()
}

// Wait blocks until every dispatched batch has finished. Used on shutdown
// and by tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
