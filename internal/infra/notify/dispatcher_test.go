//go:build unit

package notify_test

import (
	"context"
	"testing"
	"time"

	"pickup-rsvp/internal/infra/notify"
	"pickup-rsvp/internal/usecase/commands"
	commandsmock "pickup-rsvp/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDispatcher(t *testing.T) {
	confirmed := commands.Notification{
		Kind:      commands.NotifyReservationConfirmed,
		Recipient: "alex@example.com",
		Language:  "en",
		Data:      map[string]any{"confirmation_code": "PKP-7KQ2MZXA"},
	}
	alert := commands.Notification{
		Kind:      commands.NotifyOperatorRefundAlert,
		Recipient: "ops@example.com",
		Language:  "en",
	}

	t.Run("delivers every notification in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sink := commandsmock.NewMockNotificationSink(ctrl)
		gomock.InOrder(
			sink.EXPECT().Send(gomock.Any(), confirmed).Return(nil),
			sink.EXPECT().Send(gomock.Any(), alert).Return(nil),
		)

		d := notify.NewDispatcher(sink, time.Second)
		d.Dispatch(context.Background(), confirmed, alert)
		d.Wait()
	})

	t.Run("a failed send does not stop the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sink := commandsmock.NewMockNotificationSink(ctrl)
		gomock.InOrder(
			sink.EXPECT().Send(gomock.Any(), confirmed).Return(assert.AnError),
			sink.EXPECT().Send(gomock.Any(), alert).Return(nil),
		)

		d := notify.NewDispatcher(sink, time.Second)
		d.Dispatch(context.Background(), confirmed, alert)
		d.Wait()
	})

	t.Run("outlives the request context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sink := commandsmock.NewMockNotificationSink(ctrl)
		sink.EXPECT().Send(gomock.Any(), confirmed).
			DoAndReturn(func(ctx context.Context, _ commands.Notification) error {
				assert.NoError(t, ctx.Err())
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return nil
			})

		reqCtx, cancel := context.WithCancel(context.Background())
		cancel()

		d := notify.NewDispatcher(sink, time.Second)
		d.Dispatch(reqCtx, confirmed)
		d.Wait()
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sink := commandsmock.NewMockNotificationSink(ctrl)

		d := notify.NewDispatcher(sink, time.Second)
		d.Dispatch(context.Background())
		d.Wait()
	})
}

func TestLogSink(t *testing.T) {
	assert.NoError(t, notify.NewLogSink().Send(context.Background(), commands.Notification{Kind: commands.NotifyWaitlistSpotOpened}))
}
