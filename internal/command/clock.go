package command

import (
	"context"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// Clock returns the current time. Commands default to time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}

// publishEvent delivers an event on a best-effort basis. Failures are logged
// and never fail the operation that produced the event.
func publishEvent(ctx context.Context, publisher datasources.EventPublisher, event domain.EngagementEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishEvent(ctx, event); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to publish engagement event",
			"error", err, "type", event.Type)
	}
}
