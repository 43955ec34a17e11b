package datasources

import (
	"context"

	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type EventPublisher interface {
	PublishEvent(ctx context.Context, event domain.EngagementEvent) error
}

// NullEventPublisher drops every event.
type NullEventPublisher struct{}

var _ EventPublisher = NullEventPublisher{}

func (NullEventPublisher) PublishEvent(_ context.Context, _ domain.EngagementEvent) error {
	return nil
}
