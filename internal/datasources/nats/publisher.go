package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	natsgo "github.com/nats-io/nats.go"
)

var _ datasources.EventPublisher = (*EventPublisher)(nil)

// EventPublisher publishes engagement events with the event type as subject.
type EventPublisher struct {
	conn *natsgo.Conn
}

func NewEventPublisher(conn *natsgo.Conn) *EventPublisher {
	return &EventPublisher{conn: conn}
}

// Connect dials NATS, reconnecting indefinitely if the connection drops.
func Connect(url string) (*natsgo.Conn, error) {
	conn, err := natsgo.Connect(url,
		natsgo.Name("fritter-engagement"),
		natsgo.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	return conn, nil
}

func (p *EventPublisher) PublishEvent(ctx context.Context, event domain.EngagementEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling %s event: %w", event.Type, err)
	}

	if err := p.conn.Publish(string(event.Type), data); err != nil {
		return fmt.Errorf("publishing %s event: %w", event.Type, err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "published engagement event", "subject", event.Type)
	return nil
}
