package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	SubjectUserDeleted  = "identity.user.deleted"
	SubjectFreetDeleted = "freet.deleted"

	// StreamName is the JetStream stream retaining lifecycle events until
	// they are acknowledged.
	StreamName = "FRITTER_LIFECYCLE"

	// ConsumerName is the durable consumer shared by every service replica,
	// so each event is handled once.
	ConsumerName = "fritter-engagement"

	// RedeliveryDelay is how long a failed cascade waits before its event is
	// delivered again.
	RedeliveryDelay = 30 * time.Second
)

var (
	ErrEmptyLifecycleID = errors.New("lifecycle event carries no ID")

	// ErrMalformedEvent marks events that can never succeed and are not redelivered.
	ErrMalformedEvent = errors.New("malformed lifecycle event")
)

// Delivery is the part of a JetStream message the subscriber settles.
type Delivery interface {
	Subject() string
	Data() []byte
	Ack() error
	Term() error
	NakWithDelay(delay time.Duration) error
}

// LifecycleSubscriber cascades deletions announced by the services that own
// users and freets. Events stay in the stream until their cascade commits.
type LifecycleSubscriber struct {
	Conn        *nats.Conn
	DeleteUser  command.Command[command.DeleteUserRequest, domain.CascadeResult]
	DeleteFreet command.Command[command.DeleteFreetRequest, domain.CascadeResult]
}

func (s *LifecycleSubscriber) Run(ctx context.Context) error {
	js, err := jetstream.New(s.Conn)
	if err != nil {
		return fmt.Errorf("initialising JetStream: %w", err)
	}

	stream, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{SubjectUserDeleted, SubjectFreetDeleted},
		Storage:  jetstream.FileStorage,
	})
	if err != nil {
		return fmt.Errorf("creating stream %s: %w", StreamName, err)
	}

	consumer, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:   ConsumerName,
		AckPolicy: jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return fmt.Errorf("creating consumer %s: %w", ConsumerName, err)
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		s.Handle(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("consuming %s: %w", StreamName, err)
	}
	defer consumeCtx.Stop()

	domain.LoggerFromContext(ctx).InfoContext(ctx, "listening for lifecycle events",
		"stream", StreamName, "subjects", []string{SubjectUserDeleted, SubjectFreetDeleted})

	<-ctx.Done()
	return nil
}

// Handle runs the cascade for one event and settles it: acked on success,
// terminated when malformed, redelivered later when the cascade failed.
func (s *LifecycleSubscriber) Handle(ctx context.Context, msg Delivery) {
	logger := domain.LoggerFromContext(ctx).With("subject", msg.Subject())

	var err error
	switch msg.Subject() {
	case SubjectUserDeleted:
		err = s.HandleUserDeleted(ctx, msg.Data())
	case SubjectFreetDeleted:
		err = s.HandleFreetDeleted(ctx, msg.Data())
	default:
		err = fmt.Errorf("%w: unexpected subject", ErrMalformedEvent)
	}

	var settleErr error
	switch {
	case err == nil:
		settleErr = msg.Ack()
	case errors.Is(err, ErrMalformedEvent):
		logger.WarnContext(ctx, "discarding malformed lifecycle event", "error", err)
		settleErr = msg.Term()
	default:
		logger.ErrorContext(ctx, "error cascading deletion, will retry", "error", err)
		settleErr = msg.NakWithDelay(RedeliveryDelay)
	}
	if settleErr != nil {
		logger.ErrorContext(ctx, "error settling lifecycle event", "error", settleErr)
	}
}

func (s *LifecycleSubscriber) HandleUserDeleted(ctx context.Context, data []byte) error {
	userID, err := ParseLifecycleID(data, "user_id")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}

	if _, err := s.DeleteUser.Execute(ctx, command.DeleteUserRequest{UserID: userID}); err != nil {
		return fmt.Errorf("cascading user [%s]: %w", userID, err)
	}
	return nil
}

func (s *LifecycleSubscriber) HandleFreetDeleted(ctx context.Context, data []byte) error {
	freetID, err := ParseLifecycleID(data, "freet_id")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}

	if _, err := s.DeleteFreet.Execute(ctx, command.DeleteFreetRequest{FreetID: freetID}); err != nil {
		return fmt.Errorf("cascading freet [%s]: %w", freetID, err)
	}
	return nil
}

// ParseLifecycleID reads the subject ID from an event payload: either a JSON
// object carrying it under field, or the bare ID.
func ParseLifecycleID(data []byte, field string) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", ErrEmptyLifecycleID
	}

	if data[0] != '{' {
		return string(data), nil
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("parsing lifecycle event: %w", err)
	}
	id, ok := payload[field].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("%w: missing %q", ErrEmptyLifecycleID, field)
	}
	return id, nil
}
