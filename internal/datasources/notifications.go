package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type NotificationPublisher interface {
	PublishNotification(ctx context.Context, notification domain.Notification) error
}

// NotificationLister lists a user's notifications that are still live at now, newest first.
type NotificationLister interface {
	ListNotifications(ctx context.Context, userID string, now time.Time) ([]domain.Notification, error)
}

type NotificationStore interface {
	NotificationPublisher
	NotificationLister
}

// NullNotificationStore discards notifications and never has any to list.
type NullNotificationStore struct{}

var _ NotificationStore = NullNotificationStore{}

func (NullNotificationStore) PublishNotification(_ context.Context, _ domain.Notification) error {
	return nil
}

func (NullNotificationStore) ListNotifications(_ context.Context, _ string, _ time.Time) ([]domain.Notification, error) {
	return nil, nil
}
