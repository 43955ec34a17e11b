package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

var _ datasources.NotificationStore = (*NotificationStore)(nil)

// NotificationStore keeps each user's notifications in a sorted set scored by
// expiry time, so live notifications are a range query from now onwards.
type NotificationStore struct {
	client goredis.UniversalClient
}

func NewNotificationStore(client goredis.UniversalClient) *NotificationStore {
	return &NotificationStore{client: client}
}

// Connect creates a client and checks the server is reachable.
func Connect(ctx context.Context, addr string) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("checking Redis connection: %w", err)
	}
	return client, nil
}

func notificationKey(userID string) string {
	return "notifications:" + userID
}

func millis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// extendExpiry moves the key's expiry out to at but never brings it in, so the
// key lives as long as its longest-lived message. NX covers a key with no
// expiry yet, which GT treats as never expiring. Needs Redis 7.
func extendExpiry(ctx context.Context, pipe goredis.Pipeliner, key string, at time.Time) {
	ms := at.UnixMilli()
	pipe.Do(ctx, "PEXPIREAT", key, ms, "NX")
	pipe.Do(ctx, "PEXPIREAT", key, ms, "GT")
}

func (s *NotificationStore) PublishNotification(ctx context.Context, n domain.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshalling notification: %w", err)
	}

	key := notificationKey(n.UserID)
	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, key, goredis.Z{
		Score:  float64(n.ExpiresAt.UnixMilli()),
		Member: string(data),
	})
	pipe.ZRemRangeByScore(ctx, key, "-inf", millis(n.CreatedAt))
	extendExpiry(ctx, pipe, key, n.ExpiresAt)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("storing notification for user [%s]: %w", n.UserID, err)
	}
	return nil
}

func (s *NotificationStore) ListNotifications(
	ctx context.Context,
	userID string,
	now time.Time,
) ([]domain.Notification, error) {
	members, err := s.client.ZRevRangeByScore(ctx, notificationKey(userID), &goredis.ZRangeBy{
		Min: "(" + millis(now),
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("listing notifications for user [%s]: %w", userID, err)
	}

	logger := domain.LoggerFromContext(ctx)
	notifications := make([]domain.Notification, 0, len(members))
	for _, member := range members {
		var n domain.Notification
		if err := json.Unmarshal([]byte(member), &n); err != nil {
			logger.WarnContext(ctx, "skipping malformed notification", "error", err, "user_id", userID)
			continue
		}
		n.UserID = userID
		notifications = append(notifications, n)
	}
	return notifications, nil
}
