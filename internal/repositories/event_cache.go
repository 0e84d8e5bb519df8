package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/stripe-ledger/internal/logger"
)

// EventCacheRepository remembers provider webhook events that were fully processed.
type EventCacheRepository struct {
	client *redis.Client
	exp    time.Duration // how long a processed event id is remembered
}

// NewEventCacheRepository creates a new repository instance with the given TTL
func NewEventCacheRepository(client *redis.Client, expiration time.Duration) *EventCacheRepository {
	return &EventCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func eventKey(eventID string) string {
	return fmt.Sprintf("stripe:event:%s", eventID)
}

// IsProcessed reports whether the event id was marked as processed.
func (r *EventCacheRepository) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	key := eventKey(eventID)
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkProcessed records the event id as processed.
func (r *EventCacheRepository) MarkProcessed(ctx context.Context, eventID string) error {
	key := eventKey(eventID)
	err := r.client.Set(ctx, key, time.Now().UTC().Format(time.RFC3339), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"ttl", r.exp,
		"result", "ok",
		"error", err,
	)

	return err
}
