package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"vehicle-parking/internal/pkg/errs"
	"vehicle-parking/internal/usecase/digest"

	"github.com/redis/go-redis/v9"
)

const outboxMaxLen = 10000

// StreamOutbox appends notifications to a Redis stream for an external
// mailer. Claims are SET NX keys so only one replica sends each digest.
type StreamOutbox struct {
	client redis.Cmdable
	stream string
}

func NewStreamOutbox(client redis.Cmdable, stream string) *StreamOutbox {
	return &StreamOutbox{client: client, stream: stream}
}

func (o *StreamOutbox) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := o.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to claim digest run")
	}
	return ok, nil
}

func (o *StreamOutbox) Release(ctx context.Context, key string) error {
	if err := o.client.Del(ctx, key).Err(); err != nil {
		return errs.Wrap(err, "failed to release digest run")
	}
	return nil
}

func (o *StreamOutbox) Publish(ctx context.Context, notifications []digest.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	pipe := o.client.Pipeline()
	for _, n := range notifications {
		payload, err := json.Marshal(n.Payload)
		if err != nil {
			return errs.Wrap(err, "failed to encode notification")
		}
		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: o.stream,
			MaxLen: outboxMaxLen,
			Approx: true,
			Values: map[string]any{
				"kind":     string(n.Kind),
				"user_id":  n.UserID.String(),
				"username": n.Username,
				"email":    n.Email,
				"payload":  string(payload),
			},
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errs.Wrap(err, "failed to publish notifications")
	}
	return nil
}

// LogOutbox writes notifications to the log. Claims only hold within this
// process. Used when Redis is not configured.
type LogOutbox struct {
	mu      sync.Mutex
	claimed map[string]time.Time
	now     func() time.Time
}

func NewLogOutbox() *LogOutbox {
	return &LogOutbox{claimed: map[string]time.Time{}, now: time.Now}
}

func (o *LogOutbox) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	now := o.now()
	if until, ok := o.claimed[key]; ok && now.Before(until) {
		return false, nil
	}
	o.claimed[key] = now.Add(ttl)
	return true, nil
}

func (o *LogOutbox) Release(_ context.Context, key string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.claimed, key)
	return nil
}

func (o *LogOutbox) Publish(_ context.Context, notifications []digest.Notification) error {
	for _, n := range notifications {
		slog.Info("notification",
			"kind", string(n.Kind),
			"user_id", n.UserID.String(),
			"email", n.Email,
			"payload", n.Payload,
		)
	}
	return nil
}
