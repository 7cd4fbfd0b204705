package storage

import (
	"context"
	"encoding/json"
	"errors"

	"savr/notify-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const maxTxRetries = 3

// RedisFeed keeps each owner's notifications as a Redis list, newest first.
type RedisFeed struct {
	rdb    *redis.Client
	logger *zap.SugaredLogger
}

func NewRedisFeed(rdb *redis.Client, logger *zap.SugaredLogger) *RedisFeed {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RedisFeed{rdb: rdb, logger: logger}
}

func Key(owner string) string {
	return "notifications:" + owner
}

func (f *RedisFeed) Prepend(ctx context.Context, owner string, n domain.Notification, limit int) error {
	raw, err := json.Marshal(n)
	if err != nil {
		return err
	}
	key := Key(owner)
	_, err = f.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, raw)
		pipe.LTrim(ctx, key, 0, int64(limit-1))
		return nil
	})
	return err
}

func (f *RedisFeed) List(ctx context.Context, owner string) ([]domain.Notification, error) {
	values, err := f.rdb.LRange(ctx, Key(owner), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return f.decode(owner, values), nil
}

// MarkAllRead rewrites the feed with every entry read, retrying when a
// concurrent push changes the list mid-way.
func (f *RedisFeed) MarkAllRead(ctx context.Context, owner string) error {
	key := Key(owner)
	txf := func(tx *redis.Tx) error {
		values, err := tx.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return err
		}
		items := f.decode(owner, values)
		if len(items) == 0 {
			return nil
		}
		encoded := make([]interface{}, 0, len(items))
		for _, item := range items {
			item.Read = true
			raw, err := json.Marshal(item)
			if err != nil {
				return err
			}
			encoded = append(encoded, raw)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.RPush(ctx, key, encoded...)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := f.rdb.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return redis.TxFailedErr
}

func (f *RedisFeed) Clear(ctx context.Context, owner string) error {
	return f.rdb.Del(ctx, Key(owner)).Err()
}

func (f *RedisFeed) decode(owner string, values []string) []domain.Notification {
	items := make([]domain.Notification, 0, len(values))
	for _, value := range values {
		var n domain.Notification
		if err := json.Unmarshal([]byte(value), &n); err != nil {
			f.logger.Warnw("skipping unreadable notification", "owner", owner, "error", err)
			continue
		}
		items = append(items, n)
	}
	return items
}
