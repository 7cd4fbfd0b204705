package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"savr/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "metrics:restaurant:"

type RedisMetricsStore struct {
	rdb *redis.Client
}

func NewRedisMetricsStore(rdb *redis.Client) *RedisMetricsStore {
	return &RedisMetricsStore{rdb: rdb}
}

func Key(restaurantID string) string {
	return keyPrefix + restaurantID
}

func (s *RedisMetricsStore) Get(ctx context.Context, restaurantID string) (*domain.RestaurantMetrics, error) {
	raw, err := s.rdb.Get(ctx, Key(restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var metrics domain.RestaurantMetrics
	if err := json.Unmarshal(raw, &metrics); err != nil {
		return nil, fmt.Errorf("decode %s: %w", Key(restaurantID), err)
	}
	return &metrics, nil
}

func (s *RedisMetricsStore) Put(ctx context.Context, restaurantID string, metrics domain.RestaurantMetrics) error {
	raw, err := json.Marshal(metrics)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, Key(restaurantID), raw, 0).Err()
}
