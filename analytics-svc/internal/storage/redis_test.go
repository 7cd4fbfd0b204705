package storage_test

import (
	"context"
	"testing"

	"savr/analytics-svc/internal/domain"
	"savr/analytics-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*storage.RedisMetricsStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return storage.NewRedisMetricsStore(rdb), mr
}

func TestRedisMetricsStore_Miss(t *testing.T) {
	store, _ := setupStore(t)

	metrics, err := store.Get(context.Background(), "r1")

	require.NoError(t, err)
	assert.Nil(t, metrics)
}

func TestRedisMetricsStore_PutGet(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()
	snapshot := domain.RestaurantMetrics{
		TodayEarnings: 18650,
		OrdersToday:   46,
		OrderStatus:   domain.OrderStatusCounts{Pending: 8},
		RevenueChannels: []domain.RevenueChannel{
			{Label: "Delivery", Amount: 9300, Percentage: 50},
		},
	}

	require.NoError(t, store.Put(ctx, "r2", snapshot))
	assert.True(t, mr.Exists("metrics:restaurant:r2"))

	got, err := store.Get(ctx, "r2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snapshot, *got)
}

func TestRedisMetricsStore_CorruptValue(t *testing.T) {
	store, mr := setupStore(t)
	require.NoError(t, mr.Set(storage.Key("r1"), "not json"))

	_, err := store.Get(context.Background(), "r1")

	assert.Error(t, err)
}

func TestRedisMetricsStore_Unavailable(t *testing.T) {
	store, mr := setupStore(t)
	mr.Close()

	_, err := store.Get(context.Background(), "r1")

	assert.Error(t, err)
}
