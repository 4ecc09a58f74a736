package redis

import (
	"context"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

func setupRedis(t *testing.T) (*miniredis.Miniredis, IRedis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewFromClient(client)
}

func TestRates_SetAndGet(t *testing.T) {
	_, store := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, store.SetRates(ctx, map[string]float64{"USD": 1, "EUR": 0.85}))

	rates, err := store.GetRates(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"USD": 1, "EUR": 0.85}, rates)
}

func TestRates_GetEmpty(t *testing.T) {
	_, store := setupRedis(t)

	rates, err := store.GetRates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestRates_GetSkipsMalformed(t *testing.T) {
	mr, store := setupRedis(t)
	mr.HSet(RatesKey, "USD", "1", "EUR", "not-a-number")

	rates, err := store.GetRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"USD": 1}, rates)
}

func TestRates_SeedOnlyWhenMissing(t *testing.T) {
	mr, store := setupRedis(t)
	ctx := context.Background()

	seeded, err := store.SeedRates(ctx, map[string]float64{"USD": 1, "EUR": 0.85})
	require.NoError(t, err)
	assert.True(t, seeded)

	mr.HSet(RatesKey, "EUR", "0.9")

	seeded, err = store.SeedRates(ctx, map[string]float64{"USD": 1, "EUR": 0.85})
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, "0.9", mr.HGet(RatesKey, "EUR"))
}

func TestRates_ConnectionError(t *testing.T) {
	mr, store := setupRedis(t)
	mr.Close()

	_, err := store.GetRates(context.Background())
	assert.Error(t, err)
}
