package repository

import (
	"context"
	"testing"
	"time"

	"roombot/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisRepo(t *testing.T) (*RedisStateRepository, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStateRepository(client, time.Hour), mr
}

func TestRedisStateRoundTrip(t *testing.T) {
	repo, _ := setupRedisRepo(t)
	ctx := context.Background()

	state := &models.FormState{
		UserID:      42,
		CurrentStep: models.StateEnterCapacity,
		Fields: map[string]interface{}{
			"room_name": "R1",
		},
	}
	require.NoError(t, repo.SetState(ctx, state))

	got, err := repo.GetState(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, models.StateEnterCapacity, got.CurrentStep)
	assert.Equal(t, "R1", got.GetString("room_name"))
}

func TestRedisStateMissing(t *testing.T) {
	repo, _ := setupRedisRepo(t)

	got, err := repo.GetState(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisClearState(t *testing.T) {
	repo, _ := setupRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetState(ctx, &models.FormState{UserID: 42, CurrentStep: models.StateMainMenu}))
	require.NoError(t, repo.ClearState(ctx, 42))

	got, err := repo.GetState(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStateTTL(t *testing.T) {
	repo, mr := setupRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetState(ctx, &models.FormState{UserID: 42, CurrentStep: models.StateMainMenu}))

	mr.FastForward(2 * time.Hour)

	got, err := repo.GetState(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCheckRateLimit(t *testing.T) {
	repo, mr := setupRedisRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := repo.CheckRateLimit(ctx, 42, 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := repo.CheckRateLimit(ctx, 42, 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	// Окно истекло — счетчик обнуляется
	mr.FastForward(2 * time.Minute)

	allowed, err = repo.CheckRateLimit(ctx, 42, 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisNilClient(t *testing.T) {
	repo := NewRedisStateRepository(nil, time.Hour)
	ctx := context.Background()

	_, err := repo.GetState(ctx, 1)
	assert.Error(t, err)

	err = repo.SetState(ctx, &models.FormState{UserID: 1})
	assert.Error(t, err)

	err = repo.ClearState(ctx, 1)
	assert.Error(t, err)

	_, err = repo.CheckRateLimit(ctx, 1, 10, time.Minute)
	assert.Error(t, err)
}

func TestPingAndClose(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	require.NoError(t, Ping(context.Background(), client))
	require.NoError(t, Close(client))

	assert.NoError(t, Close(nil))
}
