package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	redismocks "github.com/muhammadheryan/table-booking/mocks/repository/redis"
	redisrepo "github.com/muhammadheryan/table-booking/repository/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_AcquireLock(t *testing.T) {
	tests := []struct {
		name    string
		result  *goredis.BoolCmd
		wantOK  bool
		wantErr bool
	}{
		{name: "acquired", result: goredis.NewBoolResult(true, nil), wantOK: true},
		{name: "held by another caller", result: goredis.NewBoolResult(false, nil), wantOK: false},
		{name: "redis down", result: goredis.NewBoolResult(false, errors.New("connection refused")), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := redismocks.NewClient(t)
			repo := redisrepo.NewRepository(client)

			client.
				On("SetNX", mock.Anything, "reservation-lock:5:2024-06-01", mock.AnythingOfType("string"), 5*time.Second).
				Return(tt.result).
				Once()

			token, ok, err := repo.AcquireLock(context.Background(), "reservation-lock:5:2024-06-01", 5*time.Second)
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.NotEmpty(t, token)
			} else {
				assert.Empty(t, token)
			}
		})
	}
}

func TestRedisRepository_ReleaseLock(t *testing.T) {
	t.Run("deletes with token", func(t *testing.T) {
		client := redismocks.NewClient(t)
		repo := redisrepo.NewRepository(client)

		client.
			On("Eval", mock.Anything, mock.AnythingOfType("string"), []string{"k"}, "tok").
			Return(goredis.NewCmdResult(int64(1), nil)).
			Once()

		assert.NoError(t, repo.ReleaseLock(context.Background(), "k", "tok"))
	})

	t.Run("nil reply is not an error", func(t *testing.T) {
		client := redismocks.NewClient(t)
		repo := redisrepo.NewRepository(client)

		client.
			On("Eval", mock.Anything, mock.Anything, []string{"k"}, "tok").
			Return(goredis.NewCmdResult(nil, goredis.Nil)).
			Once()

		assert.NoError(t, repo.ReleaseLock(context.Background(), "k", "tok"))
	})

	t.Run("error", func(t *testing.T) {
		client := redismocks.NewClient(t)
		repo := redisrepo.NewRepository(client)

		client.
			On("Eval", mock.Anything, mock.Anything, []string{"k"}, "tok").
			Return(goredis.NewCmdResult(nil, errors.New("timeout"))).
			Once()

		assert.Error(t, repo.ReleaseLock(context.Background(), "k", "tok"))
	})
}

func TestNoopRepository(t *testing.T) {
	repo := redisrepo.NewNoopRepository()

	_, ok, err := repo.AcquireLock(context.Background(), "k", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, repo.ReleaseLock(context.Background(), "k", ""))
}
