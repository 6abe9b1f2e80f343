package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(models.RedisConfig{
		Host:     mr.Host(),
		Port:     atoiPort(t, mr.Port()),
		PoolSize: 5,
	})

	require.NoError(t, err)
	defer client.Close()
	assert.NotNil(t, client.GetClient())
	assert.NoError(t, client.Ping(context.Background()))
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	mr := miniredis.RunT(t)
	port := atoiPort(t, mr.Port())
	mr.Close()

	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: port})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("test:key", "test-value", time.Hour).SetVal("OK")

	err := client.Set(context.Background(), "test:key", "test-value", time.Hour)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Set_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("test:key", "test-value", time.Hour).SetErr(errors.New("connection reset"))

	err := client.Set(context.Background(), "test:key", "test-value", time.Hour)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Get(t *testing.T) {
	tests := []struct {
		name          string
		mockVal       string
		mockErr       error
		expectedVal   string
		expectedError error
	}{
		{name: "Existing key", mockVal: "483920", expectedVal: "483920"},
		{name: "Missing key", mockErr: redis.Nil, expectedError: redis.Nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			client := &RedisClient{Client: db}

			if tt.mockErr != nil {
				mock.ExpectGet("test:key").SetErr(tt.mockErr)
			} else {
				mock.ExpectGet("test:key").SetVal(tt.mockVal)
			}

			val, err := client.Get(context.Background(), "test:key")

			assert.Equal(t, tt.expectedVal, val)
			assert.ErrorIs(t, err, tt.expectedError)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("test:key").SetVal(1)

	assert.NoError(t, client.Delete(context.Background(), "test:key"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_TTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectTTL("test:key").SetVal(90 * time.Second)

	ttl, err := client.TTL(context.Background(), "test:key")

	assert.NoError(t, err)
	assert.Equal(t, 90*time.Second, ttl)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func setupMiniredisClient(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	db := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { db.Close() })
	return &RedisClient{Client: db}, mr
}

func TestRedisClient_IncrWithExpiry(t *testing.T) {
	t.Run("First hit sets expiry", func(t *testing.T) {
		client, mr := setupMiniredisClient(t)

		count, err := client.IncrWithExpiry(context.Background(), "rate:key", time.Minute)

		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Equal(t, time.Minute, mr.TTL("rate:key"))
	})

	t.Run("Later hit keeps the window", func(t *testing.T) {
		client, mr := setupMiniredisClient(t)

		_, err := client.IncrWithExpiry(context.Background(), "rate:key", time.Minute)
		require.NoError(t, err)
		mr.FastForward(20 * time.Second)

		count, err := client.IncrWithExpiry(context.Background(), "rate:key", time.Minute)

		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.Equal(t, 40*time.Second, mr.TTL("rate:key"))
	})

	t.Run("Counter without expiry gets one", func(t *testing.T) {
		client, mr := setupMiniredisClient(t)
		require.NoError(t, mr.Set("rate:key", "7"))
		require.Zero(t, mr.TTL("rate:key"))

		count, err := client.IncrWithExpiry(context.Background(), "rate:key", time.Minute)

		require.NoError(t, err)
		assert.Equal(t, int64(8), count)
		assert.Equal(t, time.Minute, mr.TTL("rate:key"))

		mr.FastForward(time.Minute + time.Second)
		assert.False(t, mr.Exists("rate:key"))
	})

	t.Run("Redis error", func(t *testing.T) {
		client, mr := setupMiniredisClient(t)
		mr.Close()

		_, err := client.IncrWithExpiry(context.Background(), "rate:key", time.Minute)

		assert.Error(t, err)
	})
}

func TestRedisClient_Exists(t *testing.T) {
	client, mr := setupMiniredisClient(t)
	require.NoError(t, mr.Set("proof:key", "1"))

	ok, err := client.Exists(context.Background(), "proof:key")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.Exists(context.Background(), "missing:key")
	require.NoError(t, err)
	assert.False(t, ok)
}
