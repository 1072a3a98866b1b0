package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only while it still holds the caller's token.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// Client is the subset of the go-redis client used by the repository.
type Client interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *goredis.Cmd
}

var _ Client = (*goredis.Client)(nil)

// RedisRepository holds short-lived locks keyed by name.
type RedisRepository interface {
	// AcquireLock returns ok=false when another holder owns the key.
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	// ReleaseLock frees the key if token still owns it.
	ReleaseLock(ctx context.Context, key, token string) error
}

type redis struct {
	client Client
}

// NewRepository returns a Redis backed RedisRepository.
func NewRepository(client Client) RedisRepository {
	return &redis{client: client}
}

func (r *redis) AcquireLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := r.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (r *redis) ReleaseLock(ctx context.Context, key, token string) error {
	err := r.client.Eval(ctx, releaseScript, []string{key}, token).Err()
	if err == goredis.Nil {
		return nil
	}
	return err
}

type noop struct{}

// NewNoopRepository returns a RedisRepository whose locks always succeed. It is
// used when no Redis server is configured.
func NewNoopRepository() RedisRepository {
	return noop{}
}

func (noop) AcquireLock(context.Context, string, time.Duration) (string, bool, error) {
	return "", true, nil
}

func (noop) ReleaseLock(context.Context, string, string) error {
	return nil
}
