package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const credentialKeyPrefix = "shopcart:credential:"

// DefaultSessionTTL caps how long an idle session keeps its credential in
// redis. Every Set refreshes it.
const DefaultSessionTTL = 24 * time.Hour

// RedisStore keeps credentials in redis, letting several storefront
// instances share sessions.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    DefaultSessionTTL,
	}
}

func (r *RedisStore) Get(ctx context.Context, sid string) (string, error) {
	token, err := r.client.Get(ctx, credentialKeyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (r *RedisStore) Set(ctx context.Context, sid, token string) error {
	return r.client.Set(ctx, credentialKeyPrefix+sid, token, r.ttl).Err()
}

func (r *RedisStore) Clear(ctx context.Context, sid string) error {
	return r.client.Del(ctx, credentialKeyPrefix+sid).Err()
}

func (r *RedisStore) Close() error { return r.client.Close() }
