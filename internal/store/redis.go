package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/btechwala999/Ignitia-client/internal/api"
)

// RedisStore keeps the credential pair in Redis, for setups where several
// short-lived client processes share one session (CI runners, containers).
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "ignitia:",
	}
}

func (r *RedisStore) tokenKey() string { return r.prefix + "token" }
func (r *RedisStore) userKey() string  { return r.prefix + "user" }

func (r *RedisStore) Token(ctx context.Context) (string, bool) {
	val, err := r.client.Get(ctx, r.tokenKey()).Result()
	if err != nil || val == "" {
		return "", false
	}
	return val, true
}

func (r *RedisStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return r.client.Del(ctx, r.tokenKey()).Err()
	}
	return r.client.Set(ctx, r.tokenKey(), token, 0).Err()
}

func (r *RedisStore) User(ctx context.Context) (*api.User, bool) {
	val, err := r.client.Get(ctx, r.userKey()).Result()
	if err != nil {
		return nil, false
	}

	var u api.User
	if err := json.Unmarshal([]byte(val), &u); err != nil {
		// Malformed snapshot reads as absent.
		return nil, false
	}
	return &u, true
}

func (r *RedisStore) SetUser(ctx context.Context, u *api.User) error {
	if u == nil {
		return r.client.Del(ctx, r.userKey()).Err()
	}

	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("store: marshal user: %w", err)
	}
	return r.client.Set(ctx, r.userKey(), data, 0).Err()
}

func (r *RedisStore) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.tokenKey(), r.userKey()).Err()
}
