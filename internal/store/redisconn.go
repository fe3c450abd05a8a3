package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DialRedis connects and pings, so a misconfigured backend fails at
// startup instead of on the first credential read.
func DialRedis(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
