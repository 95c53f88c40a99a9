package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client for a miniredis server shared by every scenario.
// Ledger locks and rate limit counters live there.
func NewRedis() *redis.Client {
	redisConnOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisConn = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisConn
}

// ClearRedis drops all keys so limits and locks never leak between scenarios.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
