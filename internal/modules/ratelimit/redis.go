// README: Redis-backed fixed-window limiter for multi-instance deployments.
package ratelimit

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis counts admissions in a shared redis key so the window holds across
// instances. On a redis failure it logs and admits: availability over strict
// enforcement.
type Redis struct {
	client *redis.Client
	max    int
	window time.Duration
}

func NewRedis(client *redis.Client, max int, windowLen time.Duration) *Redis {
	return &Redis{client: client, max: max, window: windowLen}
}

func (r *Redis) Allow(ctx context.Context, key string) bool {
	redisKey := "rate_limit:" + key

	count, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		log.Printf("rate limiter: redis incr %s: %v", redisKey, err)
		return true
	}
	if count == 1 {
		if err := r.client.Expire(ctx, redisKey, r.window).Err(); err != nil {
			log.Printf("rate limiter: redis expire %s: %v", redisKey, err)
		}
	}
	return count <= int64(r.max)
}
