package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dortiz91/aerolinea/config"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client      *redis.Client
	distanceTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, distanceTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		distanceTTL: distanceTTL,
	}
}

// GetDistance returns the cached distance in kilometers, or 0 on a miss.
func (c *RedisCache) GetDistance(ctx context.Context, origin, destination string) (int, error) {
	data, err := c.client.Get(ctx, distanceKey(origin, destination)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, err
	}
	return strconv.Atoi(data)
}

func (c *RedisCache) SetDistance(ctx context.Context, origin, destination string, km int) error {
	return c.client.Set(ctx, distanceKey(origin, destination), strconv.Itoa(km), c.distanceTTL).Err()
}

// distanceKey is order-insensitive: distances are symmetric.
func distanceKey(origin, destination string) string {
	if destination < origin {
		origin, destination = destination, origin
	}
	return fmt.Sprintf("cache:distance:%s:%s", origin, destination)
}
