package weather

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "kinhub:forecast:"

// RedisCache shares the forecast cache across replicas. Redis errors are
// logged and treated as misses so a broken cache never takes requests down.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(url string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisCache{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]DayForecast, bool) {
	data, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Printf("forecast cache get: %v", err)
		return nil, false
	}

	var forecast []DayForecast
	if err := json.Unmarshal(data, &forecast); err != nil {
		log.Printf("forecast cache decode: %v", err)
		return nil, false
	}
	return forecast, true
}

func (c *RedisCache) Set(ctx context.Context, key string, forecast []DayForecast) {
	data, err := json.Marshal(forecast)
	if err != nil {
		log.Printf("forecast cache encode: %v", err)
		return
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, data, c.ttl).Err(); err != nil {
		log.Printf("forecast cache set: %v", err)
	}
}
