package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	Prefix   string
}

type Redis struct {
	redisdb *redis.Client
	ttl     time.Duration
	prefix  string
}

func NewRedis(cfg RedisConfig) *Redis {
	redisdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	return newRedis(redisdb, cfg.TTL, cfg.Prefix)
}

func newRedis(redisdb *redis.Client, ttl time.Duration, prefix string) *Redis {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if prefix == "" {
		prefix = "mealshare:"
	}

	return &Redis{redisdb: redisdb, ttl: ttl, prefix: prefix}
}

func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.redisdb.Get(ctx, c.prefix+key).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return val, true, nil
}

func (c *Redis) Set(ctx context.Context, key string, val []byte) error {
	return c.redisdb.Set(ctx, c.prefix+key, val, c.ttl).Err()
}

func (c *Redis) Delete(ctx context.Context, key string) error {
	return c.redisdb.Del(ctx, c.prefix+key).Err()
}

// Ping checks redis connectivity.
func (c *Redis) Ping(ctx context.Context) error {
	return c.redisdb.Ping(ctx).Err()
}

func (c *Redis) Close() error {
	return c.redisdb.Close()
}
