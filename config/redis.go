package config

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"golang.org/x/net/context"
)

// InitRedis connects the Redis client used for login rate limiting. Returns
// nil without error when no Redis host is configured.
func InitRedis(config Config) (*redis.Client, error) {
	if config.RedisHost == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.GetRedisConnString(),
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %v", err)
	}

	return client, nil
}
