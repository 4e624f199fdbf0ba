package configuration

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client can be used to save key value pairs in redis.
var Client *redis.Client

const cacheTTL = 15 * time.Minute

// InitRedis initializes the redis connection. The cache is an optimization;
// a missing redis server degrades to direct database reads.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if _, err := Client.Ping(context.Background()).Result(); err != nil {
		log.Println("Failed to connect to Redis: ", err)
	}
}

func SetCache(ctx context.Context, key string, value interface{}) error {
	if Client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Client.Set(ctx, key, data, cacheTTL).Err()
}

func GetCache(ctx context.Context, key string, out interface{}) (bool, error) {
	if Client == nil {
		return false, nil
	}
	data, err := Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return false, err
	}
	return true, nil
}

func DeleteCache(ctx context.Context, keys ...string) error {
	if Client == nil || len(keys) == 0 {
		return nil
	}
	return Client.Del(ctx, keys...).Err()
}
