package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is the redis-backed score cache, used when REDIS_URI is set.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, question, answer string) (*Entry, bool) {
	data, err := c.client.Get(ctx, "score:"+Key(question, answer)).Result()
	if err != nil {
		return nil, false
	}
	var entry Entry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, false
	}
	return &entry, true
}

func (c *RedisCache) Put(ctx context.Context, question, answer string, entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "score:"+Key(question, answer), data, c.ttl).Err()
}
