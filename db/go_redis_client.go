package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// GoRedisClient implements RedisClient on top of go-redis.
type GoRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewGoRedisClient wraps an already configured go-redis client.
func NewGoRedisClient(ctx context.Context, client *redis.Client) *GoRedisClient {
	return &GoRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// NewGoRedisClientFromOptions builds the underlying client and checks the connection.
func NewGoRedisClientFromOptions(ctx context.Context, addr, password string, db int) (*GoRedisClient, error) {
	c := NewGoRedisClient(ctx, redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}))
	if err := c.Ping(); err != nil {
		return nil, fmt.Errorf("could not connect to redis at %s: %w", addr, err)
	}
	log.Printf("[GoRedisClient] Connected to Redis at %s (db=%d)", addr, db)
	return c, nil
}

// Set sets a key-value pair in Redis
func (r *GoRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *GoRedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return val, err
}

func (r *GoRedisClient) Del(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(r.ctx, keys...).Err()
}

func (r *GoRedisClient) Ping() error {
	return r.client.Ping(r.ctx).Err()
}

// Close releases the connection pool.
func (r *GoRedisClient) Close() error {
	return r.client.Close()
}
