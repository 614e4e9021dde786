package db

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// MockRedisClient is an in-memory RedisClient used by tests and by the
// local environment when no Redis server is configured.
type MockRedisClient struct {
	data    map[string]string
	mu      sync.RWMutex
	context context.Context
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		context: ctx,
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

func (m *MockRedisClient) Del(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// Ping always succeeds.
func (m *MockRedisClient) Ping() error {
	log.Println("MockRedisClient: Ping successful")
	return nil
}
