package db

import "errors"

// ErrKeyNotFound is returned by Get when the key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// RedisClient is the subset of Redis used by the venue catalog cache.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(keys ...string) error
	Ping() error
}
