package kv

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound возвращается, когда ключ отсутствует в хранилище
var ErrNotFound = errors.New("key not found")

// Store долговременное хранилище строковых ключей. Значения — сериализованный JSON.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Options выбор и параметры бэкенда хранилища
type Options struct {
	Backend   string // memory | bolt | redis
	BoltPath  string
	RedisURL  string
	RedisDB   int
	Namespace string
}

// Open создаёт хранилище по имени бэкенда
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "bolt":
		return OpenBoltStore(opts.BoltPath)
	case "redis":
		return OpenRedisStore(ctx, RedisOptions{URL: opts.RedisURL, DB: opts.RedisDB, Namespace: opts.Namespace})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
