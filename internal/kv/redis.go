package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore хранилище на Redis; ключи префиксуются пространством имён
type RedisStore struct {
	client    *redis.Client
	namespace string
}

// RedisOptions параметры подключения к Redis
type RedisOptions struct {
	URL       string
	DB        int
	Namespace string
}

func OpenRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	if opts.URL == "" {
		return nil, errors.New("redis url is required")
	}
	ro, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	ro.DB = opts.DB
	client := redis.NewClient(ro)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisStore{client: client, namespace: opts.Namespace}, nil
}

var _ Store = (*RedisStore)(nil)

func (r *RedisStore) key(k string) string {
	if r.namespace == "" {
		return k
	}
	return r.namespace + ":" + k
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return v, err
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.key(key), value, 0).Err()
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

func (r *RedisStore) Close() error { return r.client.Close() }
