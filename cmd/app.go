package main

import (
	"context"
	"fmt"

	"glutivia/internal/config"
	"glutivia/internal/kv"
	"glutivia/internal/logging"
)

// bootstrap читает конфигурацию, поднимает логгер и открывает хранилище
func bootstrap(ctx context.Context, configPath string) (*config.Config, kv.Store, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	flush, err := logging.Init(cfg.Logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}
	store, err := kv.Open(ctx, kv.Options{
		Backend:   cfg.Storage.Backend,
		BoltPath:  cfg.Storage.BoltPath,
		RedisURL:  cfg.Storage.RedisURL,
		RedisDB:   cfg.Storage.RedisDB,
		Namespace: cfg.Storage.Namespace,
	})
	if err != nil {
		flush()
		return nil, nil, nil, fmt.Errorf("open storage: %w", err)
	}
	cleanup := func() {
		_ = store.Close()
		flush()
	}
	return cfg, store, cleanup, nil
}
