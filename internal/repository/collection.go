package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"glutivia/internal/kv"
)

// collection write-through список сущностей под одним ключом хранилища.
// Загружается один раз при первом обращении, каждая мутация сразу сериализуется обратно.
type collection[T any] struct {
	locker   *Locker
	store    kv.Store
	key      string
	loaded   bool
	items    []T
	defaults func(ctx context.Context) (items []T, persist bool, err error)
}

func newCollection[T any](locker *Locker, store kv.Store, key string) *collection[T] {
	return &collection[T]{locker: locker, store: store, key: key}
}

// ensure must be called with the write lock held
func (c *collection[T]) ensure(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	raw, err := c.store.Get(ctx, c.key)
	switch {
	case err == nil:
		var items []T
		jerr := json.Unmarshal(raw, &items)
		if jerr == nil {
			c.items = nonNil(items)
			c.loaded = true
			return nil
		}
		zap.S().Warnw("malformed stored collection, falling back to default", "key", c.key, "error", jerr)
	case errors.Is(err, kv.ErrNotFound):
	default:
		return fmt.Errorf("load %s: %w", c.key, err)
	}

	items := []T{}
	persist := false
	if c.defaults != nil {
		items, persist, err = c.defaults(ctx)
		if err != nil {
			return err
		}
	}
	if persist {
		if err := c.write(ctx, items); err != nil {
			return err
		}
	}
	c.items = nonNil(items)
	c.loaded = true
	return nil
}

func (c *collection[T]) write(ctx context.Context, items []T) error {
	data, err := json.Marshal(nonNil(items))
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("persist %s: %w", c.key, err)
	}
	return nil
}

func (c *collection[T]) snapshot(ctx context.Context) ([]T, error) {
	c.locker.rlock(ctx)
	if c.loaded {
		out := clone(c.items)
		c.locker.runlock(ctx)
		return out, nil
	}
	c.locker.runlock(ctx)

	c.locker.wlock(ctx)
	defer c.locker.wunlock(ctx)
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}
	return clone(c.items), nil
}

// mutate builds the next value from a copy of the current one, persists it and
// only then makes it current. A failed write leaves the in-memory state untouched.
func (c *collection[T]) mutate(ctx context.Context, fn func(cur []T) ([]T, error)) ([]T, error) {
	c.locker.wlock(ctx)
	defer c.locker.wunlock(ctx)
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}
	next, err := fn(clone(c.items))
	if err != nil {
		return nil, err
	}
	if err := c.write(ctx, next); err != nil {
		return nil, err
	}
	c.items = nonNil(next)
	return clone(c.items), nil
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
