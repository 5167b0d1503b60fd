package kv

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var defaultBucket = []byte("glutivia")

// BoltStore файловое хранилище на bbolt, все ключи в одном бакете
type BoltStore struct {
	db *bolt.DB
}

func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(defaultBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

var _ Store = (*BoltStore)(nil)

func (b *BoltStore) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(defaultBucket).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// bolt values are only valid inside the transaction
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}

func (b *BoltStore) Set(_ context.Context, key string, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(defaultBucket).Put([]byte(key), value)
	})
}

func (b *BoltStore) Delete(_ context.Context, key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(defaultBucket).Delete([]byte(key))
	})
}

func (b *BoltStore) Close() error { return b.db.Close() }
