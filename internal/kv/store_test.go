package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "k", []byte(`{"a":1}`)))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(v))

	// overwrite
	require.NoError(t, s.Set(ctx, "k", []byte(`[]`)))
	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(v))

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	require.ErrorIs(t, err, ErrNotFound)

	// deleting an absent key is not an error
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	exerciseStore(t, s)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	buf := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", buf))
	buf[0] = 'x'

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(v))
	v[1] = 'y'

	again, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestBoltStore(t *testing.T) {
	s, err := OpenBoltStore(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestBoltStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.db")

	s, err := OpenBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "glutivia_orders", []byte(`[{"id":"ORD-1"}]`)))
	require.NoError(t, s.Close())

	s, err = OpenBoltStore(path)
	require.NoError(t, err)
	defer s.Close()
	v, err := s.Get(ctx, "glutivia_orders")
	require.NoError(t, err)
	assert.Contains(t, string(v), "ORD-1")
}

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, Options{Backend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = Open(ctx, Options{Backend: "bolt", BoltPath: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	assert.IsType(t, &BoltStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open(ctx, Options{Backend: "etcd"})
	assert.Error(t, err)

	_, err = Open(ctx, Options{Backend: "redis"})
	assert.Error(t, err, "empty redis url must be rejected")
}
