package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"glutivia/internal/domain"
	"glutivia/internal/kv"
)

// SessionStore сессии покупателей; одно значение на токен
type SessionStore struct {
	locker *Locker
	store  kv.Store
}

func NewSessionStore(locker *Locker, store kv.Store) *SessionStore {
	return &SessionStore{locker: locker, store: store}
}

var _ SessionRepository = (*SessionStore)(nil)

func (s *SessionStore) Get(ctx context.Context, token string) (*domain.User, error) {
	s.locker.rlock(ctx)
	defer s.locker.runlock(ctx)
	raw, err := s.store.Get(ctx, KeySessionPrefix+token)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var u domain.User
	if err := json.Unmarshal(raw, &u); err != nil {
		// a broken session is treated as no session
		zap.S().Warnw("malformed session record", "error", err)
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *SessionStore) Save(ctx context.Context, token string, u domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	s.locker.wlock(ctx)
	defer s.locker.wunlock(ctx)
	return s.store.Set(ctx, KeySessionPrefix+token, data)
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	s.locker.wlock(ctx)
	defer s.locker.wunlock(ctx)
	return s.store.Delete(ctx, KeySessionPrefix+token)
}
