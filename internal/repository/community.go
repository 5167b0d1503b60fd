package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"glutivia/internal/domain"
	"glutivia/internal/kv"
)

const (
	welcomeID     = "welcome-1"
	welcomeAuthor = "Glutivia Staff"
	welcomeText   = "Welcome to our unified community! This is a safe space for all members to share tips, recipes, and feedback."
)

// CommunityOptions источники времени и идентификаторов; нулевые значения — реальные
type CommunityOptions struct {
	Now   func() time.Time
	NewID func() string
}

// CommunityStore общая доска сообщений. При первой загрузке сливает данные старых ключей.
type CommunityStore struct {
	messages *collection[domain.CommunityMessage]
	now      func() time.Time
	newID    func() string
}

func NewCommunityStore(locker *Locker, store kv.Store, opts CommunityOptions) *CommunityStore {
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	s := &CommunityStore{
		messages: newCollection[domain.CommunityMessage](locker, store, KeyCommunity),
		now:      opts.Now,
		newID:    opts.NewID,
	}
	s.messages.defaults = func(ctx context.Context) ([]domain.CommunityMessage, bool, error) {
		return s.reconcile(ctx, store), true, nil
	}
	return s
}

var _ CommunityRepository = (*CommunityStore)(nil)

// reconcile runs only when the unified key holds nothing usable.
// Legacy keys are read but never deleted.
func (s *CommunityStore) reconcile(ctx context.Context, store kv.Store) []domain.CommunityMessage {
	now := s.now()
	var combined []domain.CommunityMessage
	combined = append(combined, s.recover(ctx, store, KeyLegacyFeedback, false, now)...)
	combined = append(combined, s.recover(ctx, store, KeyLegacyDiscussion, true, now)...)

	if len(combined) == 0 {
		combined = []domain.CommunityMessage{{
			ID:        welcomeID,
			Author:    welcomeAuthor,
			Text:      welcomeText,
			Timestamp: now.Add(-time.Hour),
			Initials:  "GS",
		}}
	}
	merged := dedupeByID(combined)
	sortNewestFirst(merged)
	zap.S().Infow("community board reconciled", "messages", len(merged))
	return merged
}

func (s *CommunityStore) recover(ctx context.Context, store kv.Store, key string, acceptUserName bool, now time.Time) []domain.CommunityMessage {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		zap.S().Warnw("legacy community source unavailable", "key", key, "error", err)
		return nil
	}
	recs, err := decodeLegacy(raw)
	if err != nil {
		zap.S().Warnw("error migrating legacy community data", "key", key, "error", err)
		return nil
	}
	out := make([]domain.CommunityMessage, 0, len(recs))
	for _, rec := range recs {
		if m, ok := normalizeLegacy(rec, acceptUserName, now, s.newID); ok {
			out = append(out, m)
		}
	}
	return out
}

// dedupeByID keeps the position of the first occurrence and the value of the last
func dedupeByID(in []domain.CommunityMessage) []domain.CommunityMessage {
	index := make(map[string]int, len(in))
	out := make([]domain.CommunityMessage, 0, len(in))
	for _, m := range in {
		if i, ok := index[m.ID]; ok {
			out[i] = m
			continue
		}
		index[m.ID] = len(out)
		out = append(out, m)
	}
	return out
}

func sortNewestFirst(msgs []domain.CommunityMessage) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp.After(msgs[j].Timestamp)
	})
}

func (s *CommunityStore) List(ctx context.Context) ([]domain.CommunityMessage, error) {
	return s.messages.snapshot(ctx)
}

func (s *CommunityStore) GetByID(ctx context.Context, id string) (*domain.CommunityMessage, error) {
	msgs, err := s.messages.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range msgs {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// Add публикует сообщение первым в ленте
func (s *CommunityStore) Add(ctx context.Context, text, author, owner string) (*domain.CommunityMessage, error) {
	m := domain.CommunityMessage{
		ID:        s.newID(),
		Author:    author,
		Text:      text,
		Timestamp: s.now(),
		Initials:  Initials(author),
		Owner:     owner,
	}
	_, err := s.messages.mutate(ctx, func(cur []domain.CommunityMessage) ([]domain.CommunityMessage, error) {
		next := append([]domain.CommunityMessage{m}, cur...)
		sortNewestFirst(next)
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete удаляет сообщение; отсутствующий id — не ошибка
func (s *CommunityStore) Delete(ctx context.Context, id string) error {
	_, err := s.messages.mutate(ctx, func(cur []domain.CommunityMessage) ([]domain.CommunityMessage, error) {
		out := make([]domain.CommunityMessage, 0, len(cur))
		for _, m := range cur {
			if m.ID != id {
				out = append(out, m)
			}
		}
		return out, nil
	})
	return err
}
