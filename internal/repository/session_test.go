package repository

import (
	"context"
	"testing"

	"glutivia/internal/domain"
	"glutivia/internal/kv"
)

func TestSessionStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	sessions := NewSessionStore(NewLocker(), store)

	if _, err := sessions.Get(ctx, "t1"); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	u := domain.User{Email: "jane@example.com", Name: "Jane", PasswordHash: []byte("hash"), Plan: domain.PlanExplorer}
	if err := sessions.Save(ctx, "t1", u); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := sessions.Get(ctx, "t1")
	if err != nil || got.Email != u.Email || got.Plan != domain.PlanExplorer {
		t.Fatalf("get: %v %+v", err, got)
	}

	if err := sessions.Delete(ctx, "t1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := sessions.Get(ctx, "t1"); err != ErrNotFound {
		t.Fatalf("expected not found after delete")
	}
}

func TestSessionStore_MalformedIsNoSession(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	_ = store.Set(ctx, KeySessionPrefix+"t1", []byte("garbage"))
	if _, err := NewSessionStore(NewLocker(), store).Get(ctx, "t1"); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
