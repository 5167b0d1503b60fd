package repository

import (
	"context"
	"testing"
	"time"

	"glutivia/internal/domain"
	"glutivia/internal/kv"
)

func TestOrders_PrependAndRestore(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	orders := NewOrderStore(NewLocker(), store)

	o1 := domain.Order{ID: "ORD-1", Total: 10, Method: domain.PaymentCard, Timestamp: time.Now()}
	o2 := domain.Order{ID: "ORD-2", Total: 20, Method: domain.PaymentCOD, Timestamp: time.Now()}
	if err := orders.Add(ctx, o1); err != nil {
		t.Fatal(err)
	}
	snapshot, _ := orders.List(ctx)
	if err := orders.Add(ctx, o2); err != nil {
		t.Fatal(err)
	}

	list, _ := orders.List(ctx)
	if len(list) != 2 || list[0].ID != "ORD-2" {
		t.Fatalf("most recent order must be first: %+v", list)
	}

	if err := orders.Restore(ctx, snapshot); err != nil {
		t.Fatal(err)
	}
	list, _ = orders.List(ctx)
	if len(list) != 1 || list[0].ID != "ORD-1" {
		t.Fatalf("restore failed: %+v", list)
	}

	// persisted copy matches memory
	reloaded, _ := NewOrderStore(NewLocker(), store).List(ctx)
	if len(reloaded) != 1 {
		t.Fatalf("expected 1 persisted order, got %d", len(reloaded))
	}
}
