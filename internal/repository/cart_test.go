package repository

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"glutivia/internal/domain"
	"glutivia/internal/kv"
)

// failingStore fails every write after it is armed
type failingStore struct {
	*kv.MemoryStore
	failWrites bool
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failWrites {
		return errors.New("disk full")
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func meal(id string, qty int64, price float64) domain.CartItem {
	return domain.CartItem{ID: id, Name: "Meal " + id, Price: price, Quantity: qty, Type: domain.ItemTypeMeal}
}

func TestCart_AddMergesByIDAndType(t *testing.T) {
	ctx := context.Background()
	cart := NewCartStore(NewLocker(), kv.NewMemoryStore(), "jane@example.com")

	if _, err := cart.Add(ctx, meal("m1", 1, 189)); err != nil {
		t.Fatalf("add: %v", err)
	}
	items, err := cart.Add(ctx, meal("m1", 2, 189))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 3 {
		t.Fatalf("expected one line with quantity 3, got %+v", items)
	}

	// same id but different type is a separate line
	product := domain.CartItem{ID: "m1", Name: "Flour", Price: 65, Quantity: 1, Type: domain.ItemTypeProduct}
	items, _ = cart.Add(ctx, product)
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[1].Type != domain.ItemTypeProduct {
		t.Fatalf("new key must be appended at the end")
	}
}

func TestCart_TotalsFollowEveryMutation(t *testing.T) {
	ctx := context.Background()
	cart := NewCartStore(NewLocker(), kv.NewMemoryStore(), "u")

	check := func(wantTotal float64, wantCount int64) {
		t.Helper()
		items, err := cart.Items(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if got := Total(items); got != wantTotal {
			t.Fatalf("total: want %v, got %v", wantTotal, got)
		}
		if got := ItemCount(items); got != wantCount {
			t.Fatalf("count: want %v, got %v", wantCount, got)
		}
	}

	check(0, 0)
	_, _ = cart.Add(ctx, meal("m1", 2, 189))
	check(378, 2)
	_, _ = cart.Add(ctx, meal("m2", 1, 0.1))
	_, _ = cart.Add(ctx, meal("m3", 2, 0.1))
	check(378.3, 5)
	_, _ = cart.Remove(ctx, "m1")
	check(0.3, 3)
	if err := cart.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	check(0, 0)
}

func TestCart_RemoveMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	cart := NewCartStore(NewLocker(), kv.NewMemoryStore(), "u")
	before, _ := cart.Add(ctx, meal("m1", 1, 10))

	after, err := cart.Remove(ctx, "nope")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("cart changed: %+v -> %+v", before, after)
	}
}

func TestCart_WriteThroughAndReload(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	cart := NewCartStore(NewLocker(), store, "u")
	_, _ = cart.Add(ctx, meal("m1", 2, 50))

	raw, err := store.Get(ctx, KeyCartPrefix+"u")
	if err != nil {
		t.Fatalf("not persisted: %v", err)
	}
	if len(raw) == 0 {
		t.Fatalf("empty payload")
	}

	// a fresh process sees the same cart
	again := NewCartStore(NewLocker(), store, "u")
	items, _ := again.Items(ctx)
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("reload mismatch: %+v", items)
	}
}

func TestCart_MalformedStorageFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	_ = store.Set(ctx, KeyCartPrefix+"u", []byte("{not json"))

	cart := NewCartStore(NewLocker(), store, "u")
	items, err := cart.Items(ctx)
	if err != nil {
		t.Fatalf("malformed data must not surface: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart")
	}
}

func TestCart_FailedWriteKeepsState(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{MemoryStore: kv.NewMemoryStore()}
	cart := NewCartStore(NewLocker(), store, "u")
	_, _ = cart.Add(ctx, meal("m1", 1, 10))

	store.failWrites = true
	if _, err := cart.Add(ctx, meal("m2", 1, 10)); err == nil {
		t.Fatalf("expected write error")
	}
	items, _ := cart.Items(ctx)
	if len(items) != 1 {
		t.Fatalf("in-memory state must not move ahead of storage: %+v", items)
	}
}

func TestCarts_RegistryReturnsSameStore(t *testing.T) {
	carts := NewCarts(NewLocker(), kv.NewMemoryStore())
	if carts.For("a") != carts.For("a") {
		t.Fatalf("expected cached store")
	}
	if carts.For("a") == carts.For("b") {
		t.Fatalf("owners must not share a cart")
	}
}

func TestCart_QuantityCap(t *testing.T) {
	ctx := context.Background()
	cart := NewCartStore(NewLocker(), kv.NewMemoryStore(), "u")

	for _, qty := range []int64{0, -1, MaxLineQuantity + 1, math.MaxInt64} {
		if _, err := cart.Add(ctx, meal("m1", qty, 10)); !errors.Is(err, ErrQuantityLimit) {
			t.Fatalf("qty %d: expected ErrQuantityLimit, got %v", qty, err)
		}
	}

	if _, err := cart.Add(ctx, meal("m1", MaxLineQuantity, 10)); err != nil {
		t.Fatalf("add at cap: %v", err)
	}
	if _, err := cart.Add(ctx, meal("m1", 1, 10)); !errors.Is(err, ErrQuantityLimit) {
		t.Fatalf("merge past cap: expected ErrQuantityLimit, got %v", err)
	}

	items, _ := cart.Items(ctx)
	if len(items) != 1 || items[0].Quantity != MaxLineQuantity {
		t.Fatalf("rejected merge must leave the line unchanged: %+v", items)
	}
	if ItemCount(items) != MaxLineQuantity || Total(items) != 9990 {
		t.Fatalf("unexpected totals: count=%d total=%v", ItemCount(items), Total(items))
	}
}

func TestCart_StoredOversizedLineCannotOverflow(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	_ = store.Set(ctx, KeyCartPrefix+"u", []byte(`[{"id":"m1","name":"Meal m1","price":10,"quantity":9223372036854775807,"type":"meal"}]`))
	cart := NewCartStore(NewLocker(), store, "u")

	if _, err := cart.Add(ctx, meal("m1", 1, 10)); !errors.Is(err, ErrQuantityLimit) {
		t.Fatalf("expected ErrQuantityLimit, got %v", err)
	}
	items, _ := cart.Items(ctx)
	if items[0].Quantity != math.MaxInt64 {
		t.Fatalf("line must stay untouched: %+v", items)
	}
}
