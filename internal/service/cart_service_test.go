package service

import (
	"context"
	"errors"
	"testing"

	"glutivia/internal/domain"
	"glutivia/internal/kv"
	"glutivia/internal/repository"
)

func setupCart(t *testing.T) *CartService {
	t.Helper()
	cat := repository.NewSeededCatalog()
	carts := repository.NewCarts(repository.NewLocker(), kv.NewMemoryStore())
	return NewCartService(carts, cat, cat.Meals())
}

func TestCart_AddUsesCatalogPrice(t *testing.T) {
	ctx := context.Background()
	cs := setupCart(t)

	if _, err := cs.Add(ctx, "a@x.ma", domain.ItemTypeMeal, "m1", 0); err != nil {
		t.Fatalf("add: %v", err)
	}
	view, err := cs.Add(ctx, "a@x.ma", domain.ItemTypeMeal, "m1", 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	view, _ = cs.Add(ctx, "a@x.ma", domain.ItemTypeProduct, "p4", 1)

	if len(view.Items) != 2 || view.Items[0].Quantity != 3 {
		t.Fatalf("expected merged meal line: %+v", view.Items)
	}
	if view.Items[0].Name != "Glutivia Herb-Crusted Salmon" || view.Items[1].Weight != "150g" {
		t.Fatalf("catalog fields not copied: %+v", view.Items)
	}
	if view.Total != 3*189+28 || view.Count != 4 {
		t.Fatalf("bad totals: %+v", view)
	}
}

func TestCart_AddRejects(t *testing.T) {
	ctx := context.Background()
	cs := setupCart(t)
	if _, err := cs.Add(ctx, "a", "gift", "p1", 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid type, got %v", err)
	}
	if _, err := cs.Add(ctx, "a", domain.ItemTypeProduct, "p1", -2); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	if _, err := cs.Add(ctx, "a", domain.ItemTypeProduct, "m1", 1); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("meal id is not a product, got %v", err)
	}
}

func TestCart_AddCapsLineQuantity(t *testing.T) {
	ctx := context.Background()
	cs := setupCart(t)

	if _, err := cs.Add(ctx, "a", domain.ItemTypeMeal, "m1", repository.MaxLineQuantity+1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	if _, err := cs.Add(ctx, "a", domain.ItemTypeMeal, "m1", 990); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := cs.Add(ctx, "a", domain.ItemTypeMeal, "m1", 10); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected merge past the cap to be rejected, got %v", err)
	}
	view, _ := cs.Get(ctx, "a")
	if view.Count != 990 || view.Total <= 0 {
		t.Fatalf("cart changed after rejected add: %+v", view)
	}
}

func TestCart_OwnersAreIsolated(t *testing.T) {
	ctx := context.Background()
	cs := setupCart(t)
	_, _ = cs.Add(ctx, "a", domain.ItemTypeProduct, "p1", 1)

	view, err := cs.Get(ctx, "b")
	if err != nil || len(view.Items) != 0 || view.Items == nil {
		t.Fatalf("b must see an empty non-nil cart: %v %+v", err, view)
	}

	view, _ = cs.Remove(ctx, "a", "p1")
	if len(view.Items) != 0 || view.Total != 0 {
		t.Fatalf("remove failed: %+v", view)
	}
}
