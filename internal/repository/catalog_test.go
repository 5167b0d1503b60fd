package repository

import (
	"context"
	"testing"

	"glutivia/internal/domain"
)

func TestCatalog_ProductCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewCatalog()

	p := domain.Product{Name: "A", Category: domain.CategoryPantry, Price: 10}
	if err := store.Create(ctx, &p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("no id")
	}

	got, err := store.GetByID(ctx, p.ID)
	if err != nil || got.ID != p.ID {
		t.Fatalf("get: %v", err)
	}

	p.Price = 12
	if err := store.Update(ctx, &p); err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := store.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetByID(ctx, p.ID); err == nil {
		t.Fatalf("expected not found")
	}
}

func TestCatalog_SeededIDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	store := NewSeededCatalog()
	p := domain.Product{Name: "New", Category: domain.CategorySnack, Price: 5}
	if err := store.Create(ctx, &p); err != nil {
		t.Fatal(err)
	}
	if p.ID == "p1" {
		t.Fatalf("seeded id reused")
	}
	orig, _ := store.GetByID(ctx, "p1")
	if orig.Name == "New" {
		t.Fatalf("seeded product overwritten")
	}
}

func TestCatalog_ListFiltering(t *testing.T) {
	ctx := context.Background()
	store := NewCatalog()
	add := func(n string, c domain.ProductCategory, price float64) {
		p := domain.Product{Name: n, Category: c, Price: price}
		if err := store.Create(ctx, &p); err != nil {
			t.Fatal(err)
		}
	}
	add("Quinoa Flour", domain.CategoryPantry, 100)
	add("Rice Crackers", domain.CategorySnack, 50)
	add("Buckwheat Bread", domain.CategoryBakery, 150)

	// name contains
	list, _ := store.List(ctx, ProductFilter{NameSubstring: "FLOUR"})
	if len(list) != 1 {
		t.Fatalf("name filter: %v", list)
	}

	list, _ = store.List(ctx, ProductFilter{Category: domain.CategorySnack})
	if len(list) != 1 || list[0].Name != "Rice Crackers" {
		t.Fatalf("category filter: %v", list)
	}

	// min
	min := 100.0
	list, _ = store.List(ctx, ProductFilter{MinPrice: &min})
	for _, p := range list {
		if p.Price < min {
			t.Fatalf("min filter fail")
		}
	}

	// max
	max := 100.0
	list, _ = store.List(ctx, ProductFilter{MaxPrice: &max})
	for _, p := range list {
		if p.Price > max {
			t.Fatalf("max filter fail")
		}
	}
}

func TestMealCatalog(t *testing.T) {
	ctx := context.Background()
	meals := NewSeededCatalog().Meals()
	list, err := meals.List(ctx)
	if err != nil || len(list) == 0 {
		t.Fatalf("list: %v", err)
	}
	if list[0].ID != "m1" {
		t.Fatalf("expected catalog order, got %s first", list[0].ID)
	}
	if _, err := meals.GetByID(ctx, "m404"); err != ErrNotFound {
		t.Fatalf("expected not found")
	}
}

func TestCatalog_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewSeededCatalog()
	for i := 0; i < 6; i++ {
		p := domain.Product{Name: "Extra", Category: domain.CategorySnack, Price: 5}
		if err := store.Create(ctx, &p); err != nil {
			t.Fatal(err)
		}
	}
	if err := store.Delete(ctx, "p3"); err != nil {
		t.Fatal(err)
	}

	list, _ := store.List(ctx, ProductFilter{})
	want := []string{"p1", "p2", "p4", "p5", "p6", "p7", "p8", "p9", "p10", "p11", "p12"}
	if len(list) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(list))
	}
	for i, p := range list {
		if p.ID != want[i] {
			t.Fatalf("position %d: want %s, got %s", i, want[i], p.ID)
		}
	}

	// update keeps the position
	p2, _ := store.GetByID(ctx, "p2")
	p2.Price = 99
	_ = store.Update(ctx, p2)
	list, _ = store.List(ctx, ProductFilter{})
	if list[1].ID != "p2" || list[1].Price != 99 {
		t.Fatalf("update moved the product: %+v", list[1])
	}
}

func TestRecipeCatalog(t *testing.T) {
	ctx := context.Background()
	recipes := NewSeededCatalog().Recipes()
	list, err := recipes.List(ctx)
	if err != nil || len(list) != 12 {
		t.Fatalf("expected 12 featured recipes, got %d (%v)", len(list), err)
	}
	if list[0].ID != "r1" || list[11].ID != "r12" {
		t.Fatalf("expected catalog order, got %s..%s", list[0].ID, list[11].ID)
	}

	got, err := recipes.GetByID(ctx, "r7")
	if err != nil || got.Title != "Moroccan Harira" {
		t.Fatalf("get: %+v %v", got, err)
	}
	got.Ingredients[0] = "changed"
	again, _ := recipes.GetByID(ctx, "r7")
	if again.Ingredients[0] != "GF Lentils" {
		t.Fatalf("catalog must hand out copies")
	}
	if _, err := recipes.GetByID(ctx, "r404"); err != ErrNotFound {
		t.Fatalf("expected not found")
	}
}
