package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"glutivia/internal/domain"
)

// Catalog in-memory каталог товаров, блюд и рецептов с простым генератором ID.
// Списки отдаются в порядке добавления.
type Catalog struct {
	mu           sync.RWMutex
	nextProdID   int64
	products     map[string]domain.Product
	productOrder []string
	meals        map[string]domain.Meal
	mealOrder    []string
	recipes      map[string]domain.FeaturedRecipe
	recipeOrder  []string
}

func NewCatalog() *Catalog {
	return &Catalog{
		nextProdID: 1,
		products:   make(map[string]domain.Product),
		meals:      make(map[string]domain.Meal),
		recipes:    make(map[string]domain.FeaturedRecipe),
	}
}

// NewSeededCatalog каталог с витриной магазина по умолчанию
func NewSeededCatalog() *Catalog {
	c := NewCatalog()
	ctx := context.Background()
	for _, p := range seedProducts {
		p := p
		_ = c.Create(ctx, &p)
	}
	for _, m := range seedMeals {
		c.meals[m.ID] = m
		c.mealOrder = append(c.mealOrder, m.ID)
	}
	for _, r := range seedRecipes {
		c.recipes[r.ID] = r
		c.recipeOrder = append(c.recipeOrder, r.ID)
	}
	return c
}

// Ensure interfaces
var (
	_ ProductRepository        = (*Catalog)(nil)
	_ MealRepository           = (*MealCatalog)(nil)
	_ FeaturedRecipeRepository = (*RecipeCatalog)(nil)
)

// Create присваивает ID вида p<N>, если он не задан
func (c *Catalog) Create(_ context.Context, p *domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p.ID == "" {
		for {
			p.ID = fmt.Sprintf("p%d", c.nextProdID)
			c.nextProdID++
			if _, taken := c.products[p.ID]; !taken {
				break
			}
		}
	}
	if _, exists := c.products[p.ID]; !exists {
		c.productOrder = append(c.productOrder, p.ID)
	}
	c.products[p.ID] = *p
	return nil
}

func (c *Catalog) GetByID(_ context.Context, id string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	cp := p
	return &cp, nil
}

func (c *Catalog) Update(_ context.Context, p *domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.products[p.ID]; !ok {
		return ErrNotFound
	}
	c.products[p.ID] = *p
	return nil
}

func (c *Catalog) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.products[id]; !ok {
		return ErrNotFound
	}
	delete(c.products, id)
	c.productOrder = slices.DeleteFunc(c.productOrder, func(v string) bool { return v == id })
	return nil
}

func (c *Catalog) List(_ context.Context, f ProductFilter) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, 0)
	for _, id := range c.productOrder {
		p := c.products[id]
		if !containsIgnoreCase(p.Name, f.NameSubstring) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// MealCatalog блюда только для чтения
type MealCatalog struct{ c *Catalog }

func (c *Catalog) Meals() *MealCatalog { return &MealCatalog{c: c} }

func (m *MealCatalog) GetByID(_ context.Context, id string) (*domain.Meal, error) {
	m.c.mu.RLock()
	defer m.c.mu.RUnlock()
	meal, ok := m.c.meals[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := meal
	return &cp, nil
}

func (m *MealCatalog) List(_ context.Context) ([]domain.Meal, error) {
	m.c.mu.RLock()
	defer m.c.mu.RUnlock()
	out := make([]domain.Meal, 0, len(m.c.mealOrder))
	for _, id := range m.c.mealOrder {
		out = append(out, m.c.meals[id])
	}
	return out, nil
}

// RecipeCatalog подборка рецептов только для чтения
type RecipeCatalog struct{ c *Catalog }

func (c *Catalog) Recipes() *RecipeCatalog { return &RecipeCatalog{c: c} }

func (r *RecipeCatalog) GetByID(_ context.Context, id string) (*domain.FeaturedRecipe, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	rec, ok := r.c.recipes[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := rec
	cp.Ingredients = slices.Clone(rec.Ingredients)
	return &cp, nil
}

func (r *RecipeCatalog) List(_ context.Context) ([]domain.FeaturedRecipe, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	out := make([]domain.FeaturedRecipe, 0, len(r.c.recipeOrder))
	for _, id := range r.c.recipeOrder {
		out = append(out, r.c.recipes[id])
	}
	return out, nil
}
