package service

import (
	"context"
	"errors"

	"glutivia/internal/domain"
	"glutivia/internal/repository"
)

// CartView содержимое корзины с вычисленными итогами
type CartView struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
	Count int64             `json:"count"`
}

func newCartView(items []domain.CartItem) *CartView {
	if items == nil {
		items = []domain.CartItem{}
	}
	return &CartView{Items: items, Total: repository.Total(items), Count: repository.ItemCount(items)}
}

// CartService корзины покупателей. Цены и названия берутся из каталога, а не от клиента.
type CartService struct {
	carts    repository.CartRegistry
	products repository.ProductRepository
	meals    repository.MealRepository
}

func NewCartService(carts repository.CartRegistry, products repository.ProductRepository, meals repository.MealRepository) *CartService {
	return &CartService{carts: carts, products: products, meals: meals}
}

func (s *CartService) Get(ctx context.Context, owner string) (*CartView, error) {
	items, err := s.carts.For(owner).Items(ctx)
	if err != nil {
		return nil, err
	}
	return newCartView(items), nil
}

// Add кладёт товар или блюдо из каталога; quantity 0 означает 1
func (s *CartService) Add(ctx context.Context, owner string, typ domain.ItemType, id string, quantity int64) (*CartView, error) {
	if !typ.Valid() || id == "" || quantity < 0 {
		return nil, ErrInvalidInput
	}
	if quantity > repository.MaxLineQuantity {
		return nil, invalid("quantity too large")
	}
	if quantity == 0 {
		quantity = 1
	}

	item := domain.CartItem{ID: id, Type: typ, Quantity: quantity}
	switch typ {
	case domain.ItemTypeProduct:
		p, err := s.products.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		item.Name, item.Price, item.Image, item.Weight = p.Name, p.Price, p.Image, p.Weight
	case domain.ItemTypeMeal:
		m, err := s.meals.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		item.Name, item.Price, item.Image = m.Name, m.Price, m.Image
	}

	items, err := s.carts.For(owner).Add(ctx, item)
	if errors.Is(err, repository.ErrQuantityLimit) {
		return nil, invalid("cart line quantity limit reached")
	}
	if err != nil {
		return nil, err
	}
	return newCartView(items), nil
}

func (s *CartService) Remove(ctx context.Context, owner, id string) (*CartView, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	items, err := s.carts.For(owner).Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	return newCartView(items), nil
}

func (s *CartService) Clear(ctx context.Context, owner string) error {
	return s.carts.For(owner).Clear(ctx)
}
