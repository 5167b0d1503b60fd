package service

import (
	"context"
	"strings"

	"glutivia/internal/domain"
	"glutivia/internal/repository"
)

// ProductService инкапсулирует бизнес-логику вокруг товаров рынка
type ProductService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func validProduct(p domain.Product) bool {
	if strings.TrimSpace(p.Name) == "" || p.Price < 0 {
		return false
	}
	switch p.Category {
	case domain.CategoryPantry, domain.CategorySnack, domain.CategoryBakery:
		return true
	}
	return false
}

func (s *ProductService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if !validProduct(p) {
		return nil, ErrInvalidInput
	}
	cp := p
	cp.Name = strings.TrimSpace(cp.Name)
	if err := s.repo.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.ID == "" || !validProduct(p) {
		return nil, ErrInvalidInput
	}
	cp := p
	if err := s.repo.Update(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) List(ctx context.Context, f repository.ProductFilter) ([]domain.Product, error) {
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, f)
}

// MealService каталог готовых блюд, только чтение
type MealService struct {
	repo repository.MealRepository
}

func NewMealService(repo repository.MealRepository) *MealService {
	return &MealService{repo: repo}
}

func (s *MealService) List(ctx context.Context) ([]domain.Meal, error) {
	return s.repo.List(ctx)
}

func (s *MealService) GetByID(ctx context.Context, id string) (*domain.Meal, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}
