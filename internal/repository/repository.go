package repository

import (
	"context"
	"errors"
	"strings"

	"glutivia/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// Ключи долговременного хранилища
const (
	KeyCartPrefix       = "glutivia_cart:"
	KeyOrders           = "glutivia_orders"
	KeyCommunity        = "glutivia_unified_community"
	KeyLegacyFeedback   = "glutivia_community_feedback"
	KeyLegacyDiscussion = "glutivia_community_messages"
	KeySessionPrefix    = "glutivia_customer_session:"
)

// ProductFilter параметры фильтрации списка товаров
type ProductFilter struct {
	NameSubstring string
	Category      domain.ProductCategory
	MinPrice      *float64
	MaxPrice      *float64
}

// ProductRepository интерфейс каталога товаров
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ProductFilter) ([]domain.Product, error)
}

// MealRepository интерфейс каталога готовых блюд
type MealRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Meal, error)
	List(ctx context.Context) ([]domain.Meal, error)
}

// FeaturedRecipeRepository подборка рецептов AI-кухни, только чтение
type FeaturedRecipeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.FeaturedRecipe, error)
	List(ctx context.Context) ([]domain.FeaturedRecipe, error)
}

// CartRepository корзина одного покупателя
type CartRepository interface {
	Items(ctx context.Context) ([]domain.CartItem, error)
	Add(ctx context.Context, item domain.CartItem) ([]domain.CartItem, error)
	Remove(ctx context.Context, id string) ([]domain.CartItem, error)
	Clear(ctx context.Context) error
}

// CartRegistry выдаёт корзину по владельцу
type CartRegistry interface {
	For(owner string) CartRepository
}

// OrderRepository журнал заказов, новые — первыми
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	Add(ctx context.Context, o domain.Order) error
	Restore(ctx context.Context, orders []domain.Order) error
}

// CommunityRepository общая доска сообщений
type CommunityRepository interface {
	List(ctx context.Context) ([]domain.CommunityMessage, error)
	Add(ctx context.Context, text, author, owner string) (*domain.CommunityMessage, error)
	GetByID(ctx context.Context, id string) (*domain.CommunityMessage, error)
	Delete(ctx context.Context, id string) error
}

// SessionRepository сессии покупателей по токену
type SessionRepository interface {
	Get(ctx context.Context, token string) (*domain.User, error)
	Save(ctx context.Context, token string, u domain.User) error
	Delete(ctx context.Context, token string) error
}

// TxManager абстракция транзакции. Для in-process хранилищ — глобальная блокировка записи.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
