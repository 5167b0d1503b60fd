package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"glutivia/internal/domain"
	"glutivia/internal/kv"
)

// MaxLineQuantity предельное количество одной позиции корзины
const MaxLineQuantity int64 = 999

// ErrQuantityLimit количество позиции вне диапазона 1..MaxLineQuantity
var ErrQuantityLimit = errors.New("quantity limit exceeded")

// CartStore корзина одного покупателя с записью в хранилище при каждом изменении
type CartStore struct {
	items *collection[domain.CartItem]
}

func NewCartStore(locker *Locker, store kv.Store, owner string) *CartStore {
	return &CartStore{items: newCollection[domain.CartItem](locker, store, KeyCartPrefix+owner)}
}

var _ CartRepository = (*CartStore)(nil)

func (c *CartStore) Items(ctx context.Context) ([]domain.CartItem, error) {
	return c.items.snapshot(ctx)
}

// Add увеличивает количество у позиции с тем же (ID, Type) или добавляет новую в конец
func (c *CartStore) Add(ctx context.Context, item domain.CartItem) ([]domain.CartItem, error) {
	if item.Quantity < 1 || item.Quantity > MaxLineQuantity {
		return nil, ErrQuantityLimit
	}
	return c.items.mutate(ctx, func(cur []domain.CartItem) ([]domain.CartItem, error) {
		for i := range cur {
			if cur[i].ID == item.ID && cur[i].Type == item.Type {
				// stored lines may predate the cap; compare without adding
				if cur[i].Quantity > MaxLineQuantity-item.Quantity {
					return nil, ErrQuantityLimit
				}
				cur[i].Quantity += item.Quantity
				return cur, nil
			}
		}
		return append(cur, item), nil
	})
}

// Remove убирает все позиции с указанным id; отсутствующий id — не ошибка
func (c *CartStore) Remove(ctx context.Context, id string) ([]domain.CartItem, error) {
	return c.items.mutate(ctx, func(cur []domain.CartItem) ([]domain.CartItem, error) {
		out := make([]domain.CartItem, 0, len(cur))
		for _, it := range cur {
			if it.ID != id {
				out = append(out, it)
			}
		}
		return out, nil
	})
}

func (c *CartStore) Clear(ctx context.Context) error {
	_, err := c.items.mutate(ctx, func([]domain.CartItem) ([]domain.CartItem, error) {
		return []domain.CartItem{}, nil
	})
	return err
}

// Total сумма price*quantity по всем позициям
func Total(items []domain.CartItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(it.Quantity)))
	}
	return sum.InexactFloat64()
}

// ItemCount сумма количеств по всем позициям
func ItemCount(items []domain.CartItem) int64 {
	var n int64
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// Carts реестр корзин по владельцу; каждая корзина загружается из хранилища один раз
type Carts struct {
	locker *Locker
	store  kv.Store

	mu      sync.Mutex
	byOwner map[string]*CartStore
}

func NewCarts(locker *Locker, store kv.Store) *Carts {
	return &Carts{locker: locker, store: store, byOwner: make(map[string]*CartStore)}
}

var _ CartRegistry = (*Carts)(nil)

func (c *Carts) For(owner string) CartRepository {
	c.mu.Lock()
	defer c.mu.Unlock()
	cs, ok := c.byOwner[owner]
	if !ok {
		cs = NewCartStore(c.locker, c.store, owner)
		c.byOwner[owner] = cs
	}
	return cs
}
