package repository

import (
	"context"

	"glutivia/internal/domain"
	"glutivia/internal/kv"
)

// OrderStore журнал заказов. Новый заказ всегда становится первым.
type OrderStore struct {
	orders *collection[domain.Order]
}

func NewOrderStore(locker *Locker, store kv.Store) *OrderStore {
	return &OrderStore{orders: newCollection[domain.Order](locker, store, KeyOrders)}
}

var _ OrderRepository = (*OrderStore)(nil)

func (s *OrderStore) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.snapshot(ctx)
}

func (s *OrderStore) Add(ctx context.Context, o domain.Order) error {
	_, err := s.orders.mutate(ctx, func(cur []domain.Order) ([]domain.Order, error) {
		return append([]domain.Order{o}, cur...), nil
	})
	return err
}

// Restore заменяет журнал ранее снятым снимком; используется только для отката оформления
func (s *OrderStore) Restore(ctx context.Context, orders []domain.Order) error {
	_, err := s.orders.mutate(ctx, func([]domain.Order) ([]domain.Order, error) {
		return clone(orders), nil
	})
	return err
}
