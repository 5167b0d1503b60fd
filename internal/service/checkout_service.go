package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"glutivia/internal/checkout"
	"glutivia/internal/domain"
	"glutivia/internal/repository"
)

// CheckoutConfig длительность имитации оплаты
type CheckoutConfig struct {
	CardDelay time.Duration
	CODDelay  time.Duration
}

// CheckoutResult состояние оформления; Order заполнен после успешной оплаты
type CheckoutResult struct {
	State checkout.State `json:"state"`
	Order *domain.Order  `json:"order,omitempty"`
}

// CheckoutService ведёт черновик оформления для каждой сессии.
// Черновики живут только в памяти процесса.
type CheckoutService struct {
	carts  repository.CartRegistry
	orders repository.OrderRepository
	tx     repository.TxManager
	cfg    CheckoutConfig

	now     func() time.Time
	orderID func() string

	mu     sync.Mutex
	drafts map[string]checkout.State
}

func NewCheckoutService(carts repository.CartRegistry, orders repository.OrderRepository, tx repository.TxManager, cfg CheckoutConfig) *CheckoutService {
	return &CheckoutService{
		carts:   carts,
		orders:  orders,
		tx:      tx,
		cfg:     cfg,
		now:     time.Now,
		orderID: newOrderID,
		drafts:  make(map[string]checkout.State),
	}
}

// newOrderID ORD- и девять заглавных символов
func newOrderID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + raw[:9]
}

func (s *CheckoutService) State(sess *Session) checkout.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current(sess.Token)
}

func (s *CheckoutService) current(token string) checkout.State {
	st, ok := s.drafts[token]
	if !ok {
		return checkout.Initial()
	}
	return st
}

// apply переводит черновик сессии; состояние с ошибками полей тоже сохраняется.
// Завершение оплаты не воскрешает черновик, удалённый при выходе.
func (s *CheckoutService) apply(sess *Session, ev checkout.Event) (checkout.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.drafts[sess.Token]
	next, err := checkout.Transition(s.current(sess.Token), ev)
	if !exists && (ev.Kind == checkout.EventCompleted || ev.Kind == checkout.EventAbort) {
		return next, err
	}
	s.drafts[sess.Token] = next
	return next, err
}

func (s *CheckoutService) Begin(ctx context.Context, sess *Session) (checkout.State, error) {
	items, err := s.carts.For(sess.User.Email).Items(ctx)
	if err != nil {
		return checkout.State{}, err
	}
	return s.apply(sess, checkout.Event{Kind: checkout.EventBegin, CartSize: len(items)})
}

func (s *CheckoutService) SubmitCustomerInfo(_ context.Context, sess *Session, info checkout.CustomerInfo) (checkout.State, error) {
	return s.apply(sess, checkout.Event{Kind: checkout.EventSubmitInfo, Customer: info})
}

func (s *CheckoutService) ChoosePayment(_ context.Context, sess *Session, method domain.PaymentMethod) (checkout.State, error) {
	switch method {
	case domain.PaymentCard:
		return s.apply(sess, checkout.Event{Kind: checkout.EventChooseCard})
	case domain.PaymentCOD:
		return s.apply(sess, checkout.Event{Kind: checkout.EventChooseCOD})
	}
	return s.State(sess), invalid("unknown payment method")
}

func (s *CheckoutService) Back(_ context.Context, sess *Session) (checkout.State, error) {
	return s.apply(sess, checkout.Event{Kind: checkout.EventBack})
}

func (s *CheckoutService) Cancel(_ context.Context, sess *Session) (checkout.State, error) {
	return s.apply(sess, checkout.Event{Kind: checkout.EventCancel})
}

func (s *CheckoutService) Reset(_ context.Context, sess *Session) (checkout.State, error) {
	return s.apply(sess, checkout.Event{Kind: checkout.EventReset})
}

// Forget удаляет черновик при выходе
func (s *CheckoutService) Forget(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, token)
}

// SubmitCard проверяет карту, ждёт имитацию оплаты и оформляет заказ
func (s *CheckoutService) SubmitCard(ctx context.Context, sess *Session, card checkout.CardData) (*CheckoutResult, error) {
	st, err := s.apply(sess, checkout.Event{Kind: checkout.EventSubmitCard, Card: card})
	if err != nil {
		return &CheckoutResult{State: st}, err
	}
	return s.process(ctx, sess, st, s.cfg.CardDelay)
}

// ConfirmCOD оформляет заказ с оплатой при получении
func (s *CheckoutService) ConfirmCOD(ctx context.Context, sess *Session) (*CheckoutResult, error) {
	st, err := s.apply(sess, checkout.Event{Kind: checkout.EventConfirmCOD})
	if err != nil {
		return &CheckoutResult{State: st}, err
	}
	return s.process(ctx, sess, st, s.cfg.CODDelay)
}

func (s *CheckoutService) process(ctx context.Context, sess *Session, st checkout.State, delay time.Duration) (*CheckoutResult, error) {
	if err := wait(ctx, delay); err != nil {
		aborted, _ := s.apply(sess, checkout.Event{Kind: checkout.EventAbort})
		return &CheckoutResult{State: aborted}, err
	}

	order, err := s.finalize(ctx, sess.User.Email, st)
	if err != nil {
		zap.S().Errorw("checkout finalize failed", "email", sess.User.Email, "error", err)
		aborted, _ := s.apply(sess, checkout.Event{Kind: checkout.EventAbort})
		return &CheckoutResult{State: aborted}, err
	}

	done, err := s.apply(sess, checkout.Event{Kind: checkout.EventCompleted})
	if err != nil {
		// the draft was dropped mid-payment (logout); the order stands
		zap.S().Warnw("checkout draft vanished during payment", "order_id", order.ID, "error", err)
	}
	zap.S().Infow("order placed", "order_id", order.ID, "method", order.Method, "total", order.Total)
	return &CheckoutResult{State: done, Order: order}, nil
}

// finalize добавляет заказ и очищает корзину в одной транзакции.
// Если очистка не удалась, журнал заказов возвращается к прежнему виду.
func (s *CheckoutService) finalize(ctx context.Context, owner string, st checkout.State) (*domain.Order, error) {
	cart := s.carts.For(owner)
	var order domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		items, err := cart.Items(ctx)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return checkout.ErrEmptyCart
		}
		before, err := s.orders.List(ctx)
		if err != nil {
			return err
		}

		order = checkout.BuildOrder(st, s.orderID(), items, repository.Total(items), s.now().UTC())
		if err := s.orders.Add(ctx, order); err != nil {
			return fmt.Errorf("append order: %w", err)
		}
		if err := cart.Clear(ctx); err != nil {
			if rerr := s.orders.Restore(ctx, before); rerr != nil {
				zap.S().Errorw("order rollback failed", "order_id", order.ID, "error", rerr)
			}
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
