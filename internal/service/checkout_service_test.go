package service

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glutivia/internal/checkout"
	"glutivia/internal/domain"
	"glutivia/internal/kv"
	"glutivia/internal/repository"
)

type checkoutFixture struct {
	svc    *CheckoutService
	carts  *CartService
	orders *repository.OrderStore
	sess   *Session
}

func setupCheckout(t *testing.T, store kv.Store, cfg CheckoutConfig) *checkoutFixture {
	t.Helper()
	locker := repository.NewLocker()
	cat := repository.NewSeededCatalog()
	registry := repository.NewCarts(locker, store)
	orders := repository.NewOrderStore(locker, store)
	return &checkoutFixture{
		svc:    NewCheckoutService(registry, orders, repository.NewLockTx(locker), cfg),
		carts:  NewCartService(registry, cat, cat.Meals()),
		orders: orders,
		sess:   &Session{Token: "tok-1", User: domain.User{Email: "amina@glutivia.ma", Name: "Amina"}},
	}
}

func (f *checkoutFixture) toCardStep(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	_, err := f.carts.Add(ctx, f.sess.User.Email, domain.ItemTypeMeal, "m7", 2)
	require.NoError(t, err)
	_, err = f.svc.Begin(ctx, f.sess)
	require.NoError(t, err)
	_, err = f.svc.SubmitCustomerInfo(ctx, f.sess, checkout.CustomerInfo{
		FirstName: "Amina", LastName: "Benali", CountryCode: "+212", Phone: "612345678", Location: "Rabat",
	})
	require.NoError(t, err)
	_, err = f.svc.ChoosePayment(ctx, f.sess, domain.PaymentCard)
	require.NoError(t, err)
}

var goodCard = checkout.CardData{CardName: "Amina Benali", CardNumber: "4111111111111111", Expiry: "09/28", CVV: "321"}

func TestCheckout_CardFlowPlacesOrder(t *testing.T) {
	ctx := context.Background()
	f := setupCheckout(t, kv.NewMemoryStore(), CheckoutConfig{})
	f.toCardStep(t)

	res, err := f.svc.SubmitCard(ctx, f.sess, goodCard)
	require.NoError(t, err)
	require.NotNil(t, res.Order)

	assert.Equal(t, checkout.StepSuccess, res.State.Step)
	assert.Regexp(t, regexp.MustCompile(`^ORD-[0-9A-Z]{9}$`), res.Order.ID)
	assert.Equal(t, "+212 612345678", res.Order.Phone)
	assert.Equal(t, 270.0, res.Order.Total)
	assert.Equal(t, domain.PaymentCard, res.Order.Method)

	cart, _ := f.carts.Get(ctx, f.sess.User.Email)
	assert.Empty(t, cart.Items)
	orders, _ := f.orders.List(ctx)
	require.Len(t, orders, 1)
	assert.Equal(t, res.Order.ID, orders[0].ID)

	st, err := f.svc.Reset(ctx, f.sess)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepCart, st.Step)
}

func TestCheckout_CODFlowPlacesOrder(t *testing.T) {
	ctx := context.Background()
	f := setupCheckout(t, kv.NewMemoryStore(), CheckoutConfig{})
	require.NoError(t, f.orders.Add(ctx, domain.Order{ID: "ORD-EARLIER01", Method: domain.PaymentCard}))

	_, err := f.carts.Add(ctx, f.sess.User.Email, domain.ItemTypeProduct, "p4", 3)
	require.NoError(t, err)
	f.toCardStep(t)
	before, _ := f.carts.Get(ctx, f.sess.User.Email)

	_, err = f.svc.Back(ctx, f.sess)
	require.NoError(t, err)
	st, err := f.svc.ChoosePayment(ctx, f.sess, domain.PaymentCOD)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepCODDetails, st.Step)

	res, err := f.svc.ConfirmCOD(ctx, f.sess)
	require.NoError(t, err)
	require.NotNil(t, res.Order)
	assert.Equal(t, checkout.StepSuccess, res.State.Step)
	assert.Equal(t, domain.PaymentCOD, res.Order.Method)
	assert.Equal(t, before.Items, res.Order.Items)
	assert.Equal(t, before.Total, res.Order.Total)

	cart, _ := f.carts.Get(ctx, f.sess.User.Email)
	assert.Empty(t, cart.Items)
	orders, _ := f.orders.List(ctx)
	require.Len(t, orders, 2)
	assert.Equal(t, res.Order.ID, orders[0].ID)
	assert.Equal(t, "ORD-EARLIER01", orders[1].ID)
}

func TestCheckout_BeginWithEmptyCart(t *testing.T) {
	f := setupCheckout(t, kv.NewMemoryStore(), CheckoutConfig{})
	_, err := f.svc.Begin(context.Background(), f.sess)
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)
	assert.Equal(t, checkout.StepCart, f.svc.State(f.sess).Step)
}

func TestCheckout_InvalidCardKeepsStep(t *testing.T) {
	ctx := context.Background()
	f := setupCheckout(t, kv.NewMemoryStore(), CheckoutConfig{})
	f.toCardStep(t)

	bad := goodCard
	bad.Expiry = "13/28"
	res, err := f.svc.SubmitCard(ctx, f.sess, bad)

	var verr *checkout.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Use MM/YY", verr.Fields["expiry"])
	assert.Equal(t, checkout.StepCardDetails, res.State.Step)
	assert.Equal(t, checkout.StepCardDetails, f.svc.State(f.sess).Step)

	orders, _ := f.orders.List(ctx)
	assert.Empty(t, orders)
}

func TestCheckout_SubmitWhileProcessingIsBusy(t *testing.T) {
	ctx := context.Background()
	f := setupCheckout(t, kv.NewMemoryStore(), CheckoutConfig{CardDelay: 300 * time.Millisecond})
	f.toCardStep(t)

	var wg sync.WaitGroup
	wg.Add(1)
	var first *CheckoutResult
	var firstErr error
	go func() {
		defer wg.Done()
		first, firstErr = f.svc.SubmitCard(ctx, f.sess, goodCard)
	}()

	require.Eventually(t, func() bool { return f.svc.State(f.sess).Processing }, time.Second, 5*time.Millisecond)

	_, err := f.svc.SubmitCard(ctx, f.sess, goodCard)
	assert.ErrorIs(t, err, ErrCheckoutBusy)
	_, err = f.svc.Cancel(ctx, f.sess)
	assert.ErrorIs(t, err, ErrCheckoutBusy)

	wg.Wait()
	require.NoError(t, firstErr)
	assert.Equal(t, checkout.StepSuccess, first.State.Step)

	orders, _ := f.orders.List(ctx)
	assert.Len(t, orders, 1, "exactly one order for two submits")
}

func TestCheckout_CancelledContextAborts(t *testing.T) {
	f := setupCheckout(t, kv.NewMemoryStore(), CheckoutConfig{CODDelay: time.Hour})
	f.toCardStep(t)
	_, err := f.svc.Back(context.Background(), f.sess)
	require.NoError(t, err)
	_, err = f.svc.ChoosePayment(context.Background(), f.sess, domain.PaymentCOD)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	res, err := f.svc.ConfirmCOD(ctx, f.sess)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, checkout.StepCODDetails, res.State.Step)
	assert.False(t, res.State.Processing)

	cart, _ := f.carts.Get(context.Background(), f.sess.User.Email)
	assert.Len(t, cart.Items, 1, "cart untouched after abort")
}

// clearFails lets everything through except clearing one cart key
type clearFails struct {
	kv.Store
	key string
}

func (s clearFails) Set(ctx context.Context, key string, value []byte) error {
	if key == s.key && string(value) == "[]" {
		return errors.New("disk full")
	}
	return s.Store.Set(ctx, key, value)
}

func TestCheckout_FailedCartClearRestoresOrders(t *testing.T) {
	ctx := context.Background()
	store := clearFails{Store: kv.NewMemoryStore(), key: repository.KeyCartPrefix + "amina@glutivia.ma"}
	f := setupCheckout(t, store, CheckoutConfig{})
	f.toCardStep(t)

	res, err := f.svc.SubmitCard(ctx, f.sess, goodCard)
	require.Error(t, err)
	assert.Equal(t, checkout.StepCardDetails, res.State.Step)
	assert.False(t, res.State.Processing)

	orders, _ := f.orders.List(ctx)
	assert.Empty(t, orders)
	cart, _ := f.carts.Get(ctx, f.sess.User.Email)
	assert.Len(t, cart.Items, 1)
}

func TestCheckout_ForgetDropsDraft(t *testing.T) {
	f := setupCheckout(t, kv.NewMemoryStore(), CheckoutConfig{})
	f.toCardStep(t)
	f.svc.Forget(f.sess.Token)
	assert.Equal(t, checkout.Initial(), f.svc.State(f.sess))
}

func TestCheckout_LogoutDuringPaymentLeavesNoDraft(t *testing.T) {
	ctx := context.Background()
	f := setupCheckout(t, kv.NewMemoryStore(), CheckoutConfig{CardDelay: 100 * time.Millisecond})
	f.toCardStep(t)

	done := make(chan *CheckoutResult, 1)
	go func() {
		res, _ := f.svc.SubmitCard(ctx, f.sess, goodCard)
		done <- res
	}()
	require.Eventually(t, func() bool { return f.svc.State(f.sess).Processing }, time.Second, 5*time.Millisecond)
	f.svc.Forget(f.sess.Token)

	res := <-done
	require.NotNil(t, res.Order, "payment already taken, the order stands")

	f.svc.mu.Lock()
	_, ok := f.svc.drafts[f.sess.Token]
	f.svc.mu.Unlock()
	assert.False(t, ok, "finished payment must not recreate a forgotten draft")
}
