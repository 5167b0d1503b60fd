package repository

import (
	"context"
	"sync"
)

// Locker общий замок всех коллекций процесса; транзакция берёт его целиком
type Locker struct {
	mu sync.RWMutex
}

func NewLocker() *Locker { return &Locker{} }

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (l *Locker) rlock(ctx context.Context) {
	if !isTx(ctx) {
		l.mu.RLock()
	}
}
func (l *Locker) runlock(ctx context.Context) {
	if !isTx(ctx) {
		l.mu.RUnlock()
	}
}
func (l *Locker) wlock(ctx context.Context) {
	if !isTx(ctx) {
		l.mu.Lock()
	}
}
func (l *Locker) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		l.mu.Unlock()
	}
}

// LockTx менеджер транзакций поверх Locker
type LockTx struct{ locker *Locker }

func NewLockTx(locker *Locker) *LockTx { return &LockTx{locker: locker} }

var _ TxManager = (*LockTx)(nil)

func (tx *LockTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// nested calls reuse the outer lock
	if isTx(ctx) {
		return fn(ctx)
	}
	tx.locker.mu.Lock()
	defer tx.locker.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}
