package commands

import (
	"sync"

	"algexpress/internal/core/domain/model/kernel"
)

// OrderLocks serializes command handling per order within this process.
// Concurrent commands against the same order run one at a time; commands
// against different orders do not contend. The database transaction remains
// the consistency boundary across processes.
type OrderLocks struct {
	mu    sync.Mutex
	locks map[kernel.UUID]*orderLock
}

type orderLock struct {
	mu   sync.Mutex
	refs int
}

// NewOrderLocks creates an empty lock set. One instance is shared by every
// order-mutating command handler.
func NewOrderLocks() *OrderLocks {
	return &OrderLocks{
		locks: make(map[kernel.UUID]*orderLock),
	}
}

// Lock acquires the mutex for the given order, creating it on first use.
func (l *OrderLocks) Lock(orderID kernel.UUID) {
	l.mu.Lock()
	entry, ok := l.locks[orderID]
	if !ok {
		entry = &orderLock{}
		l.locks[orderID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
}

// Unlock releases the mutex for the given order. The entry is dropped once
// nobody waits on it, keeping the set bounded by in-flight orders.
func (l *OrderLocks) Unlock(orderID kernel.UUID) {
	l.mu.Lock()
	entry, ok := l.locks[orderID]
	if !ok {
		l.mu.Unlock()
		return
	}
	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, orderID)
	}
	l.mu.Unlock()

	entry.mu.Unlock()
}
