package mocks

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/phrazzld/tasks-api/internal/store"
)

// MockTransactor implements store.Transactor by calling fn with a nil *sql.Tx.
// Pair it with mocks whose WithTx ignores the transaction. Transactions run
// one at a time, like serializable transactions against a real database.
type MockTransactor struct {
	// Err, when set, is returned instead of running fn (simulates a failed BEGIN).
	Err error

	mu    sync.Mutex
	calls atomic.Int32
}

// Ensure MockTransactor implements store.Transactor interface
var _ store.Transactor = (*MockTransactor)(nil)

// RunInTx implements the store.Transactor interface
func (m *MockTransactor) RunInTx(ctx context.Context, fn store.TxFn) error {
	m.calls.Add(1)
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, nil)
}

// Calls returns how many transactions were started.
func (m *MockTransactor) Calls() int {
	return int(m.calls.Load())
}
