package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/stripe-ledger/internal/logger"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

type txState struct {
	tx          *sqlx.Tx
	afterCommit []func()
}

// TxManager runs functions inside a database transaction carried by the context.
// Repositories pick the transaction up through GetTxFromContext.
type TxManager struct {
	db *sqlx.DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

// WithinTx runs fn in a transaction. The transaction commits when fn returns nil and
// rolls back otherwise. A ctx that already carries a transaction is reused as is.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return fmt.Errorf("begin transaction: %w", err)
	}

	state := &txState{tx: tx}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey, state)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return fmt.Errorf("commit transaction: %w", err)
	}

	for _, f := range state.afterCommit {
		f()
	}
	return nil
}

// AfterCommit is the method form of the package-level AfterCommit.
func (m *TxManager) AfterCommit(ctx context.Context, fn func()) {
	AfterCommit(ctx, fn)
}

// AfterCommit schedules fn to run once the transaction bound to ctx commits.
// Without a transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		fn()
		return
	}
	state.afterCommit = append(state.afterCommit, fn)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		return nil
	}
	return state.tx
}
