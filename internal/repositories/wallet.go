package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// WalletWriterRepository handles wallet write operations. Every balance change is a
// single statement, so concurrent callers serialize on the wallet row.
type WalletWriterRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewWalletWriterRepository(db *sqlx.DB) *WalletWriterRepository {
	return &WalletWriterRepository{db: db, now: time.Now}
}

// Ensure creates a zero-balance wallet for the user if there is none.
func (r *WalletWriterRepository) Ensure(ctx context.Context, userID string) error {
	const query = `
		INSERT INTO user_wallets (id, user_id, balance, created_at, updated_at)
		VALUES ($1, $2, 0, $3, $3)
		ON CONFLICT (user_id) DO NOTHING
	`
	args := []any{newID("wallet"), userID, Timestamp(r.now())}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}

// Increase performs an UPSERT: creates the wallet if missing, otherwise adds amount.
// It returns the balance after the change.
func (r *WalletWriterRepository) Increase(ctx context.Context, userID string, amount decimal.Decimal) (decimal.Decimal, error) {
	const query = `
		INSERT INTO user_wallets (id, user_id, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET balance = user_wallets.balance + EXCLUDED.balance, updated_at = EXCLUDED.updated_at
		RETURNING balance
	`
	args := []any{newID("wallet"), userID, amount, Timestamp(r.now())}

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &balance, query, args...)

	logQuery(query, args, balance, err)

	return balance, err
}

// Decrease subtracts amount when the balance covers it. The wallet must exist.
// It returns models.ErrInsufficientFunds and leaves the row untouched otherwise.
func (r *WalletWriterRepository) Decrease(ctx context.Context, userID string, amount decimal.Decimal) (decimal.Decimal, error) {
	const query = `
		UPDATE user_wallets
		SET balance = balance - $2, updated_at = $3
		WHERE user_id = $1 AND balance >= $2
		RETURNING balance
	`
	args := []any{userID, amount, Timestamp(r.now())}

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &balance, query, args...)

	logQuery(query, args, balance, err)

	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("decrease %s for user %s: %w", amount, userID, models.ErrInsufficientFunds)
	}
	return balance, err
}

// WalletReaderRepository handles wallet read operations
type WalletReaderRepository struct {
	db *sqlx.DB
}

func NewWalletReaderRepository(db *sqlx.DB) *WalletReaderRepository {
	return &WalletReaderRepository{db: db}
}

// GetByUserID returns the user's wallet or models.ErrNotFound.
func (r *WalletReaderRepository) GetByUserID(ctx context.Context, userID string) (*models.WalletDB, error) {
	const query = `
		SELECT id, user_id, balance, created_at, updated_at
		FROM user_wallets
		WHERE user_id = $1
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &wallet, query, userID)

	logQuery(query, []any{userID}, wallet.Balance, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("wallet for user %s: %w", userID, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}
