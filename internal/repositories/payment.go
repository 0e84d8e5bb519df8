package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
)

// PaymentRepository persists payment records keyed by the provider payment id.
type PaymentRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db, now: time.Now}
}

const insertPaymentQuery = `
	INSERT INTO payments (
		id, user_id, amount, provider_payment_id, invoice_id,
		payment_method_id, type, status, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (r *PaymentRepository) prepare(p models.PaymentDB) (models.PaymentDB, []any) {
	if p.ID == "" {
		p.ID = newID("pay")
	}
	if p.CreatedAt == "" {
		p.CreatedAt = Timestamp(r.now())
	}
	return p, []any{
		p.ID, p.UserID, p.Amount, p.ProviderPaymentID, p.InvoiceID,
		p.PaymentMethodID, p.Type, p.Status, p.CreatedAt,
	}
}

// Save inserts a payment. A duplicate provider payment id is reported as models.ErrConflict
// and the stored row is left untouched.
func (r *PaymentRepository) Save(ctx context.Context, p models.PaymentDB) (*models.PaymentDB, error) {
	p, args := r.prepare(p)

	_, err := executor(ctx, r.db).ExecContext(ctx, insertPaymentQuery, args...)

	logQuery(insertPaymentQuery, args, p.ID, err)

	if isUniqueViolation(err) {
		return nil, fmt.Errorf("payment %s: %w", p.ProviderPaymentID, models.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// InsertIfAbsent inserts a payment unless one with the same provider payment id exists.
// It reports whether this call inserted the row. A concurrent insert of the same id waits
// for the other transaction and then reports false.
func (r *PaymentRepository) InsertIfAbsent(ctx context.Context, p models.PaymentDB) (bool, error) {
	query := insertPaymentQuery + ` ON CONFLICT (provider_payment_id) DO NOTHING`
	_, args := r.prepare(p)

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// GetForUpdate returns the payment with the given provider id and locks the row
// for the rest of the enclosing transaction.
func (r *PaymentRepository) GetForUpdate(ctx context.Context, providerPaymentID string) (*models.PaymentDB, error) {
	const query = `
		SELECT id, user_id, amount, provider_payment_id, invoice_id,
		       payment_method_id, type, status, created_at
		FROM payments
		WHERE provider_payment_id = $1
		FOR UPDATE
	`

	var p models.PaymentDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &p, query, providerPaymentID)

	logQuery(query, []any{providerPaymentID}, p.Status, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("payment %s: %w", providerPaymentID, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateStatus sets the status of the payment with the given provider id.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, providerPaymentID, status string) error {
	const query = `
		UPDATE payments
		SET status = $2
		WHERE provider_payment_id = $1
	`
	args := []any{providerPaymentID, status}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("payment %s: %w", providerPaymentID, models.ErrNotFound)
	}
	return nil
}

// ListHistory returns one window of the user's payments, newest first, with the brand of
// the linked payment method when there is one.
func (r *PaymentRepository) ListHistory(ctx context.Context, userID string, limit, offset int) ([]models.PaymentHistoryItem, error) {
	const query = `
		SELECT p.id, p.amount, p.provider_payment_id, p.invoice_id, p.type, p.status,
		       pm.brand, p.created_at
		FROM payments p
		LEFT JOIN payment_methods pm ON pm.id = p.payment_method_id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2 OFFSET $3
	`
	args := []any{userID, limit, offset}

	items := []models.PaymentHistoryItem{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &items, query, args...)

	logQuery(query, args, len(items), err)

	return items, err
}

// CountByUserID returns the total number of the user's payments.
func (r *PaymentRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	const query = `SELECT COUNT(*) FROM payments WHERE user_id = $1`

	var total int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &total, query, userID)

	logQuery(query, []any{userID}, total, err)

	return total, err
}
