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

// PaymentMethodRepository persists linked payment methods.
type PaymentMethodRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPaymentMethodRepository(db *sqlx.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db, now: time.Now}
}

// Save inserts a payment method. A provider payment method id that is already stored
// yields models.ErrConflict.
func (r *PaymentMethodRepository) Save(ctx context.Context, userID string, d models.PaymentMethodDetails) (*models.PaymentMethodDB, error) {
	const query = `
		INSERT INTO payment_methods (
			id, user_id, provider_payment_method_id, type, last4, brand,
			exp_month, exp_year, cardholder_name, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	pm := models.PaymentMethodDB{
		ID:                      newID("pm"),
		UserID:                  userID,
		ProviderPaymentMethodID: d.ProviderPaymentMethodID,
		Type:                    d.Type,
		Last4:                   d.Last4,
		Brand:                   d.Brand,
		ExpMonth:                d.ExpMonth,
		ExpYear:                 d.ExpYear,
		CardholderName:          d.CardholderName,
		CreatedAt:               Timestamp(r.now()),
	}
	args := []any{
		pm.ID, pm.UserID, pm.ProviderPaymentMethodID, pm.Type, pm.Last4, pm.Brand,
		pm.ExpMonth, pm.ExpYear, pm.CardholderName, pm.CreatedAt,
	}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logQuery(query, args, pm.ID, err)

	if isUniqueViolation(err) {
		return nil, fmt.Errorf("payment method %s: %w", d.ProviderPaymentMethodID, models.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

// ListByUserID returns the user's active payment methods, oldest first.
func (r *PaymentMethodRepository) ListByUserID(ctx context.Context, userID string, filter models.PaymentMethodFilter) ([]models.PaymentMethodDB, error) {
	const query = `
		SELECT id, user_id, provider_payment_method_id, type, last4, brand,
		       exp_month, exp_year, cardholder_name, created_at, deleted_at
		FROM payment_methods
		WHERE user_id = $1
		  AND deleted_at IS NULL
		  AND ($2 = '' OR type = $2)
		  AND ($3 = '' OR brand = $3)
		ORDER BY created_at ASC, id ASC
	`
	args := []any{userID, filter.Type, filter.Brand}

	methods := []models.PaymentMethodDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &methods, query, args...)

	logQuery(query, args, len(methods), err)

	return methods, err
}

// Find returns the user's payment method matched by local or provider id,
// including soft-deleted ones.
func (r *PaymentMethodRepository) Find(ctx context.Context, userID, paymentMethodID string) (*models.PaymentMethodDB, error) {
	const query = `
		SELECT id, user_id, provider_payment_method_id, type, last4, brand,
		       exp_month, exp_year, cardholder_name, created_at, deleted_at
		FROM payment_methods
		WHERE user_id = $1 AND (id = $2 OR provider_payment_method_id = $2)
	`
	args := []any{userID, paymentMethodID}

	var pm models.PaymentMethodDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &pm, query, args...)

	logQuery(query, args, pm.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("payment method %s: %w", paymentMethodID, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

// SoftDelete sets deleted_at on the user's payment method, matched by local or provider id.
// Deleting an already deleted method is a no-op; a method the user does not own is models.ErrNotFound.
func (r *PaymentMethodRepository) SoftDelete(ctx context.Context, userID, paymentMethodID string) error {
	const query = `
		UPDATE payment_methods
		SET deleted_at = $3
		WHERE user_id = $1
		  AND (id = $2 OR provider_payment_method_id = $2)
		  AND deleted_at IS NULL
	`
	args := []any{userID, paymentMethodID, Timestamp(r.now())}

	ex := executor(ctx, r.db)
	res, err := ex.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected > 0 {
		return nil
	}

	const existsQuery = `
		SELECT EXISTS (
			SELECT 1 FROM payment_methods
			WHERE user_id = $1 AND (id = $2 OR provider_payment_method_id = $2)
		)
	`
	var exists bool
	err = sqlx.GetContext(ctx, ex, &exists, existsQuery, userID, paymentMethodID)

	logQuery(existsQuery, []any{userID, paymentMethodID}, exists, err)

	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("payment method %s: %w", paymentMethodID, models.ErrNotFound)
	}
	return nil
}
