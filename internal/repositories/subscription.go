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

// SubscriptionRepository persists subscriptions keyed by the provider subscription id.
type SubscriptionRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db, now: time.Now}
}

// Save inserts a subscription; a duplicate provider subscription id is models.ErrConflict.
func (r *SubscriptionRepository) Save(ctx context.Context, s models.SubscriptionDB) (*models.SubscriptionDB, error) {
	const query = `
		INSERT INTO subscriptions (id, user_id, provider_subscription_id, price_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if s.ID == "" {
		s.ID = newID("sub")
	}
	if s.CreatedAt == "" {
		s.CreatedAt = Timestamp(r.now())
	}
	args := []any{s.ID, s.UserID, s.ProviderSubscriptionID, s.PriceID, s.Status, s.CreatedAt}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logQuery(query, args, s.ID, err)

	if isUniqueViolation(err) {
		return nil, fmt.Errorf("subscription %s: %w", s.ProviderSubscriptionID, models.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateStatus overwrites the status of the subscription and reports whether it changed.
// Writing the current status again is a no-op; an unknown subscription is models.ErrNotFound.
func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, providerSubscriptionID, status string) (bool, error) {
	const query = `
		UPDATE subscriptions
		SET status = $2
		WHERE provider_subscription_id = $1 AND status <> $2
	`
	args := []any{providerSubscriptionID, status}

	ex := executor(ctx, r.db)
	res, err := ex.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	if rowsAffected > 0 {
		return true, nil
	}

	if _, err := r.GetByProviderID(ctx, providerSubscriptionID); err != nil {
		return false, err
	}
	return false, nil
}

// GetByProviderID returns the subscription with the given provider id or models.ErrNotFound.
func (r *SubscriptionRepository) GetByProviderID(ctx context.Context, providerSubscriptionID string) (*models.SubscriptionDB, error) {
	const query = `
		SELECT id, user_id, provider_subscription_id, price_id, status, created_at
		FROM subscriptions
		WHERE provider_subscription_id = $1
	`

	var s models.SubscriptionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &s, query, providerSubscriptionID)

	logQuery(query, []any{providerSubscriptionID}, s.Status, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("subscription %s: %w", providerSubscriptionID, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
