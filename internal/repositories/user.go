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

// UserRepository reads users and links them to provider customers.
type UserRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db, now: time.Now}
}

// GetByID returns the user with the given id or models.ErrNotFound.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, name, stripe_customer_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.getOne(ctx, query, userID)
}

// GetByStripeCustomerID resolves the user owning a provider customer id.
func (r *UserRepository) GetByStripeCustomerID(ctx context.Context, customerID string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, name, stripe_customer_id, created_at, updated_at
		FROM users
		WHERE stripe_customer_id = $1
	`
	return r.getOne(ctx, query, customerID)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg string) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, arg)

	logQuery(query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", arg, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetStripeCustomerID stores customerID for the user unless one is already set, and
// returns the id that ends up persisted. A caller that loses the race gets the winner's id.
func (r *UserRepository) SetStripeCustomerID(ctx context.Context, userID, customerID string) (string, error) {
	const query = `
		UPDATE users
		SET stripe_customer_id = $2, updated_at = $3
		WHERE id = $1 AND stripe_customer_id IS NULL
		RETURNING stripe_customer_id
	`
	args := []any{userID, customerID, Timestamp(r.now())}

	var stored string
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &stored, query, args...)

	logQuery(query, args, stored, err)

	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.StripeCustomerID == nil {
		return "", fmt.Errorf("customer id for user %s was not stored", userID)
	}
	return *user.StripeCustomerID, nil
}
