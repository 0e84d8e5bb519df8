package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserGetByID(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db)
	repo := NewUserRepository(db)

	user, err := repo.GetByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Nil(t, user.StripeCustomerID)

	_, err = repo.GetByID(ctx, "user_missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUserSetStripeCustomerID(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db)
	repo := NewUserRepository(db)

	stored, err := repo.SetStripeCustomerID(ctx, userID, "cus_first")
	require.NoError(t, err)
	assert.Equal(t, "cus_first", stored)

	t.Run("second writer gets the stored id", func(t *testing.T) {
		stored, err := repo.SetStripeCustomerID(ctx, userID, "cus_second")
		require.NoError(t, err)
		assert.Equal(t, "cus_first", stored)
	})

	t.Run("lookup by customer", func(t *testing.T) {
		user, err := repo.GetByStripeCustomerID(ctx, "cus_first")
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)

		_, err = repo.GetByStripeCustomerID(ctx, "cus_unknown")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := repo.SetStripeCustomerID(ctx, "user_missing", "cus_x")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestUserSetStripeCustomerID_Concurrent(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db)
	repo := NewUserRepository(db)

	candidates := []string{"cus_a", "cus_b", "cus_c", "cus_d", "cus_e"}
	results := make([]string, len(candidates))

	var wg sync.WaitGroup
	for i, c := range candidates {
		wg.Add(1)
		go func(i int, c string) {
			defer wg.Done()
			stored, err := repo.SetStripeCustomerID(ctx, userID, c)
			assert.NoError(t, err)
			results[i] = stored
		}(i, c)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, results[0], r)
	}
	assert.Contains(t, candidates, results[0])
}
