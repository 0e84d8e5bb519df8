package repositories

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/stripe-ledger/internal/logger"
)

//go:embed schema.sql
var schema string

// Migrate creates the ledger tables if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		logger.Log.Errorw("failed to apply schema", "error", err)
		return err
	}
	logger.Log.Info("ledger schema is up to date")
	return nil
}
