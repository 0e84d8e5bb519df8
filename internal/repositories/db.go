package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/stripe-ledger/internal/logger"
)

// timestampLayout is fixed-width so that lexical order of stored strings equals time order.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// pgUniqueViolation is the SQLSTATE Postgres reports for unique constraint violations.
const pgUniqueViolation = "23505"

// Timestamp formats t as an ISO-8601 UTC string in the ledger's storage layout.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// executor returns the transaction bound to ctx, falling back to the pool.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// logQuery logs the query on a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
