package services

//go:generate mockgen -source=wallet.go -destination=wallet_mock.go -package=services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/stripe-ledger/internal/logger"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// WalletWriter defines atomic balance changes.
type WalletWriter interface {
	Ensure(ctx context.Context, userID string) error                                              // Creates a zero-balance wallet if missing
	Increase(ctx context.Context, userID string, amount decimal.Decimal) (decimal.Decimal, error) // Adds amount, returns new balance
	Decrease(ctx context.Context, userID string, amount decimal.Decimal) (decimal.Decimal, error) // Subtracts amount if covered
}

// WalletReader defines wallet reads.
type WalletReader interface {
	GetByUserID(ctx context.Context, userID string) (*models.WalletDB, error)
}

// TxRunner runs functions in a database transaction carried by the context.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	AfterCommit(ctx context.Context, fn func())
}

// Publisher publishes balance change events.
type Publisher interface {
	Publish(ctx context.Context, txn models.Transaction)
}

// WalletService applies balance changes and announces them once they are committed.
type WalletService struct {
	writeRepo WalletWriter
	readRepo  WalletReader
	tx        TxRunner
	publisher Publisher
}

// NewWalletService creates a new WalletService.
func NewWalletService(
	writeRepo WalletWriter,
	readRepo WalletReader,
	tx TxRunner,
	publisher Publisher,
) *WalletService {
	return &WalletService{
		writeRepo: writeRepo,
		readRepo:  readRepo,
		tx:        tx,
		publisher: publisher,
	}
}

// EnsureWallet creates the user's wallet if it does not exist.
func (s *WalletService) EnsureWallet(ctx context.Context, userID string) error {
	if err := s.writeRepo.Ensure(ctx, userID); err != nil {
		logger.Log.Errorw("failed to ensure wallet", "userID", userID, "error", err)
		return err
	}
	return nil
}

// GetBalance returns the user's balance, creating an empty wallet on first access.
func (s *WalletService) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	if err := s.EnsureWallet(ctx, userID); err != nil {
		return decimal.Zero, err
	}

	wallet, err := s.readRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
		return decimal.Zero, err
	}
	return wallet.Balance, nil
}

// Increase credits the wallet and returns the new balance.
func (s *WalletService) Increase(ctx context.Context, userID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	balance, err := s.writeRepo.Increase(ctx, userID, amount)
	if err != nil {
		logger.Log.Errorw("failed to increase balance", "userID", userID, "amount", amount, "error", err)
		return decimal.Zero, err
	}

	s.announce(ctx, userID, models.OperationCredit, amount, balance)
	return balance, nil
}

// Decrease debits the wallet and returns the new balance. A balance that does not
// cover amount yields models.ErrInsufficientFunds and nothing changes.
func (s *WalletService) Decrease(ctx context.Context, userID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	if err := s.EnsureWallet(ctx, userID); err != nil {
		return decimal.Zero, err
	}

	balance, err := s.writeRepo.Decrease(ctx, userID, amount)
	if err != nil {
		logger.Log.Errorw("failed to decrease balance", "userID", userID, "amount", amount, "error", err)
		return decimal.Zero, err
	}

	s.announce(ctx, userID, models.OperationDebit, amount, balance)
	return balance, nil
}

func (s *WalletService) announce(ctx context.Context, userID, operation string, amount, balance decimal.Decimal) {
	txn := models.Transaction{
		TransactionID: uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		Amount:        amount.StringFixed(2),
		Balance:       balance.StringFixed(2),
		UserID:        userID,
		Operation:     operation,
	}
	s.tx.AfterCommit(ctx, func() {
		s.publisher.Publish(ctx, txn)
	})
}

// ValidateAmount accepts positive amounts with at most two decimal places.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount %s must be positive: %w", amount, models.ErrBadRequest)
	}
	if !amount.Equal(amount.Truncate(2)) {
		return fmt.Errorf("amount %s has more than two decimal places: %w", amount, models.ErrBadRequest)
	}
	return nil
}
