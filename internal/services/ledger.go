package services

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/stripe-ledger/internal/logger"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// PaymentLedger is the payment storage used to record provider payments exactly once.
type PaymentLedger interface {
	InsertIfAbsent(ctx context.Context, p models.PaymentDB) (bool, error)
	GetForUpdate(ctx context.Context, providerPaymentID string) (*models.PaymentDB, error)
	UpdateStatus(ctx context.Context, providerPaymentID, status string) error
}

// WalletCrediter credits wallets.
type WalletCrediter interface {
	Increase(ctx context.Context, userID string, amount decimal.Decimal) (decimal.Decimal, error)
}

// LedgerService records provider payments and credits top-ups at most once, no matter
// how many times or through which path a payment is reported.
type LedgerService struct {
	payments PaymentLedger
	wallet   WalletCrediter
	tx       TxRunner
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(payments PaymentLedger, wallet WalletCrediter, tx TxRunner) *LedgerService {
	return &LedgerService{
		payments: payments,
		wallet:   wallet,
		tx:       tx,
	}
}

// RecordPayment stores p or moves the stored payment to p.Status, and credits the
// wallet when a top-up reaches succeeded for the first time. It reports whether
// anything changed. Succeeded is terminal: later statuses are ignored.
func (s *LedgerService) RecordPayment(ctx context.Context, p models.PaymentDB) (bool, error) {
	var applied bool

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		inserted, err := s.payments.InsertIfAbsent(ctx, p)
		if err != nil {
			return err
		}

		if inserted {
			applied = true
			if p.Status == models.PaymentStatusSucceeded && p.Type == models.PaymentTypeTopUp {
				_, err = s.wallet.Increase(ctx, p.UserID, p.Amount)
			}
			return err
		}

		stored, err := s.payments.GetForUpdate(ctx, p.ProviderPaymentID)
		if err != nil {
			return err
		}
		if stored.Status == p.Status || stored.Status == models.PaymentStatusSucceeded {
			return nil
		}

		if err := s.payments.UpdateStatus(ctx, p.ProviderPaymentID, p.Status); err != nil {
			return err
		}
		applied = true

		if p.Status == models.PaymentStatusSucceeded && stored.Type == models.PaymentTypeTopUp {
			_, err = s.wallet.Increase(ctx, stored.UserID, stored.Amount)
		}
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to record payment", "paymentID", p.ProviderPaymentID, "status", p.Status, "error", err)
		return false, err
	}

	if applied {
		logger.Log.Infow("payment recorded", "paymentID", p.ProviderPaymentID, "status", p.Status, "type", p.Type)
	} else {
		logger.Log.Infow("payment already recorded", "paymentID", p.ProviderPaymentID, "status", p.Status)
	}
	return applied, nil
}
