package services

//go:generate mockgen -source=payment.go -destination=payment_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/stripe-ledger/internal/logger"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
)

// Pagination bounds for payment history.
const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
	MaxHistoryPage      = 1_000_000
)

// PaymentMethodStore persists linked payment methods.
type PaymentMethodStore interface {
	Save(ctx context.Context, userID string, d models.PaymentMethodDetails) (*models.PaymentMethodDB, error)
	ListByUserID(ctx context.Context, userID string, filter models.PaymentMethodFilter) ([]models.PaymentMethodDB, error)
	Find(ctx context.Context, userID, paymentMethodID string) (*models.PaymentMethodDB, error)
	SoftDelete(ctx context.Context, userID, paymentMethodID string) error
}

// PaymentStore persists payments and reads history.
type PaymentStore interface {
	Save(ctx context.Context, p models.PaymentDB) (*models.PaymentDB, error)
	ListHistory(ctx context.Context, userID string, limit, offset int) ([]models.PaymentHistoryItem, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
}

// SubscriptionStore persists subscriptions.
type SubscriptionStore interface {
	Save(ctx context.Context, s models.SubscriptionDB) (*models.SubscriptionDB, error)
	UpdateStatus(ctx context.Context, providerSubscriptionID, status string) (bool, error)
}

// PaymentService is the local record of payment methods, payments and subscriptions.
// It never calls the payment provider.
type PaymentService struct {
	methods       PaymentMethodStore
	payments      PaymentStore
	subscriptions SubscriptionStore
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(methods PaymentMethodStore, payments PaymentStore, subscriptions SubscriptionStore) *PaymentService {
	return &PaymentService{
		methods:       methods,
		payments:      payments,
		subscriptions: subscriptions,
	}
}

// ListPaymentMethods returns the user's active payment methods, oldest first.
func (s *PaymentService) ListPaymentMethods(ctx context.Context, userID string, filter models.PaymentMethodFilter) ([]models.PaymentMethodDB, error) {
	methods, err := s.methods.ListByUserID(ctx, userID, filter)
	if err != nil {
		logger.Log.Errorw("failed to list payment methods", "userID", userID, "error", err)
		return nil, err
	}
	return methods, nil
}

// FindPaymentMethod returns the user's payment method by local or provider id.
func (s *PaymentService) FindPaymentMethod(ctx context.Context, userID, paymentMethodID string) (*models.PaymentMethodDB, error) {
	return s.methods.Find(ctx, userID, paymentMethodID)
}

// GetPaymentHistory returns one page of the user's payments, newest first.
func (s *PaymentService) GetPaymentHistory(ctx context.Context, userID string, page, limit int) (*models.PaymentHistory, error) {
	if page < 1 || page > MaxHistoryPage {
		return nil, fmt.Errorf("page %d must be between 1 and %d: %w", page, MaxHistoryPage, models.ErrBadRequest)
	}
	if limit < 1 || limit > MaxHistoryLimit {
		return nil, fmt.Errorf("limit %d must be between 1 and %d: %w", limit, MaxHistoryLimit, models.ErrBadRequest)
	}

	items, err := s.payments.ListHistory(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		logger.Log.Errorw("failed to list payment history", "userID", userID, "page", page, "error", err)
		return nil, err
	}

	total, err := s.payments.CountByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count payments", "userID", userID, "error", err)
		return nil, err
	}

	return &models.PaymentHistory{Items: items, Total: total}, nil
}

// StorePaymentMethod links a payment method to the user.
func (s *PaymentService) StorePaymentMethod(ctx context.Context, userID string, d models.PaymentMethodDetails) (*models.PaymentMethodDB, error) {
	pm, err := s.methods.Save(ctx, userID, d)
	if err != nil {
		logger.Log.Errorw("failed to store payment method", "userID", userID, "paymentMethodID", d.ProviderPaymentMethodID, "error", err)
		return nil, err
	}
	logger.Log.Infow("payment method stored", "userID", userID, "paymentMethodID", d.ProviderPaymentMethodID)
	return pm, nil
}

// StorePayment records a payment. An already recorded provider payment id is
// models.ErrConflict and the stored payment is kept.
func (s *PaymentService) StorePayment(ctx context.Context, p models.PaymentDB) (*models.PaymentDB, error) {
	stored, err := s.payments.Save(ctx, p)
	if err != nil {
		logger.Log.Errorw("failed to store payment", "paymentID", p.ProviderPaymentID, "error", err)
		return nil, err
	}
	return stored, nil
}

// StoreSubscription records a subscription once.
func (s *PaymentService) StoreSubscription(ctx context.Context, sub models.SubscriptionDB) (*models.SubscriptionDB, error) {
	stored, err := s.subscriptions.Save(ctx, sub)
	if err != nil {
		if !errors.Is(err, models.ErrConflict) {
			logger.Log.Errorw("failed to store subscription", "subscriptionID", sub.ProviderSubscriptionID, "error", err)
		}
		return nil, err
	}
	return stored, nil
}

// UpdateSubscriptionStatus sets the status reported by the provider.
func (s *PaymentService) UpdateSubscriptionStatus(ctx context.Context, providerSubscriptionID, status string) error {
	changed, err := s.subscriptions.UpdateStatus(ctx, providerSubscriptionID, status)
	if err != nil {
		logger.Log.Errorw("failed to update subscription status", "subscriptionID", providerSubscriptionID, "status", status, "error", err)
		return err
	}
	if changed {
		logger.Log.Infow("subscription status updated", "subscriptionID", providerSubscriptionID, "status", status)
	}
	return nil
}

// SoftDeletePaymentMethod unlinks the user's payment method locally.
func (s *PaymentService) SoftDeletePaymentMethod(ctx context.Context, userID, paymentMethodID string) error {
	if err := s.methods.SoftDelete(ctx, userID, paymentMethodID); err != nil {
		logger.Log.Errorw("failed to delete payment method", "userID", userID, "paymentMethodID", paymentMethodID, "error", err)
		return err
	}
	return nil
}
