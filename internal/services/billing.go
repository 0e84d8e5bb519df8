package services

//go:generate mockgen -source=billing.go -destination=billing_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/stripe-ledger/internal/logger"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// UserStore reads users and links them to provider customers.
type UserStore interface {
	GetByID(ctx context.Context, userID string) (*models.UserDB, error)
	SetStripeCustomerID(ctx context.Context, userID, customerID string) (string, error)
}

// BillingProvider is the payment provider API used by the billing flows.
type BillingProvider interface {
	CreateCustomer(ctx context.Context, user models.UserDB) (string, error)
	CreateSetupIntent(ctx context.Context, customerID string) (string, error)
	CreatePaymentIntent(ctx context.Context, req models.ChargeRequest) (*models.ProviderPaymentIntent, error)
	CreatePaidInvoice(ctx context.Context, req models.ChargeRequest, paymentIntentID string) (string, error)
	CreateSubscription(ctx context.Context, req models.SubscriptionRequest) (*models.ProviderSubscription, error)
	GetInvoice(ctx context.Context, invoiceID string) (*models.ProviderInvoice, error)
	DetachPaymentMethod(ctx context.Context, paymentMethodID string) error
}

// PaymentRecorder records provider payments exactly once.
type PaymentRecorder interface {
	RecordPayment(ctx context.Context, p models.PaymentDB) (bool, error)
}

// BillingRecords is the local record keeping used by the billing flows.
type BillingRecords interface {
	FindPaymentMethod(ctx context.Context, userID, paymentMethodID string) (*models.PaymentMethodDB, error)
	StoreSubscription(ctx context.Context, sub models.SubscriptionDB) (*models.SubscriptionDB, error)
	SoftDeletePaymentMethod(ctx context.Context, userID, paymentMethodID string) error
}

// BillingOption configures a BillingService.
type BillingOption func(*BillingService)

// WithCurrency sets the currency used for charges and prices.
func WithCurrency(currency string) BillingOption {
	return func(s *BillingService) {
		if currency != "" {
			s.currency = currency
		}
	}
}

// WithDetachOnUnlink makes UnlinkPaymentMethod also detach the method upstream.
func WithDetachOnUnlink(detach bool) BillingOption {
	return func(s *BillingService) {
		s.detachOnUnlink = detach
	}
}

// BillingService runs the user-facing payment flows against the provider and keeps
// the local ledger in step with them.
type BillingService struct {
	users    UserStore
	provider BillingProvider
	ledger   PaymentRecorder
	records  BillingRecords

	currency       string
	detachOnUnlink bool
}

// NewBillingService creates a new BillingService. The currency defaults to usd.
func NewBillingService(
	users UserStore,
	provider BillingProvider,
	ledger PaymentRecorder,
	records BillingRecords,
	opts ...BillingOption,
) *BillingService {
	s := &BillingService{
		users:    users,
		provider: provider,
		ledger:   ledger,
		records:  records,
		currency: "usd",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetOrCreateCustomer returns the user's provider customer id, creating the customer on
// first use. Concurrent first calls end up with one customer id.
func (s *BillingService) GetOrCreateCustomer(ctx context.Context, userID string) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return "", err
	}
	if user.StripeCustomerID != nil && *user.StripeCustomerID != "" {
		return *user.StripeCustomerID, nil
	}

	customerID, err := s.provider.CreateCustomer(ctx, *user)
	if err != nil {
		return "", err
	}

	stored, err := s.users.SetStripeCustomerID(ctx, userID, customerID)
	if err != nil {
		logger.Log.Errorw("failed to store customer id", "userID", userID, "customerID", customerID, "error", err)
		return "", err
	}
	if stored != customerID {
		logger.Log.Warnw("customer id already set by a concurrent request", "userID", userID, "created", customerID, "stored", stored)
	}
	return stored, nil
}

// customerFor resolves the user's customer id, reporting an empty one as a bad request.
func (s *BillingService) customerFor(ctx context.Context, userID string) (string, error) {
	customerID, err := s.GetOrCreateCustomer(ctx, userID)
	if err != nil {
		return "", err
	}
	if customerID == "" {
		return "", fmt.Errorf("user %s has no customer id: %w", userID, models.ErrBadRequest)
	}
	return customerID, nil
}

// CreateSetupIntent starts linking a payment method and returns the client secret.
func (s *BillingService) CreateSetupIntent(ctx context.Context, userID string) (string, error) {
	customerID, err := s.customerFor(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.provider.CreateSetupIntent(ctx, customerID)
}

// Charge tops up the wallet with a synchronously confirmed card payment. A succeeded
// payment gets a paid invoice and credits the wallet; other statuses are only recorded.
func (s *BillingService) Charge(ctx context.Context, userID string, amount decimal.Decimal, paymentMethodID string) (*models.ChargeResult, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if paymentMethodID == "" {
		return nil, fmt.Errorf("payment method is required: %w", models.ErrBadRequest)
	}

	customerID, err := s.customerFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	req := models.ChargeRequest{
		UserID:          userID,
		CustomerID:      customerID,
		PaymentMethodID: paymentMethodID,
		Amount:          amount,
		Currency:        s.currency,
	}

	pi, err := s.provider.CreatePaymentIntent(ctx, req)
	if err != nil {
		return nil, err
	}

	payment := models.PaymentDB{
		UserID:            userID,
		Amount:            amount,
		ProviderPaymentID: pi.ID,
		Type:              models.PaymentTypeTopUp,
		Status:            pi.Status,
	}
	if pm, err := s.records.FindPaymentMethod(ctx, userID, paymentMethodID); err == nil {
		payment.PaymentMethodID = &pm.ID
	}

	if pi.Status == models.PaymentStatusSucceeded {
		invoiceID, err := s.provider.CreatePaidInvoice(ctx, req, pi.ID)
		if err != nil {
			logger.Log.Errorw("failed to issue invoice for payment", "paymentID", pi.ID, "error", err)
		} else {
			payment.InvoiceID = &invoiceID
		}
	}

	if _, err := s.ledger.RecordPayment(ctx, payment); err != nil {
		return nil, err
	}

	res := &models.ChargeResult{
		PaymentID: pi.ID,
		Status:    pi.Status,
		Success:   pi.Status == models.PaymentStatusSucceeded,
	}
	if payment.InvoiceID != nil {
		res.InvoiceID = *payment.InvoiceID
	}
	return res, nil
}

// CreateSubscription subscribes the user to a monthly price of amount, per period or
// per reported unit when metered.
func (s *BillingService) CreateSubscription(ctx context.Context, userID string, amount decimal.Decimal, paymentMethodID string, metered bool) (*models.SubscriptionDB, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if paymentMethodID == "" {
		return nil, fmt.Errorf("payment method is required: %w", models.ErrBadRequest)
	}

	customerID, err := s.customerFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	sub, err := s.provider.CreateSubscription(ctx, models.SubscriptionRequest{
		UserID:          userID,
		CustomerID:      customerID,
		PaymentMethodID: paymentMethodID,
		Amount:          amount,
		Currency:        s.currency,
		Metered:         metered,
	})
	if err != nil {
		return nil, err
	}

	record := models.SubscriptionDB{
		UserID:                 userID,
		ProviderSubscriptionID: sub.ID,
		PriceID:                sub.PriceID,
		Status:                 sub.Status,
	}
	stored, err := s.records.StoreSubscription(ctx, record)
	if errors.Is(err, models.ErrConflict) {
		logger.Log.Infow("subscription already recorded", "subscriptionID", sub.ID)
		return &record, nil
	}
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// RetrieveInvoicePdfURL returns the PDF link of one of the user's invoices.
func (s *BillingService) RetrieveInvoicePdfURL(ctx context.Context, userID, invoiceID string) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.StripeCustomerID == nil {
		return "", fmt.Errorf("invoice %s: %w", invoiceID, models.ErrNotFound)
	}

	inv, err := s.provider.GetInvoice(ctx, invoiceID)
	if err != nil {
		return "", err
	}
	if inv.CustomerID != *user.StripeCustomerID {
		logger.Log.Warnw("invoice requested by another customer", "userID", userID, "invoiceID", invoiceID)
		return "", fmt.Errorf("invoice %s: %w", invoiceID, models.ErrNotFound)
	}
	if inv.PDFURL == "" {
		return "", fmt.Errorf("invoice %s has no pdf: %w", invoiceID, models.ErrNotFound)
	}
	return inv.PDFURL, nil
}

// UnlinkPaymentMethod soft-deletes the user's payment method and, when configured,
// detaches it from the customer upstream.
func (s *BillingService) UnlinkPaymentMethod(ctx context.Context, userID, paymentMethodID string) error {
	if paymentMethodID == "" {
		return fmt.Errorf("payment method is required: %w", models.ErrBadRequest)
	}

	if err := s.records.SoftDeletePaymentMethod(ctx, userID, paymentMethodID); err != nil {
		return err
	}

	if !s.detachOnUnlink {
		return nil
	}

	pm, err := s.records.FindPaymentMethod(ctx, userID, paymentMethodID)
	if err != nil {
		logger.Log.Errorw("failed to resolve payment method for detach", "paymentMethodID", paymentMethodID, "error", err)
		return nil
	}
	if err := s.provider.DetachPaymentMethod(ctx, pm.ProviderPaymentMethodID); err != nil {
		logger.Log.Errorw("failed to detach payment method", "paymentMethodID", pm.ProviderPaymentMethodID, "error", err)
	}
	return nil
}
