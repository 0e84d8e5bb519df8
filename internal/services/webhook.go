package services

//go:generate mockgen -source=webhook.go -destination=webhook_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sbilibin2017/stripe-ledger/internal/logger"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
)

// Outcome tells the caller what happened to a delivered event.
type Outcome string

const (
	OutcomeProcessed Outcome = "processed"
	OutcomeIgnored   Outcome = "ignored"
	OutcomeDuplicate Outcome = "duplicate"
)

// Handled provider event types.
const (
	EventSetupIntentSucceeded    stripe.EventType = "setup_intent.succeeded"
	EventPaymentIntentSucceeded  stripe.EventType = "payment_intent.succeeded"
	EventPaymentIntentFailed     stripe.EventType = "payment_intent.payment_failed"
	EventInvoicePaymentSucceeded stripe.EventType = "invoice.payment_succeeded"
	EventSubscriptionCreated     stripe.EventType = "customer.subscription.created"
	EventSubscriptionUpdated     stripe.EventType = "customer.subscription.updated"
	EventSubscriptionDeleted     stripe.EventType = "customer.subscription.deleted"
)

// EventCache remembers events that were fully processed.
type EventCache interface {
	IsProcessed(ctx context.Context, eventID string) (bool, error)
	MarkProcessed(ctx context.Context, eventID string) error
}

// CustomerResolver maps provider customers to users.
type CustomerResolver interface {
	GetByStripeCustomerID(ctx context.Context, customerID string) (*models.UserDB, error)
}

// PaymentMethodFetcher reads payment methods from the provider.
type PaymentMethodFetcher interface {
	GetPaymentMethod(ctx context.Context, paymentMethodID string) (*models.PaymentMethodDetails, error)
}

// WebhookRecords is the local record keeping driven by provider events.
type WebhookRecords interface {
	StorePaymentMethod(ctx context.Context, userID string, d models.PaymentMethodDetails) (*models.PaymentMethodDB, error)
	FindPaymentMethod(ctx context.Context, userID, paymentMethodID string) (*models.PaymentMethodDB, error)
	StoreSubscription(ctx context.Context, sub models.SubscriptionDB) (*models.SubscriptionDB, error)
	UpdateSubscriptionStatus(ctx context.Context, providerSubscriptionID, status string) error
}

type eventHandler func(ctx context.Context, event stripe.Event) (Outcome, error)

// WebhookService verifies provider events and reconciles local state with them.
// Deliveries are at least once; every handler is safe to run again for the same event.
type WebhookService struct {
	secret    string
	tolerance time.Duration

	cache    EventCache
	provider PaymentMethodFetcher
	users    CustomerResolver
	records  WebhookRecords
	ledger   PaymentRecorder

	handlers map[stripe.EventType]eventHandler
}

// NewWebhookService creates a new WebhookService. A nil cache disables the duplicate
// fast path; storage uniqueness still keeps handling idempotent.
func NewWebhookService(
	secret string,
	tolerance time.Duration,
	cache EventCache,
	provider PaymentMethodFetcher,
	users CustomerResolver,
	records WebhookRecords,
	ledger PaymentRecorder,
) *WebhookService {
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	s := &WebhookService{
		secret:    secret,
		tolerance: tolerance,
		cache:     cache,
		provider:  provider,
		users:     users,
		records:   records,
		ledger:    ledger,
	}
	s.handlers = map[stripe.EventType]eventHandler{
		EventSetupIntentSucceeded:    s.handleSetupIntentSucceeded,
		EventPaymentIntentSucceeded:  s.handlePaymentIntent,
		EventPaymentIntentFailed:     s.handlePaymentIntent,
		EventInvoicePaymentSucceeded: s.handleInvoicePaymentSucceeded,
		EventSubscriptionCreated:     s.handleSubscriptionCreated,
		EventSubscriptionUpdated:     s.handleSubscriptionUpdated,
		EventSubscriptionDeleted:     s.handleSubscriptionDeleted,
	}
	return s
}

// Verify checks the signature header against the raw payload and decodes the event.
func (s *WebhookService) Verify(payload []byte, sigHeader string) (stripe.Event, error) {
	if strings.TrimSpace(sigHeader) == "" {
		return stripe.Event{}, fmt.Errorf("missing signature: %w", models.ErrSignatureInvalid)
	}
	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, s.secret, webhook.ConstructEventOptions{
		Tolerance:                s.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return stripe.Event{}, fmt.Errorf("%w: %v", models.ErrSignatureInvalid, err)
	}
	return event, nil
}

// Handle verifies and processes one delivery. Nothing is read or written before the
// signature checks out. A returned error means the provider should retry.
func (s *WebhookService) Handle(ctx context.Context, payload []byte, sigHeader string) (Outcome, error) {
	event, err := s.Verify(payload, sigHeader)
	if err != nil {
		logger.Log.Warnw("webhook signature verification failed", "error", err)
		return "", err
	}

	ctx = logger.WithContext(ctx, "event_id", event.ID, "type", event.Type)
	log := logger.FromContext(ctx)

	if s.isProcessed(ctx, event.ID) {
		log.Infow("webhook event already processed")
		return OutcomeDuplicate, nil
	}

	handler, ok := s.handlers[event.Type]
	if !ok {
		log.Infow("unhandled webhook event type")
		return OutcomeIgnored, nil
	}

	outcome, err := handler(ctx, event)
	if err != nil {
		log.Errorw("webhook event handling failed", "error", err)
		return "", err
	}

	s.markProcessed(ctx, event.ID)
	log.Infow("webhook event handled", "outcome", outcome)
	return outcome, nil
}

func (s *WebhookService) isProcessed(ctx context.Context, eventID string) bool {
	if s.cache == nil {
		return false
	}
	processed, err := s.cache.IsProcessed(ctx, eventID)
	if err != nil {
		logger.Log.Warnw("event cache lookup failed", "event_id", eventID, "error", err)
		return false
	}
	return processed
}

func (s *WebhookService) markProcessed(ctx context.Context, eventID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.MarkProcessed(ctx, eventID); err != nil {
		logger.Log.Warnw("failed to mark event processed", "event_id", eventID, "error", err)
	}
}

// --- Event payloads ---

type setupIntentObject struct {
	ID            string `json:"id"`
	Customer      string `json:"customer"`
	PaymentMethod string `json:"payment_method"`
}

type paymentIntentObject struct {
	ID            string            `json:"id"`
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	Customer      string            `json:"customer"`
	Invoice       string            `json:"invoice"`
	PaymentMethod string            `json:"payment_method"`
	Status        string            `json:"status"`
	Metadata      map[string]string `json:"metadata"`
}

type invoiceObject struct {
	ID           string `json:"id"`
	Customer     string `json:"customer"`
	Subscription string `json:"subscription"`
	AmountPaid   int64  `json:"amount_paid"`
}

type subscriptionObject struct {
	ID       string            `json:"id"`
	Customer string            `json:"customer"`
	Status   string            `json:"status"`
	Metadata map[string]string `json:"metadata"`
	Items    struct {
		Data []struct {
			Price struct {
				ID string `json:"id"`
			} `json:"price"`
		} `json:"data"`
	} `json:"items"`
}

func decodeObject(event stripe.Event, v any) error {
	if event.Data == nil {
		return fmt.Errorf("event %s has no data: %w", event.ID, models.ErrBadRequest)
	}
	if err := json.Unmarshal(event.Data.Raw, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", event.Type, err)
	}
	return nil
}

// resolveUser finds the user by customer, falling back to the user id in metadata.
func (s *WebhookService) resolveUser(ctx context.Context, customerID string, metadata map[string]string) (string, error) {
	if customerID != "" {
		user, err := s.users.GetByStripeCustomerID(ctx, customerID)
		if err == nil {
			return user.ID, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			return "", err
		}
	}
	if userID := metadata[models.MetadataUserID]; userID != "" {
		return userID, nil
	}
	return "", fmt.Errorf("customer %q: %w", customerID, models.ErrNotFound)
}

// --- Handlers ---

func (s *WebhookService) handleSetupIntentSucceeded(ctx context.Context, event stripe.Event) (Outcome, error) {
	var si setupIntentObject
	if err := decodeObject(event, &si); err != nil {
		return "", err
	}
	if si.PaymentMethod == "" {
		logger.Log.Warnw("setup intent has no payment method", "setup_intent", si.ID)
		return OutcomeIgnored, nil
	}

	details, err := s.provider.GetPaymentMethod(ctx, si.PaymentMethod)
	if err != nil {
		return "", err
	}
	if details.Type != "card" {
		logger.Log.Warnw("payment method has no card details", "payment_method", si.PaymentMethod, "type", details.Type)
		return OutcomeIgnored, nil
	}

	userID, err := s.resolveUser(ctx, si.Customer, nil)
	if err != nil {
		logger.FromContext(ctx).Warnw("setup intent does not belong to a known user", "setup_intent", si.ID, "customer", si.Customer, "error", err)
		return "", err
	}

	_, err = s.records.StorePaymentMethod(ctx, userID, *details)
	if errors.Is(err, models.ErrConflict) {
		return OutcomeProcessed, nil
	}
	if err != nil {
		return "", err
	}
	return OutcomeProcessed, nil
}

func (s *WebhookService) handlePaymentIntent(ctx context.Context, event stripe.Event) (Outcome, error) {
	var pi paymentIntentObject
	if err := decodeObject(event, &pi); err != nil {
		return "", err
	}

	userID, err := s.resolveUser(ctx, pi.Customer, pi.Metadata)
	if err != nil {
		logger.FromContext(ctx).Warnw("payment intent does not belong to a known user", "payment_intent", pi.ID, "customer", pi.Customer, "error", err)
		return "", err
	}

	payment := models.PaymentDB{
		UserID:            userID,
		Amount:            models.FromMinorUnits(pi.Amount),
		ProviderPaymentID: pi.ID,
		Type:              paymentType(pi),
		Status:            pi.Status,
	}
	if payment.Status == "" && event.Type == EventPaymentIntentSucceeded {
		payment.Status = models.PaymentStatusSucceeded
	}
	if pi.Invoice != "" {
		payment.InvoiceID = &pi.Invoice
	}
	if pi.PaymentMethod != "" {
		if pm, err := s.records.FindPaymentMethod(ctx, userID, pi.PaymentMethod); err == nil {
			payment.PaymentMethodID = &pm.ID
		}
	}

	if _, err := s.ledger.RecordPayment(ctx, payment); err != nil {
		return "", err
	}
	return OutcomeProcessed, nil
}

// paymentType prefers the type the ledger stamped on the intent; invoice-backed
// intents without one are subscription payments.
func paymentType(pi paymentIntentObject) string {
	if t := pi.Metadata[models.MetadataType]; t != "" {
		return t
	}
	if pi.Invoice != "" {
		return models.PaymentTypeSubscription
	}
	return models.PaymentTypeTopUp
}

func (s *WebhookService) handleInvoicePaymentSucceeded(ctx context.Context, event stripe.Event) (Outcome, error) {
	var inv invoiceObject
	if err := decodeObject(event, &inv); err != nil {
		return "", err
	}
	if inv.Subscription == "" {
		return OutcomeIgnored, nil
	}

	if err := s.records.UpdateSubscriptionStatus(ctx, inv.Subscription, models.SubscriptionStatusActive); err != nil {
		return "", err
	}
	logger.Log.Infow("invoice paid", "invoice", inv.ID, "customer", inv.Customer, "amount_paid", inv.AmountPaid)
	return OutcomeProcessed, nil
}

func (s *WebhookService) handleSubscriptionCreated(ctx context.Context, event stripe.Event) (Outcome, error) {
	var sub subscriptionObject
	if err := decodeObject(event, &sub); err != nil {
		return "", err
	}

	userID, err := s.resolveUser(ctx, sub.Customer, sub.Metadata)
	if err != nil {
		logger.FromContext(ctx).Warnw("subscription does not belong to a known user", "subscription", sub.ID, "customer", sub.Customer, "error", err)
		return "", err
	}

	var priceID string
	if len(sub.Items.Data) > 0 {
		priceID = sub.Items.Data[0].Price.ID
	}

	_, err = s.records.StoreSubscription(ctx, models.SubscriptionDB{
		UserID:                 userID,
		ProviderSubscriptionID: sub.ID,
		PriceID:                priceID,
		Status:                 sub.Status,
	})
	if err != nil && !errors.Is(err, models.ErrConflict) {
		return "", err
	}
	return OutcomeProcessed, nil
}

func (s *WebhookService) handleSubscriptionUpdated(ctx context.Context, event stripe.Event) (Outcome, error) {
	var sub subscriptionObject
	if err := decodeObject(event, &sub); err != nil {
		return "", err
	}
	if err := s.records.UpdateSubscriptionStatus(ctx, sub.ID, sub.Status); err != nil {
		return "", err
	}
	return OutcomeProcessed, nil
}

func (s *WebhookService) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) (Outcome, error) {
	var sub subscriptionObject
	if err := decodeObject(event, &sub); err != nil {
		return "", err
	}
	if err := s.records.UpdateSubscriptionStatus(ctx, sub.ID, models.SubscriptionStatusCanceled); err != nil {
		return "", err
	}
	return OutcomeProcessed, nil
}
