package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
)

const testWebhookSecret = "whsec_test_secret"

type webhookMocks struct {
	cache    *MockEventCache
	provider *MockPaymentMethodFetcher
	users    *MockCustomerResolver
	records  *MockWebhookRecords
	ledger   *MockPaymentRecorder
}

func newWebhookService(t *testing.T) (*WebhookService, webhookMocks) {
	ctrl := gomock.NewController(t)
	m := webhookMocks{
		cache:    NewMockEventCache(ctrl),
		provider: NewMockPaymentMethodFetcher(ctrl),
		users:    NewMockCustomerResolver(ctrl),
		records:  NewMockWebhookRecords(ctrl),
		ledger:   NewMockPaymentRecorder(ctrl),
	}
	svc := NewWebhookService(testWebhookSecret, 5*time.Minute, m.cache, m.provider, m.users, m.records, m.ledger)
	return svc, m
}

// signedEvent builds an event payload and a valid signature header for it.
func signedEvent(t *testing.T, id string, eventType stripe.EventType, object map[string]any) ([]byte, string) {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"id":          id,
		"object":      "event",
		"type":        eventType,
		"api_version": stripe.APIVersion,
		"created":     time.Now().Unix(),
		"data":        map[string]any{"object": object},
	})
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: payload,
		Secret:  testWebhookSecret,
	})
	return payload, signed.Header
}

func expectFresh(m webhookMocks, eventID string) {
	m.cache.EXPECT().IsProcessed(gomock.Any(), eventID).Return(false, nil)
}

func expectMarked(m webhookMocks, eventID string) {
	m.cache.EXPECT().MarkProcessed(gomock.Any(), eventID).Return(nil)
}

func TestWebhook_Verify(t *testing.T) {
	svc, _ := newWebhookService(t)
	payload, header := signedEvent(t, "evt_1", "ping", map[string]any{"id": "x"})

	event, err := svc.Verify(payload, header)
	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, stripe.EventType("ping"), event.Type)
}

func TestWebhook_RejectsBadSignatureWithoutSideEffects(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWebhookService(t)
	payload, header := signedEvent(t, "evt_1", EventPaymentIntentSucceeded, map[string]any{"id": "pi_1"})

	tampered := append([]byte{}, payload...)
	tampered[len(tampered)-2] = ' '
	expired := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testWebhookSecret,
		Timestamp: time.Now().Add(-time.Hour),
	})

	tests := []struct {
		name    string
		payload []byte
		header  string
	}{
		{name: "missing header", payload: payload, header: ""},
		{name: "tampered payload", payload: tampered, header: header},
		{name: "garbage header", payload: payload, header: "t=1,v1=deadbeef"},
		{name: "expired timestamp", payload: payload, header: expired.Header},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Handle(ctx, tt.payload, tt.header)
			assert.ErrorIs(t, err, models.ErrSignatureInvalid)
		})
	}
}

func TestWebhook_RejectsOtherSecret(t *testing.T) {
	svc, _ := newWebhookService(t)
	payload, _ := signedEvent(t, "evt_1", "ping", map[string]any{"id": "x"})
	other := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{Payload: payload, Secret: "whsec_other"})

	_, err := svc.Handle(context.Background(), payload, other.Header)
	assert.ErrorIs(t, err, models.ErrSignatureInvalid)
}

func TestWebhook_DuplicateEvent(t *testing.T) {
	svc, m := newWebhookService(t)
	payload, header := signedEvent(t, "evt_dup", EventPaymentIntentSucceeded, map[string]any{"id": "pi_1"})

	m.cache.EXPECT().IsProcessed(gomock.Any(), "evt_dup").Return(true, nil)

	outcome, err := svc.Handle(context.Background(), payload, header)
	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, outcome)
}

func TestWebhook_UnknownTypeIgnored(t *testing.T) {
	svc, m := newWebhookService(t)
	payload, header := signedEvent(t, "evt_1", "charge.refunded", map[string]any{"id": "ch_1"})

	expectFresh(m, "evt_1")

	outcome, err := svc.Handle(context.Background(), payload, header)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, outcome)
}

func TestWebhook_SetupIntentStoresCard(t *testing.T) {
	svc, m := newWebhookService(t)
	payload, header := signedEvent(t, "evt_si", EventSetupIntentSucceeded, map[string]any{
		"id":             "seti_1",
		"customer":       "cus_1",
		"payment_method": "pm_card",
	})

	details := &models.PaymentMethodDetails{ProviderPaymentMethodID: "pm_card", Type: "card", Last4: "4242", Brand: "visa"}
	expectFresh(m, "evt_si")
	m.provider.EXPECT().GetPaymentMethod(gomock.Any(), "pm_card").Return(details, nil)
	m.users.EXPECT().GetByStripeCustomerID(gomock.Any(), "cus_1").Return(&models.UserDB{ID: "user_1"}, nil)
	m.records.EXPECT().StorePaymentMethod(gomock.Any(), "user_1", *details).Return(&models.PaymentMethodDB{ID: "pm_local"}, nil)
	expectMarked(m, "evt_si")

	outcome, err := svc.Handle(context.Background(), payload, header)
	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, outcome)
}

func TestWebhook_SetupIntentAlreadyLinked(t *testing.T) {
	svc, m := newWebhookService(t)
	payload, header := signedEvent(t, "evt_si", EventSetupIntentSucceeded, map[string]any{
		"id":             "seti_1",
		"customer":       "cus_1",
		"payment_method": "pm_card",
	})

	details := &models.PaymentMethodDetails{ProviderPaymentMethodID: "pm_card", Type: "card"}
	expectFresh(m, "evt_si")
	m.provider.EXPECT().GetPaymentMethod(gomock.Any(), "pm_card").Return(details, nil)
	m.users.EXPECT().GetByStripeCustomerID(gomock.Any(), "cus_1").Return(&models.UserDB{ID: "user_1"}, nil)
	m.records.EXPECT().StorePaymentMethod(gomock.Any(), "user_1", *details).
		Return(nil, fmt.Errorf("payment method: %w", models.ErrConflict))
	expectMarked(m, "evt_si")

	outcome, err := svc.Handle(context.Background(), payload, header)
	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, outcome)
}

func TestWebhook_SetupIntentIgnored(t *testing.T) {
	t.Run("no payment method", func(t *testing.T) {
		svc, m := newWebhookService(t)
		payload, header := signedEvent(t, "evt_si", EventSetupIntentSucceeded, map[string]any{"id": "seti_1", "customer": "cus_1"})

		expectFresh(m, "evt_si")
		expectMarked(m, "evt_si")

		outcome, err := svc.Handle(context.Background(), payload, header)
		require.NoError(t, err)
		assert.Equal(t, OutcomeIgnored, outcome)
	})

	t.Run("not a card", func(t *testing.T) {
		svc, m := newWebhookService(t)
		payload, header := signedEvent(t, "evt_si", EventSetupIntentSucceeded, map[string]any{
			"id": "seti_1", "customer": "cus_1", "payment_method": "pm_sepa",
		})

		expectFresh(m, "evt_si")
		m.provider.EXPECT().GetPaymentMethod(gomock.Any(), "pm_sepa").
			Return(&models.PaymentMethodDetails{ProviderPaymentMethodID: "pm_sepa", Type: "sepa_debit"}, nil)
		expectMarked(m, "evt_si")

		outcome, err := svc.Handle(context.Background(), payload, header)
		require.NoError(t, err)
		assert.Equal(t, OutcomeIgnored, outcome)
	})
}

func TestWebhook_SetupIntentUnknownCustomerIsRetried(t *testing.T) {
	svc, m := newWebhookService(t)
	payload, header := signedEvent(t, "evt_si", EventSetupIntentSucceeded, map[string]any{
		"id": "seti_1", "customer": "cus_stranger", "payment_method": "pm_card",
	})

	expectFresh(m, "evt_si")
	m.provider.EXPECT().GetPaymentMethod(gomock.Any(), "pm_card").
		Return(&models.PaymentMethodDetails{ProviderPaymentMethodID: "pm_card", Type: "card"}, nil)
	m.users.EXPECT().GetByStripeCustomerID(gomock.Any(), "cus_stranger").
		Return(nil, fmt.Errorf("user: %w", models.ErrNotFound))

	// No MarkProcessed expectation: a redelivery must reach the handler again.
	_, err := svc.Handle(context.Background(), payload, header)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestWebhook_PaymentIntentSucceeded(t *testing.T) {
	svc, m := newWebhookService(t)
	payload, header := signedEvent(t, "evt_pi", EventPaymentIntentSucceeded, map[string]any{
		"id":             "pi_1",
		"amount":         5000,
		"currency":       "usd",
		"customer":       "cus_1",
		"payment_method": "pm_card",
		"status":         "succeeded",
		"metadata":       map[string]string{"user_id": "user_1", "type": "top-up"},
	})

	expectFresh(m, "evt_pi")
	m.users.EXPECT().GetByStripeCustomerID(gomock.Any(), "cus_1").Return(&models.UserDB{ID: "user_1"}, nil)
	m.records.EXPECT().FindPaymentMethod(gomock.Any(), "user_1", "pm_card").Return(&models.PaymentMethodDB{ID: "pm_local"}, nil)
	m.ledger.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.PaymentDB) (bool, error) {
			assert.Equal(t, "user_1", p.UserID)
			assert.Equal(t, "pi_1", p.ProviderPaymentID)
			assert.True(t, p.Amount.Equal(dec("50")))
			assert.Equal(t, models.PaymentTypeTopUp, p.Type)
			assert.Equal(t, models.PaymentStatusSucceeded, p.Status)
			assert.Nil(t, p.InvoiceID)
			require.NotNil(t, p.PaymentMethodID)
			assert.Equal(t, "pm_local", *p.PaymentMethodID)
			return true, nil
		})
	expectMarked(m, "evt_pi")

	outcome, err := svc.Handle(context.Background(), payload, header)
	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, outcome)
}

func TestWebhook_PaymentIntentFailed(t *testing.T) {
	svc, m := newWebhookService(t)
	payload, header := signedEvent(t, "evt_pf", EventPaymentIntentFailed, map[string]any{
		"id":       "pi_2",
		"amount":   1000,
		"customer": "cus_1",
		"status":   "requires_payment_method",
	})

	expectFresh(m, "evt_pf")
	m.users.EXPECT().GetByStripeCustomerID(gomock.Any(), "cus_1").Return(&models.UserDB{ID: "user_1"}, nil)
	m.ledger.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.PaymentDB) (bool, error) {
			assert.Equal(t, "requires_payment_method", p.Status)
			assert.Equal(t, models.PaymentTypeTopUp, p.Type)
			return true, nil
		})
	expectMarked(m, "evt_pf")

	outcome, err := svc.Handle(context.Background(), payload, header)
	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, outcome)
}

func TestWebhook_PaymentIntentForInvoiceIsSubscription(t *testing.T) {
	svc, m := newWebhookService(t)
	payload, header := signedEvent(t, "evt_pi", EventPaymentIntentSucceeded, map[string]any{
		"id":       "pi_3",
		"amount":   999,
		"customer": "cus_1",
		"invoice":  "in_1",
		"status":   "succeeded",
	})

	expectFresh(m, "evt_pi")
	m.users.EXPECT().GetByStripeCustomerID(gomock.Any(), "cus_1").Return(&models.UserDB{ID: "user_1"}, nil)
	m.ledger.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.PaymentDB) (bool, error) {
			assert.Equal(t, models.PaymentTypeSubscription, p.Type)
			require.NotNil(t, p.InvoiceID)
			assert.Equal(t, "in_1", *p.InvoiceID)
			assert.True(t, p.Amount.Equal(dec("9.99")))
			return true, nil
		})
	expectMarked(m, "evt_pi")

	_, err := svc.Handle(context.Background(), payload, header)
	require.NoError(t, err)
}

func TestWebhook_PaymentIntentFallsBackToMetadataUser(t *testing.T) {
	svc, m := newWebhookService(t)
	payload, header := signedEvent(t, "evt_pi", EventPaymentIntentSucceeded, map[string]any{
		"id":       "pi_4",
		"amount":   100,
		"customer": "cus_unlinked",
		"status":   "succeeded",
		"metadata": map[string]string{"user_id": "user_7"},
	})

	expectFresh(m, "evt_pi")
	m.users.EXPECT().GetByStripeCustomerID(gomock.Any(), "cus_unlinked").Return(nil, models.ErrNotFound)
	m.ledger.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.PaymentDB) (bool, error) {
			assert.Equal(t, "user_7", p.UserID)
			return false, nil
		})
	expectMarked(m, "evt_pi")

	_, err := svc.Handle(context.Background(), payload, header)
	require.NoError(t, err)
}

func TestWebhook_PaymentIntentUnknownUserIsRetried(t *testing.T) {
	svc, m := newWebhookService(t)
	payload, header := signedEvent(t, "evt_pi", EventPaymentIntentSucceeded, map[string]any{
		"id": "pi_5", "amount": 100, "customer": "cus_stranger", "status": "succeeded",
	})

	expectFresh(m, "evt_pi")
	m.users.EXPECT().GetByStripeCustomerID(gomock.Any(), "cus_stranger").Return(nil, models.ErrNotFound)

	_, err := svc.Handle(context.Background(), payload, header)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestWebhook_HandlerErrorIsNotMarked(t *testing.T) {
	svc, m := newWebhookService(t)
	payload, header := signedEvent(t, "evt_pi", EventPaymentIntentSucceeded, map[string]any{
		"id": "pi_1", "amount": 100, "customer": "cus_1", "status": "succeeded",
	})

	expectFresh(m, "evt_pi")
	m.users.EXPECT().GetByStripeCustomerID(gomock.Any(), "cus_1").Return(&models.UserDB{ID: "user_1"}, nil)
	m.ledger.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

	_, err := svc.Handle(context.Background(), payload, header)
	assert.Error(t, err)
}

func TestWebhook_CacheFailuresDoNotBlockProcessing(t *testing.T) {
	svc, m := newWebhookService(t)
	payload, header := signedEvent(t, "evt_sub", EventSubscriptionUpdated, map[string]any{
		"id": "sub_1", "customer": "cus_1", "status": "past_due",
	})

	m.cache.EXPECT().IsProcessed(gomock.Any(), "evt_sub").Return(false, errors.New("redis down"))
	m.records.EXPECT().UpdateSubscriptionStatus(gomock.Any(), "sub_1", "past_due").Return(nil)
	m.cache.EXPECT().MarkProcessed(gomock.Any(), "evt_sub").Return(errors.New("redis down"))

	outcome, err := svc.Handle(context.Background(), payload, header)
	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, outcome)
}

func TestWebhook_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	records := NewMockWebhookRecords(ctrl)
	svc := NewWebhookService(testWebhookSecret, 0, nil, NewMockPaymentMethodFetcher(ctrl),
		NewMockCustomerResolver(ctrl), records, NewMockPaymentRecorder(ctrl))

	payload, header := signedEvent(t, "evt_del", EventSubscriptionDeleted, map[string]any{"id": "sub_1", "status": "canceled"})
	records.EXPECT().UpdateSubscriptionStatus(gomock.Any(), "sub_1", models.SubscriptionStatusCanceled).Return(nil)

	outcome, err := svc.Handle(context.Background(), payload, header)
	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, outcome)
}

func TestWebhook_InvoicePaymentSucceeded(t *testing.T) {
	t.Run("subscription invoice", func(t *testing.T) {
		svc, m := newWebhookService(t)
		payload, header := signedEvent(t, "evt_in", EventInvoicePaymentSucceeded, map[string]any{
			"id": "in_1", "customer": "cus_1", "subscription": "sub_1", "amount_paid": 999,
		})

		expectFresh(m, "evt_in")
		m.records.EXPECT().UpdateSubscriptionStatus(gomock.Any(), "sub_1", models.SubscriptionStatusActive).Return(nil)
		expectMarked(m, "evt_in")

		outcome, err := svc.Handle(context.Background(), payload, header)
		require.NoError(t, err)
		assert.Equal(t, OutcomeProcessed, outcome)
	})

	t.Run("one-off invoice", func(t *testing.T) {
		svc, m := newWebhookService(t)
		payload, header := signedEvent(t, "evt_in", EventInvoicePaymentSucceeded, map[string]any{
			"id": "in_2", "customer": "cus_1", "amount_paid": 5000,
		})

		expectFresh(m, "evt_in")
		expectMarked(m, "evt_in")

		outcome, err := svc.Handle(context.Background(), payload, header)
		require.NoError(t, err)
		assert.Equal(t, OutcomeIgnored, outcome)
	})

	t.Run("unknown subscription is retried", func(t *testing.T) {
		svc, m := newWebhookService(t)
		payload, header := signedEvent(t, "evt_in", EventInvoicePaymentSucceeded, map[string]any{
			"id": "in_3", "customer": "cus_1", "subscription": "sub_unknown",
		})

		expectFresh(m, "evt_in")
		m.records.EXPECT().UpdateSubscriptionStatus(gomock.Any(), "sub_unknown", models.SubscriptionStatusActive).
			Return(fmt.Errorf("subscription: %w", models.ErrNotFound))

		_, err := svc.Handle(context.Background(), payload, header)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestWebhook_SubscriptionCreated(t *testing.T) {
	object := map[string]any{
		"id":       "sub_1",
		"customer": "cus_1",
		"status":   "incomplete",
		"items": map[string]any{
			"data": []any{map[string]any{"price": map[string]any{"id": "price_1"}}},
		},
	}
	want := models.SubscriptionDB{
		UserID:                 "user_1",
		ProviderSubscriptionID: "sub_1",
		PriceID:                "price_1",
		Status:                 "incomplete",
	}

	t.Run("stored", func(t *testing.T) {
		svc, m := newWebhookService(t)
		payload, header := signedEvent(t, "evt_sc", EventSubscriptionCreated, object)

		expectFresh(m, "evt_sc")
		m.users.EXPECT().GetByStripeCustomerID(gomock.Any(), "cus_1").Return(&models.UserDB{ID: "user_1"}, nil)
		m.records.EXPECT().StoreSubscription(gomock.Any(), want).Return(&want, nil)
		expectMarked(m, "evt_sc")

		outcome, err := svc.Handle(context.Background(), payload, header)
		require.NoError(t, err)
		assert.Equal(t, OutcomeProcessed, outcome)
	})

	t.Run("already stored", func(t *testing.T) {
		svc, m := newWebhookService(t)
		payload, header := signedEvent(t, "evt_sc", EventSubscriptionCreated, object)

		expectFresh(m, "evt_sc")
		m.users.EXPECT().GetByStripeCustomerID(gomock.Any(), "cus_1").Return(&models.UserDB{ID: "user_1"}, nil)
		m.records.EXPECT().StoreSubscription(gomock.Any(), want).Return(nil, fmt.Errorf("subscription: %w", models.ErrConflict))
		expectMarked(m, "evt_sc")

		outcome, err := svc.Handle(context.Background(), payload, header)
		require.NoError(t, err)
		assert.Equal(t, OutcomeProcessed, outcome)
	})

	t.Run("unknown customer", func(t *testing.T) {
		svc, m := newWebhookService(t)
		payload, header := signedEvent(t, "evt_sc", EventSubscriptionCreated, object)

		expectFresh(m, "evt_sc")
		m.users.EXPECT().GetByStripeCustomerID(gomock.Any(), "cus_1").Return(nil, models.ErrNotFound)

		_, err := svc.Handle(context.Background(), payload, header)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestWebhook_SubscriptionUpdatedAndDeleted(t *testing.T) {
	svc, m := newWebhookService(t)

	payload, header := signedEvent(t, "evt_su", EventSubscriptionUpdated, map[string]any{"id": "sub_1", "status": "past_due"})
	expectFresh(m, "evt_su")
	m.records.EXPECT().UpdateSubscriptionStatus(gomock.Any(), "sub_1", "past_due").Return(nil)
	expectMarked(m, "evt_su")

	outcome, err := svc.Handle(context.Background(), payload, header)
	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, outcome)

	payload, header = signedEvent(t, "evt_sd", EventSubscriptionDeleted, map[string]any{"id": "sub_1", "status": "canceled"})
	expectFresh(m, "evt_sd")
	m.records.EXPECT().UpdateSubscriptionStatus(gomock.Any(), "sub_1", models.SubscriptionStatusCanceled).Return(nil)
	expectMarked(m, "evt_sd")

	outcome, err = svc.Handle(context.Background(), payload, header)
	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, outcome)
}
