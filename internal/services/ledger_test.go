package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerMocks struct {
	payments *MockPaymentLedger
	wallet   *MockWalletCrediter
	tx       *MockTxRunner
}

func newLedgerService(t *testing.T) (*LedgerService, ledgerMocks) {
	ctrl := gomock.NewController(t)
	m := ledgerMocks{
		payments: NewMockPaymentLedger(ctrl),
		wallet:   NewMockWalletCrediter(ctrl),
		tx:       NewMockTxRunner(ctrl),
	}
	inlineTx(m.tx)
	return NewLedgerService(m.payments, m.wallet, m.tx), m
}

func topUp(status string) models.PaymentDB {
	return models.PaymentDB{
		UserID:            "user_1",
		Amount:            dec("50"),
		ProviderPaymentID: "pi_1",
		Type:              models.PaymentTypeTopUp,
		Status:            status,
	}
}

func TestLedger_RecordPayment_NewSucceededTopUpCredits(t *testing.T) {
	ctx := context.Background()
	svc, m := newLedgerService(t)

	p := topUp(models.PaymentStatusSucceeded)
	m.payments.EXPECT().InsertIfAbsent(gomock.Any(), p).Return(true, nil)
	m.wallet.EXPECT().Increase(gomock.Any(), "user_1", decEq("50")).Return(dec("50"), nil)

	applied, err := svc.RecordPayment(ctx, p)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestLedger_RecordPayment_NewPendingDoesNotCredit(t *testing.T) {
	svc, m := newLedgerService(t)

	p := topUp("processing")
	m.payments.EXPECT().InsertIfAbsent(gomock.Any(), p).Return(true, nil)

	applied, err := svc.RecordPayment(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestLedger_RecordPayment_SubscriptionDoesNotCredit(t *testing.T) {
	svc, m := newLedgerService(t)

	p := topUp(models.PaymentStatusSucceeded)
	p.Type = models.PaymentTypeSubscription
	m.payments.EXPECT().InsertIfAbsent(gomock.Any(), p).Return(true, nil)

	applied, err := svc.RecordPayment(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestLedger_RecordPayment_DuplicateSucceededIsNoop(t *testing.T) {
	svc, m := newLedgerService(t)

	p := topUp(models.PaymentStatusSucceeded)
	stored := p
	stored.ID = "pay_1"

	m.payments.EXPECT().InsertIfAbsent(gomock.Any(), p).Return(false, nil)
	m.payments.EXPECT().GetForUpdate(gomock.Any(), "pi_1").Return(&stored, nil)

	applied, err := svc.RecordPayment(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestLedger_RecordPayment_TransitionToSucceededCreditsStoredAmount(t *testing.T) {
	svc, m := newLedgerService(t)

	stored := topUp("processing")
	stored.Amount = dec("42")

	p := topUp(models.PaymentStatusSucceeded)
	m.payments.EXPECT().InsertIfAbsent(gomock.Any(), p).Return(false, nil)
	m.payments.EXPECT().GetForUpdate(gomock.Any(), "pi_1").Return(&stored, nil)
	m.payments.EXPECT().UpdateStatus(gomock.Any(), "pi_1", models.PaymentStatusSucceeded).Return(nil)
	m.wallet.EXPECT().Increase(gomock.Any(), "user_1", decEq("42")).Return(dec("42"), nil)

	applied, err := svc.RecordPayment(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestLedger_RecordPayment_NonSucceededTransitionWritesStatusOnly(t *testing.T) {
	svc, m := newLedgerService(t)

	stored := topUp("processing")
	p := topUp("requires_payment_method")

	m.payments.EXPECT().InsertIfAbsent(gomock.Any(), p).Return(false, nil)
	m.payments.EXPECT().GetForUpdate(gomock.Any(), "pi_1").Return(&stored, nil)
	m.payments.EXPECT().UpdateStatus(gomock.Any(), "pi_1", "requires_payment_method").Return(nil)

	applied, err := svc.RecordPayment(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestLedger_RecordPayment_SucceededIsTerminal(t *testing.T) {
	svc, m := newLedgerService(t)

	stored := topUp(models.PaymentStatusSucceeded)
	p := topUp("requires_payment_method")

	m.payments.EXPECT().InsertIfAbsent(gomock.Any(), p).Return(false, nil)
	m.payments.EXPECT().GetForUpdate(gomock.Any(), "pi_1").Return(&stored, nil)

	applied, err := svc.RecordPayment(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestLedger_RecordPayment_CreditFailureFails(t *testing.T) {
	svc, m := newLedgerService(t)

	p := topUp(models.PaymentStatusSucceeded)
	m.payments.EXPECT().InsertIfAbsent(gomock.Any(), p).Return(true, nil)
	m.wallet.EXPECT().Increase(gomock.Any(), "user_1", decEq("50")).Return(dec("0"), errors.New("db down"))

	applied, err := svc.RecordPayment(context.Background(), p)
	assert.Error(t, err)
	assert.False(t, applied)
}
