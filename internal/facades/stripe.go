package facades

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/stripe-ledger/internal/logger"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// StripeFacade talks to the Stripe API through a stripe-go client.
type StripeFacade struct {
	client *client.API
}

// NewStripeFacade creates a new facade with a configured Stripe client.
func NewStripeFacade(sc *client.API) *StripeFacade {
	return &StripeFacade{client: sc}
}

// NewStripeClient builds a Stripe client for the given secret key.
// A nil backends value uses the default Stripe endpoints.
func NewStripeClient(secretKey string, backends *stripe.Backends) *client.API {
	sc := &client.API{}
	sc.Init(secretKey, backends)
	return sc
}

// CreateCustomer creates a customer for the user. Repeated calls for the same user
// within Stripe's idempotency window return the same customer.
func (f *StripeFacade) CreateCustomer(ctx context.Context, user models.UserDB) (string, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx
	params.SetIdempotencyKey("customer-" + user.ID)
	params.AddMetadata(models.MetadataUserID, user.ID)
	if user.Email != nil {
		params.Email = stripe.String(*user.Email)
	}
	if user.Name != nil {
		params.Name = stripe.String(*user.Name)
	}

	c, err := f.client.Customers.New(params)
	if err != nil {
		return "", providerError("create customer", err)
	}
	return c.ID, nil
}

// CreateSetupIntent creates a setup intent for the customer and returns its client secret.
func (f *StripeFacade) CreateSetupIntent(ctx context.Context, customerID string) (string, error) {
	params := &stripe.SetupIntentParams{
		Customer: stripe.String(customerID),
		Usage:    stripe.String(string(stripe.SetupIntentUsageOffSession)),
	}
	params.Context = ctx

	si, err := f.client.SetupIntents.New(params)
	if err != nil {
		return "", providerError("create setup intent", err)
	}
	return si.ClientSecret, nil
}

// CreatePaymentIntent creates and confirms a top-up payment intent in one call.
func (f *StripeFacade) CreatePaymentIntent(ctx context.Context, req models.ChargeRequest) (*models.ProviderPaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(models.ToMinorUnits(req.Amount)),
		Currency:      stripe.String(req.Currency),
		Customer:      stripe.String(req.CustomerID),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String(string(stripe.PaymentIntentAutomaticPaymentMethodsAllowRedirectsNever)),
		},
	}
	params.Context = ctx
	params.AddMetadata(models.MetadataUserID, req.UserID)
	params.AddMetadata(models.MetadataType, models.PaymentTypeTopUp)

	pi, err := f.client.PaymentIntents.New(params)
	if err != nil {
		return nil, providerError("create payment intent", err)
	}
	return toPaymentIntent(pi), nil
}

// CreatePaidInvoice issues an invoice for a charge that was already collected and marks
// it paid out of band, so the customer gets a document for the payment.
func (f *StripeFacade) CreatePaidInvoice(ctx context.Context, req models.ChargeRequest, paymentIntentID string) (string, error) {
	invParams := &stripe.InvoiceParams{
		Customer:                    stripe.String(req.CustomerID),
		AutoAdvance:                 stripe.Bool(false),
		CollectionMethod:            stripe.String(string(stripe.InvoiceCollectionMethodChargeAutomatically)),
		PendingInvoiceItemsBehavior: stripe.String("exclude"),
	}
	invParams.Context = ctx
	invParams.AddMetadata("payment_intent", paymentIntentID)

	inv, err := f.client.Invoices.New(invParams)
	if err != nil {
		return "", providerError("create invoice", err)
	}

	itemParams := &stripe.InvoiceItemParams{
		Customer:    stripe.String(req.CustomerID),
		Invoice:     stripe.String(inv.ID),
		Amount:      stripe.Int64(models.ToMinorUnits(req.Amount)),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String("Wallet top-up"),
	}
	itemParams.Context = ctx

	if _, err := f.client.InvoiceItems.New(itemParams); err != nil {
		return "", providerError("create invoice item", err)
	}

	finParams := &stripe.InvoiceFinalizeInvoiceParams{AutoAdvance: stripe.Bool(false)}
	finParams.Context = ctx

	if _, err := f.client.Invoices.FinalizeInvoice(inv.ID, finParams); err != nil {
		return "", providerError("finalize invoice", err)
	}

	payParams := &stripe.InvoicePayParams{PaidOutOfBand: stripe.Bool(true)}
	payParams.Context = ctx

	if _, err := f.client.Invoices.Pay(inv.ID, payParams); err != nil {
		return "", providerError("pay invoice", err)
	}

	return inv.ID, nil
}

// CreateSubscription creates a monthly price and subscribes the customer to it.
func (f *StripeFacade) CreateSubscription(ctx context.Context, req models.SubscriptionRequest) (*models.ProviderSubscription, error) {
	usage := stripe.PriceRecurringUsageTypeLicensed
	name := fmt.Sprintf("Fixed subscription - %s %s/month", req.Amount.StringFixed(2), req.Currency)
	if req.Metered {
		usage = stripe.PriceRecurringUsageTypeMetered
		name = fmt.Sprintf("Usage-based subscription - %s %s/unit", req.Amount.StringFixed(2), req.Currency)
	}

	priceParams := &stripe.PriceParams{
		Currency:   stripe.String(req.Currency),
		UnitAmount: stripe.Int64(models.ToMinorUnits(req.Amount)),
		Recurring: &stripe.PriceRecurringParams{
			Interval:  stripe.String(string(stripe.PriceRecurringIntervalMonth)),
			UsageType: stripe.String(string(usage)),
		},
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String(name),
		},
	}
	priceParams.Context = ctx

	price, err := f.client.Prices.New(priceParams)
	if err != nil {
		return nil, providerError("create price", err)
	}

	subParams := &stripe.SubscriptionParams{
		Customer:             stripe.String(req.CustomerID),
		DefaultPaymentMethod: stripe.String(req.PaymentMethodID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(price.ID)},
		},
	}
	subParams.Context = ctx
	subParams.AddMetadata(models.MetadataUserID, req.UserID)

	sub, err := f.client.Subscriptions.New(subParams)
	if err != nil {
		return nil, providerError("create subscription", err)
	}

	return &models.ProviderSubscription{
		ID:         sub.ID,
		CustomerID: req.CustomerID,
		PriceID:    price.ID,
		Status:     string(sub.Status),
	}, nil
}

// GetInvoice fetches an invoice. A missing invoice is models.ErrNotFound.
func (f *StripeFacade) GetInvoice(ctx context.Context, invoiceID string) (*models.ProviderInvoice, error) {
	params := &stripe.InvoiceParams{}
	params.Context = ctx

	inv, err := f.client.Invoices.Get(invoiceID, params)
	if err != nil {
		return nil, providerError("get invoice", err)
	}

	res := &models.ProviderInvoice{
		ID:     inv.ID,
		Status: string(inv.Status),
		PDFURL: inv.InvoicePDF,
	}
	if inv.Customer != nil {
		res.CustomerID = inv.Customer.ID
	}
	if inv.Subscription != nil {
		res.SubscriptionID = inv.Subscription.ID
	}
	return res, nil
}

// GetPaymentMethod fetches a payment method. Card fields stay empty for other types.
func (f *StripeFacade) GetPaymentMethod(ctx context.Context, paymentMethodID string) (*models.PaymentMethodDetails, error) {
	params := &stripe.PaymentMethodParams{}
	params.Context = ctx

	pm, err := f.client.PaymentMethods.Get(paymentMethodID, params)
	if err != nil {
		return nil, providerError("get payment method", err)
	}

	details := &models.PaymentMethodDetails{
		ProviderPaymentMethodID: pm.ID,
		Type:                    string(pm.Type),
	}
	if pm.Card != nil {
		details.Last4 = pm.Card.Last4
		details.Brand = string(pm.Card.Brand)
		if pm.Card.ExpMonth != 0 {
			details.ExpMonth = stripe.Int64(pm.Card.ExpMonth)
		}
		if pm.Card.ExpYear != 0 {
			details.ExpYear = stripe.Int64(pm.Card.ExpYear)
		}
	}
	if pm.BillingDetails != nil && pm.BillingDetails.Name != "" {
		details.CardholderName = stripe.String(pm.BillingDetails.Name)
	}
	return details, nil
}

// DetachPaymentMethod detaches a payment method from its customer.
func (f *StripeFacade) DetachPaymentMethod(ctx context.Context, paymentMethodID string) error {
	params := &stripe.PaymentMethodDetachParams{}
	params.Context = ctx

	if _, err := f.client.PaymentMethods.Detach(paymentMethodID, params); err != nil {
		return providerError("detach payment method", err)
	}
	return nil
}

func toPaymentIntent(pi *stripe.PaymentIntent) *models.ProviderPaymentIntent {
	res := &models.ProviderPaymentIntent{
		ID:       pi.ID,
		Status:   string(pi.Status),
		Amount:   models.FromMinorUnits(pi.Amount),
		Currency: string(pi.Currency),
		Metadata: pi.Metadata,
	}
	if pi.Customer != nil {
		res.CustomerID = pi.Customer.ID
	}
	if pi.Invoice != nil {
		res.InvoiceID = pi.Invoice.ID
	}
	if pi.PaymentMethod != nil {
		res.PaymentMethodID = pi.PaymentMethod.ID
	}
	return res
}

// providerError maps a Stripe failure to the ledger's error kinds.
func providerError(op string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
		logger.Log.Warnw("stripe resource missing", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	logger.Log.Errorw("stripe request failed", "op", op, "error", err)
	return fmt.Errorf("%s: %w: %w", op, models.ErrUpstream, err)
}
