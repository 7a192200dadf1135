package store

import (
	"context"
	"testing"
	"time"

	"deepcheck_api/models/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDeleteSubscriptionNullsInvoiceReference(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "billing@example.com")

	sub := &tables.Subscription{
		ID: uuid.New().String(), UserID: user.ID,
		Provider: tables.PaymentProviderStripe, ProviderSubscriptionID: "sub_1",
		ProviderCustomerID: "cus_1", Tier: tables.TierPremium,
		Status: tables.SubscriptionActive, Interval: tables.IntervalMonth,
		Amount: 1900, Currency: "usd",
		CurrentPeriodStart: time.Now(), CurrentPeriodEnd: time.Now().AddDate(0, 1, 0),
	}
	require.NoError(t, s.CreateSubscription(ctx, sub))

	invoice := &tables.Invoice{
		ID: uuid.New().String(), UserID: user.ID, SubscriptionID: &sub.ID,
		Provider: tables.PaymentProviderStripe, ProviderInvoiceID: "in_1",
		Status: tables.InvoicePaid, Amount: 1900, AmountPaid: 1900, Currency: "usd",
	}
	require.NoError(t, s.CreateInvoice(ctx, invoice))

	require.NoError(t, s.DeleteSubscription(ctx, sub.ID))

	_, err := s.CurrentSubscription(ctx, user.ID)
	require.ErrorIs(t, err, ErrNotFound)

	var got tables.Invoice
	has, err := s.session(ctx).Where("id = ?", invoice.ID).Get(&got)
	require.NoError(t, err)
	require.True(t, has)
	require.Nil(t, got.SubscriptionID)
}

func TestDeleteInvoiceNullsPaymentReference(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "billing2@example.com")

	invoice := &tables.Invoice{
		ID: uuid.New().String(), UserID: user.ID,
		Provider: tables.PaymentProviderStripe, ProviderInvoiceID: "in_2",
		Status: tables.InvoicePaid, Amount: 1900, AmountPaid: 1900, Currency: "usd",
	}
	require.NoError(t, s.CreateInvoice(ctx, invoice))

	payment := &tables.Payment{
		ID: uuid.New().String(), UserID: user.ID, InvoiceID: &invoice.ID,
		Provider: tables.PaymentProviderStripe, ProviderPaymentID: "py_1",
		Status: tables.PaymentSucceeded, Amount: 1900, Currency: "usd",
	}
	require.NoError(t, s.CreatePayment(ctx, payment))

	require.NoError(t, s.DeleteInvoice(ctx, invoice.ID))

	var got tables.Payment
	has, err := s.session(ctx).Where("id = ?", payment.ID).Get(&got)
	require.NoError(t, err)
	require.True(t, has)
	require.Nil(t, got.InvoiceID)
}

func TestSeedPricingPlansIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SeedPricingPlans(ctx))
	require.NoError(t, s.SeedPricingPlans(ctx))

	plans, err := s.ListActivePlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	require.Equal(t, tables.TierFree, plans[0].Tier)

	premium, err := s.GetPlanByTier(ctx, tables.TierPremium)
	require.NoError(t, err)
	require.EqualValues(t, 1900, premium.MonthlyPrice)
}
