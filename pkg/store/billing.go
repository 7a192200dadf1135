package store

import (
	"context"

	"deepcheck_api/models/tables"

	"github.com/google/uuid"
	"xorm.io/xorm"
)

func (s *Store) CreateSubscription(ctx context.Context, sub *tables.Subscription) error {
	_, err := s.session(ctx).Insert(sub)
	return err
}

// CurrentSubscription returns the most recently created subscription for the
// user, if any.
func (s *Store) CurrentSubscription(ctx context.Context, userID string) (*tables.Subscription, error) {
	var sub tables.Subscription
	has, err := s.session(ctx).Where("user_id = ?", userID).Desc("created_at").Get(&sub)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotFound
	}
	return &sub, nil
}

// DeleteSubscription nulls the reference on invoices rather than deleting
// them: billing history outlives the subscription object.
func (s *Store) DeleteSubscription(ctx context.Context, id string) error {
	return s.inTx(ctx, func(sess *xorm.Session) error {
		if _, err := sess.Exec("UPDATE invoices SET subscription_id = NULL WHERE subscription_id = ?", id); err != nil {
			return err
		}
		n, err := sess.Where("id = ?", id).Delete(new(tables.Subscription))
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *Store) CreateInvoice(ctx context.Context, invoice *tables.Invoice) error {
	_, err := s.session(ctx).Insert(invoice)
	return err
}

// DeleteInvoice nulls the reference on payments, mirroring the subscription
// delete policy one level down.
func (s *Store) DeleteInvoice(ctx context.Context, id string) error {
	return s.inTx(ctx, func(sess *xorm.Session) error {
		if _, err := sess.Exec("UPDATE payments SET invoice_id = NULL WHERE invoice_id = ?", id); err != nil {
			return err
		}
		n, err := sess.Where("id = ?", id).Delete(new(tables.Invoice))
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *Store) CreatePayment(ctx context.Context, payment *tables.Payment) error {
	_, err := s.session(ctx).Insert(payment)
	return err
}

func (s *Store) CreatePaymentMethod(ctx context.Context, method *tables.PaymentMethod) error {
	_, err := s.session(ctx).Insert(method)
	return err
}

func (s *Store) GetPlanByTier(ctx context.Context, tier tables.UserTier) (*tables.PricingPlan, error) {
	var plan tables.PricingPlan
	has, err := s.session(ctx).Where("tier = ?", tier).Get(&plan)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotFound
	}
	return &plan, nil
}

func (s *Store) ListActivePlans(ctx context.Context) ([]tables.PricingPlan, error) {
	var plans []tables.PricingPlan
	err := s.session(ctx).Where("is_active = ?", true).Asc("display_order").Find(&plans)
	return plans, err
}

// SeedPricingPlans inserts the default catalog, skipping tiers that already
// exist.
func (s *Store) SeedPricingPlans(ctx context.Context) error {
	defaults := []tables.PricingPlan{
		{
			Name: "Free", Tier: tables.TierFree, Currency: "usd",
			Description:      "Casual checking for individuals.",
			DailyChecksLimit: 20, MonthlyChecksLimit: 300,
			Features: []string{"browser_extension"},
			IsActive: true, DisplayOrder: 0,
		},
		{
			Name: "Premium", Tier: tables.TierPremium, Currency: "usd",
			Description:  "Higher limits plus API access.",
			MonthlyPrice: 1900, YearlyPrice: 19000,
			DailyChecksLimit: 200, MonthlyChecksLimit: 4000,
			Features: []string{"browser_extension", "api_access", "webhooks"},
			IsActive: true, DisplayOrder: 1,
		},
		{
			Name: "Enterprise", Tier: tables.TierEnterprise, Currency: "usd",
			Description:  "Unmetered analysis for teams.",
			MonthlyPrice: 9900, YearlyPrice: 99000,
			DailyChecksLimit: 5000, MonthlyChecksLimit: 100000,
			Features: []string{"browser_extension", "api_access", "webhooks", "priority_queue", "sso"},
			IsActive: true, DisplayOrder: 2,
		},
	}

	return s.inTx(ctx, func(sess *xorm.Session) error {
		for _, plan := range defaults {
			has, err := sess.Where("tier = ?", plan.Tier).Exist(new(tables.PricingPlan))
			if err != nil {
				return err
			}
			if has {
				continue
			}
			plan.ID = uuid.New().String()
			if _, err := sess.Insert(&plan); err != nil {
				return err
			}
		}
		return nil
	})
}
