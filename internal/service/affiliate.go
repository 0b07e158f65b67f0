package service

import (
	"context"
	"errors"
	"fmt"

	"affiliate_portal/internal/model"
	"affiliate_portal/internal/repository"
)

// Referral bonuses in currency units, paid to the referrer.
const (
	RegistrationBonus = 10
	UpgradeBonus      = 20
)

// AffiliateService orchestrates the multi-entity workflows: a registration
// touches the directory, the queue and possibly the commission ledger; an
// upgrade touches the directory and possibly the ledger.
type AffiliateService struct {
	customers   AccountRepository
	queue       QueueRepository
	commissions CommissionRepository
}

func NewAffiliateService(customers AccountRepository, queue QueueRepository, commissions CommissionRepository) *AffiliateService {
	return &AffiliateService{
		customers:   customers,
		queue:       queue,
		commissions: commissions,
	}
}

// RegisterAndEnqueue creates the customer, places them in the waiting
// queue, and pays the referrer the registration bonus when the referrer is
// a known customer. A failed registration has no side effects; the bonus is
// paid at most once per registration.
func (s *AffiliateService) RegisterAndEnqueue(ctx context.Context, email, username, password string, referrer *string) error {
	customer := &model.Customer{
		Email:    email,
		Username: username,
		Password: password,
		Referrer: referrer,
	}
	if err := s.customers.CreateCustomer(ctx, customer); err != nil {
		return err
	}

	var referrerEmail string
	if referrer != nil {
		referrerEmail = *referrer
	}
	if err := s.queue.Enqueue(ctx, email, referrerEmail); err != nil {
		return fmt.Errorf("failed to enqueue registrant: %w", err)
	}

	if referrerEmail != "" {
		if err := s.creditIfCustomer(ctx, referrerEmail, RegistrationBonus); err != nil {
			return err
		}
	}
	return nil
}

// UpgradeAndReward raises the customer's tier and pays the upgrade bonus to
// their referrer when the referrer is a known customer. A failed upgrade
// never pays a bonus.
func (s *AffiliateService) UpgradeAndReward(ctx context.Context, email string, newLevel int) error {
	if err := s.customers.UpgradeTier(ctx, email, newLevel); err != nil {
		return err
	}

	customer, err := s.customers.GetCustomer(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get upgraded customer: %w", err)
	}

	if customer.HasReferrer() {
		if err := s.creditIfCustomer(ctx, *customer.Referrer, UpgradeBonus); err != nil {
			return err
		}
	}
	return nil
}

func (s *AffiliateService) creditIfCustomer(ctx context.Context, referrerEmail string, amount float64) error {
	_, err := s.customers.GetCustomer(ctx, referrerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to resolve referrer: %w", err)
	}

	if err := s.commissions.CreditCommission(ctx, referrerEmail, amount); err != nil {
		return fmt.Errorf("failed to credit referrer: %w", err)
	}
	return nil
}
