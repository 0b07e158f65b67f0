package repository

import (
	"context"
	"time"

	"affiliate_portal/internal/model"

	"github.com/pkg/errors"
)

func (r *Repository) loadCommissions() (map[string]model.Commission, error) {
	commissions := make(map[string]model.Commission)
	if err := r.store.Load(commissionsCollection, &commissions); err != nil {
		return nil, errors.Wrap(err, "failed to load commissions")
	}
	return commissions, nil
}

// CreditCommission adds amount to a referrer's running total and records a
// payment event. The record is created on first credit.
func (r *Repository) CreditCommission(ctx context.Context, email string, amount float64) error {
	r.commissionsMu.Lock()
	defer r.commissionsMu.Unlock()

	commissions, err := r.loadCommissions()
	if err != nil {
		return err
	}

	commission := commissions[email]
	commission.TotalEarned += amount
	commission.Payments = append(commission.Payments, model.Payment{
		Amount: amount,
		Date:   time.Now().UTC(),
	})
	commissions[email] = commission

	return errors.Wrap(r.store.Save(commissionsCollection, commissions), "failed to save commissions")
}

func (r *Repository) GetCommission(ctx context.Context, email string) (*model.Commission, error) {
	r.commissionsMu.Lock()
	defer r.commissionsMu.Unlock()

	commissions, err := r.loadCommissions()
	if err != nil {
		return nil, err
	}

	commission, ok := commissions[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &commission, nil
}

func (r *Repository) ListCommissions(ctx context.Context) (map[string]model.Commission, error) {
	r.commissionsMu.Lock()
	defer r.commissionsMu.Unlock()

	return r.loadCommissions()
}

// ResetCommission zeroes a referrer's total and clears the payment history
// while keeping the record itself. Resetting an absent record is a no-op.
func (r *Repository) ResetCommission(ctx context.Context, email string) error {
	r.commissionsMu.Lock()
	defer r.commissionsMu.Unlock()

	commissions, err := r.loadCommissions()
	if err != nil {
		return err
	}

	commission, ok := commissions[email]
	if !ok {
		return nil
	}

	commission.TotalEarned = 0
	commission.Payments = []model.Payment{}
	commissions[email] = commission

	return errors.Wrap(r.store.Save(commissionsCollection, commissions), "failed to save commissions")
}
