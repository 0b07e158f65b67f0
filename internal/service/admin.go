package service

import (
	"context"
	"fmt"

	"affiliate_portal/internal/model"
)

// AdminService backs the administrative dashboard. Removals and resets are
// idempotent: operating on an absent target succeeds silently.
type AdminService struct {
	customers   AccountRepository
	packages    PackageRepository
	queue       QueueRepository
	commissions CommissionRepository
}

func NewAdminService(
	customers AccountRepository,
	packages PackageRepository,
	queue QueueRepository,
	commissions CommissionRepository,
) *AdminService {
	return &AdminService{
		customers:   customers,
		packages:    packages,
		queue:       queue,
		commissions: commissions,
	}
}

func (s *AdminService) Overview(ctx context.Context) (*model.AdminOverview, error) {
	customers, err := s.customers.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	packages, err := s.packages.ListPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	commissions, err := s.commissions.ListCommissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}

	queue, err := s.queue.GetQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}

	return &model.AdminOverview{
		Customers:   customers,
		Packages:    packages,
		Commissions: commissions,
		Queue:       queue,
	}, nil
}

func (s *AdminService) RemoveCustomer(ctx context.Context, email string) error {
	if err := s.customers.DeleteCustomer(ctx, email); err != nil {
		return fmt.Errorf("failed to remove customer: %w", err)
	}
	return nil
}

func (s *AdminService) UpdatePackage(ctx context.Context, level int, pkg model.Package) error {
	if err := s.packages.UpsertPackage(ctx, level, pkg); err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}
	return nil
}

func (s *AdminService) RemoveFromQueue(ctx context.Context, email string) error {
	if err := s.queue.RemoveFromQueue(ctx, email); err != nil {
		return fmt.Errorf("failed to remove from queue: %w", err)
	}
	return nil
}

func (s *AdminService) ResetCommissions(ctx context.Context, email string) error {
	if err := s.commissions.ResetCommission(ctx, email); err != nil {
		return fmt.Errorf("failed to reset commissions: %w", err)
	}
	return nil
}
