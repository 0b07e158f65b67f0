package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"affiliate_portal/internal/model"
	"affiliate_portal/internal/repository"
)

const welcomeMessage = "Welcome! Promote your unique referral link to start earning. " +
	"Forward your domain to your referral link, connect your payout account, " +
	"and watch the training guides for step-by-step instructions."

// AdminCredentials is the externally configured administrative identity.
// It authenticates without existing in the customer directory.
type AdminCredentials struct {
	Username string
	Password string
}

type AccountService struct {
	customers   AccountRepository
	packages    PackageRepository
	queue       QueueRepository
	commissions CommissionRepository

	admin AdminCredentials
}

func NewAccountService(
	customers AccountRepository,
	packages PackageRepository,
	queue QueueRepository,
	commissions CommissionRepository,
	admin AdminCredentials,
) *AccountService {
	return &AccountService{
		customers:   customers,
		packages:    packages,
		queue:       queue,
		commissions: commissions,
		admin:       admin,
	}
}

// Authenticate resolves a login identifier and password to a principal.
// The admin identity matches the configured credentials and becomes the
// administrative principal; everyone else logs in by username with an
// exact password comparison.
func (s *AccountService) Authenticate(ctx context.Context, identifier, password string) (*model.Principal, error) {
	if identifier == s.admin.Username && password == s.admin.Password {
		return &model.Principal{Subject: s.admin.Username, Admin: true}, nil
	}

	customer, err := s.customers.GetCustomerByUsername(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	if customer.Password != password {
		return nil, ErrInvalidCredentials
	}
	return &model.Principal{Subject: customer.Email}, nil
}

func (s *AccountService) UpdateCredentials(ctx context.Context, email, newUsername, newPassword string) error {
	err := s.customers.UpdateCredentials(ctx, email, newUsername, newPassword)
	if err != nil {
		return fmt.Errorf("failed to update credentials: %w", err)
	}
	return nil
}

// RecoverEmail finds the email registered under a username.
func (s *AccountService) RecoverEmail(ctx context.Context, username string) (string, error) {
	customer, err := s.customers.GetCustomerByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	return customer.Email, nil
}

// RecoverUsername finds the username registered under an email.
func (s *AccountService) RecoverUsername(ctx context.Context, email string) (string, error) {
	customer, err := s.customers.GetCustomer(ctx, email)
	if err != nil {
		return "", err
	}
	return customer.Username, nil
}

// Dashboard aggregates the member dashboard for one customer: profile,
// resolved package, guides, commission summary and queue position.
func (s *AccountService) Dashboard(ctx context.Context, email string) (*model.Dashboard, error) {
	customer, err := s.customers.GetCustomer(ctx, email)
	if err != nil {
		return nil, err
	}

	pkg, err := s.packages.GetPackage(ctx, customer.PackageLevel)
	if err != nil {
		return nil, err
	}

	commission, err := s.commissions.GetCommission(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		commission = &model.Commission{Payments: []model.Payment{}}
	}

	dashboard := &model.Dashboard{
		Customer:       *customer,
		Package:        pkg,
		Guides:         s.TrainingGuides(ctx),
		Commission:     *commission,
		WelcomeMessage: welcomeMessage,
	}

	position, err := s.queue.QueuePosition(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	} else {
		dashboard.QueuePosition = &position
	}

	return dashboard, nil
}

func (s *AccountService) QueueEntries(ctx context.Context) ([]model.QueueEntry, error) {
	entries, err := s.queue.GetQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	return entries, nil
}

// AvailableUpgrades lists the packages strictly above the customer's
// current level, ordered by level.
func (s *AccountService) AvailableUpgrades(ctx context.Context, email string) ([]model.PackageOption, error) {
	customer, err := s.customers.GetCustomer(ctx, email)
	if err != nil {
		return nil, err
	}

	packages, err := s.packages.ListPackages(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]model.PackageOption, 0, len(packages))
	for key, pkg := range packages {
		level, err := strconv.Atoi(key)
		if err != nil || level <= customer.PackageLevel {
			continue
		}
		options = append(options, model.PackageOption{
			Level:      level,
			Name:       pkg.Name,
			Price:      pkg.Price,
			GuideCount: pkg.GuideCount,
		})
	}

	sort.Slice(options, func(i, j int) bool { return options[i].Level < options[j].Level })
	return options, nil
}
