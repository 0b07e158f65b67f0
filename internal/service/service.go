package service

import (
	"context"
	"errors"

	"affiliate_portal/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Service struct {
	*AccountService
	*AffiliateService
	*AdminService
}

func NewService(accounts *AccountService, affiliate *AffiliateService, admin *AdminService) *Service {
	return &Service{
		AccountService:   accounts,
		AffiliateService: affiliate,
		AdminService:     admin,
	}
}

type AccountServiceI interface {
	Authenticate(ctx context.Context, identifier, password string) (*model.Principal, error)
	UpdateCredentials(ctx context.Context, email, newUsername, newPassword string) error
	RecoverEmail(ctx context.Context, username string) (string, error)
	RecoverUsername(ctx context.Context, email string) (string, error)
	Dashboard(ctx context.Context, email string) (*model.Dashboard, error)
	TrainingGuides(ctx context.Context) []model.Guide
	QueueEntries(ctx context.Context) ([]model.QueueEntry, error)
	AvailableUpgrades(ctx context.Context, email string) ([]model.PackageOption, error)
}

type AffiliateServiceI interface {
	RegisterAndEnqueue(ctx context.Context, email, username, password string, referrer *string) error
	UpgradeAndReward(ctx context.Context, email string, newLevel int) error
}

type AdminServiceI interface {
	Overview(ctx context.Context) (*model.AdminOverview, error)
	RemoveCustomer(ctx context.Context, email string) error
	UpdatePackage(ctx context.Context, level int, pkg model.Package) error
	RemoveFromQueue(ctx context.Context, email string) error
	ResetCommissions(ctx context.Context, email string) error
}

type AccountRepository interface {
	CreateCustomer(ctx context.Context, customer *model.Customer) error
	GetCustomer(ctx context.Context, email string) (*model.Customer, error)
	GetCustomerByUsername(ctx context.Context, username string) (*model.Customer, error)
	ListCustomers(ctx context.Context) (map[string]model.Customer, error)
	UpdateCredentials(ctx context.Context, email, newUsername, newPassword string) error
	UpgradeTier(ctx context.Context, email string, newLevel int) error
	DeleteCustomer(ctx context.Context, email string) error
}

type PackageRepository interface {
	GetPackage(ctx context.Context, level int) (model.Package, error)
	ListPackages(ctx context.Context) (map[string]model.Package, error)
	UpsertPackage(ctx context.Context, level int, pkg model.Package) error
}

type QueueRepository interface {
	Enqueue(ctx context.Context, email, referrer string) error
	QueuePosition(ctx context.Context, email string) (int, error)
	RemoveFromQueue(ctx context.Context, email string) error
	GetQueue(ctx context.Context) ([]model.QueueEntry, error)
}

type CommissionRepository interface {
	CreditCommission(ctx context.Context, email string, amount float64) error
	GetCommission(ctx context.Context, email string) (*model.Commission, error)
	ListCommissions(ctx context.Context) (map[string]model.Commission, error)
	ResetCommission(ctx context.Context, email string) error
}
