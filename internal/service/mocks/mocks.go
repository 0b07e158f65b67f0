package mocks

import (
	"context"

	"affiliate_portal/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockAccountRepository) GetCustomer(ctx context.Context, email string) (*model.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockAccountRepository) GetCustomerByUsername(ctx context.Context, username string) (*model.Customer, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockAccountRepository) ListCustomers(ctx context.Context) (map[string]model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.Customer), args.Error(1)
}

func (m *MockAccountRepository) UpdateCredentials(ctx context.Context, email, newUsername, newPassword string) error {
	args := m.Called(ctx, email, newUsername, newPassword)
	return args.Error(0)
}

func (m *MockAccountRepository) UpgradeTier(ctx context.Context, email string, newLevel int) error {
	args := m.Called(ctx, email, newLevel)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteCustomer(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) GetPackage(ctx context.Context, level int) (model.Package, error) {
	args := m.Called(ctx, level)
	return args.Get(0).(model.Package), args.Error(1)
}

func (m *MockPackageRepository) ListPackages(ctx context.Context) (map[string]model.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.Package), args.Error(1)
}

func (m *MockPackageRepository) UpsertPackage(ctx context.Context, level int, pkg model.Package) error {
	args := m.Called(ctx, level, pkg)
	return args.Error(0)
}

type MockQueueRepository struct {
	mock.Mock
}

func (m *MockQueueRepository) Enqueue(ctx context.Context, email, referrer string) error {
	args := m.Called(ctx, email, referrer)
	return args.Error(0)
}

func (m *MockQueueRepository) QueuePosition(ctx context.Context, email string) (int, error) {
	args := m.Called(ctx, email)
	return args.Int(0), args.Error(1)
}

func (m *MockQueueRepository) RemoveFromQueue(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockQueueRepository) GetQueue(ctx context.Context) ([]model.QueueEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QueueEntry), args.Error(1)
}

type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) CreditCommission(ctx context.Context, email string, amount float64) error {
	args := m.Called(ctx, email, amount)
	return args.Error(0)
}

func (m *MockCommissionRepository) GetCommission(ctx context.Context, email string) (*model.Commission, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Commission), args.Error(1)
}

func (m *MockCommissionRepository) ListCommissions(ctx context.Context) (map[string]model.Commission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.Commission), args.Error(1)
}

func (m *MockCommissionRepository) ResetCommission(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
