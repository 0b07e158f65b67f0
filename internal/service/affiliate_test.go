package service

import (
	"context"
	"testing"

	"affiliate_portal/internal/model"
	"affiliate_portal/internal/repository"
	"affiliate_portal/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string {
	return &s
}

func TestAffiliateService_RegisterAndEnqueue(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		referrer      *string
		setupMocks    func(accounts *mocks.MockAccountRepository, queue *mocks.MockQueueRepository, commissions *mocks.MockCommissionRepository)
		expectedError error
	}{
		{
			name:  "duplicate registration has no side effects",
			email: "bob@example.com",
			setupMocks: func(accounts *mocks.MockAccountRepository, queue *mocks.MockQueueRepository, commissions *mocks.MockCommissionRepository) {
				accounts.On("CreateCustomer", mock.Anything, mock.Anything).
					Return(repository.ErrDuplicate)
			},
			expectedError: repository.ErrDuplicate,
		},
		{
			name:  "registration without referrer only enqueues",
			email: "bob@example.com",
			setupMocks: func(accounts *mocks.MockAccountRepository, queue *mocks.MockQueueRepository, commissions *mocks.MockCommissionRepository) {
				accounts.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
					return c.Email == "bob@example.com" && c.Referrer == nil
				})).Return(nil)
				queue.On("Enqueue", mock.Anything, "bob@example.com", "").Return(nil)
			},
		},
		{
			name:     "registration with existing referrer pays the bonus once",
			email:    "bob@example.com",
			referrer: strPtr("alice@example.com"),
			setupMocks: func(accounts *mocks.MockAccountRepository, queue *mocks.MockQueueRepository, commissions *mocks.MockCommissionRepository) {
				accounts.On("CreateCustomer", mock.Anything, mock.Anything).Return(nil)
				queue.On("Enqueue", mock.Anything, "bob@example.com", "alice@example.com").Return(nil)
				accounts.On("GetCustomer", mock.Anything, "alice@example.com").
					Return(&model.Customer{Email: "alice@example.com", Username: "alice"}, nil)
				commissions.On("CreditCommission", mock.Anything, "alice@example.com", float64(RegistrationBonus)).
					Return(nil).Once()
			},
		},
		{
			name:     "unknown referrer earns nothing",
			email:    "bob@example.com",
			referrer: strPtr("ghost@example.com"),
			setupMocks: func(accounts *mocks.MockAccountRepository, queue *mocks.MockQueueRepository, commissions *mocks.MockCommissionRepository) {
				accounts.On("CreateCustomer", mock.Anything, mock.Anything).Return(nil)
				queue.On("Enqueue", mock.Anything, "bob@example.com", "ghost@example.com").Return(nil)
				accounts.On("GetCustomer", mock.Anything, "ghost@example.com").
					Return(nil, repository.ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := &mocks.MockAccountRepository{}
			queue := &mocks.MockQueueRepository{}
			commissions := &mocks.MockCommissionRepository{}
			tt.setupMocks(accounts, queue, commissions)

			s := NewAffiliateService(accounts, queue, commissions)
			err := s.RegisterAndEnqueue(context.Background(), tt.email, "bob", "secret", tt.referrer)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			accounts.AssertExpectations(t)
			queue.AssertExpectations(t)
			commissions.AssertExpectations(t)
			commissions.AssertNotCalled(t, "CreditCommission", mock.Anything, "ghost@example.com", mock.Anything)
		})
	}
}

func TestAffiliateService_UpgradeAndReward(t *testing.T) {
	tests := []struct {
		name          string
		newLevel      int
		setupMocks    func(accounts *mocks.MockAccountRepository, commissions *mocks.MockCommissionRepository)
		expectedError error
	}{
		{
			name:     "failed upgrade never pays a bonus",
			newLevel: 2,
			setupMocks: func(accounts *mocks.MockAccountRepository, commissions *mocks.MockCommissionRepository) {
				accounts.On("UpgradeTier", mock.Anything, "bob@example.com", 2).
					Return(repository.ErrInvalidUpgrade)
			},
			expectedError: repository.ErrInvalidUpgrade,
		},
		{
			name:     "upgrade without referrer pays nothing",
			newLevel: 2,
			setupMocks: func(accounts *mocks.MockAccountRepository, commissions *mocks.MockCommissionRepository) {
				accounts.On("UpgradeTier", mock.Anything, "bob@example.com", 2).Return(nil)
				accounts.On("GetCustomer", mock.Anything, "bob@example.com").
					Return(&model.Customer{Email: "bob@example.com", PackageLevel: 2}, nil)
			},
		},
		{
			name:     "upgrade with existing referrer pays the upgrade bonus once",
			newLevel: 3,
			setupMocks: func(accounts *mocks.MockAccountRepository, commissions *mocks.MockCommissionRepository) {
				accounts.On("UpgradeTier", mock.Anything, "bob@example.com", 3).Return(nil)
				accounts.On("GetCustomer", mock.Anything, "bob@example.com").
					Return(&model.Customer{
						Email:        "bob@example.com",
						PackageLevel: 3,
						Referrer:     strPtr("alice@example.com"),
					}, nil)
				accounts.On("GetCustomer", mock.Anything, "alice@example.com").
					Return(&model.Customer{Email: "alice@example.com"}, nil)
				commissions.On("CreditCommission", mock.Anything, "alice@example.com", float64(UpgradeBonus)).
					Return(nil).Once()
			},
		},
		{
			name:     "referrer no longer registered pays nothing",
			newLevel: 2,
			setupMocks: func(accounts *mocks.MockAccountRepository, commissions *mocks.MockCommissionRepository) {
				accounts.On("UpgradeTier", mock.Anything, "bob@example.com", 2).Return(nil)
				accounts.On("GetCustomer", mock.Anything, "bob@example.com").
					Return(&model.Customer{
						Email:        "bob@example.com",
						PackageLevel: 2,
						Referrer:     strPtr("gone@example.com"),
					}, nil)
				accounts.On("GetCustomer", mock.Anything, "gone@example.com").
					Return(nil, repository.ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := &mocks.MockAccountRepository{}
			queue := &mocks.MockQueueRepository{}
			commissions := &mocks.MockCommissionRepository{}
			tt.setupMocks(accounts, commissions)

			s := NewAffiliateService(accounts, queue, commissions)
			err := s.UpgradeAndReward(context.Background(), "bob@example.com", tt.newLevel)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			accounts.AssertExpectations(t)
			commissions.AssertExpectations(t)
		})
	}
}
