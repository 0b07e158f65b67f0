package repository

import (
	"context"
	"testing"

	"affiliate_portal/internal/model"
	"affiliate_portal/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return New(storage.NewMemoryStore(), Config{ReservedAdminEmail: "admin@example.com"})
}

func referrer(email string) *string {
	return &email
}

func TestCreateCustomer(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.CreateCustomer(ctx, &model.Customer{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "secret",
	}))

	customer, err := repo.GetCustomer(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", customer.Username)
	assert.Equal(t, 1, customer.PackageLevel, "new customers start at level 1")
	assert.False(t, customer.Registered.IsZero())
}

func TestCreateCustomer_Duplicates(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.CreateCustomer(ctx, &model.Customer{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "secret",
	}))

	tests := []struct {
		name     string
		customer model.Customer
	}{
		{
			name:     "duplicate email",
			customer: model.Customer{Email: "alice@example.com", Username: "other", Password: "x"},
		},
		{
			name:     "duplicate username with different email",
			customer: model.Customer{Email: "bob@example.com", Username: "alice", Password: "x"},
		},
		{
			name:     "empty username",
			customer: model.Customer{Email: "carol@example.com", Username: "", Password: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.customer
			err := repo.CreateCustomer(ctx, &c)
			assert.ErrorIs(t, err, ErrDuplicate)
		})
	}

	customers, err := repo.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestCreateCustomer_UsernameCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.CreateCustomer(ctx, &model.Customer{
		Email: "alice@example.com", Username: "Alice", Password: "x",
	}))
	assert.NoError(t, repo.CreateCustomer(ctx, &model.Customer{
		Email: "bob@example.com", Username: "alice", Password: "x",
	}), "username comparison is case-sensitive")
}

func TestUpdateCredentials(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.CreateCustomer(ctx, &model.Customer{
		Email: "alice@example.com", Username: "alice", Password: "old",
	}))
	require.NoError(t, repo.CreateCustomer(ctx, &model.Customer{
		Email: "bob@example.com", Username: "bob", Password: "x",
	}))

	t.Run("empty fields leave values unchanged", func(t *testing.T) {
		require.NoError(t, repo.UpdateCredentials(ctx, "alice@example.com", "", ""))
		customer, err := repo.GetCustomer(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "alice", customer.Username)
		assert.Equal(t, "old", customer.Password)
	})

	t.Run("collision with another customer's username", func(t *testing.T) {
		err := repo.UpdateCredentials(ctx, "alice@example.com", "bob", "")
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("keeping your own username is allowed", func(t *testing.T) {
		assert.NoError(t, repo.UpdateCredentials(ctx, "alice@example.com", "alice", "new"))
		customer, err := repo.GetCustomer(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "new", customer.Password)
	})

	t.Run("unknown customer", func(t *testing.T) {
		err := repo.UpdateCredentials(ctx, "ghost@example.com", "ghost", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpgradeTier(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.UpsertPackage(ctx, 1, model.Package{Name: "Starter", Price: 0}))
	require.NoError(t, repo.UpsertPackage(ctx, 3, model.Package{Name: "Pro", Price: 99}))
	require.NoError(t, repo.CreateCustomer(ctx, &model.Customer{
		Email: "alice@example.com", Username: "alice", Password: "x",
	}))

	tests := []struct {
		name     string
		newLevel int
		wantErr  error
	}{
		{name: "same level", newLevel: 1, wantErr: ErrInvalidUpgrade},
		{name: "downgrade", newLevel: 0, wantErr: ErrInvalidUpgrade},
		{name: "undefined target level", newLevel: 2, wantErr: ErrInvalidUpgrade},
		{name: "defined higher level", newLevel: 3},
		{name: "no downgrade after upgrade", newLevel: 2, wantErr: ErrInvalidUpgrade},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.UpgradeTier(ctx, "alice@example.com", tt.newLevel)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	customer, err := repo.GetCustomer(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 3, customer.PackageLevel)

	assert.ErrorIs(t, repo.UpgradeTier(ctx, "ghost@example.com", 3), ErrNotFound)
}

func TestDeleteCustomer(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.CreateCustomer(ctx, &model.Customer{
		Email: "alice@example.com", Username: "alice", Password: "x",
	}))
	require.NoError(t, repo.CreateCustomer(ctx, &model.Customer{
		Email: "admin@example.com", Username: "portaladmin", Password: "x",
	}))

	require.NoError(t, repo.DeleteCustomer(ctx, "alice@example.com"))
	_, err := repo.GetCustomer(ctx, "alice@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("reserved admin identity is never deleted", func(t *testing.T) {
		require.NoError(t, repo.DeleteCustomer(ctx, "admin@example.com"))
		_, err := repo.GetCustomer(ctx, "admin@example.com")
		assert.NoError(t, err)
	})

	t.Run("deleting an absent customer is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.DeleteCustomer(ctx, "ghost@example.com"))
	})
}

func TestGetCustomerByUsername(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.CreateCustomer(ctx, &model.Customer{
		Email: "alice@example.com", Username: "alice", Password: "x",
		Referrer: referrer("bob@example.com"),
	}))

	customer, err := repo.GetCustomerByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", customer.Email)
	require.NotNil(t, customer.Referrer)
	assert.Equal(t, "bob@example.com", *customer.Referrer)

	_, err = repo.GetCustomerByUsername(ctx, "ALICE")
	assert.ErrorIs(t, err, ErrNotFound)
}
