package repository

import (
	"context"
	"strconv"
	"time"

	"affiliate_portal/internal/model"

	"github.com/pkg/errors"
)

func (r *Repository) loadCustomers() (map[string]model.Customer, error) {
	customers := make(map[string]model.Customer)
	if err := r.store.Load(customersCollection, &customers); err != nil {
		return nil, errors.Wrap(err, "failed to load customers")
	}
	return customers, nil
}

// CreateCustomer adds a new customer at package level 1. The email must be
// unused, the username non-empty and unused by any customer.
func (r *Repository) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	r.customersMu.Lock()
	defer r.customersMu.Unlock()

	customers, err := r.loadCustomers()
	if err != nil {
		return err
	}

	if customer.Username == "" {
		return ErrDuplicate
	}
	if _, ok := customers[customer.Email]; ok {
		return ErrDuplicate
	}
	for _, existing := range customers {
		if existing.Username == customer.Username {
			return ErrDuplicate
		}
	}

	customer.PackageLevel = 1
	customer.Registered = time.Now().UTC()
	customers[customer.Email] = *customer

	return errors.Wrap(r.store.Save(customersCollection, customers), "failed to save customers")
}

func (r *Repository) GetCustomer(ctx context.Context, email string) (*model.Customer, error) {
	r.customersMu.Lock()
	defer r.customersMu.Unlock()

	customers, err := r.loadCustomers()
	if err != nil {
		return nil, err
	}

	customer, ok := customers[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &customer, nil
}

func (r *Repository) GetCustomerByUsername(ctx context.Context, username string) (*model.Customer, error) {
	r.customersMu.Lock()
	defer r.customersMu.Unlock()

	customers, err := r.loadCustomers()
	if err != nil {
		return nil, err
	}

	for _, customer := range customers {
		if customer.Username == username {
			c := customer
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) ListCustomers(ctx context.Context) (map[string]model.Customer, error) {
	r.customersMu.Lock()
	defer r.customersMu.Unlock()

	return r.loadCustomers()
}

// UpdateCredentials changes a customer's username and/or password. An empty
// value leaves the existing one in place.
func (r *Repository) UpdateCredentials(ctx context.Context, email, newUsername, newPassword string) error {
	r.customersMu.Lock()
	defer r.customersMu.Unlock()

	customers, err := r.loadCustomers()
	if err != nil {
		return err
	}

	customer, ok := customers[email]
	if !ok {
		return ErrNotFound
	}

	if newUsername != "" {
		for otherEmail, other := range customers {
			if other.Username == newUsername && otherEmail != email {
				return ErrDuplicate
			}
		}
		customer.Username = newUsername
	}
	if newPassword != "" {
		customer.Password = newPassword
	}
	customers[email] = customer

	return errors.Wrap(r.store.Save(customersCollection, customers), "failed to save customers")
}

// UpgradeTier moves a customer to a higher package level. The target level
// must be strictly above the current one and have a defined package.
func (r *Repository) UpgradeTier(ctx context.Context, email string, newLevel int) error {
	r.customersMu.Lock()
	defer r.customersMu.Unlock()

	customers, err := r.loadCustomers()
	if err != nil {
		return err
	}

	customer, ok := customers[email]
	if !ok {
		return ErrNotFound
	}

	if newLevel <= customer.PackageLevel {
		return ErrInvalidUpgrade
	}

	r.packagesMu.Lock()
	packages, err := r.loadPackages()
	r.packagesMu.Unlock()
	if err != nil {
		return err
	}
	if _, ok := packages[strconv.Itoa(newLevel)]; !ok {
		return ErrInvalidUpgrade
	}

	customer.PackageLevel = newLevel
	customers[email] = customer

	return errors.Wrap(r.store.Save(customersCollection, customers), "failed to save customers")
}

// DeleteCustomer removes a customer. Deleting an absent customer or the
// reserved administrative identity is a silent no-op.
func (r *Repository) DeleteCustomer(ctx context.Context, email string) error {
	if email == r.reservedAdminEmail {
		return nil
	}

	r.customersMu.Lock()
	defer r.customersMu.Unlock()

	customers, err := r.loadCustomers()
	if err != nil {
		return err
	}

	if _, ok := customers[email]; !ok {
		return nil
	}
	delete(customers, email)

	return errors.Wrap(r.store.Save(customersCollection, customers), "failed to save customers")
}
