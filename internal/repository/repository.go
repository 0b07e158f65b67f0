package repository

import (
	"sync"

	"affiliate_portal/internal/storage"

	"github.com/pkg/errors"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicate      = errors.New("email or username already registered")
	ErrInvalidUpgrade = errors.New("invalid upgrade selection")
)

const (
	customersCollection   = "customers"
	packagesCollection    = "packages"
	commissionsCollection = "commissions"
	queueCollection       = "queue"
)

// fallbackLevel is the package key every undefined level resolves to.
const fallbackLevel = "1"

type Config struct {
	DataDir            string `yaml:"dataDir"`
	ReservedAdminEmail string `yaml:"reservedAdminEmail"`
}

// Repository reads and writes the four collections through a Store. Each
// collection has its own mutex, held across the full load-mutate-save
// sequence so concurrent requests cannot silently drop each other's writes.
type Repository struct {
	store storage.Store

	reservedAdminEmail string

	customersMu   sync.Mutex
	packagesMu    sync.Mutex
	commissionsMu sync.Mutex
	queueMu       sync.Mutex
}

func New(store storage.Store, cfg Config) *Repository {
	return &Repository{
		store:              store,
		reservedAdminEmail: cfg.ReservedAdminEmail,
	}
}
