package repository

import (
	"context"
	"strconv"

	"affiliate_portal/internal/model"

	"github.com/pkg/errors"
)

func (r *Repository) loadPackages() (map[string]model.Package, error) {
	packages := make(map[string]model.Package)
	if err := r.store.Load(packagesCollection, &packages); err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}
	return packages, nil
}

// GetPackage resolves a level to its package definition. Undefined levels
// fall back to level 1; if that is undefined too, the zero package comes
// back. Lookup never fails on absence.
func (r *Repository) GetPackage(ctx context.Context, level int) (model.Package, error) {
	r.packagesMu.Lock()
	defer r.packagesMu.Unlock()

	packages, err := r.loadPackages()
	if err != nil {
		return model.Package{}, err
	}

	pkg, ok := packages[strconv.Itoa(level)]
	if !ok {
		pkg = packages[fallbackLevel]
	}
	return pkg, nil
}

func (r *Repository) ListPackages(ctx context.Context) (map[string]model.Package, error) {
	r.packagesMu.Lock()
	defer r.packagesMu.Unlock()

	return r.loadPackages()
}

// UpsertPackage defines or replaces the package for a level.
func (r *Repository) UpsertPackage(ctx context.Context, level int, pkg model.Package) error {
	r.packagesMu.Lock()
	defer r.packagesMu.Unlock()

	packages, err := r.loadPackages()
	if err != nil {
		return err
	}

	packages[strconv.Itoa(level)] = pkg

	return errors.Wrap(r.store.Save(packagesCollection, packages), "failed to save packages")
}
