package ports

import (
	"context"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendor aggregates.
type VendorRepository interface {
	Add(ctx context.Context, aggregate *vendor.Vendor) error

	// Get returns errs.ObjectNotFoundError when no such vendor exists.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)

	// GetByOwner returns the vendor run by ownerID, or
	// errs.ObjectNotFoundError when the user runs none.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) (*vendor.Vendor, error)
}
