package ports

import (
	"context"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for a vendor's menu and
// its items.
type MenuRepository interface {
	Add(ctx context.Context, aggregate *menu.Menu) error

	// GetByVendor returns the single menu of vendorID, or
	// errs.ObjectNotFoundError when the vendor has none.
	GetByVendor(ctx context.Context, vendorID kernel.UUID) (*menu.Menu, error)

	AddItem(ctx context.Context, item *menu.Item) error
	UpdateItem(ctx context.Context, item *menu.Item) error

	// DeleteItem removes an item from its menu. Order lines placed from it
	// keep their snapshots and lose the reference.
	// Returns errs.ObjectNotFoundError when no such item exists.
	DeleteItem(ctx context.Context, id kernel.UUID) error

	// GetItem returns errs.ObjectNotFoundError when no such item exists.
	GetItem(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// GetItems returns the items among ids that exist, in no particular
	// order. Unknown IDs are silently skipped.
	GetItems(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error)
}
