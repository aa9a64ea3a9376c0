// Package ports defines the persistence contracts of the ordering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with all of its lines and pending status
	// history rows.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change. The write only succeeds when the
	// stored version still equals aggregate.Version(); otherwise it returns
	// an errs.VersionIsInvalidError and nothing is written. New status
	// history rows are written in the same transaction.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
