package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order, its lines and its pending history rows.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("add order", err)
	}

	return r.saveStatusChanges(ctx, aggregate, aggregate.Version())
}

// Update saves a status change guarded by the optimistic version: the row
// is only touched when its version still matches the aggregate's, and the
// version is bumped in the same statement.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":             dto.Status,
			"payment_status":     dto.PaymentStatus,
			"estimated_ready_at": dto.EstimatedReadyAt,
			"version":            dto.Version + 1,
		})
	if result.Error != nil {
		return errs.NewPersistenceError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return r.explainMissedUpdate(ctx, aggregate)
	}

	return r.saveStatusChanges(ctx, aggregate, dto.Version+1)
}

// Get retrieves an order by ID with its lines in placement order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewPersistenceError("get order", err)
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) saveStatusChanges(ctx context.Context, aggregate *order.Order, firstVersion int) error {
	changes := transitionsFromDomain(aggregate.ID(), firstVersion, aggregate.PullStatusChanges())
	if len(changes) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Create(&changes).Error; err != nil {
		return errs.NewPersistenceError("add order status history", err)
	}
	return nil
}

// explainMissedUpdate tells a vanished order apart from a concurrent writer.
func (r *GormOrderRepository) explainMissedUpdate(ctx context.Context, aggregate *order.Order) error {
	var stored int
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("version").
		Where("id = ?", aggregate.ID().Bytes()).
		Scan(&stored).Error
	if err != nil {
		return errs.NewPersistenceError("check order version", err)
	}

	if stored == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return errs.NewVersionIsInvalidErrorWithCause(
		"order",
		fmt.Errorf("order %s was changed concurrently: expected version %d, found %d",
			aggregate.ID(), aggregate.Version(), stored),
	)
}
