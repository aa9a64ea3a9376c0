package menurepo

import (
	"context"
	"errors"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"
	"campusfood/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Add saves a new menu without items.
func (r *GormMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := menuFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("add menu", err)
	}
	return nil
}

// GetByVendor retrieves the menu of vendorID.
func (r *GormMenuRepository) GetByVendor(ctx context.Context, vendorID kernel.UUID) (*menu.Menu, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	if err := r.db.WithContext(ctx).First(&dto, "vendor_id = ?", vendorID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu of vendor", vendorID.String())
		}
		return nil, errs.NewPersistenceError("get menu", err)
	}

	return menuToDomain(dto)
}

// AddItem saves a new menu item.
func (r *GormMenuRepository) AddItem(ctx context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("add menu item", err)
	}
	return nil
}

// UpdateItem saves the editable fields of an existing item. Menu and
// vendor references are never rewritten.
func (r *GormMenuRepository) UpdateItem(ctx context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":                dto.Name,
		"description":         dto.Description,
		"price":               dto.Price,
		"is_available":        dto.IsAvailable,
		"preparation_minutes": dto.PreparationMinutes,
		"image_url":           dto.ImageURL,
	})
	if result.Error != nil {
		return errs.NewPersistenceError("update menu item", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItem", item.ID().String())
	}
	return nil
}

// DeleteItem removes a menu item. The order_items foreign key clears the
// reference on every line placed from it.
func (r *GormMenuRepository) DeleteItem(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&MenuItemDTO{})
	if result.Error != nil {
		return errs.NewPersistenceError("delete menu item", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItem", id.String())
	}
	return nil
}

// GetItem retrieves a menu item by ID.
func (r *GormMenuRepository) GetItem(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItem", id.String())
		}
		return nil, errs.NewPersistenceError("get menu item", err)
	}

	return itemToDomain(dto)
}

// GetItems retrieves the existing items among ids in one query.
func (r *GormMenuRepository) GetItems(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error) {
	if len(ids) == 0 {
		return []*menu.Item{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("get menu items", err)
	}

	items := make([]*menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		it, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, nil
}
