// Package menurepo persists vendor menus and their items.
package menurepo

import (
	"time"

	"campusfood/internal/adapters/out/postgres/vendorrepo"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuDTO represents a vendor's single menu. Deleting the vendor removes the
// menu and, through MenuItemDTO, its items.
type MenuDTO struct {
	ID        uuid.UUID             `gorm:"type:uuid;primaryKey"`
	VendorID  uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex"`
	Vendor    *vendorrepo.VendorDTO `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
	Title     string                `gorm:"type:varchar(100);not null"`
	IsActive  bool                  `gorm:"not null"`
	Items     []MenuItemDTO         `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "menus".
func (MenuDTO) TableName() string {
	return "menus"
}

// MenuItemDTO represents one dish or drink. VendorID is denormalized from
// the menu so that carts can be checked with a single lookup.
type MenuItemDTO struct {
	ID                 uuid.UUID             `gorm:"type:uuid;primaryKey"`
	MenuID             uuid.UUID             `gorm:"type:uuid;not null;index"`
	VendorID           uuid.UUID             `gorm:"type:uuid;not null;index"`
	Vendor             *vendorrepo.VendorDTO `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
	Name               string                `gorm:"type:varchar(100);not null"`
	Description        string                `gorm:"type:text"`
	Price              decimal.Decimal       `gorm:"type:numeric(10,2);not null"`
	IsAvailable        bool                  `gorm:"not null"`
	PreparationMinutes int                   `gorm:"not null"`
	ImageURL           string                `gorm:"type:varchar(500)"`
	UpdatedAt          time.Time
}

// TableName overrides GORM's default naming convention to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func menuFromDomain(m *menu.Menu) MenuDTO {
	return MenuDTO{
		ID:       m.ID().Bytes(),
		VendorID: m.VendorID().Bytes(),
		Title:    m.Title(),
		IsActive: m.IsActive(),
	}
}

func menuToDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}
	return menu.RestoreMenu(id, vendorID, dto.Title, dto.IsActive)
}

func itemFromDomain(it *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:                 it.ID().Bytes(),
		MenuID:             it.MenuID().Bytes(),
		VendorID:           it.VendorID().Bytes(),
		Name:               it.Name(),
		Description:        it.Description(),
		Price:              it.Price().Decimal(),
		IsAvailable:        it.IsAvailable(),
		PreparationMinutes: it.PreparationMinutes(),
		ImageURL:           it.ImageURL(),
	}
}

func itemToDomain(dto MenuItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(
		id,
		menuID,
		vendorID,
		dto.Name,
		dto.Description,
		kernel.RoundMoney(dto.Price),
		dto.IsAvailable,
		dto.PreparationMinutes,
		dto.ImageURL,
	)
}
