// Package vendorrepo provides data transfer objects and mapping functions for vendor persistence.
// This package implements the repository pattern for the vendor domain aggregate, handling
// the conversion between domain entities and database representations.
package vendorrepo

import (
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for persisting vendor aggregates.
// One user owns at most one vendor, hence the unique owner index.
type VendorDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name              string    `gorm:"type:varchar(100);not null"`
	Description       string    `gorm:"type:text"`
	Location          string    `gorm:"type:varchar(200);not null"`
	PickupAvailable   bool      `gorm:"not null"`
	DeliveryAvailable bool      `gorm:"not null"`
	CreatedAt         time.Time
}

// TableName overrides GORM's default naming convention to use "vendors".
func (VendorDTO) TableName() string {
	return "vendors"
}

func fromDomain(v *vendor.Vendor) VendorDTO {
	return VendorDTO{
		ID:                v.ID().Bytes(),
		OwnerID:           v.OwnerID().Bytes(),
		Name:              v.Name(),
		Description:       v.Description(),
		Location:          v.Location(),
		PickupAvailable:   v.OffersPickup(),
		DeliveryAvailable: v.OffersDelivery(),
	}
}

func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return vendor.RestoreVendor(
		id,
		ownerID,
		dto.Name,
		dto.Description,
		dto.Location,
		dto.PickupAvailable,
		dto.DeliveryAvailable,
	)
}
