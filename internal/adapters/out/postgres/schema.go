package postgres

import (
	"campusfood/internal/adapters/out/postgres/menurepo"
	"campusfood/internal/adapters/out/postgres/orderrepo"
	"campusfood/internal/adapters/out/postgres/vendorrepo"

	"gorm.io/gorm"
)

// Models lists every table of the workflow in dependency order.
func Models() []any {
	return []any{
		&vendorrepo.VendorDTO{},
		&menurepo.MenuDTO{},
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusChangeDTO{},
	}
}

// Migrate creates or updates the schema, foreign keys included.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
