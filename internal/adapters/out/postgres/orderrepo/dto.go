// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"campusfood/internal/adapters/out/postgres/menurepo"
	"campusfood/internal/adapters/out/postgres/vendorrepo"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates,
// indexed for the customer history, vendor list and overdue scans.
type OrderDTO struct {
	ID               uuid.UUID             `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID             `gorm:"type:uuid;not null;index:idx_orders_customer_placed,priority:1"`
	VendorID         uuid.UUID             `gorm:"type:uuid;not null;index:idx_orders_vendor_placed,priority:1"`
	Vendor           *vendorrepo.VendorDTO `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
	PlacedAt         time.Time             `gorm:"not null;index:idx_orders_customer_placed,priority:2;index:idx_orders_vendor_placed,priority:2"`
	ScheduledFor     time.Time             `gorm:"not null;index"`
	TotalAmount      decimal.Decimal       `gorm:"type:numeric(10,2);not null"`
	Status           string                `gorm:"type:varchar(20);not null;index"`
	PaymentStatus    string                `gorm:"type:varchar(20);not null"`
	FulfillmentMode  string                `gorm:"type:varchar(20);not null"`
	Notes            string                `gorm:"type:text"`
	EstimatedReadyAt *time.Time
	Version          int               `gorm:"not null;default:1"`
	Items            []OrderItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Transitions      []StatusChangeDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	UpdatedAt        time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. MenuItemID is cleared, not cascaded, when
// the menu item is deleted; the name and price snapshots remain.
type OrderItemDTO struct {
	ID         uuid.UUID             `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID             `gorm:"type:uuid;not null;index"`
	Position   int                   `gorm:"not null"`
	MenuItemID *uuid.UUID            `gorm:"type:uuid;index"`
	MenuItem   *menurepo.MenuItemDTO `gorm:"foreignKey:MenuItemID;constraint:OnDelete:SET NULL"`
	ItemName   string                `gorm:"type:varchar(100);not null"`
	ItemPrice  decimal.Decimal       `gorm:"type:numeric(10,2);not null"`
	Quantity   int                   `gorm:"not null"`
	Notes      string                `gorm:"type:text"`
}

// TableName overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusChangeDTO is one row of an order's status history. FromStatus is
// "none" for the row written at placement. OrderVersion is the order version
// the change produced and orders the history.
type StatusChangeDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderVersion int       `gorm:"not null"`
	FromStatus   string    `gorm:"type:varchar(20);not null"`
	ToStatus     string    `gorm:"type:varchar(20);not null"`
	ChangedBy    uuid.UUID `gorm:"type:uuid;not null"`
	ChangedAt    time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "order_status_transitions".
func (StatusChangeDTO) TableName() string {
	return "order_status_transitions"
}

// fromDomain converts an order aggregate to its row, lines included.
// Status history is written separately from PullStatusChanges.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(o.Items()))

	for i, it := range o.Items() {
		var menuItemID *uuid.UUID
		if id := it.MenuItemID(); id != nil {
			raw := id.Bytes()
			menuItemID = &raw
		}

		items = append(items, OrderItemDTO{
			ID:         it.ID().Bytes(),
			OrderID:    orderID,
			Position:   i,
			MenuItemID: menuItemID,
			ItemName:   it.Name(),
			ItemPrice:  it.Price().Decimal(),
			Quantity:   it.Quantity(),
			Notes:      it.Notes(),
		})
	}

	return OrderDTO{
		ID:               orderID,
		CustomerID:       o.CustomerID().Bytes(),
		VendorID:         o.VendorID().Bytes(),
		PlacedAt:         o.PlacedAt(),
		ScheduledFor:     o.ScheduledFor(),
		TotalAmount:      o.Total().Decimal(),
		Status:           o.Status().String(),
		PaymentStatus:    o.PaymentStatus().String(),
		FulfillmentMode:  o.FulfillmentMode().String(),
		Notes:            o.Notes(),
		EstimatedReadyAt: o.EstimatedReadyAt(),
		Version:          o.Version(),
		Items:            items,
	}
}

func transitionsFromDomain(orderID kernel.UUID, firstVersion int, changes []*order.Transition) []StatusChangeDTO {
	dtos := make([]StatusChangeDTO, 0, len(changes))
	for i, c := range changes {
		dtos = append(dtos, StatusChangeDTO{
			ID:           c.ID().Bytes(),
			OrderID:      orderID.Bytes(),
			OrderVersion: firstVersion + i,
			FromStatus:   c.From().String(),
			ToStatus:     c.To().String(),
			ChangedBy:    c.ChangedBy().Bytes(),
			ChangedAt:    c.ChangedAt(),
		})
	}
	return dtos
}

// toDomain converts a row with preloaded lines back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	mode, err := order.ParseFulfillmentMode(dto.FulfillmentMode)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		it, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, it)
	}

	return order.RestoreOrder(
		id,
		customerID,
		vendorID,
		dto.PlacedAt,
		dto.ScheduledFor,
		kernel.RoundMoney(dto.TotalAmount),
		status,
		paymentStatus,
		mode,
		dto.Notes,
		dto.EstimatedReadyAt,
		dto.Version,
		items,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var menuItemID *kernel.UUID
	if dto.MenuItemID != nil {
		mID, menuErr := kernel.UUIDFromBytes((*dto.MenuItemID)[:])
		if menuErr != nil {
			return nil, menuErr
		}
		menuItemID = &mID
	}

	return order.RestoreItem(id, menuItemID, dto.ItemName, kernel.RoundMoney(dto.ItemPrice), dto.Quantity, dto.Notes)
}
