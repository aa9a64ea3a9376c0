// Package queries contains read-only projections of orders for customers,
// vendors and background jobs. Handlers read the store directly into typed
// responses; they never load aggregates.
package queries

import (
	"context"
	"errors"
	"time"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// Page is a validated limit/offset pair. Callers without a limit of their
// own pass DefaultPageSize.
type Page struct {
	Limit  int
	Offset int
}

func NewPage(limit, offset int) (Page, error) {
	if limit < 1 || limit > MaxPageSize {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageSize)
	}
	if offset < 0 {
		return Page{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	return Page{Limit: limit, Offset: offset}, nil
}

// OrderListItem is one row of an order list.
type OrderListItem struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	VendorID         kernel.UUID
	VendorName       string
	PlacedAt         time.Time
	ScheduledFor     time.Time
	Total            kernel.Money
	Status           order.Status
	PaymentStatus    order.PaymentStatus
	FulfillmentMode  order.FulfillmentMode
	EstimatedReadyAt *time.Time
	ItemCount        int
}

// OrderPage is a page of orders plus the number of orders matching the
// filter across all pages.
type OrderPage struct {
	Orders []OrderListItem
	Total  int64
	Limit  int
	Offset int
}

type orderListRow struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	VendorID         uuid.UUID
	VendorName       string
	PlacedAt         time.Time
	ScheduledFor     time.Time
	TotalAmount      decimal.Decimal
	Status           string
	PaymentStatus    string
	FulfillmentMode  string
	EstimatedReadyAt *time.Time
	ItemCount        int
}

const orderListColumns = `
	o.id,
	o.customer_id,
	o.vendor_id,
	v.name AS vendor_name,
	o.placed_at,
	o.scheduled_for,
	o.total_amount,
	o.status,
	o.payment_status,
	o.fulfillment_mode,
	o.estimated_ready_at,
	(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count`

func (r orderListRow) toListItem() (OrderListItem, error) {
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return OrderListItem{}, err
	}
	payment, err := order.ParsePaymentStatus(r.PaymentStatus)
	if err != nil {
		return OrderListItem{}, err
	}
	mode, err := order.ParseFulfillmentMode(r.FulfillmentMode)
	if err != nil {
		return OrderListItem{}, err
	}

	item := OrderListItem{
		ID:              uuidFromRow(r.ID),
		CustomerID:      uuidFromRow(r.CustomerID),
		VendorID:        uuidFromRow(r.VendorID),
		VendorName:      r.VendorName,
		PlacedAt:        kernel.NormalizeTime(r.PlacedAt),
		ScheduledFor:    kernel.NormalizeTime(r.ScheduledFor),
		Total:           kernel.RoundMoney(r.TotalAmount),
		Status:          status,
		PaymentStatus:   payment,
		FulfillmentMode: mode,
		ItemCount:       r.ItemCount,
	}
	if r.EstimatedReadyAt != nil {
		eta := kernel.NormalizeTime(*r.EstimatedReadyAt)
		item.EstimatedReadyAt = &eta
	}
	return item, nil
}

func toListItems(rows []orderListRow) ([]OrderListItem, error) {
	items := make([]OrderListItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.toListItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// uuidFromRow converts an ID read from a primary or foreign key column.
// Those columns never hold the nil UUID.
func uuidFromRow(id uuid.UUID) kernel.UUID {
	u, _ := kernel.UUIDFromBytes(id[:])
	return u
}

type vendorOwnerRow struct {
	OwnerID uuid.UUID
	Name    string
}

// requireVendorOwner fails with AccessDenied unless principal owns vendorID.
// A vendor that does not exist is not owned either.
func requireVendorOwner(ctx context.Context, db *gorm.DB, principal auth.Principal, vendorID kernel.UUID) (string, error) {
	if err := auth.RequireVendor(principal); err != nil {
		return "", err
	}

	var row vendorOwnerRow
	err := db.WithContext(ctx).
		Table("vendors").
		Select("owner_id, name").
		Where("id = ?", vendorID.Bytes()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", errs.NewAccessDeniedErrorWithCause("vendor", vendorID.String(),
			errs.NewObjectNotFoundError("vendor", vendorID.String()))
	}
	if err != nil {
		return "", errs.NewPersistenceError("get vendor owner", err)
	}
	if !uuidFromRow(row.OwnerID).IsEqual(principal.UserID()) {
		return "", errs.NewAccessDeniedError("vendor", vendorID.String())
	}
	return row.Name, nil
}
