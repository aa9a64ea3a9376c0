package queries

import (
	"context"
	"time"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderDetailQueryHandler builds OrderDetail from the orders, order_items
// and order_status_transitions tables.
//
// Example:
//
//	handler := NewGetOrderDetailQueryHandler(db)
//	query, _ := NewGetOrderDetailQuery(principal, orderID)
//	detail, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrAccessDenied) {
//	    // neither the customer nor the vendor owner
//	}
type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

type orderDetailRow struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	VendorID         uuid.UUID
	VendorOwnerID    uuid.UUID
	VendorName       string
	PlacedAt         time.Time
	ScheduledFor     time.Time
	TotalAmount      decimal.Decimal
	Status           string
	PaymentStatus    string
	FulfillmentMode  string
	Notes            string
	EstimatedReadyAt *time.Time
	Version          int
}

type orderDetailItemRow struct {
	ID         uuid.UUID
	MenuItemID *uuid.UUID
	ItemName   string
	ItemPrice  decimal.Decimal
	Quantity   int
	Notes      string
}

type orderDetailTransitionRow struct {
	FromStatus string
	ToStatus   string
	ChangedBy  uuid.UUID
	ChangedAt  time.Time
}

func (h GetOrderDetailQueryHandler) Handle(ctx context.Context, query GetOrderDetailQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}
	if err := query.Principal().Validate(); err != nil {
		return OrderDetail{}, errs.NewAccessDeniedErrorWithCause("order", query.OrderID().String(), err)
	}

	db := h.db.WithContext(ctx)

	var row orderDetailRow
	res := db.Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.vendor_id,
			v.owner_id AS vendor_owner_id,
			v.name AS vendor_name,
			o.placed_at,
			o.scheduled_for,
			o.total_amount,
			o.status,
			o.payment_status,
			o.fulfillment_mode,
			o.notes,
			o.estimated_ready_at,
			o.version
		FROM orders o
		INNER JOIN vendors v ON v.id = o.vendor_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Scan(&row)
	if res.Error != nil {
		return OrderDetail{}, errs.NewPersistenceError("get order detail", res.Error)
	}
	if res.RowsAffected == 0 {
		return OrderDetail{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	if !canRead(query.Principal(), row) {
		return OrderDetail{}, errs.NewAccessDeniedError("order", query.OrderID().String())
	}

	var itemRows []orderDetailItemRow
	err := db.Raw(`
		SELECT id, menu_item_id, item_name, item_price, quantity, notes
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, row.ID).Scan(&itemRows).Error
	if err != nil {
		return OrderDetail{}, errs.NewPersistenceError("get order items", err)
	}

	var historyRows []orderDetailTransitionRow
	err = db.Raw(`
		SELECT from_status, to_status, changed_by, changed_at
		FROM order_status_transitions
		WHERE order_id = ?
		ORDER BY order_version
	`, row.ID).Scan(&historyRows).Error
	if err != nil {
		return OrderDetail{}, errs.NewPersistenceError("get order history", err)
	}

	return buildOrderDetail(row, itemRows, historyRows)
}

func canRead(p auth.Principal, row orderDetailRow) bool {
	switch p.Role() {
	case auth.RoleCustomer:
		return uuidFromRow(row.CustomerID).IsEqual(p.UserID())
	case auth.RoleVendor:
		return uuidFromRow(row.VendorOwnerID).IsEqual(p.UserID())
	default:
		return false
	}
}

func buildOrderDetail(row orderDetailRow, itemRows []orderDetailItemRow, historyRows []orderDetailTransitionRow) (OrderDetail, error) {
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return OrderDetail{}, err
	}
	payment, err := order.ParsePaymentStatus(row.PaymentStatus)
	if err != nil {
		return OrderDetail{}, err
	}
	mode, err := order.ParseFulfillmentMode(row.FulfillmentMode)
	if err != nil {
		return OrderDetail{}, err
	}

	detail := OrderDetail{
		ID:              uuidFromRow(row.ID),
		CustomerID:      uuidFromRow(row.CustomerID),
		VendorID:        uuidFromRow(row.VendorID),
		VendorName:      row.VendorName,
		PlacedAt:        kernel.NormalizeTime(row.PlacedAt),
		ScheduledFor:    kernel.NormalizeTime(row.ScheduledFor),
		Total:           kernel.RoundMoney(row.TotalAmount),
		Status:          status,
		PaymentStatus:   payment,
		FulfillmentMode: mode,
		Notes:           row.Notes,
		Version:         row.Version,
		Items:           make([]OrderDetailItem, 0, len(itemRows)),
		History:         make([]OrderDetailTransition, 0, len(historyRows)),
	}
	if row.EstimatedReadyAt != nil {
		eta := kernel.NormalizeTime(*row.EstimatedReadyAt)
		detail.EstimatedReadyAt = &eta
	}

	for _, it := range itemRows {
		price := kernel.RoundMoney(it.ItemPrice)
		item := OrderDetailItem{
			ID:        uuidFromRow(it.ID),
			Name:      it.ItemName,
			Price:     price,
			Quantity:  it.Quantity,
			Notes:     it.Notes,
			LineTotal: price.Times(it.Quantity),
		}
		if it.MenuItemID != nil {
			menuItemID := uuidFromRow(*it.MenuItemID)
			item.MenuItemID = &menuItemID
		}
		detail.Items = append(detail.Items, item)
	}

	for _, tr := range historyRows {
		from, fromErr := parseHistoryStatus(tr.FromStatus)
		if fromErr != nil {
			return OrderDetail{}, fromErr
		}
		to, toErr := order.ParseStatus(tr.ToStatus)
		if toErr != nil {
			return OrderDetail{}, toErr
		}
		detail.History = append(detail.History, OrderDetailTransition{
			From:      from,
			To:        to,
			ChangedBy: uuidFromRow(tr.ChangedBy),
			ChangedAt: kernel.NormalizeTime(tr.ChangedAt),
		})
	}

	return detail, nil
}

func parseHistoryStatus(s string) (order.Status, error) {
	if s == order.Unknown.String() {
		return order.Unknown, nil
	}
	return order.ParseStatus(s)
}
