package queries

import (
	"errors"
	"time"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var ErrGetOrderDetailQueryIsNotConstructed = errors.New(
	"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
)

// GetOrderDetailQuery reads one order with its lines and status history.
// Only the customer who placed it and the owner of its vendor may read it.
type GetOrderDetailQuery struct {
	principal auth.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderDetailQuery(principal auth.Principal, orderID kernel.UUID) (GetOrderDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	return GetOrderDetailQuery{
		principal: principal,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

func (q GetOrderDetailQuery) Principal() auth.Principal {
	return q.principal
}

func (q GetOrderDetailQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderDetail is the full view of an order.
type OrderDetail struct {
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
	Notes            string
	EstimatedReadyAt *time.Time
	Version          int
	Items            []OrderDetailItem
	History          []OrderDetailTransition
}

// OrderDetailItem is an order line with its snapshot and line total.
// MenuItemID is nil once the menu item has been deleted.
type OrderDetailItem struct {
	ID         kernel.UUID
	MenuItemID *kernel.UUID
	Name       string
	Price      kernel.Money
	Quantity   int
	Notes      string
	LineTotal  kernel.Money
}

// OrderDetailTransition is one status history entry. From is order.Unknown
// for the entry written at placement.
type OrderDetailTransition struct {
	From      order.Status
	To        order.Status
	ChangedBy kernel.UUID
	ChangedAt time.Time
}
