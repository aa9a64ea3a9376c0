package http

import (
	"time"

	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/application/usecases/queries"
	"campusfood/internal/core/domain/model/kernel"
)

type CreateVendorRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	Location          string `json:"location"`
	PickupAvailable   bool   `json:"pickup_available"`
	DeliveryAvailable bool   `json:"delivery_available"`
	MenuTitle         string `json:"menu_title"`
}

type VendorCreatedResponse struct {
	VendorID string `json:"vendor_id"`
	MenuID   string `json:"menu_id"`
}

type AddMenuItemRequest struct {
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	Price              kernel.Money `json:"price"`
	PreparationMinutes int          `json:"preparation_minutes"`
	ImageURL           string       `json:"image_url"`
}

type MenuItemCreatedResponse struct {
	MenuItemID string `json:"menu_item_id"`
}

// UpdateMenuItemRequest is a partial update; absent fields are left alone.
type UpdateMenuItemRequest struct {
	Name               *string       `json:"name"`
	Description        *string       `json:"description"`
	Price              *kernel.Money `json:"price"`
	Available          *bool         `json:"available"`
	PreparationMinutes *int          `json:"preparation_minutes"`
	ImageURL           *string       `json:"image_url"`
}

func (r UpdateMenuItemRequest) toChanges() commands.MenuItemChanges {
	return commands.MenuItemChanges{
		Name:               r.Name,
		Description:        r.Description,
		Price:              r.Price,
		Available:          r.Available,
		PreparationMinutes: r.PreparationMinutes,
		ImageURL:           r.ImageURL,
	}
}

type UpdateOrderStatusRequest struct {
	Status           string  `json:"status"`
	EstimatedReadyAt *string `json:"estimated_ready_at"`
}

type StatusChangeResponse struct {
	OrderID          string  `json:"order_id"`
	OldStatus        string  `json:"old_status"`
	NewStatus        string  `json:"new_status"`
	EstimatedReadyAt *string `json:"estimated_ready_at"`
}

type CartItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes"`
}

type PlaceOrderRequest struct {
	VendorID        string            `json:"vendor_id"`
	ScheduledFor    string            `json:"scheduled_for"`
	FulfillmentMode string            `json:"fulfillment_mode"`
	Notes           string            `json:"notes"`
	Items           []CartItemRequest `json:"items"`
}

type OrderSummaryResponse struct {
	OrderID      string       `json:"order_id"`
	VendorName   string       `json:"vendor_name"`
	TotalAmount  kernel.Money `json:"total_amount"`
	Status       string       `json:"status"`
	PlacedAt     string       `json:"placed_at"`
	ScheduledFor string       `json:"scheduled_for"`
}

func toOrderSummaryResponse(s commands.OrderSummary) OrderSummaryResponse {
	return OrderSummaryResponse{
		OrderID:      s.OrderID.String(),
		VendorName:   s.VendorName,
		TotalAmount:  s.Total,
		Status:       s.Status.String(),
		PlacedAt:     kernel.FormatTimestamp(s.PlacedAt),
		ScheduledFor: kernel.FormatTimestamp(s.ScheduledFor),
	}
}

type CancelResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type OrderListItemResponse struct {
	OrderID          string       `json:"order_id"`
	CustomerID       string       `json:"customer_id"`
	VendorID         string       `json:"vendor_id"`
	VendorName       string       `json:"vendor_name"`
	PlacedAt         string       `json:"placed_at"`
	ScheduledFor     string       `json:"scheduled_for"`
	TotalAmount      kernel.Money `json:"total_amount"`
	Status           string       `json:"status"`
	PaymentStatus    string       `json:"payment_status"`
	FulfillmentMode  string       `json:"fulfillment_mode"`
	EstimatedReadyAt *string      `json:"estimated_ready_at"`
	ItemCount        int          `json:"item_count"`
}

type OrderPageResponse struct {
	Orders []OrderListItemResponse `json:"orders"`
	Total  int64                   `json:"total"`
	Limit  int                     `json:"limit"`
	Offset int                     `json:"offset"`
}

func toOrderPageResponse(page queries.OrderPage) OrderPageResponse {
	orders := make([]OrderListItemResponse, 0, len(page.Orders))
	for _, o := range page.Orders {
		orders = append(orders, OrderListItemResponse{
			OrderID:          o.ID.String(),
			CustomerID:       o.CustomerID.String(),
			VendorID:         o.VendorID.String(),
			VendorName:       o.VendorName,
			PlacedAt:         kernel.FormatTimestamp(o.PlacedAt),
			ScheduledFor:     kernel.FormatTimestamp(o.ScheduledFor),
			TotalAmount:      o.Total,
			Status:           o.Status.String(),
			PaymentStatus:    o.PaymentStatus.String(),
			FulfillmentMode:  o.FulfillmentMode.String(),
			EstimatedReadyAt: formatOptional(o.EstimatedReadyAt),
			ItemCount:        o.ItemCount,
		})
	}
	return OrderPageResponse{Orders: orders, Total: page.Total, Limit: page.Limit, Offset: page.Offset}
}

type OrderItemResponse struct {
	ID         string       `json:"id"`
	MenuItemID *string      `json:"menu_item_id"`
	Name       string       `json:"name"`
	Price      kernel.Money `json:"price"`
	Quantity   int          `json:"quantity"`
	Notes      string       `json:"notes"`
	LineTotal  kernel.Money `json:"line_total"`
}

type StatusTransitionResponse struct {
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	ChangedBy  string `json:"changed_by"`
	ChangedAt  string `json:"changed_at"`
}

type OrderDetailResponse struct {
	OrderID          string                     `json:"order_id"`
	CustomerID       string                     `json:"customer_id"`
	VendorID         string                     `json:"vendor_id"`
	VendorName       string                     `json:"vendor_name"`
	PlacedAt         string                     `json:"placed_at"`
	ScheduledFor     string                     `json:"scheduled_for"`
	TotalAmount      kernel.Money               `json:"total_amount"`
	Status           string                     `json:"status"`
	PaymentStatus    string                     `json:"payment_status"`
	FulfillmentMode  string                     `json:"fulfillment_mode"`
	Notes            string                     `json:"notes"`
	EstimatedReadyAt *string                    `json:"estimated_ready_at"`
	Items            []OrderItemResponse        `json:"items"`
	StatusHistory    []StatusTransitionResponse `json:"status_history"`
}

func toOrderDetailResponse(d queries.OrderDetail) OrderDetailResponse {
	items := make([]OrderItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		var menuItemID *string
		if it.MenuItemID != nil {
			id := it.MenuItemID.String()
			menuItemID = &id
		}
		items = append(items, OrderItemResponse{
			ID:         it.ID.String(),
			MenuItemID: menuItemID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
			Notes:      it.Notes,
			LineTotal:  it.LineTotal,
		})
	}

	history := make([]StatusTransitionResponse, 0, len(d.History))
	for _, tr := range d.History {
		history = append(history, StatusTransitionResponse{
			FromStatus: tr.From.String(),
			ToStatus:   tr.To.String(),
			ChangedBy:  tr.ChangedBy.String(),
			ChangedAt:  kernel.FormatTimestamp(tr.ChangedAt),
		})
	}

	return OrderDetailResponse{
		OrderID:          d.ID.String(),
		CustomerID:       d.CustomerID.String(),
		VendorID:         d.VendorID.String(),
		VendorName:       d.VendorName,
		PlacedAt:         kernel.FormatTimestamp(d.PlacedAt),
		ScheduledFor:     kernel.FormatTimestamp(d.ScheduledFor),
		TotalAmount:      d.Total,
		Status:           d.Status.String(),
		PaymentStatus:    d.PaymentStatus.String(),
		FulfillmentMode:  d.FulfillmentMode.String(),
		Notes:            d.Notes,
		EstimatedReadyAt: formatOptional(d.EstimatedReadyAt),
		Items:            items,
		StatusHistory:    history,
	}
}

type CustomerStatsResponse struct {
	TotalOrders int64        `json:"total_orders"`
	TotalSpent  kernel.Money `json:"total_spent"`
	LastOrderAt *string      `json:"last_order_at"`
}

type VendorStatsResponse struct {
	VendorID          string       `json:"vendor_id"`
	VendorName        string       `json:"vendor_name"`
	TotalOrders       int64        `json:"total_orders"`
	TotalRevenue      kernel.Money `json:"total_revenue"`
	AverageOrderValue kernel.Money `json:"average_order_value"`
	CompletedOrders   int64        `json:"completed_orders"`
	CancelledOrders   int64        `json:"cancelled_orders"`
	RejectedOrders    int64        `json:"rejected_orders"`
	PendingOrders     int64        `json:"pending_orders"`
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := kernel.FormatTimestamp(*t)
	return &s
}

func parseOptionalTimestamp(paramName string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := kernel.ParseTimestamp(paramName, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
