package http

import (
	"net/http"

	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/application/usecases/queries"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/services"
	"campusfood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/v1/customer/orders - checks out a cart.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}

	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("vendor_id", err))
	}
	scheduledFor, err := kernel.ParseTimestamp("scheduled_for", req.ScheduledFor)
	if err != nil {
		return writeError(c, err)
	}
	mode, err := order.ParseFulfillmentMode(req.FulfillmentMode)
	if err != nil {
		return writeError(c, err)
	}

	cart := make([]services.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, parseErr := kernel.UUIDFromString(item.MenuItemID)
		if parseErr != nil {
			return writeError(c, errs.NewValueIsInvalidErrorWithCause("menu_item_id", parseErr))
		}
		cart = append(cart, services.CartLine{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
			Notes:      item.Notes,
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(principalFrom(c), vendorID, scheduledFor, mode, req.Notes, cart)
	if err != nil {
		return writeError(c, err)
	}

	summary, err := s.placeOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toOrderSummaryResponse(summary))
}

// GetCustomerOrders handles GET /api/v1/customer/orders - the caller's order history.
func (s *Server) GetCustomerOrders(c echo.Context) error {
	params, err := bindListParams(c)
	if err != nil {
		return badRequest(c, "Invalid query parameters", err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(principalFrom(c), params.status, params.limit, params.offset)
	if err != nil {
		return writeError(c, err)
	}

	page, err := s.getCustomerOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderPageResponse(page))
}

// GetCustomerOrder handles GET /api/v1/customer/orders/:orderId.
func (s *Server) GetCustomerOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetOrderDetailQuery(principalFrom(c), orderID)
	if err != nil {
		return writeError(c, err)
	}

	detail, err := s.getOrderDetailHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

// CancelOrder handles PUT /api/v1/customer/orders/:orderId/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(principalFrom(c), orderID)
	if err != nil {
		return writeError(c, err)
	}

	confirmation, err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CancelResponse{
		OrderID: confirmation.OrderID.String(),
		Status:  confirmation.Status.String(),
		Message: confirmation.Message,
	})
}

// GetCustomerStats handles GET /api/v1/customer/stats.
func (s *Server) GetCustomerStats(c echo.Context) error {
	stats, err := s.getCustomerStatsHandler.Handle(c.Request().Context(), queries.NewGetCustomerStatsQuery(principalFrom(c)))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CustomerStatsResponse{
		TotalOrders: stats.TotalOrders,
		TotalSpent:  stats.TotalSpent,
		LastOrderAt: formatOptional(stats.LastOrderAt),
	})
}
