package http

import (
	"net/http"

	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/application/usecases/queries"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateVendor handles POST /api/v1/vendors - registers the caller's outlet and its menu.
func (s *Server) CreateVendor(c echo.Context) error {
	var req CreateVendorRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}

	cmd, err := commands.NewCreateVendorCommand(
		principalFrom(c),
		req.Name,
		req.Description,
		req.Location,
		req.PickupAvailable,
		req.DeliveryAvailable,
		req.MenuTitle,
	)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.createVendorHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, VendorCreatedResponse{
		VendorID: created.VendorID.String(),
		MenuID:   created.MenuID.String(),
	})
}

// AddMenuItem handles POST /api/v1/vendors/:vendorId/menu/items.
func (s *Server) AddMenuItem(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return writeError(c, err)
	}
	var req AddMenuItemRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}

	cmd, err := commands.NewAddMenuItemCommand(
		principalFrom(c),
		vendorID,
		req.Name,
		req.Description,
		req.Price,
		req.PreparationMinutes,
		req.ImageURL,
	)
	if err != nil {
		return writeError(c, err)
	}

	itemID, err := s.addMenuItemHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, MenuItemCreatedResponse{MenuItemID: itemID.String()})
}

// UpdateMenuItem handles PUT /api/v1/vendors/:vendorId/menu/items/:itemId.
func (s *Server) UpdateMenuItem(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return writeError(c, err)
	}
	itemID, err := pathUUID(c, "itemId")
	if err != nil {
		return writeError(c, err)
	}
	var req UpdateMenuItemRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(principalFrom(c), vendorID, itemID, req.toChanges())
	if err != nil {
		return writeError(c, err)
	}

	if err = s.updateMenuItemHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteMenuItem handles DELETE /api/v1/vendors/:vendorId/menu/items/:itemId.
func (s *Server) DeleteMenuItem(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return writeError(c, err)
	}
	itemID, err := pathUUID(c, "itemId")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewDeleteMenuItemCommand(principalFrom(c), vendorID, itemID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.deleteMenuItemHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetVendorOrders handles GET /api/v1/vendors/:vendorId/orders.
func (s *Server) GetVendorOrders(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return writeError(c, err)
	}
	params, err := bindListParams(c)
	if err != nil {
		return badRequest(c, "Invalid query parameters", err)
	}

	query, err := queries.NewGetVendorOrdersQuery(
		principalFrom(c),
		vendorID,
		params.status,
		params.dateFrom,
		params.dateTo,
		params.limit,
		params.offset,
	)
	if err != nil {
		return writeError(c, err)
	}

	page, err := s.getVendorOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderPageResponse(page))
}

// GetVendorOrder handles GET /api/v1/vendors/:vendorId/orders/:orderId.
// An order of another vendor is reported as forbidden.
func (s *Server) GetVendorOrder(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return writeError(c, err)
	}
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
	if !detail.VendorID.IsEqual(vendorID) {
		return writeError(c, errs.NewAccessDeniedError("order", orderID.String()))
	}

	return c.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

// UpdateOrderStatus handles PUT /api/v1/vendors/:vendorId/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return writeError(c, err)
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return writeError(c, err)
	}
	var req UpdateOrderStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(c, err)
	}
	eta, err := parseOptionalTimestamp("estimated_ready_at", req.EstimatedReadyAt)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(principalFrom(c), vendorID, orderID, status, eta)
	if err != nil {
		return writeError(c, err)
	}

	change, err := s.updateOrderStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, StatusChangeResponse{
		OrderID:          change.OrderID.String(),
		OldStatus:        change.OldStatus.String(),
		NewStatus:        change.NewStatus.String(),
		EstimatedReadyAt: formatOptional(change.EstimatedReadyAt),
	})
}

// GetVendorStats handles GET /api/v1/vendors/:vendorId/stats.
func (s *Server) GetVendorStats(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetVendorStatsQuery(principalFrom(c), vendorID)
	if err != nil {
		return writeError(c, err)
	}

	stats, err := s.getVendorStatsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, VendorStatsResponse{
		VendorID:          stats.VendorID.String(),
		VendorName:        stats.VendorName,
		TotalOrders:       stats.TotalOrders,
		TotalRevenue:      stats.TotalRevenue,
		AverageOrderValue: stats.AverageOrderValue,
		CompletedOrders:   stats.CompletedOrders,
		CancelledOrders:   stats.CancelledOrders,
		RejectedOrders:    stats.RejectedOrders,
		PendingOrders:     stats.PendingOrders,
	})
}
