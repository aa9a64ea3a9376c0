package http

import (
	"net/http"

	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server exposes the ordering workflow over HTTP. Handlers translate
// requests into commands and queries and render their results; every
// decision is left to the use cases.
type Server struct {
	// Command handlers
	createVendorHandler      commands.CreateVendorCommandHandler
	addMenuItemHandler       commands.AddMenuItemCommandHandler
	updateMenuItemHandler    commands.UpdateMenuItemCommandHandler
	deleteMenuItemHandler    commands.DeleteMenuItemCommandHandler
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getOrderDetailHandler    queries.GetOrderDetailQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getVendorOrdersHandler   queries.GetVendorOrdersQueryHandler
	getCustomerStatsHandler  queries.GetCustomerStatsQueryHandler
	getVendorStatsHandler    queries.GetVendorStatsQueryHandler
}

// Handlers groups the use case handlers the server dispatches to.
type Handlers struct {
	CreateVendor      commands.CreateVendorCommandHandler
	AddMenuItem       commands.AddMenuItemCommandHandler
	UpdateMenuItem    commands.UpdateMenuItemCommandHandler
	DeleteMenuItem    commands.DeleteMenuItemCommandHandler
	PlaceOrder        commands.PlaceOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler

	GetOrderDetail    queries.GetOrderDetailQueryHandler
	GetCustomerOrders queries.GetCustomerOrdersQueryHandler
	GetVendorOrders   queries.GetVendorOrdersQueryHandler
	GetCustomerStats  queries.GetCustomerStatsQueryHandler
	GetVendorStats    queries.GetVendorStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createVendorHandler:      h.CreateVendor,
		addMenuItemHandler:       h.AddMenuItem,
		updateMenuItemHandler:    h.UpdateMenuItem,
		deleteMenuItemHandler:    h.DeleteMenuItem,
		placeOrderHandler:        h.PlaceOrder,
		updateOrderStatusHandler: h.UpdateOrderStatus,
		cancelOrderHandler:       h.CancelOrder,
		getOrderDetailHandler:    h.GetOrderDetail,
		getCustomerOrdersHandler: h.GetCustomerOrders,
		getVendorOrdersHandler:   h.GetVendorOrders,
		getCustomerStatsHandler:  h.GetCustomerStats,
		getVendorStatsHandler:    h.GetVendorStats,
	}
}

// Register mounts /health and the authenticated /api/v1 routes on e.
func (s *Server) Register(e *echo.Echo, jwtSecret []byte) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", JWTMiddleware(jwtSecret))

	vendors := api.Group("/vendors")
	vendors.POST("", s.CreateVendor)
	vendors.POST("/:vendorId/menu/items", s.AddMenuItem)
	vendors.PUT("/:vendorId/menu/items/:itemId", s.UpdateMenuItem)
	vendors.DELETE("/:vendorId/menu/items/:itemId", s.DeleteMenuItem)
	vendors.GET("/:vendorId/orders", s.GetVendorOrders)
	vendors.GET("/:vendorId/orders/:orderId", s.GetVendorOrder)
	vendors.PUT("/:vendorId/orders/:orderId/status", s.UpdateOrderStatus)
	vendors.GET("/:vendorId/stats", s.GetVendorStats)

	customer := api.Group("/customer")
	customer.POST("/orders", s.PlaceOrder)
	customer.GET("/orders", s.GetCustomerOrders)
	customer.GET("/orders/:orderId", s.GetCustomerOrder)
	customer.PUT("/orders/:orderId/cancel", s.CancelOrder)
	customer.GET("/stats", s.GetCustomerStats)
}
