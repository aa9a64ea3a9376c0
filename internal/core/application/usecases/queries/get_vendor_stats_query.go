package queries

import (
	"context"
	"errors"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetVendorStatsQueryIsNotConstructed = errors.New(
	"GetVendorStatsQuery must be created via NewGetVendorStatsQuery constructor",
)

type GetVendorStatsQuery struct {
	principal auth.Principal
	vendorID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetVendorStatsQuery(principal auth.Principal, vendorID kernel.UUID) (GetVendorStatsQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorStatsQuery{}, errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	return GetVendorStatsQuery{
		principal: principal,
		vendorID:  vendorID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetVendorStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorStatsQueryIsNotConstructed)
}

func (q GetVendorStatsQuery) Principal() auth.Principal {
	return q.principal
}

func (q GetVendorStatsQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// VendorStats summarises a vendor's orders. Revenue and the average cover
// orders that are neither cancelled nor rejected. PendingOrders counts every
// order still open (pending, accepted, preparing or ready).
type VendorStats struct {
	VendorID          kernel.UUID
	VendorName        string
	TotalOrders       int64
	TotalRevenue      kernel.Money
	AverageOrderValue kernel.Money
	CompletedOrders   int64
	CancelledOrders   int64
	RejectedOrders    int64
	PendingOrders     int64
}

type GetVendorStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetVendorStatsQueryHandler(db *gorm.DB) GetVendorStatsQueryHandler {
	return GetVendorStatsQueryHandler{db: db}
}

type statusCountRow struct {
	Status     string
	OrderCount int64
	Amount     decimal.Decimal
}

func (h GetVendorStatsQueryHandler) Handle(ctx context.Context, query GetVendorStatsQuery) (VendorStats, error) {
	if err := query.Validate(); err != nil {
		return VendorStats{}, err
	}
	vendorName, err := requireVendorOwner(ctx, h.db, query.Principal(), query.VendorID())
	if err != nil {
		return VendorStats{}, err
	}

	var rows []statusCountRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) AS order_count,
			COALESCE(SUM(total_amount), 0) AS amount
		FROM orders
		WHERE vendor_id = ?
		GROUP BY status
	`, query.VendorID().Bytes()).Scan(&rows).Error
	if err != nil {
		return VendorStats{}, errs.NewPersistenceError("get vendor stats", err)
	}

	stats := VendorStats{
		VendorID:          query.VendorID(),
		VendorName:        vendorName,
		TotalRevenue:      kernel.ZeroMoney(),
		AverageOrderValue: kernel.ZeroMoney(),
	}

	revenue := decimal.Zero
	var sales int64
	for _, row := range rows {
		status, parseErr := order.ParseStatus(row.Status)
		if parseErr != nil {
			return VendorStats{}, parseErr
		}

		stats.TotalOrders += row.OrderCount
		switch {
		case status == order.Completed:
			stats.CompletedOrders += row.OrderCount
		case status == order.Cancelled:
			stats.CancelledOrders += row.OrderCount
		case status == order.Rejected:
			stats.RejectedOrders += row.OrderCount
		case status.IsOpen():
			stats.PendingOrders += row.OrderCount
		}
		if status.CountsAsSale() {
			revenue = revenue.Add(row.Amount)
			sales += row.OrderCount
		}
	}

	stats.TotalRevenue = kernel.RoundMoney(revenue)
	if sales > 0 {
		stats.AverageOrderValue = kernel.RoundMoney(revenue.Div(decimal.NewFromInt(sales)))
	}

	return stats, nil
}
