package queries

import (
	"context"
	"errors"
	"time"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetCustomerStatsQueryIsNotConstructed = errors.New(
	"GetCustomerStatsQuery must be created via NewGetCustomerStatsQuery constructor",
)

type GetCustomerStatsQuery struct {
	principal auth.Principal

	guard guard.ConstructorGuard
}

func NewGetCustomerStatsQuery(principal auth.Principal) GetCustomerStatsQuery {
	return GetCustomerStatsQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}
}

func (q GetCustomerStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerStatsQueryIsNotConstructed)
}

func (q GetCustomerStatsQuery) Principal() auth.Principal {
	return q.principal
}

// CustomerStats summarises a customer's history. TotalSpent leaves out
// cancelled and rejected orders; TotalOrders counts everything.
type CustomerStats struct {
	TotalOrders int64
	TotalSpent  kernel.Money
	LastOrderAt *time.Time
}

type GetCustomerStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerStatsQueryHandler(db *gorm.DB) GetCustomerStatsQueryHandler {
	return GetCustomerStatsQueryHandler{db: db}
}

type customerTotalsRow struct {
	TotalOrders int64
	TotalSpent  decimal.Decimal
}

type lastOrderRow struct {
	PlacedAt time.Time
}

func (h GetCustomerStatsQueryHandler) Handle(ctx context.Context, query GetCustomerStatsQuery) (CustomerStats, error) {
	if err := query.Validate(); err != nil {
		return CustomerStats{}, err
	}
	if err := auth.RequireCustomer(query.Principal()); err != nil {
		return CustomerStats{}, err
	}

	db := h.db.WithContext(ctx)
	customerID := query.Principal().UserID().Bytes()

	var totals customerTotalsRow
	err := db.Raw(`
		SELECT
			COUNT(*) AS total_orders,
			COALESCE(SUM(CASE WHEN status NOT IN (?, ?) THEN total_amount ELSE 0 END), 0) AS total_spent
		FROM orders
		WHERE customer_id = ?
	`, order.Cancelled.String(), order.Rejected.String(), customerID).Scan(&totals).Error
	if err != nil {
		return CustomerStats{}, errs.NewPersistenceError("get customer totals", err)
	}

	stats := CustomerStats{
		TotalOrders: totals.TotalOrders,
		TotalSpent:  kernel.RoundMoney(totals.TotalSpent),
	}
	if totals.TotalOrders == 0 {
		return stats, nil
	}

	var last []lastOrderRow
	err = db.Raw(`
		SELECT placed_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY placed_at DESC
		LIMIT 1
	`, customerID).Scan(&last).Error
	if err != nil {
		return CustomerStats{}, errs.NewPersistenceError("get last order", err)
	}
	if len(last) == 1 {
		at := kernel.NormalizeTime(last[0].PlacedAt)
		stats.LastOrderAt = &at
	}

	return stats, nil
}
