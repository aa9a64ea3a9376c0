package queries

import (
	"context"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

func (h GetCustomerOrdersQueryHandler) Handle(ctx context.Context, query GetCustomerOrdersQuery) (OrderPage, error) {
	if err := query.Validate(); err != nil {
		return OrderPage{}, err
	}
	if err := auth.RequireCustomer(query.Principal()); err != nil {
		return OrderPage{}, err
	}

	where := "o.customer_id = ?"
	args := []any{query.Principal().UserID().Bytes()}
	if s := query.Status(); s != nil {
		where += " AND o.status = ?"
		args = append(args, s.String())
	}

	return listOrders(ctx, h.db, where, args, query.Page())
}

// listOrders runs the count and the page select for one filter. The filter
// refers to orders as o and vendors as v.
func listOrders(ctx context.Context, db *gorm.DB, where string, args []any, page Page) (OrderPage, error) {
	db = db.WithContext(ctx)

	var total int64
	err := db.Raw(`
		SELECT COUNT(*)
		FROM orders o
		INNER JOIN vendors v ON v.id = o.vendor_id
		WHERE `+where, args...).Scan(&total).Error
	if err != nil {
		return OrderPage{}, errs.NewPersistenceError("count orders", err)
	}

	var rows []orderListRow
	pageArgs := append(append([]any{}, args...), page.Limit, page.Offset)
	err = db.Raw(`
		SELECT `+orderListColumns+`
		FROM orders o
		INNER JOIN vendors v ON v.id = o.vendor_id
		WHERE `+where+`
		ORDER BY o.placed_at DESC, o.id
		LIMIT ? OFFSET ?`, pageArgs...).Scan(&rows).Error
	if err != nil {
		return OrderPage{}, errs.NewPersistenceError("list orders", err)
	}

	orders, err := toListItems(rows)
	if err != nil {
		return OrderPage{}, err
	}

	return OrderPage{
		Orders: orders,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}
