package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetVendorOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetVendorOrdersQueryHandler(db *gorm.DB) GetVendorOrdersQueryHandler {
	return GetVendorOrdersQueryHandler{db: db}
}

func (h GetVendorOrdersQueryHandler) Handle(ctx context.Context, query GetVendorOrdersQuery) (OrderPage, error) {
	if err := query.Validate(); err != nil {
		return OrderPage{}, err
	}
	if _, err := requireVendorOwner(ctx, h.db, query.Principal(), query.VendorID()); err != nil {
		return OrderPage{}, err
	}

	where := "o.vendor_id = ?"
	args := []any{query.VendorID().Bytes()}
	if s := query.Status(); s != nil {
		where += " AND o.status = ?"
		args = append(args, s.String())
	}
	if from := query.DateFrom(); from != nil {
		where += " AND o.placed_at >= ?"
		args = append(args, *from)
	}
	if to := query.DateTo(); to != nil {
		where += " AND o.placed_at <= ?"
		args = append(args, *to)
	}

	return listOrders(ctx, h.db, where, args, query.Page())
}
