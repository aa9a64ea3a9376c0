package queries

import (
	"context"
	"errors"
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery finds orders whose scheduled time has passed while
// the vendor has not started preparing them (pending or accepted).
// It is a system read and carries no principal.
type GetOverdueOrdersQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewGetOverdueOrdersQuery(now time.Time) (GetOverdueOrdersQuery, error) {
	if now.IsZero() {
		return GetOverdueOrdersQuery{}, errs.NewValueIsRequiredError("now")
	}
	return GetOverdueOrdersQuery{
		now:   kernel.NormalizeTime(now),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

func (q GetOverdueOrdersQuery) Now() time.Time {
	return q.now
}

// OverdueOrder is an order past its scheduled time, with how late it is.
type OverdueOrder struct {
	OrderListItem
	Overdue time.Duration
}

type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle returns overdue orders grouped by vendor name, earliest scheduled
// first within a vendor.
func (h GetOverdueOrdersQueryHandler) Handle(ctx context.Context, query GetOverdueOrdersQuery) ([]OverdueOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderListRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderListColumns+`
		FROM orders o
		INNER JOIN vendors v ON v.id = o.vendor_id
		WHERE o.status IN (?, ?) AND o.scheduled_for < ?
		ORDER BY v.name, o.scheduled_for, o.id
	`, order.Pending.String(), order.Accepted.String(), query.Now()).Scan(&rows).Error
	if err != nil {
		return nil, errs.NewPersistenceError("get overdue orders", err)
	}

	items, err := toListItems(rows)
	if err != nil {
		return nil, err
	}

	overdue := make([]OverdueOrder, 0, len(items))
	for _, item := range items {
		overdue = append(overdue, OverdueOrder{
			OrderListItem: item,
			Overdue:       query.Now().Sub(item.ScheduledFor),
		})
	}
	return overdue, nil
}
