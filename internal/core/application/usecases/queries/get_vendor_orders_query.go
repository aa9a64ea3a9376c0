package queries

import (
	"errors"
	"fmt"
	"time"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var ErrGetVendorOrdersQueryIsNotConstructed = errors.New(
	"GetVendorOrdersQuery must be created via NewGetVendorOrdersQuery constructor",
)

// GetVendorOrdersQuery lists a vendor's orders for its owner, newest first.
// dateFrom and dateTo bound placed_at inclusively; either may be nil.
type GetVendorOrdersQuery struct {
	principal auth.Principal
	vendorID  kernel.UUID
	status    *order.Status
	dateFrom  *time.Time
	dateTo    *time.Time
	page      Page

	guard guard.ConstructorGuard
}

func NewGetVendorOrdersQuery(
	principal auth.Principal,
	vendorID kernel.UUID,
	status *order.Status,
	dateFrom *time.Time,
	dateTo *time.Time,
	limit, offset int,
) (GetVendorOrdersQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetVendorOrdersQuery{}, err
		}
		s := *status
		status = &s
	}
	dateFrom = normalizeOptional(dateFrom)
	dateTo = normalizeOptional(dateTo)
	if dateFrom != nil && dateTo != nil && dateFrom.After(*dateTo) {
		return GetVendorOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"dateFrom",
			fmt.Errorf("%s is after dateTo %s", kernel.FormatTimestamp(*dateFrom), kernel.FormatTimestamp(*dateTo)),
		)
	}
	page, err := NewPage(limit, offset)
	if err != nil {
		return GetVendorOrdersQuery{}, err
	}

	return GetVendorOrdersQuery{
		principal: principal,
		vendorID:  vendorID,
		status:    status,
		dateFrom:  dateFrom,
		dateTo:    dateTo,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func normalizeOptional(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := kernel.NormalizeTime(*t)
	return &n
}

func (q GetVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorOrdersQueryIsNotConstructed)
}

func (q GetVendorOrdersQuery) Principal() auth.Principal {
	return q.principal
}

func (q GetVendorOrdersQuery) VendorID() kernel.UUID {
	return q.vendorID
}

func (q GetVendorOrdersQuery) Status() *order.Status {
	return q.status
}

func (q GetVendorOrdersQuery) DateFrom() *time.Time {
	return q.dateFrom
}

func (q GetVendorOrdersQuery) DateTo() *time.Time {
	return q.dateTo
}

func (q GetVendorOrdersQuery) Page() Page {
	return q.page
}
