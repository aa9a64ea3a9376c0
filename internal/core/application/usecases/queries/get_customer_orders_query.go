package queries

import (
	"errors"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery lists the calling customer's orders, newest first,
// optionally narrowed to one status.
type GetCustomerOrdersQuery struct {
	principal auth.Principal
	status    *order.Status
	page      Page

	guard guard.ConstructorGuard
}

func NewGetCustomerOrdersQuery(principal auth.Principal, status *order.Status, limit, offset int) (GetCustomerOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetCustomerOrdersQuery{}, err
		}
		s := *status
		status = &s
	}
	page, err := NewPage(limit, offset)
	if err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	return GetCustomerOrdersQuery{
		principal: principal,
		status:    status,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) Principal() auth.Principal {
	return q.principal
}

func (q GetCustomerOrdersQuery) Status() *order.Status {
	return q.status
}

func (q GetCustomerOrdersQuery) Page() Page {
	return q.page
}
