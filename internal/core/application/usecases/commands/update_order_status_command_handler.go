package commands

import (
	"context"
	"errors"
	"time"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/vendor"
	"campusfood/internal/pkg/errs"
)

// StatusChange reports the outcome of a vendor status update.
type StatusChange struct {
	OrderID          kernel.UUID
	OldStatus        order.Status
	NewStatus        order.Status
	EstimatedReadyAt *time.Time
}

// UpdateOrderStatusCommandHandler applies vendor driven transitions.
// The status, the estimated ready time, the history row and the version
// bump are committed together; a concurrent writer makes the update fail
// with errs.ErrVersionIsInvalid.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) UpdateOrderStatusCommandHandler {
	if clock == nil {
		clock = kernel.SystemClock
	}
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle checks that the caller owns the vendor and that the order belongs
// to it, then moves the order to the requested status.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (StatusChange, error) {
	if err := cmd.Validate(); err != nil {
		return StatusChange{}, err
	}
	if err := auth.RequireVendor(cmd.Principal()); err != nil {
		return StatusChange{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return StatusChange{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := loadOwnedVendor(ctx, uow.VendorRepository(), cmd.Principal(), cmd.VendorID()); err != nil {
		return StatusChange{}, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return StatusChange{}, err
	}
	if !o.IsFrom(cmd.VendorID()) {
		return StatusChange{}, errs.NewAccessDeniedError("order", cmd.OrderID().String())
	}

	old, err := o.ChangeStatus(cmd.Principal().UserID(), cmd.NewStatus(), cmd.EstimatedReadyAt(), kernel.NormalizeTime(h.clock()))
	if err != nil {
		return StatusChange{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return StatusChange{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return StatusChange{}, err
	}

	return StatusChange{
		OrderID:          o.ID(),
		OldStatus:        old,
		NewStatus:        o.Status(),
		EstimatedReadyAt: o.EstimatedReadyAt(),
	}, nil
}

type vendorGetter interface {
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)
}

// loadOwnedVendor fetches the vendor and fails with AccessDenied unless the
// principal owns it. A vendor that does not exist is not owned either.
func loadOwnedVendor(ctx context.Context, repo vendorGetter, principal auth.Principal, vendorID kernel.UUID) (*vendor.Vendor, error) {
	v, err := repo.Get(ctx, vendorID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewAccessDeniedErrorWithCause("vendor", vendorID.String(), err)
	}
	if err != nil {
		return nil, err
	}
	if !v.IsOwnedBy(principal.UserID()) {
		return nil, errs.NewAccessDeniedError("vendor", vendorID.String())
	}
	return v, nil
}
