package commands

import (
	"errors"
	"time"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand is a vendor moving one of its orders along the
// lifecycle, optionally announcing when it will be ready.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	principal        auth.Principal
	vendorID         kernel.UUID
	orderID          kernel.UUID
	newStatus        order.Status
	estimatedReadyAt *time.Time

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(
	principal auth.Principal,
	vendorID kernel.UUID,
	orderID kernel.UUID,
	newStatus order.Status,
	estimatedReadyAt *time.Time,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}
	if estimatedReadyAt != nil {
		eta := kernel.NormalizeTime(*estimatedReadyAt)
		cmd.estimatedReadyAt = &eta
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Principal() auth.Principal {
	return c.principal
}

func (c UpdateOrderStatusCommand) VendorID() kernel.UUID {
	return c.vendorID
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c UpdateOrderStatusCommand) EstimatedReadyAt() *time.Time {
	if c.estimatedReadyAt == nil {
		return nil
	}
	eta := *c.estimatedReadyAt
	return &eta
}

func (c *UpdateOrderStatusCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	c.vendorID = vendorID
	return nil
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.newStatus = status
	return nil
}
