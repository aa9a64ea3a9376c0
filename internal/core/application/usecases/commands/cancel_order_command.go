package commands

import (
	"errors"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand is a customer withdrawing one of their orders.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(principal auth.Principal, orderID kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}
	if err := cmd.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}
	return cmd, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Principal() auth.Principal {
	return c.principal
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}
