package commands

import (
	"errors"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand takes an item off a vendor's menu for good.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	vendorID  kernel.UUID
	itemID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(principal auth.Principal, vendorID kernel.UUID, itemID kernel.UUID) (DeleteMenuItemCommand, error) {
	cmd := DeleteMenuItemCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setItemID(itemID),
	); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) Principal() auth.Principal {
	return c.principal
}

func (c DeleteMenuItemCommand) VendorID() kernel.UUID {
	return c.vendorID
}

func (c DeleteMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *DeleteMenuItemCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	c.vendorID = vendorID
	return nil
}

func (c *DeleteMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("itemID", err)
	}
	c.itemID = itemID
	return nil
}
