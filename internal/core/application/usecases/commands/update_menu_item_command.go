package commands

import (
	"errors"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// MenuItemChanges lists the fields to edit. Nil fields are left untouched.
type MenuItemChanges struct {
	Name               *string
	Description        *string
	Price              *kernel.Money
	Available          *bool
	PreparationMinutes *int
	ImageURL           *string
}

func (c MenuItemChanges) isEmpty() bool {
	return c.Name == nil && c.Description == nil && c.Price == nil &&
		c.Available == nil && c.PreparationMinutes == nil && c.ImageURL == nil
}

// UpdateMenuItemCommand edits a live menu item. Orders already placed keep
// the name and price they were placed with.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	vendorID  kernel.UUID
	itemID    kernel.UUID
	changes   MenuItemChanges

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(
	principal auth.Principal,
	vendorID kernel.UUID,
	itemID kernel.UUID,
	changes MenuItemChanges,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setItemID(itemID),
		cmd.setChanges(changes),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) Principal() auth.Principal {
	return c.principal
}

func (c UpdateMenuItemCommand) VendorID() kernel.UUID {
	return c.vendorID
}

func (c UpdateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c UpdateMenuItemCommand) Changes() MenuItemChanges {
	return c.changes
}

func (c *UpdateMenuItemCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	c.vendorID = vendorID
	return nil
}

func (c *UpdateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("itemID", err)
	}
	c.itemID = itemID
	return nil
}

func (c *UpdateMenuItemCommand) setChanges(changes MenuItemChanges) error {
	if changes.isEmpty() {
		return errs.NewValueIsRequiredError("changes")
	}
	c.changes = changes
	return nil
}
