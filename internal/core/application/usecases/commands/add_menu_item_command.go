package commands

import (
	"errors"
	"strings"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand puts a new dish on a vendor's menu. A zero preparation
// time means menu.DefaultPreparationMinutes.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	principal          auth.Principal
	vendorID           kernel.UUID
	name               string
	description        string
	price              kernel.Money
	preparationMinutes int
	imageURL           string

	guard guard.ConstructorGuard
}

func NewAddMenuItemCommand(
	principal auth.Principal,
	vendorID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	preparationMinutes int,
	imageURL string,
) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		principal:          principal,
		description:        description,
		price:              price,
		preparationMinutes: preparationMinutes,
		imageURL:           strings.TrimSpace(imageURL),
		guard:              guard.NewConstructorGuard(),
	}
	if cmd.preparationMinutes == 0 {
		cmd.preparationMinutes = menu.DefaultPreparationMinutes
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setName(name),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

func (c AddMenuItemCommand) Principal() auth.Principal {
	return c.principal
}

func (c AddMenuItemCommand) VendorID() kernel.UUID {
	return c.vendorID
}

func (c AddMenuItemCommand) Name() string {
	return c.name
}

func (c AddMenuItemCommand) Description() string {
	return c.description
}

func (c AddMenuItemCommand) Price() kernel.Money {
	return c.price
}

func (c AddMenuItemCommand) PreparationMinutes() int {
	return c.preparationMinutes
}

func (c AddMenuItemCommand) ImageURL() string {
	return c.imageURL
}

func (c *AddMenuItemCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	c.vendorID = vendorID
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
