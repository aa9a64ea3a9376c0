package commands

import (
	"errors"
	"strings"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var ErrCreateVendorCommandIsNotConstructed = errors.New(
	"CreateVendorCommand must be created via NewCreateVendorCommand constructor",
)

// CreateVendorCommand opens a storefront for the calling vendor user.
// The vendor gets exactly one menu; its title defaults to the vendor name.
type CreateVendorCommand struct { //nolint:recvcheck //using for validation
	principal      auth.Principal
	name           string
	description    string
	location       string
	offersPickup   bool
	offersDelivery bool
	menuTitle      string

	guard guard.ConstructorGuard
}

func NewCreateVendorCommand(
	principal auth.Principal,
	name string,
	description string,
	location string,
	offersPickup bool,
	offersDelivery bool,
	menuTitle string,
) (CreateVendorCommand, error) {
	cmd := CreateVendorCommand{
		principal:      principal,
		description:    strings.TrimSpace(description),
		offersPickup:   offersPickup,
		offersDelivery: offersDelivery,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setLocation(location),
	); err != nil {
		return CreateVendorCommand{}, err
	}

	cmd.menuTitle = strings.TrimSpace(menuTitle)
	if cmd.menuTitle == "" {
		cmd.menuTitle = cmd.name
	}

	return cmd, nil
}

func (c CreateVendorCommand) Validate() error {
	return c.guard.Validate(ErrCreateVendorCommandIsNotConstructed)
}

func (c CreateVendorCommand) Principal() auth.Principal {
	return c.principal
}

func (c CreateVendorCommand) Name() string {
	return c.name
}

func (c CreateVendorCommand) Description() string {
	return c.description
}

func (c CreateVendorCommand) Location() string {
	return c.location
}

func (c CreateVendorCommand) OffersPickup() bool {
	return c.offersPickup
}

func (c CreateVendorCommand) OffersDelivery() bool {
	return c.offersDelivery
}

func (c CreateVendorCommand) MenuTitle() string {
	return c.menuTitle
}

func (c *CreateVendorCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateVendorCommand) setLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	c.location = location
	return nil
}
