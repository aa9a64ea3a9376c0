package commands

import (
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/services"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer's checkout of a cart at one vendor.
//
// Example:
//
//	cart := []services.CartLine{{MenuItemID: pizzaID, Quantity: 2}}
//	cmd, err := NewPlaceOrderCommand(principal, vendorID, pickupAt, order.Pickup, "", cart)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	summary, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	principal       auth.Principal
	vendorID        kernel.UUID
	scheduledFor    time.Time
	fulfillmentMode order.FulfillmentMode
	notes           string
	cart            []services.CartLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand checks the request shape: a non-empty cart whose
// quantities are within bounds, a known fulfillment mode and bounded notes.
// Whether scheduledFor lies in the future is decided by the handler's clock.
func NewPlaceOrderCommand(
	principal auth.Principal,
	vendorID kernel.UUID,
	scheduledFor time.Time,
	fulfillmentMode order.FulfillmentMode,
	notes string,
	cart []services.CartLine,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		principal:    principal,
		scheduledFor: kernel.NormalizeTime(scheduledFor),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setScheduledFor(scheduledFor),
		cmd.setFulfillmentMode(fulfillmentMode),
		cmd.setNotes(notes),
		cmd.setCart(cart),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Principal() auth.Principal {
	return c.principal
}

func (c PlaceOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

func (c PlaceOrderCommand) ScheduledFor() time.Time {
	return c.scheduledFor
}

func (c PlaceOrderCommand) FulfillmentMode() order.FulfillmentMode {
	return c.fulfillmentMode
}

func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

// Cart returns a copy of the requested lines.
func (c PlaceOrderCommand) Cart() []services.CartLine {
	cart := make([]services.CartLine, len(c.cart))
	copy(cart, c.cart)
	return cart
}

// MenuItemIDs lists the distinct menu items the cart refers to.
func (c PlaceOrderCommand) MenuItemIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.cart))
	ids := make([]kernel.UUID, 0, len(c.cart))
	for _, line := range c.cart {
		if _, ok := seen[line.MenuItemID]; ok {
			continue
		}
		seen[line.MenuItemID] = struct{}{}
		ids = append(ids, line.MenuItemID)
	}
	return ids
}

func (c *PlaceOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	c.vendorID = vendorID
	return nil
}

func (c *PlaceOrderCommand) setScheduledFor(scheduledFor time.Time) error {
	if scheduledFor.IsZero() {
		return errs.NewValueIsRequiredError("scheduledFor")
	}
	return nil
}

func (c *PlaceOrderCommand) setFulfillmentMode(mode order.FulfillmentMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	c.fulfillmentMode = mode
	return nil
}

func (c *PlaceOrderCommand) setNotes(notes string) error {
	if n := utf8.RuneCountInString(notes); n > order.MaxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", n, 0, order.MaxNotesLength)
	}
	c.notes = notes
	return nil
}

func (c *PlaceOrderCommand) setCart(cart []services.CartLine) error {
	if len(cart) == 0 {
		return errs.NewValueIsRequiredError("cartItems")
	}
	for i, line := range cart {
		if err := line.MenuItemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("cartItems[%d].menuItemID", i), err)
		}
		if line.Quantity < order.MinQuantity {
			return errs.NewValueIsOutOfRangeError(fmt.Sprintf("cartItems[%d].quantity", i), line.Quantity, order.MinQuantity, math.MaxInt)
		}
		if n := utf8.RuneCountInString(line.Notes); n > order.MaxItemNotesLength {
			return errs.NewValueIsOutOfRangeError(fmt.Sprintf("cartItems[%d].notes length", i), n, 0, order.MaxItemNotesLength)
		}
	}
	c.cart = make([]services.CartLine, len(cart))
	copy(c.cart, cart)
	return nil
}
