package services

import (
	"fmt"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/vendor"
	"campusfood/internal/pkg/errs"
)

// CartLine is one requested menu item and quantity.
type CartLine struct {
	MenuItemID kernel.UUID
	Quantity   int
	Notes      string
}

// CartPricer is a domain service that validates a cart against a vendor's
// live menu and snapshots each line.
//
// Business rules:
//   - The vendor must offer the requested fulfillment mode
//   - Every line must reference an item sold by that vendor (NotFound otherwise)
//   - The vendor's menu must be active and every item available (Conflict otherwise)
//   - A single failing line fails the whole cart
//
// Example usage:
//
//	lines, err := services.NewCartPricer().Price(v, m, items, order.Pickup, cart)
//	if err != nil {
//	    return err
//	}
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, v.ID(), now, scheduledFor, order.Pickup, notes, lines)
type CartPricer struct{}

func NewCartPricer() CartPricer {
	return CartPricer{}
}

// Price checks the cart and returns one order line per cart line, with the
// item's current name and price captured. catalog holds whatever menu items
// the store returned for the cart's IDs; missing entries are reported as
// not found. m is nil when the vendor has no menu yet.
func (p CartPricer) Price(
	v *vendor.Vendor,
	m *menu.Menu,
	catalog []*menu.Item,
	mode order.FulfillmentMode,
	cart []CartLine,
) ([]*order.Item, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if err := p.checkFulfillment(v, mode); err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, errs.NewValueIsRequiredError("cartItems")
	}

	byID := make(map[kernel.UUID]*menu.Item, len(catalog))
	for _, it := range catalog {
		byID[it.ID()] = it
	}

	lines := make([]*order.Item, 0, len(cart))
	for _, cl := range cart {
		it, ok := byID[cl.MenuItemID]
		if !ok || !it.BelongsTo(v.ID()) {
			return nil, errs.NewObjectNotFoundError("menuItem", cl.MenuItemID.String())
		}
		if m == nil || !it.MenuID().IsEqual(m.ID()) {
			return nil, errs.NewObjectNotFoundError("menuItem", cl.MenuItemID.String())
		}
		if !m.IsActive() {
			return nil, errs.NewObjectIsUnavailableError("menu", m.ID().String(), "menu is not active")
		}
		if !it.IsAvailable() {
			return nil, errs.NewObjectIsUnavailableError("menuItem", it.ID().String(), fmt.Sprintf("%s is not available", it.Name()))
		}

		line, err := order.NewItem(kernel.NewUUID(), it.ID(), it.Name(), it.Price(), cl.Quantity, cl.Notes)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func (p CartPricer) checkFulfillment(v *vendor.Vendor, mode order.FulfillmentMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	if mode == order.Pickup && !v.OffersPickup() {
		return errs.NewObjectIsUnavailableError("fulfillmentMode", mode.String(), v.Name()+" does not offer pickup")
	}
	if mode == order.Delivery && !v.OffersDelivery() {
		return errs.NewObjectIsUnavailableError("fulfillmentMode", mode.String(), v.Name()+" does not offer delivery")
	}
	return nil
}
