package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/services"
	"campusfood/internal/pkg/errs"
)

// OrderSummary is what a customer gets back after checkout.
type OrderSummary struct {
	OrderID      kernel.UUID
	VendorName   string
	Total        kernel.Money
	Status       order.Status
	PlacedAt     time.Time
	ScheduledFor time.Time
}

// PlaceOrderCommandHandler turns a cart into a pending order. The cart is
// priced against the vendor's live menu, every line's name and price are
// snapshotted, and the order with its lines and first history row is
// written in one transaction. Nothing is written if any line fails.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, kernel.SystemClock)
//	summary, err := handler.Handle(ctx, cmd)
//	switch errs.KindOf(err) {
//	case errs.KindNotFound:
//	    // vendor or menu item does not exist
//	case errs.KindConflict:
//	    // item unavailable, menu inactive, or fulfillment mode not offered
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
	pricer     services.CartPricer
}

// NewPlaceOrderCommandHandler creates the checkout handler. A nil clock
// falls back to the system clock.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) PlaceOrderCommandHandler {
	if clock == nil {
		clock = kernel.SystemClock
	}
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		pricer:     services.NewCartPricer(),
	}
}

// Handle validates the request, prices the cart and persists the order.
// scheduledFor must be strictly after the current time; the comparison is
// made in UTC so the caller's zone does not matter.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (OrderSummary, error) {
	if err := cmd.Validate(); err != nil {
		return OrderSummary{}, err
	}
	if err := auth.RequireCustomer(cmd.Principal()); err != nil {
		return OrderSummary{}, err
	}

	now := kernel.NormalizeTime(h.clock())
	if !cmd.ScheduledFor().After(now) {
		return OrderSummary{}, errs.NewValueIsInvalidErrorWithCause("scheduledFor",
			fmt.Errorf("%s is not in the future", kernel.FormatTimestamp(cmd.ScheduledFor())))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderSummary{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return OrderSummary{}, err
	}

	m, err := uow.MenuRepository().GetByVendor(ctx, v.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return OrderSummary{}, err
	}
	var catalog []*menu.Item
	if m != nil {
		if catalog, err = uow.MenuRepository().GetItems(ctx, cmd.MenuItemIDs()); err != nil {
			return OrderSummary{}, err
		}
	}

	lines, err := h.pricer.Price(v, m, catalog, cmd.FulfillmentMode(), cmd.Cart())
	if err != nil {
		return OrderSummary{}, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Principal().UserID(),
		v.ID(),
		now,
		cmd.ScheduledFor(),
		cmd.FulfillmentMode(),
		cmd.Notes(),
		lines,
	)
	if err != nil {
		return OrderSummary{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return OrderSummary{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		OrderID:      o.ID(),
		VendorName:   v.Name(),
		Total:        o.Total(),
		Status:       o.Status(),
		PlacedAt:     o.PlacedAt(),
		ScheduledFor: o.ScheduledFor(),
	}, nil
}
