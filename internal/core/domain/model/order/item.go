package order

import (
	"errors"
	"math"
	"unicode/utf8"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

const (
	MinQuantity        = 1
	MaxItemNotesLength = 500
)

var ErrItemIsNotConstructed = errors.New("order Item must be created via NewItem constructor")

// Item is one line of an order. Name and price are snapshots taken when the
// order was placed and are never re-derived from the menu.
type Item struct {
	id         kernel.UUID
	menuItemID *kernel.UUID
	name       string
	price      kernel.Money
	quantity   int
	notes      string

	guard guard.ConstructorGuard
}

// NewItem snapshots a menu item into an order line.
func NewItem(id kernel.UUID, menuItemID kernel.UUID, name string, price kernel.Money, quantity int, notes string) (*Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("menuItemID", err)
	}
	return RestoreItem(id, &menuItemID, name, price, quantity, notes)
}

// RestoreItem rebuilds a line from persisted state. menuItemID is nil once
// the source menu item has been deleted.
func RestoreItem(id kernel.UUID, menuItemID *kernel.UUID, name string, price kernel.Money, quantity int, notes string) (*Item, error) {
	it := &Item{
		menuItemID: menuItemID,
		price:      price,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setName(name),
		it.setQuantity(quantity),
		it.setNotes(notes),
	); err != nil {
		return nil, err
	}

	return it, nil
}

func (it *Item) Validate() error {
	if it == nil {
		return ErrItemIsNotConstructed
	}
	return it.guard.Validate(ErrItemIsNotConstructed)
}

func (it *Item) ID() kernel.UUID {
	return it.id
}

func (it *Item) MenuItemID() *kernel.UUID {
	return it.menuItemID
}

func (it *Item) Name() string {
	return it.name
}

func (it *Item) Price() kernel.Money {
	return it.price
}

func (it *Item) Quantity() int {
	return it.quantity
}

func (it *Item) Notes() string {
	return it.notes
}

// Subtotal is price × quantity.
func (it *Item) Subtotal() kernel.Money {
	return it.price.Times(it.quantity)
}

func (it *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	it.id = id
	return nil
}

func (it *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	it.name = name
	return nil
}

func (it *Item) setQuantity(quantity int) error {
	if quantity < MinQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, math.MaxInt)
	}
	it.quantity = quantity
	return nil
}

func (it *Item) setNotes(notes string) error {
	if n := utf8.RuneCountInString(notes); n > MaxItemNotesLength {
		return errs.NewValueIsOutOfRangeError("item notes length", n, 0, MaxItemNotesLength)
	}
	it.notes = notes
	return nil
}
