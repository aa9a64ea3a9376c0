package menu

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

const (
	MaxItemNameLength         = 100
	MaxItemDescriptionLength  = 500
	MinPreparationMinutes     = 1
	MaxPreparationMinutes     = 240
	DefaultPreparationMinutes = 15
)

var ErrItemIsNotConstructed = errors.New("Item must be created via Menu.NewItem")

// Item is a dish or drink on a vendor's menu. Price and availability are
// live values; orders copy them at placement time.
type Item struct {
	id                 kernel.UUID
	menuID             kernel.UUID
	vendorID           kernel.UUID
	name               string
	description        string
	price              kernel.Money
	available          bool
	preparationMinutes int
	imageURL           string

	guard guard.ConstructorGuard
}

// RestoreItem rebuilds an Item from persisted state.
func RestoreItem(
	id kernel.UUID,
	menuID kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	available bool,
	preparationMinutes int,
	imageURL string,
) (*Item, error) {
	it := &Item{
		price:     price,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setMenuID(menuID),
		it.setVendorID(vendorID),
		it.setName(name),
		it.setDescription(description),
		it.setPreparationMinutes(preparationMinutes),
		it.setImageURL(imageURL),
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

func (it *Item) MenuID() kernel.UUID {
	return it.menuID
}

func (it *Item) VendorID() kernel.UUID {
	return it.vendorID
}

func (it *Item) Name() string {
	return it.name
}

func (it *Item) Description() string {
	return it.description
}

func (it *Item) Price() kernel.Money {
	return it.price
}

func (it *Item) IsAvailable() bool {
	return it.available
}

func (it *Item) PreparationMinutes() int {
	return it.preparationMinutes
}

func (it *Item) ImageURL() string {
	return it.imageURL
}

// BelongsTo reports whether the item is sold by vendorID.
func (it *Item) BelongsTo(vendorID kernel.UUID) bool {
	return it.vendorID.IsEqual(vendorID)
}

func (it *Item) Rename(name string) error {
	return it.setName(name)
}

func (it *Item) Describe(description string) error {
	return it.setDescription(description)
}

// Reprice changes the live price. Existing orders are unaffected.
func (it *Item) Reprice(price kernel.Money) {
	it.price = price
}

func (it *Item) SetAvailable(available bool) {
	it.available = available
}

func (it *Item) ChangePreparationTime(minutes int) error {
	return it.setPreparationMinutes(minutes)
}

func (it *Item) ChangeImageURL(imageURL string) error {
	return it.setImageURL(imageURL)
}

func (it *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	it.id = id
	return nil
}

func (it *Item) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menuID", err)
	}
	it.menuID = menuID
	return nil
}

func (it *Item) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	it.vendorID = vendorID
	return nil
}

func (it *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxItemNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxItemNameLength)
	}
	it.name = name
	return nil
}

func (it *Item) setDescription(description string) error {
	if n := utf8.RuneCountInString(description); n > MaxItemDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", n, 0, MaxItemDescriptionLength)
	}
	it.description = description
	return nil
}

func (it *Item) setPreparationMinutes(minutes int) error {
	if minutes < MinPreparationMinutes || minutes > MaxPreparationMinutes {
		return errs.NewValueIsOutOfRangeError("preparationMinutes", minutes, MinPreparationMinutes, MaxPreparationMinutes)
	}
	it.preparationMinutes = minutes
	return nil
}

func (it *Item) setImageURL(imageURL string) error {
	if imageURL == "" {
		it.imageURL = ""
		return nil
	}
	u, err := url.Parse(imageURL)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("imageURL", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.NewValueIsInvalidErrorWithCause("imageURL", fmt.Errorf("%q is not an absolute http(s) URL", imageURL))
	}
	it.imageURL = imageURL
	return nil
}
