package menu

import (
	"errors"
	"strings"
	"unicode/utf8"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

const MaxTitleLength = 100

var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")

// Menu groups the items a vendor offers. New menus start active.
type Menu struct {
	id       kernel.UUID
	vendorID kernel.UUID
	title    string
	active   bool

	guard guard.ConstructorGuard
}

func NewMenu(id kernel.UUID, vendorID kernel.UUID, title string) (*Menu, error) {
	return RestoreMenu(id, vendorID, title, true)
}

func RestoreMenu(id kernel.UUID, vendorID kernel.UUID, title string, active bool) (*Menu, error) {
	m := &Menu{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setVendorID(vendorID),
		m.setTitle(title),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

func (m *Menu) ID() kernel.UUID {
	return m.id
}

func (m *Menu) VendorID() kernel.UUID {
	return m.vendorID
}

func (m *Menu) Title() string {
	return m.title
}

func (m *Menu) IsActive() bool {
	return m.active
}

func (m *Menu) Activate() {
	m.active = true
}

func (m *Menu) Deactivate() {
	m.active = false
}

// NewItem creates an item on this menu. The item inherits the menu's
// vendor, so the two can never disagree.
func (m *Menu) NewItem(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	preparationMinutes int,
	imageURL string,
) (*Item, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return RestoreItem(id, m.id, m.vendorID, name, description, price, true, preparationMinutes, imageURL)
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	m.vendorID = vendorID
	return nil
}

func (m *Menu) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", n, 1, MaxTitleLength)
	}
	m.title = title
	return nil
}
