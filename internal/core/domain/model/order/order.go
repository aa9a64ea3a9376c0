package order

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

const MaxNotesLength = 1000

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering workflow. It owns its lines
// and its status, and records every status change it goes through.
//
// Order follows these invariants:
//   - It has at least one line
//   - total equals the sum of line subtotals at creation and is never recomputed
//   - vendorID and customerID never change
//   - Status changes only along the adjacency table in status.go
//   - version identifies the persisted revision for optimistic locking
type Order struct {
	id               kernel.UUID
	customerID       kernel.UUID
	vendorID         kernel.UUID
	placedAt         time.Time
	scheduledFor     time.Time
	total            kernel.Money
	status           Status
	paymentStatus    PaymentStatus
	fulfillmentMode  FulfillmentMode
	notes            string
	estimatedReadyAt *time.Time
	version          int
	items            []*Item

	// statusChanges holds history rows not yet written to the store.
	statusChanges []*Transition

	guard guard.ConstructorGuard
}

// NewOrder places an order. The order starts pending with payment pending,
// its total is the sum of line subtotals, and a first history row
// (none -> pending) is recorded.
//
// scheduledFor must be strictly after placedAt.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	placedAt time.Time,
	scheduledFor time.Time,
	fulfillmentMode FulfillmentMode,
	notes string,
	items []*Item,
) (*Order, error) {
	placedAt = kernel.NormalizeTime(placedAt)
	scheduledFor = kernel.NormalizeTime(scheduledFor)

	o := &Order{
		placedAt:      placedAt,
		status:        Pending,
		paymentStatus: PaymentPending,
		version:       1,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setVendorID(vendorID),
		o.setScheduledFor(scheduledFor),
		o.setFulfillmentMode(fulfillmentMode),
		o.setNotes(notes),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for _, it := range o.items {
		total = total.Add(it.Subtotal())
	}
	o.total = total

	o.statusChanges = append(o.statusChanges, RestoreTransition(kernel.NewUUID(), Unknown, Pending, customerID, placedAt))

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. The stored total is
// taken as is.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	placedAt time.Time,
	scheduledFor time.Time,
	total kernel.Money,
	status Status,
	paymentStatus PaymentStatus,
	fulfillmentMode FulfillmentMode,
	notes string,
	estimatedReadyAt *time.Time,
	version int,
	items []*Item,
) (*Order, error) {
	o := &Order{
		placedAt:      kernel.NormalizeTime(placedAt),
		scheduledFor:  kernel.NormalizeTime(scheduledFor),
		total:         total,
		paymentStatus: paymentStatus,
		version:       version,
		guard:         guard.NewConstructorGuard(),
	}
	if estimatedReadyAt != nil {
		eta := kernel.NormalizeTime(*estimatedReadyAt)
		o.estimatedReadyAt = &eta
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setVendorID(vendorID),
		o.setStatus(status),
		o.setFulfillmentMode(fulfillmentMode),
		o.setNotes(notes),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

func (o *Order) ScheduledFor() time.Time {
	return o.scheduledFor
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) FulfillmentMode() FulfillmentMode {
	return o.fulfillmentMode
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) EstimatedReadyAt() *time.Time {
	if o.estimatedReadyAt == nil {
		return nil
	}
	eta := *o.estimatedReadyAt
	return &eta
}

// Version is the revision the order was loaded at (1 for a new order).
func (o *Order) Version() int {
	return o.version
}

func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// IsPlacedBy reports whether customerID placed the order.
func (o *Order) IsPlacedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// IsFrom reports whether the order was placed with vendorID.
func (o *Order) IsFrom(vendorID kernel.UUID) bool {
	return o.vendorID.IsEqual(vendorID)
}

// ChangeStatus applies a vendor driven transition. A non-nil
// estimatedReadyAt is stored verbatim alongside any legal transition.
// It returns the status the order had before the change.
func (o *Order) ChangeStatus(changedBy kernel.UUID, next Status, estimatedReadyAt *time.Time, at time.Time) (Status, error) {
	old := o.status
	if err := o.transition(ActorVendor, changedBy, next, at); err != nil {
		return old, err
	}
	if estimatedReadyAt != nil {
		eta := kernel.NormalizeTime(*estimatedReadyAt)
		o.estimatedReadyAt = &eta
	}
	return old, nil
}

// Cancel is the customer's withdrawal of a pending or accepted order.
func (o *Order) Cancel(changedBy kernel.UUID, at time.Time) error {
	return o.transition(ActorCustomer, changedBy, Cancelled, at)
}

// PullStatusChanges returns the history rows recorded since the order was
// created or loaded and forgets them. Repositories call it when saving.
func (o *Order) PullStatusChanges() []*Transition {
	changes := o.statusChanges
	o.statusChanges = nil
	return changes
}

func (o *Order) transition(actor Actor, changedBy kernel.UUID, next Status, at time.Time) error {
	if err := changedBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("changedBy", err)
	}
	newStatus, err := o.status.TransitionTo(actor, next)
	if err != nil {
		return err
	}

	o.statusChanges = append(o.statusChanges, RestoreTransition(kernel.NewUUID(), o.status, newStatus, changedBy, at))
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	o.vendorID = vendorID
	return nil
}

func (o *Order) setScheduledFor(scheduledFor time.Time) error {
	if !scheduledFor.After(o.placedAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"scheduledFor",
			fmt.Errorf("%s is not after %s", kernel.FormatTimestamp(scheduledFor), kernel.FormatTimestamp(o.placedAt)),
		)
	}
	o.scheduledFor = scheduledFor
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setFulfillmentMode(mode FulfillmentMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	o.fulfillmentMode = mode
	return nil
}

func (o *Order) setNotes(notes string) error {
	if n := utf8.RuneCountInString(notes); n > MaxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", n, 0, MaxNotesLength)
	}
	o.notes = notes
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}
