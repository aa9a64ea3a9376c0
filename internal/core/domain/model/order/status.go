package order

import (
	"errors"
	"fmt"

	"campusfood/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	pending ──> accepted ──> preparing ──> ready ──> completed
//	   │           │
//	   ├───────────┴──> rejected   (vendor)
//	   └───────────┴──> cancelled  (customer)
//
// completed, cancelled and rejected are terminal. The legal moves for each
// actor live in one adjacency table; nothing else decides legality.
type Status int

const (
	// Unknown is the zero value. It doubles as the "none" origin of the
	// first history row of a new order.
	Unknown Status = iota
	Pending
	Accepted
	Preparing
	Ready
	Completed
	Cancelled
	Rejected
)

// Actor is the party asking for a status change.
type Actor int

const (
	ActorVendor Actor = iota + 1
	ActorCustomer
)

func (a Actor) String() string {
	switch a {
	case ActorVendor:
		return "vendor"
	case ActorCustomer:
		return "customer"
	default:
		return "unknown"
	}
}

// ErrOrderAlreadyCancelled is the cause attached when cancellation is
// requested for an order that is already cancelled.
var ErrOrderAlreadyCancelled = errors.New("order already cancelled")

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "none",
		Pending:   "pending",
		Accepted:  "accepted",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
		Cancelled: "cancelled",
		Rejected:  "rejected",
	}
}

// getTransitions is the adjacency table keyed by actor.
func getTransitions() map[Actor]map[Status][]Status {
	return map[Actor]map[Status][]Status{
		ActorVendor: {
			Pending:   {Accepted, Rejected},
			Accepted:  {Preparing, Rejected},
			Preparing: {Ready},
			Ready:     {Completed},
		},
		ActorCustomer: {
			Pending:  {Cancelled},
			Accepted: {Cancelled},
		},
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Accepted, Preparing, Ready, Completed, Cancelled, Rejected}
}

// ParseStatus maps a lowercase status name to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no actor may move the order any further.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Rejected
}

// IsOpen reports whether the order is still awaiting the vendor's work.
// Open orders count as "pending" in vendor statistics.
func (s Status) IsOpen() bool {
	return s == Pending || s == Accepted || s == Preparing || s == Ready
}

// CountsAsSale reports whether the order contributes to spend and revenue.
func (s Status) CountsAsSale() bool {
	return s != Cancelled && s != Rejected && s != Unknown
}

// CanTransition reports whether actor may move an order from s to next.
func (s Status) CanTransition(actor Actor, next Status) bool {
	for _, allowed := range getTransitions()[actor][s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates a move from s to next on behalf of actor.
//
// Returns:
//   - (next, nil) when the adjacency table allows it
//   - a ValueIsInvalidError when next is not a status at all
//   - an InvalidTransitionError carrying both status names otherwise
func (s Status) TransitionTo(actor Actor, next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransition(actor, next) {
		if actor == ActorCustomer && s == Cancelled && next == Cancelled {
			return Unknown, errs.NewInvalidTransitionErrorWithCause(s.String(), next.String(), ErrOrderAlreadyCancelled)
		}
		return Unknown, errs.NewInvalidTransitionError(s.String(), next.String())
	}
	return next, nil
}

// PaymentStatus is recorded on every order. No component moves it past
// pending; payment processing lives elsewhere.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
	PaymentFailed
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentFailed:   "failed",
		PaymentRefunded: "refunded",
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// FulfillmentMode is how the customer receives the order.
type FulfillmentMode int

const (
	FulfillmentUnknown FulfillmentMode = iota
	Pickup
	Delivery
)

func ParseFulfillmentMode(s string) (FulfillmentMode, error) {
	switch s {
	case "pickup":
		return Pickup, nil
	case "delivery":
		return Delivery, nil
	default:
		return FulfillmentUnknown, errs.NewValueIsInvalidErrorWithCause(
			"fulfillmentMode",
			fmt.Errorf("%q is not one of pickup, delivery", s),
		)
	}
}

func (f FulfillmentMode) Validate() error {
	if f != Pickup && f != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("fulfillmentMode", fmt.Errorf("%d is not a valid fulfillment mode", f))
	}
	return nil
}

func (f FulfillmentMode) String() string {
	switch f {
	case Pickup:
		return "pickup"
	case Delivery:
		return "delivery"
	default:
		return "unknown"
	}
}
