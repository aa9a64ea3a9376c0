package order

import (
	"time"

	"campusfood/internal/core/domain/model/kernel"
)

// Transition is one row of an order's status history.
type Transition struct {
	id        kernel.UUID
	from      Status
	to        Status
	changedBy kernel.UUID
	changedAt time.Time
}

// RestoreTransition rebuilds a history row. from is Unknown for the row
// written when the order was placed.
func RestoreTransition(id kernel.UUID, from, to Status, changedBy kernel.UUID, changedAt time.Time) *Transition {
	return &Transition{
		id:        id,
		from:      from,
		to:        to,
		changedBy: changedBy,
		changedAt: kernel.NormalizeTime(changedAt),
	}
}

func (t *Transition) ID() kernel.UUID {
	return t.id
}

func (t *Transition) From() Status {
	return t.from
}

func (t *Transition) To() Status {
	return t.to
}

func (t *Transition) ChangedBy() kernel.UUID {
	return t.changedBy
}

func (t *Transition) ChangedAt() time.Time {
	return t.changedAt
}
