package order_test

import (
	"testing"
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

func line(t *testing.T, name, price string, qty int) *order.Item {
	t.Helper()
	it, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), name, kernel.MustMoney(price), qty, "")
	require.NoError(t, err)
	return it
}

func placeOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		now, now.Add(time.Hour), order.Pickup, "extra napkins",
		[]*order.Item{line(t, "Margherita", "12.99", 2), line(t, "Soda", "2.99", 1)},
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should price and open a new order", func(t *testing.T) {
		o := placeOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, "28.97", o.Total().String())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, order.Pickup, o.FulfillmentMode())
		assert.Equal(t, 1, o.Version())
		assert.Nil(t, o.EstimatedReadyAt())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "25.98", o.Items()[0].Subtotal().String())
	})

	t.Run("should record the initial history row once", func(t *testing.T) {
		o := placeOrder(t)

		changes := o.PullStatusChanges()
		require.Len(t, changes, 1)
		assert.Equal(t, order.Unknown, changes[0].From())
		assert.Equal(t, order.Pending, changes[0].To())
		assert.True(t, changes[0].ChangedBy().IsEqual(o.CustomerID()))
		assert.Empty(t, o.PullStatusChanges())
	})

	t.Run("should reject a schedule that is not in the future", func(t *testing.T) {
		for _, scheduled := range []time.Time{now, now.Add(-time.Minute)} {
			_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				now, scheduled, order.Pickup, "", []*order.Item{line(t, "Soda", "2.99", 1)})

			require.Error(t, err)
			assert.Contains(t, err.Error(), "scheduledFor")
		}
	})

	t.Run("should compare instants regardless of zone", func(t *testing.T) {
		// 11:30+02:00 is 09:30Z, before now
		scheduled := time.Date(2025, 10, 15, 11, 30, 0, 0, time.FixedZone("CEST", 2*3600))

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			now, scheduled, order.Pickup, "", []*order.Item{line(t, "Soda", "2.99", 1)})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should join every validation error", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, kernel.UUID{},
			now, now.Add(time.Hour), order.FulfillmentUnknown, "", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customerID")
		assert.Contains(t, err.Error(), "vendorID")
		assert.Contains(t, err.Error(), "fulfillmentMode")
		assert.Contains(t, err.Error(), "value is required: items")
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should reject quantities below one", func(t *testing.T) {
		for _, qty := range []int{0, -3} {
			_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Soda", kernel.MustMoney("2.99"), qty, "")

			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("has no upper bound on quantity", func(t *testing.T) {
		it, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Soda", kernel.MustMoney("2.99"), 250, "")

		require.NoError(t, err)
		assert.Equal(t, "747.50", it.Subtotal().String())
	})

	t.Run("restored lines may have lost their menu item", func(t *testing.T) {
		it, err := order.RestoreItem(kernel.NewUUID(), nil, "Soda", kernel.MustMoney("2.99"), 1, "")

		require.NoError(t, err)
		assert.Nil(t, it.MenuItemID())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	vendorUser := kernel.NewUUID()

	t.Run("should walk the happy path", func(t *testing.T) {
		o := placeOrder(t)
		o.PullStatusChanges()

		for _, next := range []order.Status{order.Accepted, order.Preparing, order.Ready, order.Completed} {
			prev := o.Status()
			old, err := o.ChangeStatus(vendorUser, next, nil, now)

			require.NoError(t, err)
			assert.Equal(t, prev, old)
			assert.Equal(t, next, o.Status())
		}

		changes := o.PullStatusChanges()
		require.Len(t, changes, 4)
		assert.Equal(t, order.Ready, changes[3].From())
		assert.Equal(t, order.Completed, changes[3].To())
	})

	t.Run("should store the estimate verbatim", func(t *testing.T) {
		o := placeOrder(t)
		eta := now.Add(25 * time.Minute)

		_, err := o.ChangeStatus(vendorUser, order.Accepted, &eta, now)

		require.NoError(t, err)
		require.NotNil(t, o.EstimatedReadyAt())
		assert.True(t, eta.Equal(*o.EstimatedReadyAt()))
	})

	t.Run("should refuse to skip preparing", func(t *testing.T) {
		o := placeOrder(t)
		_, err := o.ChangeStatus(vendorUser, order.Accepted, nil, now)
		require.NoError(t, err)
		o.PullStatusChanges()

		old, err := o.ChangeStatus(vendorUser, order.Ready, nil, now)

		assert.Equal(t, order.Accepted, old)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "accepted -> ready")
		assert.Equal(t, order.Accepted, o.Status())
		assert.Empty(t, o.PullStatusChanges())
	})

	t.Run("should leave the estimate untouched on failure", func(t *testing.T) {
		o := placeOrder(t)
		eta := now.Add(time.Hour)

		_, err := o.ChangeStatus(vendorUser, order.Completed, &eta, now)

		require.Error(t, err)
		assert.Nil(t, o.EstimatedReadyAt())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel a pending order once", func(t *testing.T) {
		o := placeOrder(t)

		require.NoError(t, o.Cancel(o.CustomerID(), now))
		assert.Equal(t, order.Cancelled, o.Status())

		err := o.Cancel(o.CustomerID(), now)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.ErrorContains(t, err, "already cancelled")
	})

	t.Run("should refuse once preparing", func(t *testing.T) {
		o := placeOrder(t)
		vendorUser := kernel.NewUUID()
		_, _ = o.ChangeStatus(vendorUser, order.Accepted, nil, now)
		_, _ = o.ChangeStatus(vendorUser, order.Preparing, nil, now)

		err := o.Cancel(o.CustomerID(), now)

		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		assert.Equal(t, order.Preparing, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should keep the stored total", func(t *testing.T) {
		items := []*order.Item{line(t, "Margherita", "13.99", 2)}

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			now.Add(-time.Hour), now.Add(-time.Minute), kernel.MustMoney("25.98"),
			order.Ready, order.PaymentPending, order.Delivery, "", nil, 4, items)

		require.NoError(t, err)
		assert.Equal(t, "25.98", o.Total().String())
		assert.Equal(t, 4, o.Version())
		assert.Empty(t, o.PullStatusChanges())
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			now, now, kernel.ZeroMoney(), order.Unknown, order.PaymentPending, order.Pickup, "", nil, 1,
			[]*order.Item{line(t, "Soda", "2.99", 1)})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o order.Order
	var nilOrder *order.Order

	assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
}
