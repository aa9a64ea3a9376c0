package commands_test

import (
	"testing"
	"time"

	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/services"
	"campusfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	p := customer()
	vendorID := kernel.NewUUID()
	itemID := kernel.NewUUID()
	at := time.Date(2026, 3, 2, 13, 0, 0, 0, time.FixedZone("EST", -5*3600))

	cmd, err := commands.NewPlaceOrderCommand(p, vendorID, at, order.Pickup, "ring the bell", []services.CartLine{
		{MenuItemID: itemID, Quantity: 2},
		{MenuItemID: itemID, Quantity: 1, Notes: "extra cheese"},
	})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.Equal(t, vendorID, cmd.VendorID())
	assert.Equal(t, time.UTC, cmd.ScheduledFor().Location())
	assert.True(t, at.Equal(cmd.ScheduledFor()))
	assert.Equal(t, order.Pickup, cmd.FulfillmentMode())
	assert.Len(t, cmd.Cart(), 2)
	assert.Equal(t, []kernel.UUID{itemID}, cmd.MenuItemIDs())
}

func TestNewPlaceOrderCommand_LargeQuantity(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand(customer(), kernel.NewUUID(), time.Now().Add(time.Hour), order.Pickup, "",
		[]services.CartLine{{MenuItemID: kernel.NewUUID(), Quantity: 101}})
	require.NoError(t, err)
	assert.Equal(t, 101, cmd.Cart()[0].Quantity)
}

func TestNewPlaceOrderCommand_InvalidInput(t *testing.T) {
	at := time.Now().Add(time.Hour)
	vendorID := kernel.NewUUID()
	line := services.CartLine{MenuItemID: kernel.NewUUID(), Quantity: 1}

	tests := []struct {
		name    string
		build   func() error
		wantErr error
	}{
		{"empty cart", func() error {
			_, err := commands.NewPlaceOrderCommand(customer(), vendorID, at, order.Pickup, "", nil)
			return err
		}, errs.ErrValueIsRequired},
		{"zero quantity", func() error {
			_, err := commands.NewPlaceOrderCommand(customer(), vendorID, at, order.Pickup, "",
				[]services.CartLine{{MenuItemID: kernel.NewUUID(), Quantity: 0}})
			return err
		}, errs.ErrValueIsOutOfRange},
		{"negative quantity", func() error {
			_, err := commands.NewPlaceOrderCommand(customer(), vendorID, at, order.Pickup, "",
				[]services.CartLine{line, {MenuItemID: kernel.NewUUID(), Quantity: -3}})
			return err
		}, errs.ErrValueIsOutOfRange},
		{"missing vendor", func() error {
			_, err := commands.NewPlaceOrderCommand(customer(), kernel.UUID{}, at, order.Pickup, "", []services.CartLine{line})
			return err
		}, errs.ErrValueIsRequired},
		{"unknown fulfillment mode", func() error {
			_, err := commands.NewPlaceOrderCommand(customer(), vendorID, at, order.FulfillmentUnknown, "", []services.CartLine{line})
			return err
		}, errs.ErrValueIsInvalid},
		{"missing schedule", func() error {
			_, err := commands.NewPlaceOrderCommand(customer(), vendorID, time.Time{}, order.Pickup, "", []services.CartLine{line})
			return err
		}, errs.ErrValueIsRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		})
	}
}

func TestPlaceOrderCommand_NotConstructed(t *testing.T) {
	require.ErrorIs(t, commands.PlaceOrderCommand{}.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}
