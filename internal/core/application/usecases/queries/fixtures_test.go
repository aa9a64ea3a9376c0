package queries_test

import (
	"context"
	"testing"
	"time"

	"campusfood/internal/adapters/out/postgres/menurepo"
	"campusfood/internal/adapters/out/postgres/orderrepo"
	"campusfood/internal/adapters/out/postgres/vendorrepo"
	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func principal(t *testing.T, role auth.Role) auth.Principal {
	t.Helper()
	p, err := auth.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return p
}

type storefront struct {
	vendorID kernel.UUID
	itemID   kernel.UUID
	itemName string
	price    kernel.Money
}

func seedStorefront(t *testing.T, db *gorm.DB, ownerID kernel.UUID, name string, price string) storefront {
	t.Helper()
	ctx := context.Background()

	v, err := vendor.NewVendor(kernel.NewUUID(), ownerID, name, "", "Student Union", true, true)
	require.NoError(t, err)
	require.NoError(t, vendorrepo.NewGormVendorRepository(db).Add(ctx, v))

	m, err := menu.NewMenu(kernel.NewUUID(), v.ID(), name)
	require.NoError(t, err)
	menus := menurepo.NewGormMenuRepository(db)
	require.NoError(t, menus.Add(ctx, m))

	item, err := m.NewItem(kernel.NewUUID(), name+" special", "", kernel.MustMoney(price), 15, "")
	require.NoError(t, err)
	require.NoError(t, menus.AddItem(ctx, item))

	return storefront{vendorID: v.ID(), itemID: item.ID(), itemName: item.Name(), price: item.Price()}
}

func seedOrder(t *testing.T, db *gorm.DB, sf storefront, customerID kernel.UUID, quantity int, placedAt, scheduledFor time.Time) kernel.UUID {
	t.Helper()

	line, err := order.NewItem(kernel.NewUUID(), sf.itemID, sf.itemName, sf.price, quantity, "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, sf.vendorID, placedAt, scheduledFor, order.Pickup, "", []*order.Item{line})
	require.NoError(t, err)
	require.NoError(t, orderrepo.NewGormOrderRepository(db).Add(context.Background(), o))
	return o.ID()
}

// advance moves an order through statuses, reloading it before each step.
func advance(t *testing.T, db *gorm.DB, orderID kernel.UUID, by kernel.UUID, statuses ...order.Status) {
	t.Helper()
	ctx := context.Background()
	repo := orderrepo.NewGormOrderRepository(db)

	for i, next := range statuses {
		o, err := repo.Get(ctx, orderID)
		require.NoError(t, err)

		at := baseTime.Add(time.Duration(i+1) * time.Minute)
		if next == order.Cancelled {
			require.NoError(t, o.Cancel(by, at))
		} else {
			_, err = o.ChangeStatus(by, next, nil, at)
			require.NoError(t, err)
		}
		require.NoError(t, repo.Update(ctx, o))
	}
}
