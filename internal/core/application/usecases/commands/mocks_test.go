package commands_test

import (
	"context"
	"time"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/vendor"
	"campusfood/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) Add(ctx context.Context, v *vendor.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetByOwner(ctx context.Context, ownerID kernel.UUID) (*vendor.Vendor, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.Vendor), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMenuRepository) GetByVendor(ctx context.Context, vendorID kernel.UUID) (*menu.Menu, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Menu), args.Error(1)
}

func (m *MockMenuRepository) AddItem(ctx context.Context, item *menu.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) UpdateItem(ctx context.Context, item *menu.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) DeleteItem(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuRepository) GetItem(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}

func (m *MockMenuRepository) GetItems(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Item), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

// MockUoW satisfies every unit of work shape the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) VendorRepository() ports.VendorRepository {
	args := m.Called()
	return args.Get(0).(ports.VendorRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

func customer() auth.Principal {
	p, _ := auth.NewPrincipal(kernel.NewUUID(), auth.RoleCustomer)
	return p
}

func vendorUser() auth.Principal {
	p, _ := auth.NewPrincipal(kernel.NewUUID(), auth.RoleVendor)
	return p
}

func newVendor(owner kernel.UUID, pickup, delivery bool) *vendor.Vendor {
	v, err := vendor.NewVendor(kernel.NewUUID(), owner, "Pizza Palace", "", "Student Union", pickup, delivery)
	if err != nil {
		panic(err)
	}
	return v
}

func newMenuWithItems(v *vendor.Vendor, prices ...string) (*menu.Menu, []*menu.Item) {
	m, err := menu.NewMenu(kernel.NewUUID(), v.ID(), "Main")
	if err != nil {
		panic(err)
	}
	items := make([]*menu.Item, 0, len(prices))
	for _, p := range prices {
		it, err := m.NewItem(kernel.NewUUID(), "Item "+p, "", kernel.MustMoney(p), 10, "")
		if err != nil {
			panic(err)
		}
		items = append(items, it)
	}
	return m, items
}

func newPendingOrder(vendorID, customerID kernel.UUID) *order.Order {
	line, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Margherita", kernel.MustMoney("12.99"), 1, "")
	if err != nil {
		panic(err)
	}
	o, err := order.NewOrder(kernel.NewUUID(), customerID, vendorID, fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour), order.Pickup, "", []*order.Item{line})
	if err != nil {
		panic(err)
	}
	o.PullStatusChanges()
	return o
}
