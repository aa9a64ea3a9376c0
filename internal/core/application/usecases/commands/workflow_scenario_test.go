package commands_test

import (
	"testing"
	"time"

	"campusfood/internal/adapters/out/postgres"
	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/application/usecases/queries"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/services"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/testdb"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type gormUoWFactory struct {
	f *postgres.GormUnitOfWorkFactory
}

func (g gormUoWFactory) Create() commands.UoW { return g.f.Create() }

type gormOrderUoWFactory struct {
	f *postgres.GormUnitOfWorkFactory
}

func (g gormOrderUoWFactory) Create() commands.OrderUoW { return g.f.Create() }

type gormCatalogUoWFactory struct {
	f *postgres.GormUnitOfWorkFactory
}

func (g gormCatalogUoWFactory) Create() commands.CatalogUoW { return g.f.Create() }

// WorkflowScenarioTestSuite drives the command handlers against a real SQL
// store, end to end.
type WorkflowScenarioTestSuite struct {
	suite.Suite
	db      *gorm.DB
	factory *postgres.GormUnitOfWorkFactory

	owner    auth.Principal
	student  auth.Principal
	vendorID kernel.UUID
	pizzaID  kernel.UUID
	knotsID  kernel.UUID
}

func (s *WorkflowScenarioTestSuite) SetupTest() {
	s.db = testdb.Open(s.T())
	s.factory = postgres.NewGormUnitOfWorkFactory(s.db)
	s.owner = vendorUser()
	s.student = customer()

	ctx := s.T().Context()
	created, err := commands.NewCreateVendorCommandHandler(s.catalog()).Handle(ctx,
		s.mustCreateVendor("Pizza Palace", "Student Union"))
	s.Require().NoError(err)
	s.vendorID = created.VendorID

	s.pizzaID = s.addItem("Margherita", "12.99")
	s.knotsID = s.addItem("Garlic Knots", "2.99")
}

func (s *WorkflowScenarioTestSuite) catalog() gormCatalogUoWFactory {
	return gormCatalogUoWFactory{s.factory}
}

func (s *WorkflowScenarioTestSuite) placeHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(gormUoWFactory{s.factory}, fixedClock)
}

func (s *WorkflowScenarioTestSuite) statusHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(gormOrderUoWFactory{s.factory}, fixedClock)
}

func (s *WorkflowScenarioTestSuite) cancelHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(gormOrderUoWFactory{s.factory}, fixedClock)
}

func (s *WorkflowScenarioTestSuite) mustCreateVendor(name, location string) commands.CreateVendorCommand {
	cmd, err := commands.NewCreateVendorCommand(s.owner, name, "", location, true, false, "")
	s.Require().NoError(err)
	return cmd
}

func (s *WorkflowScenarioTestSuite) addItem(name, price string) kernel.UUID {
	cmd, err := commands.NewAddMenuItemCommand(s.owner, s.vendorID, name, "", kernel.MustMoney(price), 0, "")
	s.Require().NoError(err)
	id, err := commands.NewAddMenuItemCommandHandler(s.catalog()).Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	return id
}

func (s *WorkflowScenarioTestSuite) placePizzaOrder() commands.OrderSummary {
	cmd, err := commands.NewPlaceOrderCommand(s.student, s.vendorID, fixedNow.Add(45*time.Minute), order.Pickup, "", []services.CartLine{
		{MenuItemID: s.pizzaID, Quantity: 2},
		{MenuItemID: s.knotsID, Quantity: 1},
	})
	s.Require().NoError(err)
	summary, err := s.placeHandler().Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	return summary
}

func (s *WorkflowScenarioTestSuite) changeStatus(orderID kernel.UUID, next order.Status) (commands.StatusChange, error) {
	cmd, err := commands.NewUpdateOrderStatusCommand(s.owner, s.vendorID, orderID, next, nil)
	s.Require().NoError(err)
	return s.statusHandler().Handle(s.T().Context(), cmd)
}

func (s *WorkflowScenarioTestSuite) loadOrder(id kernel.UUID) *order.Order {
	o, err := s.factory.Create().OrderRepository().Get(s.T().Context(), id)
	s.Require().NoError(err)
	return o
}

func (s *WorkflowScenarioTestSuite) countRows(table string) int64 {
	var n int64
	s.Require().NoError(s.db.Table(table).Count(&n).Error)
	return n
}

func (s *WorkflowScenarioTestSuite) TestPizzaPalaceOrderSurvivesMenuEdit() {
	summary := s.placePizzaOrder()
	s.Equal("Pizza Palace", summary.VendorName)
	s.Equal("28.97", summary.Total.String())
	s.Equal(order.Pending, summary.Status)

	price := kernel.MustMoney("13.99")
	edit, err := commands.NewUpdateMenuItemCommand(s.owner, s.vendorID, s.pizzaID, commands.MenuItemChanges{Price: &price})
	s.Require().NoError(err)
	s.Require().NoError(commands.NewUpdateMenuItemCommandHandler(s.catalog()).Handle(s.T().Context(), edit))

	o := s.loadOrder(summary.OrderID)
	s.Equal("28.97", o.Total().String())
	s.Require().Len(o.Items(), 2)
	s.Equal("Margherita", o.Items()[0].Name())
	s.Equal("12.99", o.Items()[0].Price().String())
	s.Equal("25.98", o.Items()[0].Subtotal().String())
	s.Equal(1, o.Version())
	s.Equal(int64(1), s.countRows("order_status_transitions"))
}

func (s *WorkflowScenarioTestSuite) TestLargeQuantityIsAccepted() {
	cmd, err := commands.NewPlaceOrderCommand(s.student, s.vendorID, fixedNow.Add(time.Hour), order.Pickup, "department party",
		[]services.CartLine{{MenuItemID: s.pizzaID, Quantity: 150}})
	s.Require().NoError(err)

	summary, err := s.placeHandler().Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	s.Equal("1948.50", summary.Total.String())

	o := s.loadOrder(summary.OrderID)
	s.Require().Len(o.Items(), 1)
	s.Equal(150, o.Items()[0].Quantity())
}

func (s *WorkflowScenarioTestSuite) TestDeletedMenuItemKeepsOrderSnapshot() {
	summary := s.placePizzaOrder()

	del, err := commands.NewDeleteMenuItemCommand(s.owner, s.vendorID, s.pizzaID)
	s.Require().NoError(err)
	s.Require().NoError(commands.NewDeleteMenuItemCommandHandler(s.catalog()).Handle(s.T().Context(), del))
	s.Equal(int64(1), s.countRows("menu_items"))

	q, err := queries.NewGetOrderDetailQuery(s.student, summary.OrderID)
	s.Require().NoError(err)
	detail, err := queries.NewGetOrderDetailQueryHandler(s.db).Handle(s.T().Context(), q)
	s.Require().NoError(err)

	s.Equal("28.97", detail.Total.String())
	s.Require().Len(detail.Items, 2)
	s.Nil(detail.Items[0].MenuItemID)
	s.Equal("Margherita", detail.Items[0].Name)
	s.Equal("12.99", detail.Items[0].Price.String())
	s.Equal("25.98", detail.Items[0].LineTotal.String())
	s.Require().NotNil(detail.Items[1].MenuItemID)
	s.Equal(s.knotsID, *detail.Items[1].MenuItemID)

	err = commands.NewDeleteMenuItemCommandHandler(s.catalog()).Handle(s.T().Context(), del)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	place, _ := commands.NewPlaceOrderCommand(s.student, s.vendorID, fixedNow.Add(time.Hour), order.Pickup, "",
		[]services.CartLine{{MenuItemID: s.pizzaID, Quantity: 1}})
	_, err = s.placeHandler().Handle(s.T().Context(), place)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *WorkflowScenarioTestSuite) TestUnavailableItemRejectsWholeCart() {
	available := false
	edit, _ := commands.NewUpdateMenuItemCommand(s.owner, s.vendorID, s.knotsID, commands.MenuItemChanges{Available: &available})
	s.Require().NoError(commands.NewUpdateMenuItemCommandHandler(s.catalog()).Handle(s.T().Context(), edit))

	cmd, _ := commands.NewPlaceOrderCommand(s.student, s.vendorID, fixedNow.Add(time.Hour), order.Pickup, "", []services.CartLine{
		{MenuItemID: s.pizzaID, Quantity: 2},
		{MenuItemID: s.knotsID, Quantity: 1},
	})
	_, err := s.placeHandler().Handle(s.T().Context(), cmd)
	s.Require().ErrorIs(err, errs.ErrObjectIsUnavailable)

	s.Equal(int64(0), s.countRows("orders"))
	s.Equal(int64(0), s.countRows("order_items"))
}

func (s *WorkflowScenarioTestSuite) TestItemOfAnotherVendorIsNotFound() {
	otherOwner := vendorUser()
	cmd, _ := commands.NewCreateVendorCommand(otherOwner, "Taco Stand", "", "Quad", true, false, "")
	other, err := commands.NewCreateVendorCommandHandler(s.catalog()).Handle(s.T().Context(), cmd)
	s.Require().NoError(err)

	place, _ := commands.NewPlaceOrderCommand(s.student, other.VendorID, fixedNow.Add(time.Hour), order.Pickup, "",
		[]services.CartLine{{MenuItemID: s.pizzaID, Quantity: 1}})
	_, err = s.placeHandler().Handle(s.T().Context(), place)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.Equal(int64(0), s.countRows("orders"))
}

func (s *WorkflowScenarioTestSuite) TestDeliveryNotOffered() {
	cmd, _ := commands.NewPlaceOrderCommand(s.student, s.vendorID, fixedNow.Add(time.Hour), order.Delivery, "",
		[]services.CartLine{{MenuItemID: s.pizzaID, Quantity: 1}})
	_, err := s.placeHandler().Handle(s.T().Context(), cmd)
	s.Equal(errs.KindConflict, errs.KindOf(err))
}

func (s *WorkflowScenarioTestSuite) TestFullLifecycle() {
	summary := s.placePizzaOrder()

	for _, next := range []order.Status{order.Accepted, order.Preparing, order.Ready, order.Completed} {
		_, err := s.changeStatus(summary.OrderID, next)
		s.Require().NoError(err, "moving to %s", next)
	}

	o := s.loadOrder(summary.OrderID)
	s.Equal(order.Completed, o.Status())
	s.Equal(5, o.Version())
	s.Equal(int64(5), s.countRows("order_status_transitions"))

	_, err := s.changeStatus(summary.OrderID, order.Rejected)
	s.Require().ErrorIs(err, errs.ErrInvalidTransition)
}

func (s *WorkflowScenarioTestSuite) TestAcceptedToReadyIsRejected() {
	summary := s.placePizzaOrder()
	eta := fixedNow.Add(25 * time.Minute)

	cmd, _ := commands.NewUpdateOrderStatusCommand(s.owner, s.vendorID, summary.OrderID, order.Accepted, &eta)
	change, err := s.statusHandler().Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	s.Equal(order.Pending, change.OldStatus)
	s.Equal(order.Accepted, change.NewStatus)

	_, err = s.changeStatus(summary.OrderID, order.Ready)
	s.Require().ErrorIs(err, errs.ErrInvalidTransition)

	o := s.loadOrder(summary.OrderID)
	s.Equal(order.Accepted, o.Status())
	s.Equal(2, o.Version())
	s.Require().NotNil(o.EstimatedReadyAt())
	s.True(eta.Equal(*o.EstimatedReadyAt()))
}

func (s *WorkflowScenarioTestSuite) TestCancelTwice() {
	summary := s.placePizzaOrder()
	cmd, _ := commands.NewCancelOrderCommand(s.student, summary.OrderID)

	res, err := s.cancelHandler().Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	s.Equal(order.Cancelled, res.Status)

	_, err = s.cancelHandler().Handle(s.T().Context(), cmd)
	s.Require().ErrorIs(err, errs.ErrInvalidTransition)
	s.Contains(err.Error(), "already cancelled")

	o := s.loadOrder(summary.OrderID)
	s.Equal(order.Cancelled, o.Status())
	s.Equal(order.PaymentPending, o.PaymentStatus())
}

func (s *WorkflowScenarioTestSuite) TestCancelAfterPreparingIsRejected() {
	summary := s.placePizzaOrder()
	_, err := s.changeStatus(summary.OrderID, order.Accepted)
	s.Require().NoError(err)
	_, err = s.changeStatus(summary.OrderID, order.Preparing)
	s.Require().NoError(err)

	cmd, _ := commands.NewCancelOrderCommand(s.student, summary.OrderID)
	_, err = s.cancelHandler().Handle(s.T().Context(), cmd)
	s.Require().ErrorIs(err, errs.ErrInvalidTransition)
}

func (s *WorkflowScenarioTestSuite) TestSecondVendorForSameOwnerConflicts() {
	_, err := commands.NewCreateVendorCommandHandler(s.catalog()).Handle(s.T().Context(),
		s.mustCreateVendor("Pizza Palace Express", "Library"))
	s.Require().ErrorIs(err, errs.ErrObjectIsUnavailable)
	s.Equal(int64(1), s.countRows("vendors"))
}

func TestWorkflowScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowScenarioTestSuite))
}
