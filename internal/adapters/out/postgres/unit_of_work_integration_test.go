package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "campusfood/internal/adapters/out/postgres"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/vendor"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE vendors CASCADE").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.VendorRepository())
	suite.NotNil(uow1.MenuRepository())
	suite.NotNil(uow1.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PlacementCommitsAtomically() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	v, item := suite.addStorefront(ctx, uow)
	testOrder := createTestOrder(suite, v, item)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	// visible inside the transaction
	_, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("12.99", retrieved.Total().String())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	v, item := suite.addStorefront(ctx, uow)
	testOrder := createTestOrder(suite, v, item)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(uow.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Order should not exist after rollback")
	_, err = newUow.VendorRepository().Get(ctx, v.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Vendor should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	setup := suite.factory.Create()
	v, item := suite.addStorefront(ctx, setup)

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	order1 := createTestOrder(suite, v, item)
	order2 := createTestOrder(suite, v, item)
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentStatusUpdates() {
	ctx := context.Background()
	setup := suite.factory.Create()
	v, item := suite.addStorefront(ctx, setup)
	testOrder := createTestOrder(suite, v, item)
	suite.Require().NoError(setup.OrderRepository().Add(ctx, testOrder))

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	first, err := uow1.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := uow2.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = first.ChangeStatus(v.OwnerID(), order.Accepted, nil, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow1.OrderRepository().Update(ctx, first))
	suite.Require().NoError(uow1.Commit(ctx))

	_, err = second.ChangeStatus(v.OwnerID(), order.Rejected, nil, time.Now())
	suite.Require().NoError(err)
	err = uow2.OrderRepository().Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	suite.Require().NoError(uow2.Rollback(ctx))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, stored.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PartialFailureRollsBackEverything() {
	ctx := context.Background()
	setup := suite.factory.Create()
	v, item := suite.addStorefront(ctx, setup)
	existing := createTestOrder(suite, v, item)
	suite.Require().NoError(setup.OrderRepository().Add(ctx, existing))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	newOrder := createTestOrder(suite, v, item)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder))

	duplicate, err := order.RestoreOrder(existing.ID(), existing.CustomerID(), existing.VendorID(),
		existing.PlacedAt(), existing.ScheduledFor(), existing.Total(), existing.Status(),
		existing.PaymentStatus(), existing.FulfillmentMode(), "", nil, 1, existing.Items())
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrPersistence, "Adding duplicate order should fail")

	suite.Require().NoError(uow.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, existing.ID())
	suite.Require().NoError(err, "Existing order should still exist")
	_, err = newUow.OrderRepository().Get(ctx, newOrder.ID())
	suite.Require().Error(err, "New order should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) addStorefront(ctx context.Context, uow ports.UnitOfWork) (*vendor.Vendor, *menu.Item) {
	v, err := vendor.NewVendor(kernel.NewUUID(), kernel.NewUUID(), "Taco Stand", "", "Quad", true, false)
	suite.Require().NoError(err)
	m, err := menu.NewMenu(kernel.NewUUID(), v.ID(), "Tacos")
	suite.Require().NoError(err)
	it, err := m.NewItem(kernel.NewUUID(), "Al Pastor", "", kernel.MustMoney("4.33"), 10, "")
	suite.Require().NoError(err)

	suite.Require().NoError(uow.VendorRepository().Add(ctx, v))
	suite.Require().NoError(uow.MenuRepository().Add(ctx, m))
	suite.Require().NoError(uow.MenuRepository().AddItem(ctx, it))
	return v, it
}

// createTestOrder places an order of three tacos.
func createTestOrder(suite *UnitOfWorkIntegrationTestSuite, v *vendor.Vendor, it *menu.Item) *order.Order {
	line, err := order.NewItem(kernel.NewUUID(), it.ID(), it.Name(), it.Price(), 3, "")
	suite.Require().NoError(err)
	now := time.Now()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), v.ID(), now, now.Add(time.Hour), order.Pickup, "", []*order.Item{line})
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
