package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

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
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
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

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Create(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := orderrepo.NewGormOrderRepository(suite.db).GetByIDWithItems(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(o))
	suite.Equal("35.00", loaded.TotalPrice().String())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Create(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := orderrepo.NewGormOrderRepository(suite.db).GetByIDWithItems(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertCount("orders", 0)
	suite.assertCount("order_items", 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Create(ctx, o))

	suite.assertCount("orders", 1)
	suite.assertCount("order_items", 2)
}

// TestUnitOfWork_SerialisesUpdatesOfOneOrder checks that a second transaction loading
// an order waits for the first one to finish and then sees its committed status.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SerialisesUpdatesOfOneOrder() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db).Create(ctx, o))

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	locked, err := first.OrderRepository().GetByIDWithItems(ctx, o.ID())
	suite.Require().NoError(err)

	type loadResult struct {
		status order.Status
		err    error
	}
	done := make(chan loadResult, 1)
	go func() {
		second := suite.factory.Create()
		if beginErr := second.Begin(ctx); beginErr != nil {
			done <- loadResult{err: beginErr}
			return
		}
		defer func() { _ = second.Rollback(ctx) }()

		loaded, loadErr := second.OrderRepository().GetByIDWithItems(ctx, o.ID())
		if loadErr != nil {
			done <- loadResult{err: loadErr}
			return
		}
		done <- loadResult{status: loaded.Status()}
	}()

	select {
	case <-done:
		suite.Fail("second transaction should wait for the row lock")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(locked.UpdateStatus(order.AwaitingPayment))
	suite.Require().NoError(first.OrderRepository().Update(ctx, locked))
	suite.Require().NoError(first.Commit(ctx))

	select {
	case result := <-done:
		suite.Require().NoError(result.err)
		suite.Equal(order.AwaitingPayment, result.status)
	case <-time.After(10 * time.Second):
		suite.Fail("second transaction did not acquire the lock")
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	burgerPrice, err := kernel.MoneyFromString("12.50")
	suite.Require().NoError(err)
	friesPrice, err := kernel.MoneyFromString("5.00")
	suite.Require().NoError(err)

	burger, err := order.NewItem(kernel.NewUUID(), "Burger", burgerPrice, 2)
	suite.Require().NoError(err)
	fries, err := order.NewItem(kernel.NewUUID(), "Fries", friesPrice, 2)
	suite.Require().NoError(err)

	o, err := order.NewOrder(nil, []order.Item{burger, fries})
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
