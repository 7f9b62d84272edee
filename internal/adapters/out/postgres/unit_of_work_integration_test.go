package postgres_test

import (
	"context"
	"testing"
	"time"

	"bakery/internal/adapters/out/postgres"
	"bakery/internal/adapters/out/postgres/historyrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that an order's state change and its
// transition record commit or roll back together.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &historyrepo.TransitionDTO{}))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_transitions").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_OrderAndRecordVisibleTogether() {
	ctx := context.Background()
	testOrder := suite.createPersistedOrder(ctx)

	from := testOrder.State()
	suite.Require().NoError(testOrder.TransitionTo(order.Picking))
	record, err := order.NewTransition(testOrder.ID(), &from, order.Picking, "", "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.TransitionLogRepository().Append(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Picking, loaded.State())

	records, err := suite.factory.Create().TransitionLogRepository().ListForOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal(order.Picking, records[1].To())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrderAndRecord() {
	ctx := context.Background()
	testOrder := suite.createPersistedOrder(ctx)

	from := testOrder.State()
	suite.Require().NoError(testOrder.TransitionTo(order.Picking))
	record, err := order.NewTransition(testOrder.ID(), &from, order.Picking, "", "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.TransitionLogRepository().Append(ctx, record))
	suite.Require().NoError(uow.Rollback(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ordered, loaded.State())

	records, err := suite.factory.Create().TransitionLogRepository().ListForOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal(order.Ordered, records[0].To())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WithoutTransaction_WriteDirectly() {
	ctx := context.Background()
	testOrder := suite.createPersistedOrder(ctx)

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(testOrder))
}

// createPersistedOrder stores a fresh order with its creation record, the way
// order creation does it.
func (suite *UnitOfWorkIntegrationTestSuite) createPersistedOrder(ctx context.Context) *order.Order {
	pieType, err := order.NewPieType("pumpkin")
	suite.Require().NoError(err)
	customer, err := kernel.NewContact("Carol Webb", "carol@example.com", "555-0199")
	suite.Require().NoError(err)
	address, err := kernel.NewAddress("9 Pine Road", "Austin", "TX", "78701")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), pieType, customer, address)
	suite.Require().NoError(err)
	record, err := order.NewTransition(testOrder.ID(), nil, order.Ordered, "Order created", "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.TransitionLogRepository().Append(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))

	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
