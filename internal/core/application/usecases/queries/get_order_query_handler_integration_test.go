package queries_test

import (
	"context"
	"testing"
	"time"

	"bakery/internal/adapters/out/postgres/historyrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// stubAggregateTracker satisfies the order repository's tracker without
// recording anything; the query tests only care about what lands in the tables.
type stubAggregateTracker struct{}

func (stubAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// GetOrderQueryHandlerIntegrationTestSuite exercises the single-order read
// model against a real PostgreSQL instance.
type GetOrderQueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	logRepo   *historyrepo.GormTransitionLogRepository
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, stubAggregateTracker{})
	suite.logRepo = historyrepo.NewGormTransitionLogRepository(db)
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_transitions").Error)
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) TestHandle_ReturnsOrderDetail() {
	ctx := context.Background()
	pickJob, bakeJob := "pick-42", "bake-7"
	aggregate := suite.persistedOrder(order.Delivering, &pickJob, &bakeJob)

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(detail.ID.IsEqual(aggregate.ID()))
	suite.Equal("apple", detail.PieType)
	suite.Equal("Alice Crumble", detail.CustomerName)
	suite.Equal("alice@example.com", detail.CustomerEmail)
	suite.Equal("42 Orchard Lane", detail.DeliveryStreet)
	suite.Equal("Springfield", detail.DeliveryCity)
	suite.Equal("IL", detail.DeliveryState)
	suite.Equal("62704", detail.DeliveryZip)
	suite.Equal("DELIVERING", detail.State)

	suite.Require().NotNil(detail.PickerJobID)
	suite.Equal(pickJob, *detail.PickerJobID)
	suite.Require().NotNil(detail.BakerJobID)
	suite.Equal(bakeJob, *detail.BakerJobID)
	suite.Nil(detail.DeliveryID)

	suite.WithinDuration(aggregate.EstimatedDelivery(), detail.EstimatedDelivery, time.Second)
	suite.WithinDuration(aggregate.CreatedAt(), detail.CreatedAt, time.Second)
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) TestHandle_ReturnsHistoryInTimestampOrder() {
	ctx := context.Background()
	aggregate := suite.persistedOrder(order.Errored, nil, nil)

	suite.appendTransition(aggregate.ID(), nil, order.Ordered, "Order created", "")
	from := order.Ordered
	suite.appendTransition(aggregate.ID(), &from, order.Picking, "", "")
	from = order.Picking
	suite.appendTransition(aggregate.ID(), &from, order.Errored, "", "Fruit picker service timeout")

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(detail.History, 3)

	suite.Nil(detail.History[0].From)
	suite.Equal("ORDERED", detail.History[0].To)
	suite.Equal("Order created", detail.History[0].Notes)

	suite.Require().NotNil(detail.History[1].From)
	suite.Equal("ORDERED", *detail.History[1].From)
	suite.Equal("PICKING", detail.History[1].To)

	suite.Require().NotNil(detail.History[2].From)
	suite.Equal("PICKING", *detail.History[2].From)
	suite.Equal("ERROR", detail.History[2].To)
	suite.Equal("Fruit picker service timeout", detail.History[2].ErrorMessage)

	for i := range len(detail.History) - 1 {
		suite.False(detail.History[i].Timestamp.After(detail.History[i+1].Timestamp))
	}
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOrderQuery{})
	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) persistedOrder(
	state order.State,
	pickerJobID, bakerJobID *string,
) *order.Order {
	pieType, err := order.NewPieType("apple")
	suite.Require().NoError(err)
	customer, err := kernel.NewContact("Alice Crumble", "alice@example.com", "555-0101")
	suite.Require().NoError(err)
	address, err := kernel.NewAddress("42 Orchard Lane", "Springfield", "IL", "62704")
	suite.Require().NoError(err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), pieType, customer, address, state,
		pickerJobID, bakerJobID, nil,
		time.Now().Add(order.EstimatedDeliveryLead), time.Now(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) appendTransition(
	orderID kernel.UUID,
	from *order.State,
	to order.State,
	note string,
	errorMessage string,
) {
	record, err := order.NewTransition(orderID, from, to, note, errorMessage)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.logRepo.Append(context.Background(), record))
}

func TestGetOrderQueryHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerIntegrationTestSuite))
}
