package queries_test

import (
	"context"
	"testing"
	"time"

	"trading/internal/adapters/out/postgres/orderrepo"
	"trading/internal/core/application/usecases/queries"
	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetAllOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsAllOrders() {
	statuses := []order.Status{order.Pending, order.Pending, order.Executed, order.Canceled}
	added := make(map[kernel.UUID]order.Status, len(statuses))

	for _, status := range statuses {
		aggregate, err := order.RestoreOrder(kernel.NewUUID(), "MSFT", 3, status)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))
		added[aggregate.ID()] = status
	}

	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, len(statuses))

	for _, orderResp := range result {
		want, ok := added[orderResp.ID]
		suite.Require().True(ok, "unexpected order %s in results", orderResp.ID)
		suite.Equal(want, orderResp.Status)
		suite.Equal("MSFT", orderResp.Symbol)
	}
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllOrdersQuery constructor")
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_CanceledContext_ReturnsError() {
	for range 20 {
		aggregate, err := order.RestoreOrder(kernel.NewUUID(), "MSFT", 3, order.Pending)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, queries.NewGetAllOrdersQuery())

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetAllOrdersQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetAllOrdersQueryHandlerTestSuite))
}
