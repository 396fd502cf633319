package queries_test

import (
	"context"
	"testing"
	"time"

	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/postgres/productrepo"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewListOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderReader(db)
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, products").Error
	suite.Require().NoError(err)

	err = suite.db.Create(&[]productrepo.ProductDTO{
		{ID: 1, Name: "Ramen", UnitPrice: decimal.RequireFromString("9.50")},
		{ID: 2, Name: "Gyoza", UnitPrice: decimal.RequireFromString("1.25")},
	}).Error
	suite.Require().NoError(err)
}

func (suite *ListOrdersQueryHandlerTestSuite) saveOrder(step order.Step, lines ...[2]int) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID())
	suite.Require().NoError(err)
	for _, line := range lines {
		_, err = o.AddItem(int64(line[0]), line[1])
		suite.Require().NoError(err)
	}
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))

	for o.Step() != step {
		_, err = o.Advance()
		suite.Require().NoError(err)
	}
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), o))
	return o
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewListOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_AllOrders_InCreationOrderWithItems() {
	first := suite.saveOrder(order.New, [2]int{1, 2}, [2]int{2, 6})
	second := suite.saveOrder(order.Ready)
	third := suite.saveOrder(order.Released, [2]int{99, 1})

	result, err := suite.handler.Handle(context.Background(), queries.NewListOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.True(result[0].ID.IsEqual(first.ID()))
	suite.True(result[1].ID.IsEqual(second.ID()))
	suite.True(result[2].ID.IsEqual(third.ID()))

	suite.Equal(order.New, result[0].Step)
	suite.Require().Len(result[0].Items, 2)
	suite.Equal("Ramen", result[0].Items[0].ProductName)
	suite.Equal(2, result[0].Items[0].Quantity)
	suite.Equal("Gyoza", result[0].Items[1].ProductName)

	suite.Empty(result[1].Items)

	suite.Require().Len(result[2].Items, 1)
	suite.Empty(result[2].Items[0].ProductName, "unknown products have no name")
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_Queue_ReturnsOnlyThatStep() {
	suite.saveOrder(order.Queued, [2]int{1, 1})
	inProgress := suite.saveOrder(order.InProgress, [2]int{2, 1})
	suite.saveOrder(order.Ready, [2]int{1, 1})

	query, err := queries.NewQueueQuery(order.InProgress)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(inProgress.ID()))
	suite.Equal(order.InProgress, result[0].Step)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestNewQueueQuery_NewHasNoQueue() {
	_, err := queries.NewQueueQuery(order.New)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.ListOrdersQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewListOrdersQuery")
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.saveOrder(order.Queued, [2]int{1, 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, queries.NewListOrdersQuery())

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
