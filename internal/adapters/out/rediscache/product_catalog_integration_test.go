package rediscache

import (
	"context"
	"errors"
	"testing"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/product"
	"kitchen/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type MockProductCatalog struct {
	mock.Mock
}

func (m *MockProductCatalog) Get(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductCatalog) All(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type CachedProductCatalogTestSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *redis.Client
	source    *MockProductCatalog
	catalog   *CachedProductCatalog
	products  []*product.Product
}

func (suite *CachedProductCatalogTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	suite.Require().NoError(err)
	suite.container = container

	uri, err := container.ConnectionString(ctx)
	suite.Require().NoError(err)

	opts, err := redis.ParseURL(uri)
	suite.Require().NoError(err)
	suite.client = redis.NewClient(opts)
	suite.Require().NoError(suite.client.Ping(ctx).Err())
}

func (suite *CachedProductCatalogTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CachedProductCatalogTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())

	gyoza, err := product.NewProduct(2, "Gyoza", kernel.MustMoney("1.25"))
	suite.Require().NoError(err)
	ramen, err := product.NewProduct(1, "Ramen", kernel.MustMoney("9.50"))
	suite.Require().NoError(err)
	suite.products = []*product.Product{gyoza, ramen}

	suite.source = &MockProductCatalog{}
	suite.catalog = NewCachedProductCatalog(suite.source, suite.client, time.Minute, nil)
}

func (suite *CachedProductCatalogTestSuite) TestAll_MissLoadsSourceOnceThenServesCache() {
	ctx := context.Background()
	suite.source.On("All", mock.Anything).Return(suite.products, nil).Once()

	first, err := suite.catalog.All(ctx)
	suite.Require().NoError(err)
	second, err := suite.catalog.All(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(second, 2)
	suite.Equal(first[0].Name(), second[0].Name())
	suite.Equal("Gyoza", second[0].Name())
	suite.True(second[1].UnitPrice().IsEqual(kernel.MustMoney("9.50")))
	suite.source.AssertNumberOfCalls(suite.T(), "All", 1)

	ttl, err := suite.client.TTL(ctx, productsKey).Result()
	suite.Require().NoError(err)
	suite.Greater(ttl, time.Duration(0))
	suite.LessOrEqual(ttl, time.Minute)
}

func (suite *CachedProductCatalogTestSuite) TestAll_SourceErrorIsReturned() {
	boom := errors.New("database is down")
	suite.source.On("All", mock.Anything).Return(nil, boom).Once()

	products, err := suite.catalog.All(context.Background())

	suite.Require().ErrorIs(err, boom)
	suite.Nil(products)
}

func (suite *CachedProductCatalogTestSuite) TestAll_CorruptEntryFallsBackToSource() {
	ctx := context.Background()
	suite.Require().NoError(suite.client.Set(ctx, productsKey, "not json", 0).Err())
	suite.source.On("All", mock.Anything).Return(suite.products, nil).Once()

	products, err := suite.catalog.All(ctx)

	suite.Require().NoError(err)
	suite.Len(products, 2)
	suite.source.AssertExpectations(suite.T())
}

func (suite *CachedProductCatalogTestSuite) TestGet_ServedFromCachedList() {
	ctx := context.Background()
	suite.source.On("All", mock.Anything).Return(suite.products, nil).Once()

	p, err := suite.catalog.Get(ctx, 1)

	suite.Require().NoError(err)
	suite.Equal("Ramen", p.Name())
	suite.source.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything)
}

func (suite *CachedProductCatalogTestSuite) TestGet_UnknownIDAsksSource() {
	ctx := context.Background()
	suite.source.On("All", mock.Anything).Return(suite.products, nil).Once()
	suite.source.On("Get", mock.Anything, int64(42)).
		Return(nil, errs.NewObjectNotFoundError("product", int64(42))).Once()

	p, err := suite.catalog.Get(ctx, 42)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(p)
	suite.source.AssertExpectations(suite.T())
}

func (suite *CachedProductCatalogTestSuite) TestWarm_RefreshesCache() {
	ctx := context.Background()
	suite.source.On("All", mock.Anything).Return(suite.products[:1], nil).Once()
	_, err := suite.catalog.All(ctx)
	suite.Require().NoError(err)

	suite.source.On("All", mock.Anything).Return(suite.products, nil).Once()
	count, err := suite.catalog.Warm(ctx)
	suite.Require().NoError(err)
	suite.Equal(2, count)

	products, err := suite.catalog.All(ctx)
	suite.Require().NoError(err)
	suite.Len(products, 2)
	suite.source.AssertNumberOfCalls(suite.T(), "All", 2)
}

func (suite *CachedProductCatalogTestSuite) TestInvalidate_ForcesReload() {
	ctx := context.Background()
	suite.source.On("All", mock.Anything).Return(suite.products, nil).Twice()

	_, err := suite.catalog.All(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.catalog.Invalidate(ctx))
	_, err = suite.catalog.All(ctx)
	suite.Require().NoError(err)

	suite.source.AssertNumberOfCalls(suite.T(), "All", 2)
}

func TestCachedProductCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CachedProductCatalogTestSuite))
}
