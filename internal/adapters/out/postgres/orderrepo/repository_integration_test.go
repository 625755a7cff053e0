package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"workshop/internal/adapters/out/postgres/orderrepo"
	"workshop/internal/adapters/out/postgres/pgtest"
	"workshop/internal/core/domain/model/kernel/kerneltest"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(database.DB.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("orders"))
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(clientID int64) *order.Order {
	o, err := order.NewOrder(kerneltest.ID(clientID), time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(context.Background(), o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_NewOrder_AssignsIncreasingIDs() {
	first := suite.newOrder(1)
	second := suite.newOrder(1)

	suite.False(first.ID().IsZero())
	suite.Equal(-1, first.ID().Compare(second.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_InvalidOrder_ReturnsError() {
	err := suite.repository.Save(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()
	saved := suite.newOrder(7)

	got, err := suite.repository.Get(ctx, saved.ID())

	suite.Require().NoError(err)
	suite.True(saved.ID().IsEqual(got.ID()))
	suite.Equal(int64(7), got.ClientID().Int64())
	suite.Equal(order.New, got.Status())
	suite.True(saved.CreatedAt().Equal(got.CreatedAt()))
	suite.False(got.HasPendingChanges())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	got, err := suite.repository.Get(context.Background(), kerneltest.ID(999))

	suite.Nil(got)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_ExistingOrder_UpdatesStatus() {
	ctx := context.Background()
	o := suite.newOrder(1)

	o.Process()
	suite.Require().NoError(suite.repository.Save(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, got.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_UnknownID_ReturnsNotFoundError() {
	ghost, err := order.RestoreOrder(kerneltest.ID(404), kerneltest.ID(1), time.Now().UTC(), order.New)
	suite.Require().NoError(err)

	err = suite.repository.Save(context.Background(), ghost)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_ReturnsMatchingOrdersOldestFirst() {
	ctx := context.Background()
	first := suite.newOrder(1)
	started := suite.newOrder(1)
	third := suite.newOrder(1)
	cancelled := suite.newOrder(1)

	started.Process()
	cancelled.Cancel()
	suite.Require().NoError(suite.repository.Save(ctx, started))
	suite.Require().NoError(suite.repository.Save(ctx, cancelled))

	pending, err := suite.repository.GetAllInStatus(ctx, order.New)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(first.ID().IsEqual(pending[0].ID()))
	suite.True(third.ID().IsEqual(pending[1].ID()))

	open, err := suite.repository.GetAllInStatus(ctx, order.New, order.InProgress)
	suite.Require().NoError(err)
	suite.Len(open, 3)

	none, err := suite.repository.GetAllInStatus(ctx)
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_EmptyDatabase_ReturnsEmptySlice() {
	all, err := suite.repository.GetAll(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(all)
	suite.Empty(all)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
