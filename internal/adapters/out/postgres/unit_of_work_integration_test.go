package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "workshop/internal/adapters/out/postgres"
	"workshop/internal/adapters/out/postgres/pgtest"
	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/kernel/kerneltest"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/worker"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite provides integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgres_adapter.Migrate(database.DB))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate(postgres_adapter.Tables...))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.WorkerRepository())
	suite.NotNil(uow1.AssignmentRepository())
	suite.NotNil(uow1.ClientRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.OrderItemRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback,
// including the deferred Rollback after Commit used by command handlers.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx), "Rollback after commit has no transaction")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

// TestUnitOfWork_AssignmentIsAtomic saves the three aggregates an assignment
// touches in one transaction and reads them back.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentIsAtomic() {
	ctx := context.Background()
	o, w := suite.seedOrderAndWorker()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	a, err := assignment.NewWorkAssignment(o.ID(), w.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(w.Take())
	o.Process()

	suite.Require().NoError(uow.AssignmentRepository().Save(ctx, a))
	suite.Require().NoError(uow.WorkerRepository().Save(ctx, w))
	suite.Require().NoError(uow.OrderRepository().Save(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	gotOrder, err := check.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, gotOrder.Status())

	gotWorker, err := check.WorkerRepository().Get(ctx, w.ID())
	suite.Require().NoError(err)
	suite.Equal(1, gotWorker.Load())

	active, err := check.AssignmentRepository().GetActiveByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(w.ID().IsEqual(active.WorkerID()))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	o, w := suite.seedOrderAndWorker()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	a, err := assignment.NewWorkAssignment(o.ID(), w.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(w.Take())
	o.Process()
	suite.Require().NoError(uow.AssignmentRepository().Save(ctx, a))
	suite.Require().NoError(uow.WorkerRepository().Save(ctx, w))
	suite.Require().NoError(uow.OrderRepository().Save(ctx, o))

	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	gotOrder, err := check.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.New, gotOrder.Status())

	gotWorker, err := check.WorkerRepository().Get(ctx, w.ID())
	suite.Require().NoError(err)
	suite.Equal(0, gotWorker.Load())

	_, err = check.AssignmentRepository().GetActiveByOrder(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUnitOfWork_RepositoryIsolation verifies that uncommitted inserts are
// invisible to other unit of work instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	order1 := newOrder(suite)
	suite.Require().NoError(uow1.OrderRepository().Save(ctx, order1))

	_, err := uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	o := newOrder(suite)
	suite.Require().NoError(uow.OrderRepository().Save(ctx, o))

	got, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(o.ID().IsEqual(got.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) seedOrderAndWorker() (*order.Order, *worker.Worker) {
	ctx := context.Background()
	uow := suite.factory.Create()

	o := newOrder(suite)
	suite.Require().NoError(uow.OrderRepository().Save(ctx, o))

	name, err := kernel.NewPersonName("Ivan", "Petrov", "")
	suite.Require().NoError(err)
	phone, err := kernel.NewPhone("+79161111111")
	suite.Require().NoError(err)
	w, err := worker.NewWorker(name, phone, "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WorkerRepository().Save(ctx, w))

	return o, w
}

func newOrder(suite *UnitOfWorkIntegrationTestSuite) *order.Order {
	o, err := order.NewOrder(kerneltest.ID(1), time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
