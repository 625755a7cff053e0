package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/kernel/kerneltest"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/product"
	"workshop/internal/core/domain/model/worker"
	"workshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockWorkerRepository struct{ mock.Mock }

func (m *MockWorkerRepository) Save(ctx context.Context, w *worker.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) Get(ctx context.Context, id kernel.ID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetAll(ctx context.Context) ([]*worker.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetAllAvailable(ctx context.Context) ([]*worker.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Save(ctx context.Context, a *assignment.WorkAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) GetActiveByOrder(ctx context.Context, orderID kernel.ID) (*assignment.WorkAssignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.WorkAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetLatestByOrder(ctx context.Context, orderID kernel.ID) (*assignment.WorkAssignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.WorkAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveByWorker(ctx context.Context, workerID kernel.ID) ([]*assignment.WorkAssignment, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.WorkAssignment), args.Error(1)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Save(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.ID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) GetAll(ctx context.Context) ([]*client.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*client.Client), args.Error(1)
}

func (m *MockClientRepository) GetByPhone(ctx context.Context, phone kernel.Phone) (*client.Client, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Save(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByParams(
	ctx context.Context,
	kind string,
	material product.Material,
	purity int,
) (*product.Product, error) {
	args := m.Called(ctx, kind, material, purity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockOrderItemRepository struct{ mock.Mock }

func (m *MockOrderItemRepository) Save(ctx context.Context, item *product.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderItemRepository) GetAllByOrder(ctx context.Context, orderID kernel.ID) ([]*product.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.OrderItem), args.Error(1)
}

// MockUoW implements every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) WorkerRepository() ports.WorkerRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkerRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) OrderItemRepository() ports.OrderItemRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderItemRepository)
}

type MockSchedulingUoWFactory struct{ mock.Mock }

func (m *MockSchedulingUoWFactory) Create() commands.SchedulingUoW {
	args := m.Called()
	return args.Get(0).(commands.SchedulingUoW)
}

type MockOrderIntakeUoWFactory struct{ mock.Mock }

func (m *MockOrderIntakeUoWFactory) Create() commands.OrderIntakeUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderIntakeUoW)
}

type MockWorkerUoWFactory struct{ mock.Mock }

func (m *MockWorkerUoWFactory) Create() commands.WorkerUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkerUoW)
}

type MockSeedUoWFactory struct{ mock.Mock }

func (m *MockSeedUoWFactory) Create() commands.SeedUoW {
	args := m.Called()
	return args.Get(0).(commands.SeedUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, changes ...order.StatusChanged) {
	m.Called(ctx, changes)
}

type MockNotificationService struct{ mock.Mock }

func (m *MockNotificationService) Notify(ctx context.Context, n ports.Notification) []ports.ChannelResult {
	args := m.Called(ctx, n)
	return args.Get(0).([]ports.ChannelResult)
}

// scheduling bundles the mocks behind a SchedulingUoWFactory. Every Create
// returns the same unit of work; transaction calls are unrestricted and
// checked through the repositories instead.
type scheduling struct {
	factory     *MockSchedulingUoWFactory
	uow         *MockUoW
	orders      *MockOrderRepository
	workers     *MockWorkerRepository
	assignments *MockAssignmentRepository
	publisher   *MockPublisher
}

func newScheduling(ctx context.Context) *scheduling {
	s := &scheduling{
		factory:     new(MockSchedulingUoWFactory),
		uow:         new(MockUoW),
		orders:      new(MockOrderRepository),
		workers:     new(MockWorkerRepository),
		assignments: new(MockAssignmentRepository),
		publisher:   new(MockPublisher),
	}
	s.factory.On("Create").Return(s.uow)
	s.uow.On("Begin", ctx).Return(nil)
	s.uow.On("Rollback", ctx).Return(nil)
	s.uow.On("OrderRepository").Return(s.orders)
	s.uow.On("WorkerRepository").Return(s.workers)
	s.uow.On("AssignmentRepository").Return(s.assignments)
	return s
}

func (s *scheduling) assertExpectations(t *testing.T) {
	t.Helper()
	s.orders.AssertExpectations(t)
	s.workers.AssertExpectations(t)
	s.assignments.AssertExpectations(t)
	s.publisher.AssertExpectations(t)
	s.uow.AssertExpectations(t)
}

var fixedTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func testOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kerneltest.ID(id), kerneltest.ID(500), fixedTime, status)
	require.NoError(t, err)
	return o
}

func testWorker(t *testing.T, id int64, load int) *worker.Worker {
	t.Helper()
	name, err := kernel.NewPersonName("Ivan", "Petrov", "")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+79161111111")
	require.NoError(t, err)
	w, err := worker.RestoreWorker(kerneltest.ID(id), name, phone, "", load)
	require.NoError(t, err)
	return w
}

func testAssignment(t *testing.T, id, orderID, workerID int64) *assignment.WorkAssignment {
	t.Helper()
	a, err := assignment.RestoreWorkAssignment(
		kerneltest.ID(id), kerneltest.ID(orderID), kerneltest.ID(workerID), fixedTime, nil,
	)
	require.NoError(t, err)
	return a
}

func changeTo(from, to order.Status) any {
	return mock.MatchedBy(func(changes []order.StatusChanged) bool {
		return len(changes) == 1 && changes[0].From == from && changes[0].To == to
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
