package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"workshop/internal/core/application/notifier"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/product"
	"workshop/internal/core/domain/services"
	"workshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// QuoteCurrency is the currency pricing tariffs are expressed in.
const QuoteCurrency = "RUB"

// Handler is a command or query handler as the HTTP layer sees it.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

type Quoter interface {
	Price(req services.PriceRequest) (decimal.Decimal, error)
}

type StatsSource interface {
	Snapshot() notifier.MetricsSnapshot
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder   Handler[commands.CreateOrderCommand, commands.CreateOrderResult]
	AssignWorker  Handler[commands.AssignWorkerCommand, commands.AssignmentOutcome]
	ProcessOrder  Handler[commands.ProcessOrderCommand, commands.LifecycleOutcome]
	CancelOrder   Handler[commands.CancelOrderCommand, commands.LifecycleOutcome]
	CompleteOrder Handler[commands.CompleteOrderCommand, commands.LifecycleOutcome]
	CreateWorker  Handler[commands.CreateWorkerCommand, kernel.ID]

	GetAllOrders    Handler[queries.GetAllOrdersQuery, []queries.GetAllOrdersQueryResponse]
	GetOrderStatus  Handler[queries.GetOrderStatusQuery, queries.GetOrderStatusQueryResponse]
	GetAllWorkers   Handler[queries.GetAllWorkersQuery, []queries.GetAllWorkersQueryResponse]
	GetWorkerOrders Handler[queries.GetWorkerOrdersQuery, []queries.GetWorkerOrdersQueryResponse]
	GetAllClients   Handler[queries.GetAllClientsQuery, []queries.GetAllClientsQueryResponse]

	Pricing Quoter
	Stats   StatsSource
}

var _ ServerInterface = &Server{}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{h: h, logger: logger.With("component", "http")}
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.h.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:         o.ID.Int64(),
			ClientID:   o.ClientID.Int64(),
			ClientName: o.ClientName,
			CreatedAt:  o.CreatedAt,
			Status:     o.Status.String(),
			Worker:     workerRef(o.Worker),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	name, nameErr := kernel.NewPersonName(body.FirstName, body.LastName, body.Patronymic)
	phone, phoneErr := kernel.NewPhone(body.Phone)
	material, materialErr := product.ParseMaterial(body.Material)
	if err := errors.Join(nameErr, phoneErr, materialErr); err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(name, phone, body.Email, body.ProductType, material, body.Purity, body.Note)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	result, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreatedOrder{
		OrderID:       result.OrderID.Int64(),
		ClientID:      result.ClientID.Int64(),
		ProductID:     result.ProductID.Int64(),
		ClientCreated: result.ClientCreated,
		Assignment:    assignmentOutcome(result.Assignment),
	})
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	orderID, err := kernel.IDFromInt64(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.h.GetOrderStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}

	items := make([]OrderItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = OrderItem{
			ProductID:   item.ProductID.Int64(),
			Description: item.Description,
			Note:        item.Note,
		}
	}

	return ctx.JSON(http.StatusOK, OrderDetails{
		ID:          view.ID.Int64(),
		ClientName:  view.ClientName,
		ClientPhone: view.ClientPhone,
		CreatedAt:   view.CreatedAt,
		Status:      view.Status.String(),
		Worker:      workerRef(view.Worker),
		Items:       items,
	})
}

// AssignOrder handles POST /api/v1/orders/{id}/assign. A pending outcome is
// answered with 202 Accepted.
func (s *Server) AssignOrder(ctx echo.Context, id int64) error {
	orderID, err := kernel.IDFromInt64(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	cmd, err := commands.NewAssignWorkerCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	outcome, err := s.h.AssignWorker.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to assign order")
	}

	code := http.StatusOK
	if outcome.Status == commands.AssignmentPending {
		code = http.StatusAccepted
	}
	return ctx.JSON(code, assignmentOutcome(outcome))
}

// ProcessOrder handles POST /api/v1/orders/{id}/process.
func (s *Server) ProcessOrder(ctx echo.Context, id int64) error {
	orderID, err := kernel.IDFromInt64(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	cmd, err := commands.NewProcessOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	outcome, err := s.h.ProcessOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to process order")
	}
	return ctx.JSON(http.StatusOK, lifecycleOutcome(outcome))
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id int64) error {
	orderID, err := kernel.IDFromInt64(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	outcome, err := s.h.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to cancel order")
	}
	return ctx.JSON(http.StatusOK, lifecycleOutcome(outcome))
}

// CompleteOrder handles POST /api/v1/orders/{id}/complete. With a workerId
// in the body only that worker may complete the order.
func (s *Server) CompleteOrder(ctx echo.Context, id int64) error {
	var body CompleteOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.IDFromInt64(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var cmd commands.CompleteOrderCommand
	if body.WorkerID != nil {
		workerID, idErr := kernel.IDFromInt64(*body.WorkerID)
		if idErr != nil {
			return badRequest(ctx, idErr.Error())
		}
		cmd, err = commands.NewCompleteOrderByWorkerCommand(orderID, workerID)
	} else {
		cmd, err = commands.NewCompleteOrderCommand(orderID)
	}
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	outcome, err := s.h.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to complete order")
	}
	return ctx.JSON(http.StatusOK, lifecycleOutcome(outcome))
}

// GetWorkers handles GET /api/v1/workers.
func (s *Server) GetWorkers(ctx echo.Context) error {
	workers, err := s.h.GetAllWorkers.Handle(ctx.Request().Context(), queries.NewGetAllWorkersQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve workers")
	}

	response := make([]Worker, len(workers))
	for i, w := range workers {
		response[i] = Worker{
			ID:          w.ID.Int64(),
			Name:        w.Name,
			Phone:       w.Phone,
			Email:       w.Email,
			Load:        w.Load,
			Capacity:    w.Capacity,
			IsAvailable: w.IsAvailable,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateWorker handles POST /api/v1/workers.
func (s *Server) CreateWorker(ctx echo.Context) error {
	var body NewWorker
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	name, nameErr := kernel.NewPersonName(body.FirstName, body.LastName, body.Patronymic)
	phone, phoneErr := kernel.NewPhone(body.Phone)
	if err := errors.Join(nameErr, phoneErr); err != nil {
		return badRequest(ctx, "Invalid worker data: "+err.Error())
	}

	cmd, err := commands.NewCreateWorkerCommand(name, phone, body.Email)
	if err != nil {
		return badRequest(ctx, "Invalid worker data: "+err.Error())
	}

	id, err := s.h.CreateWorker.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create worker")
	}
	return ctx.JSON(http.StatusCreated, Created{ID: id.Int64()})
}

// GetWorkerOrders handles GET /api/v1/workers/{id}/orders.
func (s *Server) GetWorkerOrders(ctx echo.Context, id int64) error {
	workerID, err := kernel.IDFromInt64(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	query, err := queries.NewGetWorkerOrdersQuery(workerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.h.GetWorkerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve worker orders")
	}

	response := make([]WorkerOrder, len(orders))
	for i, o := range orders {
		response[i] = WorkerOrder{
			OrderID:    o.OrderID.Int64(),
			ClientName: o.ClientName,
			CreatedAt:  o.CreatedAt,
			AssignedAt: o.AssignedAt,
			Status:     o.Status.String(),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetClients handles GET /api/v1/clients.
func (s *Server) GetClients(ctx echo.Context) error {
	clients, err := s.h.GetAllClients.Handle(ctx.Request().Context(), queries.NewGetAllClientsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve clients")
	}

	response := make([]Client, len(clients))
	for i, c := range clients {
		response[i] = Client{
			ID:         c.ID.Int64(),
			Name:       c.Name,
			Phone:      c.Phone,
			Email:      c.Email,
			OrderCount: c.OrderCount,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateQuote handles POST /api/v1/quotes.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var body QuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	req, err := priceRequest(body)
	if err != nil {
		return badRequest(ctx, "Invalid quote request: "+err.Error())
	}

	price, err := s.h.Pricing.Price(req)
	if err != nil {
		return badRequest(ctx, "Invalid quote request: "+err.Error())
	}
	return ctx.JSON(http.StatusOK, Quote{Price: price.StringFixed(2), Currency: QuoteCurrency})
}

// GetTransitionStats handles GET /api/v1/stats/transitions.
func (s *Server) GetTransitionStats(ctx echo.Context) error {
	snapshot := s.h.Stats.Snapshot()
	return ctx.JSON(http.StatusOK, TransitionStats{
		Total:      snapshot.Total,
		InProgress: snapshot.InProgress,
		Completed:  snapshot.Completed,
		Cancelled:  snapshot.Cancelled,
		Other:      snapshot.Other,
	})
}

func priceRequest(body QuoteRequest) (services.PriceRequest, error) {
	material, err := product.ParseMaterial(body.Material)
	if err != nil {
		return services.PriceRequest{}, err
	}

	weight, err := decimal.NewFromString(body.WeightGrams)
	if err != nil {
		return services.PriceRequest{}, errs.NewValueIsInvalidErrorWithCause("weightGrams", err)
	}

	enhancements := make([]product.Enhancement, 0, len(body.Enhancements))
	for _, raw := range body.Enhancements {
		e, err := product.ParseEnhancement(raw)
		if err != nil {
			return services.PriceRequest{}, err
		}
		enhancements = append(enhancements, e)
	}

	return services.PriceRequest{
		Type:         body.ProductType,
		Material:     material,
		Purity:       body.Purity,
		WeightGrams:  weight,
		Enhancements: enhancements,
	}, nil
}

func workerRef(ref *queries.WorkerRef) *WorkerRef {
	if ref == nil {
		return nil
	}
	return &WorkerRef{ID: ref.ID.Int64(), Name: ref.Name}
}

func assignmentOutcome(o commands.AssignmentOutcome) AssignmentOutcome {
	return AssignmentOutcome{
		OrderID:  o.OrderID.Int64(),
		WorkerID: o.WorkerID.Int64(),
		Status:   string(o.Status),
		Warning:  warning(o.Warning),
	}
}

func lifecycleOutcome(o commands.LifecycleOutcome) LifecycleOutcome {
	out := LifecycleOutcome{
		OrderID: o.OrderID.Int64(),
		From:    o.From.String(),
		To:      o.To.String(),
		Changed: o.Changed,
		Warning: warning(o.Warning),
	}
	if o.Requeue != nil {
		requeue := assignmentOutcome(*o.Requeue)
		out.Requeue = &requeue
	}
	return out
}

func warning(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
