package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/product"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"
)

// CreateOrderResult tells the caller what was created and whether a worker
// picked the order up straight away.
type CreateOrderResult struct {
	OrderID       kernel.ID
	ClientID      kernel.ID
	ProductID     kernel.ID
	ClientCreated bool
	Assignment    AssignmentOutcome
}

// CreateOrderCommandHandler registers a client's order.
//
// Steps:
//   - find the client by phone or create them
//   - find the product by (type, material, purity) or create it
//   - save the order in status new with its order item and commit
//   - send the order_created notification
//   - try to assign a worker; if everyone is busy the order stays new
type CreateOrderCommandHandler struct {
	uowFactory    OrderIntakeUoWFactory
	notifications ports.NotificationService
	assigner      AssignWorkerCommandHandler
	logger        *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory OrderIntakeUoWFactory,
	notifications ports.NotificationService,
	assigner AssignWorkerCommandHandler,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		notifications: notifications,
		assigner:      assigner,
		logger:        logger.With("component", "order_intake"),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	result, c, p, err := h.create(ctx, cmd)
	if err != nil {
		return CreateOrderResult{}, err
	}

	h.notifyCreated(ctx, c, p, result.OrderID)

	assignCmd, err := NewAssignWorkerCommand(result.OrderID)
	if err != nil {
		return result, err
	}
	outcome, err := h.assigner.Handle(ctx, assignCmd)
	if err != nil {
		// The order is saved; the pending order job will pick it up.
		h.logger.ErrorContext(ctx, "immediate assignment failed",
			slog.Int64("order_id", result.OrderID.Int64()),
			slog.Any("error", err),
		)
		outcome = AssignmentOutcome{OrderID: result.OrderID, Status: AssignmentPending, Warning: err}
	}
	result.Assignment = outcome

	return result, nil
}

func (h CreateOrderCommandHandler) create(
	ctx context.Context,
	cmd CreateOrderCommand,
) (CreateOrderResult, *client.Client, *product.Product, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, created, err := h.findOrCreateClient(ctx, uow.ClientRepository(), cmd)
	if err != nil {
		return CreateOrderResult{}, nil, nil, err
	}

	p, err := h.findOrCreateProduct(ctx, uow.ProductRepository(), cmd)
	if err != nil {
		return CreateOrderResult{}, nil, nil, err
	}

	o, err := order.NewOrder(c.ID(), time.Now().UTC())
	if err != nil {
		return CreateOrderResult{}, nil, nil, err
	}
	if err = uow.OrderRepository().Save(ctx, o); err != nil {
		return CreateOrderResult{}, nil, nil, err
	}

	item, err := product.NewOrderItem(o.ID(), p.ID(), cmd.Note())
	if err != nil {
		return CreateOrderResult{}, nil, nil, err
	}
	if err = uow.OrderItemRepository().Save(ctx, item); err != nil {
		return CreateOrderResult{}, nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, nil, nil, err
	}

	return CreateOrderResult{
		OrderID:       o.ID(),
		ClientID:      c.ID(),
		ProductID:     p.ID(),
		ClientCreated: created,
	}, c, p, nil
}

func (h CreateOrderCommandHandler) findOrCreateClient(
	ctx context.Context,
	repo ports.ClientRepository,
	cmd CreateOrderCommand,
) (*client.Client, bool, error) {
	c, err := repo.GetByPhone(ctx, cmd.ClientPhone())
	if err == nil {
		return c, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	c, err = client.NewClient(cmd.ClientName(), cmd.ClientPhone(), cmd.ClientEmail())
	if err != nil {
		return nil, false, err
	}
	if err = repo.Save(ctx, c); err != nil {
		return nil, false, err
	}
	return c, true, nil
}

func (h CreateOrderCommandHandler) findOrCreateProduct(
	ctx context.Context,
	repo ports.ProductRepository,
	cmd CreateOrderCommand,
) (*product.Product, error) {
	p, err := repo.GetByParams(ctx, cmd.ProductType(), cmd.Material(), cmd.Purity())
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	p, err = product.NewProduct(cmd.ProductType(), cmd.Material(), cmd.Purity())
	if err != nil {
		return nil, err
	}
	if err = repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (h CreateOrderCommandHandler) notifyCreated(ctx context.Context, c *client.Client, p *product.Product, orderID kernel.ID) {
	results := h.notifications.Notify(ctx, ports.Notification{
		Recipient: c.Contact(),
		Text: fmt.Sprintf("%s, your order #%s (%s) has been accepted.",
			c.Name().First(), orderID, p.Describe()),
		Category: ports.CategoryOrderCreated,
		Subject:  fmt.Sprintf("Order #%s", orderID),
	})
	for _, r := range results {
		if !r.Delivered() {
			h.logger.WarnContext(ctx, "order_created notification failed",
				slog.String("channel", r.Channel),
				slog.Int64("order_id", orderID.Int64()),
				slog.Any("error", r.Err),
			)
		}
	}
}
