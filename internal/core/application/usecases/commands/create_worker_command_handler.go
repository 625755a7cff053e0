package commands

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worker"
)

type CreateWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

func NewCreateWorkerCommandHandler(uowFactory WorkerUoWFactory) CreateWorkerCommandHandler {
	return CreateWorkerCommandHandler{uowFactory: uowFactory}
}

// Handle saves the worker and returns the id assigned by the record store.
func (h CreateWorkerCommandHandler) Handle(ctx context.Context, cmd CreateWorkerCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	w, err := worker.NewWorker(cmd.Name(), cmd.Phone(), cmd.Email())
	if err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkerRepository().Save(ctx, w); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return w.ID(), nil
}
