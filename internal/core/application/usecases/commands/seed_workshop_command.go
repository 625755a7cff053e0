package commands

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/product"
	"workshop/internal/core/domain/model/worker"
	"workshop/internal/pkg/guard"
)

var ErrSeedWorkshopCommandIsNotConstructed = errors.New(
	"SeedWorkshopCommand must be created via NewSeedWorkshopCommand constructor",
)

// WorkerSeed and ProductSeed describe the starting data of a new workshop.
type (
	WorkerSeed struct {
		FirstName, LastName, Patronymic string
		Phone, Email                    string
	}

	ProductSeed struct {
		Type     string
		Material product.Material
		Purity   int
	}
)

// DefaultWorkerSeeds are the three masters a fresh workshop starts with.
func DefaultWorkerSeeds() []WorkerSeed {
	return []WorkerSeed{
		{FirstName: "Ivan", LastName: "Petrov", Patronymic: "Sergeevich", Phone: "+79161111111", Email: "master1@almaz.example"},
		{FirstName: "Maria", LastName: "Sidorova", Patronymic: "Ivanovna", Phone: "+79162222222", Email: "master2@almaz.example"},
		{FirstName: "Alexey", LastName: "Kozlov", Patronymic: "Petrovich", Phone: "+79163333333", Email: "master3@almaz.example"},
	}
}

// DefaultProductSeeds is the starting catalog.
func DefaultProductSeeds() []ProductSeed {
	return []ProductSeed{
		{Type: "ring", Material: product.Gold, Purity: 585},
		{Type: "earrings", Material: product.Silver, Purity: 925},
		{Type: "pendant", Material: product.Gold, Purity: 585},
		{Type: "bracelet", Material: product.Silver, Purity: 925},
	}
}

// SeedWorkshopCommand fills an empty workshop. It does nothing once any
// worker exists.
type SeedWorkshopCommand struct {
	workers  []WorkerSeed
	products []ProductSeed
	guard    guard.ConstructorGuard
}

func NewSeedWorkshopCommand(workers []WorkerSeed, products []ProductSeed) SeedWorkshopCommand {
	return SeedWorkshopCommand{
		workers:  workers,
		products: products,
		guard:    guard.NewConstructorGuard(),
	}
}

func (c SeedWorkshopCommand) Validate() error {
	return c.guard.Validate(ErrSeedWorkshopCommandIsNotConstructed)
}

type SeedWorkshopCommandHandler struct {
	uowFactory SeedUoWFactory
}

func NewSeedWorkshopCommandHandler(uowFactory SeedUoWFactory) SeedWorkshopCommandHandler {
	return SeedWorkshopCommandHandler{uowFactory: uowFactory}
}

// Handle reports whether seed data was written.
func (h SeedWorkshopCommandHandler) Handle(ctx context.Context, cmd SeedWorkshopCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	workerRepo := uow.WorkerRepository()
	count, err := workerRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, seed := range cmd.workers {
		w, err := newSeedWorker(seed)
		if err != nil {
			return false, err
		}
		if err = workerRepo.Save(ctx, w); err != nil {
			return false, err
		}
	}

	productRepo := uow.ProductRepository()
	for _, seed := range cmd.products {
		p, err := product.NewProduct(seed.Type, seed.Material, seed.Purity)
		if err != nil {
			return false, err
		}
		if err = productRepo.Save(ctx, p); err != nil {
			return false, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func newSeedWorker(seed WorkerSeed) (*worker.Worker, error) {
	name, err := kernel.NewPersonName(seed.FirstName, seed.LastName, seed.Patronymic)
	if err != nil {
		return nil, err
	}
	phone, err := kernel.NewPhone(seed.Phone)
	if err != nil {
		return nil, err
	}
	return worker.NewWorker(name, phone, seed.Email)
}
