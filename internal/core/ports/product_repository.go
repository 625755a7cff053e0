package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/product"
)

type ProductRepository interface {
	Save(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)
	GetAll(ctx context.Context) ([]*product.Product, error)

	// GetByParams finds the catalog entry for the (type, material, purity)
	// triple or returns errs.ErrObjectNotFound.
	GetByParams(ctx context.Context, kind string, material product.Material, purity int) (*product.Product, error)
}

type OrderItemRepository interface {
	Save(ctx context.Context, item *product.OrderItem) error
	GetAllByOrder(ctx context.Context, orderID kernel.ID) ([]*product.OrderItem, error)
}
