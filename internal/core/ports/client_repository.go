package ports

import (
	"context"

	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"
)

type ClientRepository interface {
	Save(ctx context.Context, aggregate *client.Client) error
	Get(ctx context.Context, id kernel.ID) (*client.Client, error)
	GetAll(ctx context.Context) ([]*client.Client, error)

	// GetByPhone returns errs.ErrObjectNotFound for an unknown phone.
	GetByPhone(ctx context.Context, phone kernel.Phone) (*client.Client, error)
}
