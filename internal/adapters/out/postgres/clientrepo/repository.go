package clientrepo

import (
	"context"

	"workshop/internal/adapters/out/postgres/pgerr"
	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM.
type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Save inserts or updates the client. A second client with the same phone is
// rejected with errs.ErrValueIsInvalid.
func (r *GormClientRepository) Save(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if aggregate.ID().IsZero() {
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return pgerr.Translate(err, "client", dto.Phone)
		}
		id, err := kernel.IDFromInt64(dto.ID)
		if err != nil {
			return err
		}
		return aggregate.Identify(id)
	}

	result := r.db.WithContext(ctx).Model(&ClientDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, "client", dto.Phone)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("client", dto.ID)
	}

	return nil
}

func (r *GormClientRepository) Get(ctx context.Context, id kernel.ID) (*client.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, pgerr.Translate(err, "client", id.Int64())
	}

	return toDomain(dto)
}

func (r *GormClientRepository) GetAll(ctx context.Context) ([]*client.Client, error) {
	var dtos []ClientDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	clients := make([]*client.Client, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	return clients, nil
}

func (r *GormClientRepository) GetByPhone(ctx context.Context, phone kernel.Phone) (*client.Client, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone = ?", phone.String()).Error; err != nil {
		return nil, pgerr.Translate(err, "client", phone.String())
	}

	return toDomain(dto)
}
