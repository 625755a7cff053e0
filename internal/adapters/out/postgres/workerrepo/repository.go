package workerrepo

import (
	"context"

	"workshop/internal/adapters/out/postgres/pgerr"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worker"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkerRepository implements WorkerRepository using GORM.
type GormWorkerRepository struct {
	db *gorm.DB
}

func NewGormWorkerRepository(db *gorm.DB) *GormWorkerRepository {
	return &GormWorkerRepository{db: db}
}

// Save inserts an unsaved worker and identifies it, or updates a stored one.
func (r *GormWorkerRepository) Save(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if aggregate.ID().IsZero() {
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return pgerr.Translate(err, "worker", dto.Phone)
		}
		id, err := kernel.IDFromInt64(dto.ID)
		if err != nil {
			return err
		}
		return aggregate.Identify(id)
	}

	result := r.db.WithContext(ctx).Model(&WorkerDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("worker", dto.ID)
	}

	return nil
}

func (r *GormWorkerRepository) Get(ctx context.Context, id kernel.ID) (*worker.Worker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, pgerr.Translate(err, "worker", id.Int64())
	}

	return toDomain(dto)
}

func (r *GormWorkerRepository) GetAll(ctx context.Context) ([]*worker.Worker, error) {
	var dtos []WorkerDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllAvailable filters on the load column rather than the stored flag,
// the flag of rows written by hand may be stale.
func (r *GormWorkerRepository) GetAllAvailable(ctx context.Context) ([]*worker.Worker, error) {
	var dtos []WorkerDTO
	err := r.db.WithContext(ctx).
		Where("current_load < ?", worker.Capacity).
		Order("current_load").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func (r *GormWorkerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&WorkerDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toDomainAll(dtos []WorkerDTO) ([]*worker.Worker, error) {
	workers := make([]*worker.Worker, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}

	return workers, nil
}
