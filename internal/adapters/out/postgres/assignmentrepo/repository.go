package assignmentrepo

import (
	"context"

	"workshop/internal/adapters/out/postgres/pgerr"
	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db *gorm.DB
}

func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Save inserts or updates the assignment. A second active assignment for the
// same order violates the partial unique index and is reported as
// errs.ErrValueIsInvalid.
func (r *GormAssignmentRepository) Save(ctx context.Context, aggregate *assignment.WorkAssignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if aggregate.ID().IsZero() {
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return pgerr.Translate(err, "assignment", dto.OrderID)
		}
		id, err := kernel.IDFromInt64(dto.ID)
		if err != nil {
			return err
		}
		return aggregate.Identify(id)
	}

	result := r.db.WithContext(ctx).Model(&WorkAssignmentDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, "assignment", dto.OrderID)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", dto.ID)
	}

	return nil
}

func (r *GormAssignmentRepository) GetActiveByOrder(ctx context.Context, orderID kernel.ID) (*assignment.WorkAssignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto WorkAssignmentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND released_at IS NULL", orderID.Int64()).
		First(&dto).Error
	if err != nil {
		return nil, pgerr.Translate(err, "active assignment of order", orderID.Int64())
	}

	return toDomain(dto)
}

func (r *GormAssignmentRepository) GetLatestByOrder(ctx context.Context, orderID kernel.ID) (*assignment.WorkAssignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto WorkAssignmentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Int64()).
		Order("id DESC").
		First(&dto).Error
	if err != nil {
		return nil, pgerr.Translate(err, "assignment of order", orderID.Int64())
	}

	return toDomain(dto)
}

func (r *GormAssignmentRepository) GetActiveByWorker(ctx context.Context, workerID kernel.ID) ([]*assignment.WorkAssignment, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkAssignmentDTO
	err := r.db.WithContext(ctx).
		Where("worker_id = ? AND released_at IS NULL", workerID.Int64()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	assignments := make([]*assignment.WorkAssignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}
