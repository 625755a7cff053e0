// Package assignmentrepo persists work assignments. Released assignments stay
// in the table as the history of who worked on an order.
package assignmentrepo

import (
	"time"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/kernel"
)

// WorkAssignmentDTO is the work_assignments table. The partial unique index
// allows one unreleased assignment per order.
type WorkAssignmentDTO struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	OrderID    int64      `gorm:"not null;index;index:idx_work_assignments_active_order,unique,where:released_at IS NULL"`
	WorkerID   int64      `gorm:"not null;index"`
	AssignedAt time.Time  `gorm:"not null"`
	ReleasedAt *time.Time `gorm:"index"`
}

func (WorkAssignmentDTO) TableName() string {
	return "work_assignments"
}

func fromDomain(a *assignment.WorkAssignment) WorkAssignmentDTO {
	return WorkAssignmentDTO{
		ID:         a.ID().Int64(),
		OrderID:    a.OrderID().Int64(),
		WorkerID:   a.WorkerID().Int64(),
		AssignedAt: a.AssignedAt(),
		ReleasedAt: a.ReleasedAt(),
	}
}

func toDomain(dto WorkAssignmentDTO) (*assignment.WorkAssignment, error) {
	id, err := kernel.IDFromInt64(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.IDFromInt64(dto.OrderID)
	if err != nil {
		return nil, err
	}
	workerID, err := kernel.IDFromInt64(dto.WorkerID)
	if err != nil {
		return nil, err
	}

	var releasedAt *time.Time
	if dto.ReleasedAt != nil {
		at := dto.ReleasedAt.UTC()
		releasedAt = &at
	}

	return assignment.RestoreWorkAssignment(id, orderID, workerID, dto.AssignedAt.UTC(), releasedAt)
}
