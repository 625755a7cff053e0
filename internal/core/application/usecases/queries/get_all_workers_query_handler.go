package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worker"

	"gorm.io/gorm"
)

// GetAllWorkersQueryHandler reads workers straight from the workers table.
type GetAllWorkersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllWorkersQueryHandler(db *gorm.DB) GetAllWorkersQueryHandler {
	return GetAllWorkersQueryHandler{db: db}
}

// Handle returns workers ordered by id. Availability is derived from the load.
func (h GetAllWorkersQueryHandler) Handle(
	ctx context.Context,
	query GetAllWorkersQuery,
) ([]GetAllWorkersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	workers := make([]GetAllWorkersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			patronymic,
			phone,
			email,
			current_load
		FROM workers
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var w GetAllWorkersQueryResponse
		var id int64
		var first, last, patronymic string

		if err = rows.Scan(&id, &first, &last, &patronymic, &w.Phone, &w.Email, &w.Load); err != nil {
			return nil, err
		}

		if w.ID, err = kernel.IDFromInt64(id); err != nil {
			return nil, err
		}
		w.Name = displayName(first, last, patronymic)
		w.Capacity = worker.Capacity
		w.IsAvailable = w.Load < worker.Capacity
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}
