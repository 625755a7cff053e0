package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetWorkerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetWorkerOrdersQueryHandler(db *gorm.DB) GetWorkerOrdersQueryHandler {
	return GetWorkerOrdersQueryHandler{db: db}
}

// Handle returns the orders behind the worker's active assignments that are
// not terminal, and errs.ErrObjectNotFound for an unknown worker.
func (h GetWorkerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetWorkerOrdersQuery,
) ([]GetWorkerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var count int64
	err := h.db.WithContext(ctx).Table("workers").Where("id = ?", query.WorkerID().Int64()).Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("worker", query.WorkerID().Int64())
	}

	orders := make([]GetWorkerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			c.first_name,
			c.last_name,
			c.patronymic,
			o.created_at,
			wa.assigned_at,
			o.status
		FROM work_assignments wa
		JOIN orders o ON o.id = wa.order_id
		LEFT JOIN clients c ON c.id = o.client_id
		WHERE wa.worker_id = ?
			AND wa.released_at IS NULL
			AND o.status NOT IN (?, ?)
		ORDER BY o.id
	`, query.WorkerID().Int64(), string(order.Completed), string(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o GetWorkerOrdersQueryResponse
		var id int64
		var status string
		var client personColumns

		err = rows.Scan(
			&id,
			&client.first, &client.last, &client.patronymic,
			&o.CreatedAt,
			&o.AssignedAt,
			&status,
		)
		if err != nil {
			return nil, err
		}

		if o.OrderID, err = kernel.IDFromInt64(id); err != nil {
			return nil, err
		}
		if o.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		o.ClientName = client.name()
		o.CreatedAt = o.CreatedAt.UTC()
		o.AssignedAt = o.AssignedAt.UTC()
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
