package queries

import (
	"context"
	"database/sql"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns orders oldest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.client_id,
			c.first_name,
			c.last_name,
			c.patronymic,
			o.created_at,
			o.status,
			w.id,
			w.first_name,
			w.last_name,
			w.patronymic
		FROM orders o
		LEFT JOIN clients c ON c.id = o.client_id
		LEFT JOIN LATERAL (
			SELECT wa.worker_id
			FROM work_assignments wa
			WHERE wa.order_id = o.id
			ORDER BY wa.id DESC
			LIMIT 1
		) la ON TRUE
		LEFT JOIN workers w ON w.id = la.worker_id
		ORDER BY o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o GetAllOrdersQueryResponse
		var id, clientID int64
		var status string
		var client, master personColumns

		err = rows.Scan(
			&id,
			&clientID,
			&client.first, &client.last, &client.patronymic,
			&o.CreatedAt,
			&status,
			&master.id,
			&master.first, &master.last, &master.patronymic,
		)
		if err != nil {
			return nil, err
		}

		if o.ID, err = kernel.IDFromInt64(id); err != nil {
			return nil, err
		}
		if o.ClientID, err = kernel.IDFromInt64(clientID); err != nil {
			return nil, err
		}
		if o.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		o.CreatedAt = o.CreatedAt.UTC()
		o.ClientName = client.name()
		if o.Worker, err = master.workerRef(); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// personColumns receives name columns of an outer-joined person row.
type personColumns struct {
	id                      sql.NullInt64
	first, last, patronymic sql.NullString
}

func (p personColumns) name() string {
	if !p.first.Valid {
		return ""
	}
	return displayName(p.first.String, p.last.String, p.patronymic.String)
}

func (p personColumns) workerRef() (*WorkerRef, error) {
	if !p.id.Valid {
		return nil, nil
	}
	id, err := kernel.IDFromInt64(p.id.Int64)
	if err != nil {
		return nil, err
	}
	return &WorkerRef{ID: id, Name: p.name()}, nil
}
