package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type GetAllClientsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllClientsQueryHandler(db *gorm.DB) GetAllClientsQueryHandler {
	return GetAllClientsQueryHandler{db: db}
}

// Handle returns clients ordered by id.
func (h GetAllClientsQueryHandler) Handle(
	ctx context.Context,
	query GetAllClientsQuery,
) ([]GetAllClientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	clients := make([]GetAllClientsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.first_name,
			c.last_name,
			c.patronymic,
			c.phone,
			c.email,
			COUNT(o.id)
		FROM clients c
		LEFT JOIN orders o ON o.client_id = c.id
		GROUP BY c.id
		ORDER BY c.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c GetAllClientsQueryResponse
		var id int64
		var first, last, patronymic string

		if err = rows.Scan(&id, &first, &last, &patronymic, &c.Phone, &c.Email, &c.OrderCount); err != nil {
			return nil, err
		}

		if c.ID, err = kernel.IDFromInt64(id); err != nil {
			return nil, err
		}
		c.Name = displayName(first, last, patronymic)
		clients = append(clients, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
