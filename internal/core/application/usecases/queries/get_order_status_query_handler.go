package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/product"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an unknown order.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	view, err := h.header(ctx, query.OrderID())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	view.Items, err = h.items(ctx, query.OrderID())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	return view, nil
}

func (h GetOrderStatusQueryHandler) header(ctx context.Context, orderID kernel.ID) (GetOrderStatusQueryResponse, error) {
	view := GetOrderStatusQueryResponse{ID: orderID}

	var status string
	var client, master personColumns
	var phone *string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			c.first_name,
			c.last_name,
			c.patronymic,
			c.phone,
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
		WHERE o.id = ?
	`, orderID.Int64()).Row()

	err := row.Scan(
		&client.first, &client.last, &client.patronymic,
		&phone,
		&view.CreatedAt,
		&status,
		&master.id,
		&master.first, &master.last, &master.patronymic,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return view, errs.NewObjectNotFoundError("order", orderID.Int64())
	}
	if err != nil {
		return view, err
	}

	if view.Status, err = order.ParseStatus(status); err != nil {
		return view, fmt.Errorf("order %s: %w", orderID, err)
	}
	view.CreatedAt = view.CreatedAt.UTC()
	view.ClientName = client.name()
	if phone != nil {
		view.ClientPhone = *phone
	}
	if view.Worker, err = master.workerRef(); err != nil {
		return view, err
	}

	return view, nil
}

func (h GetOrderStatusQueryHandler) items(ctx context.Context, orderID kernel.ID) ([]OrderItemView, error) {
	items := make([]OrderItemView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.type,
			p.material,
			p.purity,
			i.note
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ?
		ORDER BY i.id
	`, orderID.Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemView
		var productID int64
		var kind, material string
		var purity int

		if err = rows.Scan(&productID, &kind, &material, &purity, &item.Note); err != nil {
			return nil, err
		}

		if item.ProductID, err = kernel.IDFromInt64(productID); err != nil {
			return nil, err
		}
		p, err := product.RestoreProduct(item.ProductID, kind, product.Material(material), purity)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, err)
		}
		item.Description = p.Describe()
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
