// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is indexed for the pending order scan.
type OrderDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ClientID  int64     `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	Status    string    `gorm:"type:varchar(20);not null;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:        aggregate.ID().Int64(),
		ClientID:  aggregate.ClientID().Int64(),
		CreatedAt: aggregate.CreatedAt(),
		Status:    string(aggregate.Status()),
	}
}

// toDomain reconstructs the aggregate with RestoreOrder. Unknown statuses
// stored by hand are rejected.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromInt64(dto.ID)
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.IDFromInt64(dto.ClientID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, clientID, dto.CreatedAt.UTC(), status)
}
