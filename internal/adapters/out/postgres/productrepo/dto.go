// Package productrepo persists the product catalog and the order items that
// attach products to orders.
package productrepo

import (
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/product"
)

// ProductDTO is one catalog entry; (type, material, purity) is unique.
type ProductDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Type     string `gorm:"column:type;type:varchar(50);not null;uniqueIndex:idx_products_params"`
	Material string `gorm:"type:varchar(20);not null;uniqueIndex:idx_products_params"`
	Purity   int    `gorm:"not null;uniqueIndex:idx_products_params"`
}

func (ProductDTO) TableName() string {
	return "products"
}

type OrderItemDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrderID   int64  `gorm:"not null;index"`
	ProductID int64  `gorm:"not null;index"`
	Note      string `gorm:"type:text"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func productFromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID().Int64(),
		Type:     p.Type(),
		Material: string(p.Material()),
		Purity:   p.Purity(),
	}
}

func productToDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.IDFromInt64(dto.ID)
	if err != nil {
		return nil, err
	}
	material, err := product.ParseMaterial(dto.Material)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Type, material, dto.Purity)
}

func itemFromDomain(item *product.OrderItem) OrderItemDTO {
	return OrderItemDTO{
		ID:        item.ID().Int64(),
		OrderID:   item.OrderID().Int64(),
		ProductID: item.ProductID().Int64(),
		Note:      item.Note(),
	}
}

func itemToDomain(dto OrderItemDTO) (*product.OrderItem, error) {
	id, err := kernel.IDFromInt64(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.IDFromInt64(dto.OrderID)
	if err != nil {
		return nil, err
	}
	productID, err := kernel.IDFromInt64(dto.ProductID)
	if err != nil {
		return nil, err
	}

	return product.RestoreOrderItem(id, orderID, productID, dto.Note)
}
