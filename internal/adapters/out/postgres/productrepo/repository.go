package productrepo

import (
	"context"
	"fmt"
	"strings"

	"workshop/internal/adapters/out/postgres/pgerr"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/product"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Save(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	if aggregate.ID().IsZero() {
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return pgerr.Translate(err, "product", aggregate.Describe())
		}
		id, err := kernel.IDFromInt64(dto.ID)
		if err != nil {
			return err
		}
		return aggregate.Identify(id)
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, "product", aggregate.Describe())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", dto.ID)
	}

	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, pgerr.Translate(err, "product", id.Int64())
	}

	return productToDomain(dto)
}

func (r *GormProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// GetByParams matches the type case-insensitively, the way NewProduct
// normalizes it.
func (r *GormProductRepository) GetByParams(
	ctx context.Context,
	kind string,
	material product.Material,
	purity int,
) (*product.Product, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))

	var dto ProductDTO
	err := r.db.WithContext(ctx).
		Where("type = ? AND material = ? AND purity = ?", kind, string(material), purity).
		First(&dto).Error
	if err != nil {
		return nil, pgerr.Translate(err, "product", fmt.Sprintf("%s, %s %d", kind, material, purity))
	}

	return productToDomain(dto)
}

// GormOrderItemRepository implements OrderItemRepository using GORM.
type GormOrderItemRepository struct {
	db *gorm.DB
}

func NewGormOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

// Save inserts a new item. Items are immutable once stored, so saving an
// identified item only checks that it exists.
func (r *GormOrderItemRepository) Save(ctx context.Context, item *product.OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	if !item.ID().IsZero() {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderItemDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order item", dto.ID)
		}
		return nil
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "order item", dto.OrderID)
	}
	id, err := kernel.IDFromInt64(dto.ID)
	if err != nil {
		return err
	}
	return item.Identify(id)
}

func (r *GormOrderItemRepository) GetAllByOrder(ctx context.Context, orderID kernel.ID) ([]*product.OrderItem, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderItemDTO
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID.Int64()).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*product.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
