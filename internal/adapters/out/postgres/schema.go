package postgres

import (
	"workshop/internal/adapters/out/postgres/assignmentrepo"
	"workshop/internal/adapters/out/postgres/clientrepo"
	"workshop/internal/adapters/out/postgres/orderrepo"
	"workshop/internal/adapters/out/postgres/productrepo"
	"workshop/internal/adapters/out/postgres/workerrepo"

	"gorm.io/gorm"
)

// Tables lists the workshop tables, dependents first, for truncation.
var Tables = []string{"work_assignments", "order_items", "orders", "products", "clients", "workers"}

// Migrate creates or updates the workshop schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&workerrepo.WorkerDTO{},
		&clientrepo.ClientDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&productrepo.OrderItemDTO{},
		&assignmentrepo.WorkAssignmentDTO{},
	)
}
