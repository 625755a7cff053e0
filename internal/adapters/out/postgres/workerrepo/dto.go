// Package workerrepo persists workers (masters) and their current load.
package workerrepo

import (
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worker"
)

// WorkerDTO is the workers table. IsAvailable is stored next to the load so
// that reports can filter on it; RestoreWorker recomputes it on load.
type WorkerDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	FirstName   string `gorm:"type:varchar(100);not null"`
	LastName    string `gorm:"type:varchar(100);not null"`
	Patronymic  string `gorm:"type:varchar(100)"`
	Phone       string `gorm:"type:varchar(20);not null"`
	Email       string `gorm:"type:varchar(100)"`
	Load        int    `gorm:"column:current_load;not null;default:0;index"`
	IsAvailable bool   `gorm:"not null;default:true"`
}

func (WorkerDTO) TableName() string {
	return "workers"
}

func fromDomain(aggregate *worker.Worker) WorkerDTO {
	return WorkerDTO{
		ID:          aggregate.ID().Int64(),
		FirstName:   aggregate.Name().First(),
		LastName:    aggregate.Name().Last(),
		Patronymic:  aggregate.Name().Patronymic(),
		Phone:       aggregate.Phone().String(),
		Email:       aggregate.Email(),
		Load:        aggregate.Load(),
		IsAvailable: aggregate.IsAvailable(),
	}
}

func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.IDFromInt64(dto.ID)
	if err != nil {
		return nil, err
	}
	name, err := kernel.NewPersonName(dto.FirstName, dto.LastName, dto.Patronymic)
	if err != nil {
		return nil, err
	}
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	return worker.RestoreWorker(id, name, phone, dto.Email, dto.Load)
}
