// Package clientrepo persists workshop clients. The phone number is the
// natural key orders are matched to clients by.
package clientrepo

import (
	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"
)

type ClientDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	FirstName  string `gorm:"type:varchar(100);not null"`
	LastName   string `gorm:"type:varchar(100);not null"`
	Patronymic string `gorm:"type:varchar(100)"`
	Phone      string `gorm:"type:varchar(20);not null;uniqueIndex"`
	Email      string `gorm:"type:varchar(100)"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:         aggregate.ID().Int64(),
		FirstName:  aggregate.Name().First(),
		LastName:   aggregate.Name().Last(),
		Patronymic: aggregate.Name().Patronymic(),
		Phone:      aggregate.Phone().String(),
		Email:      aggregate.Email(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
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

	return client.RestoreClient(id, name, phone, dto.Email)
}
