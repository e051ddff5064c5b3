package model

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientId  uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductId uuid.UUID `gorm:"type:uuid;not null;index"`
	DepotId   uuid.UUID `gorm:"type:uuid;index"`
	OrderDate time.Time `gorm:"type:date"`
	Status    string    `gorm:"type:varchar(30);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Order) TableName() string {
	return "orders"
}
