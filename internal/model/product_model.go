package model

import "github.com/google/uuid"

type Product struct {
	Id    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name  string    `gorm:"type:varchar(100);not null;index"`
	Stock int       `gorm:"not null;default:0"`
	Price float64   `gorm:"type:decimal(10,2)"`
}

func (Product) TableName() string {
	return "products"
}
