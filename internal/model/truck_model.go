package model

import "github.com/google/uuid"

type Truck struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type     string    `gorm:"type:varchar(50);not null"`
	Plate    string    `gorm:"type:varchar(30);not null;index"`
	ClientId uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (Truck) TableName() string {
	return "trucks"
}
