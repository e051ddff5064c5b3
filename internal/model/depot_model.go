package model

import "github.com/google/uuid"

type Manager struct {
	Id   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(100);not null"`
}

func (Manager) TableName() string {
	return "managers"
}

type Depot struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null;index"`
	Address   string    `gorm:"type:text"`
	ManagerId uuid.UUID `gorm:"type:uuid;index"`
}

func (Depot) TableName() string {
	return "depots"
}
