package model

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null;index"`
	Address   string    `gorm:"type:text"`
	Phone     string    `gorm:"type:varchar(20)"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Client) TableName() string {
	return "clients"
}
