package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ArrivalLog struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Plate     string         `gorm:"type:varchar(30);index"`
	Status    string         `gorm:"type:varchar(20);not null"`
	Analysis  string         `gorm:"type:text"`
	Facts     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (ArrivalLog) TableName() string {
	return "arrival_logs"
}
