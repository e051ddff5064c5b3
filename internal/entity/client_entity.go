package entity

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	Id        uuid.UUID
	Name      string
	Address   string
	Phone     string
	UserId    uuid.UUID
	CreatedAt time.Time
}
