package entity

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	Id        uuid.UUID
	ClientId  uuid.UUID
	ProductId uuid.UUID
	DepotId   uuid.UUID
	OrderDate time.Time
	Status    string
	CreatedAt time.Time
}
