package entity

import "github.com/google/uuid"

type Manager struct {
	Id   uuid.UUID
	Name string
}

type Depot struct {
	Id        uuid.UUID
	Name      string
	Address   string
	ManagerId uuid.UUID
}
