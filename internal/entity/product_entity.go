package entity

import "github.com/google/uuid"

type Product struct {
	Id    uuid.UUID
	Name  string
	Stock int
	Price float64
}
