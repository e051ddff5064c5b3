package dto

import "github.com/google/uuid"

type ClientResponse struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

type ProductResponse struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Stock int       `json:"stock"`
	Price float64   `json:"price"`
}

// TruckResponse lists a registered vehicle; plate is the raw string as
// painted on the vehicle.
type TruckResponse struct {
	Id       uuid.UUID `json:"id"`
	Type     string    `json:"type"`
	Plate    string    `json:"plate"`
	ClientId uuid.UUID `json:"client_id"`
}

// AdjustStockRequest applies a relative stock change: positive for a
// delivery, negative for a pickup.
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}
