package entity

import "github.com/google/uuid"

// Truck is a vehicle registered to a client. Plate keeps the raw string as
// painted on the vehicle, including Arabic segments for Tunisian plates.
type Truck struct {
	Id       uuid.UUID
	Type     string
	Plate    string
	ClientId uuid.UUID
}
