package entity

import (
	"time"

	"github.com/google/uuid"
)

// ArrivalFacts is the joined operational record resolved for a detected
// plate. A nil ArrivalFacts means no vehicle matched; optional columns stay
// nil when the client has no order on file.
type ArrivalFacts struct {
	OrderId        *uuid.UUID
	TruckType      string
	ClientName     string
	Phone          string
	OrderStatus    string
	OrderDate      *time.Time
	ProductName    string
	StockAvailable *int
	DepotName      string
}

// ArrivalLog is the durable audit record of one gate decision.
type ArrivalLog struct {
	Id        uuid.UUID
	Plate     string
	Status    string
	Analysis  string
	Facts     *ArrivalFacts
	CreatedAt time.Time
}
