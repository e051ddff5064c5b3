package dto

import "github.com/google/uuid"

// ArrivalFactsDTO carries the joined operational record on the wire. Keys
// stay in French because the gate terminal frontend renders them verbatim.
type ArrivalFactsDTO struct {
	OrderId        *uuid.UUID `json:"idCommande,omitempty"`
	TruckType      string     `json:"camion_type"`
	ClientName     string     `json:"client_nom"`
	Phone          string     `json:"telephone"`
	OrderStatus    string     `json:"commande_statut,omitempty"`
	OrderDate      string     `json:"dateCommande,omitempty"`
	ProductName    string     `json:"produit_nom,omitempty"`
	StockAvailable *int       `json:"stock_disponible,omitempty"`
	DepotName      string     `json:"depot_nom,omitempty"`
}

// ProcessEntranceResponse is the flat decision payload. Hold responses
// carry message+analysis only; success carries plate, analysis, timestamp
// and the factual record when one was resolved.
type ProcessEntranceResponse struct {
	Status      string           `json:"status"`
	Message     string           `json:"message,omitempty"`
	Plate       string           `json:"plate,omitempty"`
	Analysis    string           `json:"analysis,omitempty"`
	Timestamp   string           `json:"timestamp,omitempty"`
	FactualData *ArrivalFactsDTO `json:"factual_data,omitempty"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

type ArrivalLogResponse struct {
	Id        uuid.UUID        `json:"id"`
	Plate     string           `json:"plate"`
	Status    string           `json:"status"`
	Analysis  string           `json:"analysis"`
	Facts     *ArrivalFactsDTO `json:"facts,omitempty"`
	CreatedAt string           `json:"created_at"`
}
