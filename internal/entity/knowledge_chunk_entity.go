package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeChunk is one embedded snippet of warehouse rules/context used as
// reasoning material for gate decisions.
type KnowledgeChunk struct {
	Id        uuid.UUID
	Content   string
	Category  string
	Source    string
	Embedding []float32
	CreatedAt time.Time
}
