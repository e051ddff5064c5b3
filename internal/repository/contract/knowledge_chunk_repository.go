package contract

import (
	"context"

	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/repository/specification"
)

type KnowledgeChunkRepository interface {
	Create(ctx context.Context, chunk *entity.KnowledgeChunk) error
	CreateBulk(ctx context.Context, chunks []*entity.KnowledgeChunk) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteBySource(ctx context.Context, source string) error

	// SearchSimilar returns at most limit chunks ordered by cosine distance
	// to the query embedding. An empty corpus yields an empty slice.
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.KnowledgeChunk, error)
}
