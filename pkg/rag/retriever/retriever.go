package retriever

import (
	"context"
	"fmt"

	"smart-warehouse-be/internal/repository/contract"
	"smart-warehouse-be/pkg/embedding"
)

// Retriever returns the knowledge snippets most relevant to a query.
type Retriever interface {
	Retrieve(ctx context.Context, query string, topK int) ([]string, error)
}

// VectorRetriever embeds the query and runs a cosine-distance scan over the
// pgvector knowledge store.
type VectorRetriever struct {
	embedder embedding.EmbeddingProvider
	chunks   contract.KnowledgeChunkRepository
}

var _ Retriever = &VectorRetriever{}

func NewVectorRetriever(embedder embedding.EmbeddingProvider, chunks contract.KnowledgeChunkRepository) *VectorRetriever {
	return &VectorRetriever{
		embedder: embedder,
		chunks:   chunks,
	}
}

func (r *VectorRetriever) Retrieve(ctx context.Context, query string, topK int) ([]string, error) {
	resp, err := r.embedder.Generate(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	results, err := r.chunks.SearchSimilar(ctx, resp.Embedding.Values, topK)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	snippets := make([]string, 0, len(results))
	for _, chunk := range results {
		snippets = append(snippets, chunk.Content)
	}
	return snippets, nil
}
