package service

import (
	"context"
	"encoding/json"

	"smart-warehouse-be/internal/dto"
	"smart-warehouse-be/internal/pkg/logger"
	"smart-warehouse-be/internal/repository/specification"
	"smart-warehouse-be/internal/repository/unitofwork"
	"smart-warehouse-be/pkg/utils"
)

// Paragraphs longer than this fall back to character chunking before
// embedding.
const maxChunkSize = 2000

type IKnowledgeService interface {
	Ingest(ctx context.Context, req *dto.IngestKnowledgeRequest) (*dto.IngestKnowledgeResponse, error)

	// Stats counts the corpus; a non-empty category narrows the count to
	// that document category.
	Stats(ctx context.Context, category string) (*dto.KnowledgeStatsResponse, error)
}

type knowledgeService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           sysLogger,
	}
}

// Ingest replaces the chunks of one source document. Chunking and
// dispatching happen inline; embedding and persistence run on the consumer
// side of the bus so a slow embedding model does not block the request.
func (s *knowledgeService) Ingest(ctx context.Context, req *dto.IngestKnowledgeRequest) (*dto.IngestKnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Re-ingesting a source replaces its previous chunks.
	if err := uow.KnowledgeChunkRepository().DeleteBySource(ctx, req.Source); err != nil {
		return nil, err
	}

	chunks := utils.SplitParagraphs(req.Content, maxChunkSize)
	for _, chunk := range chunks {
		payload := dto.PublishEmbedChunkMessage{
			Content:  chunk,
			Category: req.Category,
			Source:   req.Source,
		}
		msgJson, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		if err := s.publisherService.Publish(ctx, msgJson); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Knowledge", "Document dispatched for embedding", map[string]interface{}{
		"source": req.Source,
		"chunks": len(chunks),
	})

	return &dto.IngestKnowledgeResponse{Chunks: len(chunks)}, nil
}

func (s *knowledgeService) Stats(ctx context.Context, category string) (*dto.KnowledgeStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var specs []specification.Specification
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}

	total, err := uow.KnowledgeChunkRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return &dto.KnowledgeStatsResponse{TotalChunks: total, Category: category}, nil
}
