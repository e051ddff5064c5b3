package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"smart-warehouse-be/internal/dto"
	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/repository/unitofwork"
	"smart-warehouse-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedChunkMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal knowledge message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	resp, err := cs.embeddingProvider.Generate(ctx, payload.Content)
	if err != nil {
		log.Printf("[ERROR] Failed to embed chunk from %s: %v", payload.Source, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	chunk := &entity.KnowledgeChunk{
		Id:        uuid.New(),
		Content:   payload.Content,
		Category:  payload.Category,
		Source:    payload.Source,
		Embedding: resp.Embedding.Values,
		CreatedAt: time.Now(),
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.KnowledgeChunkRepository().Create(ctx, chunk); err != nil {
		log.Printf("[ERROR] Failed to persist chunk from %s: %v", payload.Source, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
