package service

import (
	"context"
	"time"

	"smart-warehouse-be/internal/constant"
	"smart-warehouse-be/internal/dto"
	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/pkg/logger"
	"smart-warehouse-be/internal/repository/unitofwork"
	"smart-warehouse-be/internal/websocket"
	"smart-warehouse-be/pkg/agent/decision"
	"smart-warehouse-be/pkg/audit"
	"smart-warehouse-be/pkg/embedding"
	"smart-warehouse-be/pkg/events"
	pktNats "smart-warehouse-be/pkg/nats"
	"smart-warehouse-be/pkg/rag/retriever"
	"smart-warehouse-be/pkg/vision"

	"github.com/google/uuid"
)

// arrivalTimeFormat matches what the gate terminal renders ("10:15 AM").
const arrivalTimeFormat = "3:04 PM"

type IGateService interface {
	ProcessArrival(ctx context.Context, image []byte, filename string) (*dto.ProcessEntranceResponse, error)
	Health(ctx context.Context) *dto.HealthResponse
	RecentDecisions(ctx context.Context, limit int) ([]*dto.ArrivalLogResponse, error)
}

type gateService struct {
	uowFactory        unitofwork.RepositoryFactory
	detector          vision.PlateDetector
	composer          *decision.Composer
	embeddingProvider embedding.EmbeddingProvider
	eventPublisher    *pktNats.Publisher
	auditTrail        *audit.Trail
	wsHub             *websocket.Hub
	logger            logger.ILogger
	modelLoaded       bool
}

func NewGateService(
	uowFactory unitofwork.RepositoryFactory,
	detector vision.PlateDetector,
	composer *decision.Composer,
	embeddingProvider embedding.EmbeddingProvider,
	eventPublisher *pktNats.Publisher,
	auditTrail *audit.Trail,
	wsHub *websocket.Hub,
	sysLogger logger.ILogger,
	modelLoaded bool,
) IGateService {
	return &gateService{
		uowFactory:        uowFactory,
		detector:          detector,
		composer:          composer,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
		auditTrail:        auditTrail,
		wsHub:             wsHub,
		logger:            sysLogger,
		modelLoaded:       modelLoaded,
	}
}

// ProcessArrival runs the full gate pipeline: plate detection, fact lookup,
// rule retrieval, decision generation, then the automatic order-state
// transition. A missing plate short-circuits to a hold with no database
// mutation. Any downstream crash aborts the request; "nothing found" at
// any stage does not.
func (s *gateService) ProcessArrival(ctx context.Context, image []byte, filename string) (*dto.ProcessEntranceResponse, error) {
	plate, err := s.detector.Detect(ctx, image, filename)
	if err != nil {
		return nil, err
	}

	if plate == "" {
		s.logger.Warn("Gate", "Arrival held, no plate detected", nil)
		s.announce("", "hold", constant.HoldAnalysis)
		return &dto.ProcessEntranceResponse{
			Status:   "hold",
			Message:  constant.HoldMessage,
			Analysis: constant.HoldAnalysis,
		}, nil
	}

	s.logger.Info("Gate", "Plate detected", map[string]interface{}{"plate": plate})
	arrivalTime := time.Now().Format(arrivalTimeFormat)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	facts, err := uow.ArrivalRepository().FindFactsByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}

	ruleRetriever := retriever.NewVectorRetriever(s.embeddingProvider, uow.KnowledgeChunkRepository())
	snippets, err := ruleRetriever.Retrieve(ctx, decision.RetrievalQuery(facts), constant.RuleRetrievalTopK)
	if err != nil {
		return nil, err
	}

	analysis, err := s.composer.Decide(ctx, facts, snippets, plate, arrivalTime)
	if err != nil {
		return nil, err
	}

	// Automation: an arrival with an order on file marks it processing,
	// whatever its prior status was.
	if facts != nil && facts.OrderId != nil {
		if err := uow.OrderRepository().UpdateStatus(ctx, *facts.OrderId, constant.OrderStatusProcessing); err != nil {
			return nil, err
		}
		facts.OrderStatus = constant.OrderStatusProcessing
		s.logger.Info("Gate", "Order auto-transitioned", map[string]interface{}{
			"order_id": facts.OrderId.String(),
			"status":   constant.OrderStatusProcessing,
		})
	}

	s.persistLog(ctx, uow, plate, "success", analysis, facts)
	s.announce(plate, "success", analysis)

	return &dto.ProcessEntranceResponse{
		Status:      "success",
		Plate:       plate,
		Analysis:    analysis,
		Timestamp:   arrivalTime,
		FactualData: toFactsDTO(facts),
	}, nil
}

func (s *gateService) Health(ctx context.Context) *dto.HealthResponse {
	return &dto.HealthResponse{
		Status:      "online",
		ModelLoaded: s.modelLoaded && s.detector.Healthy(ctx),
	}
}

func (s *gateService) RecentDecisions(ctx context.Context, limit int) ([]*dto.ArrivalLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.ArrivalRepository().FindLogs(ctx, limit)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ArrivalLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, &dto.ArrivalLogResponse{
			Id:        l.Id,
			Plate:     l.Plate,
			Status:    l.Status,
			Analysis:  l.Analysis,
			Facts:     toFactsDTO(l.Facts),
			CreatedAt: l.CreatedAt.Format(time.RFC3339),
		})
	}
	return res, nil
}

// persistLog writes the decision audit row. Auditing never fails an
// arrival that already has its decision.
func (s *gateService) persistLog(ctx context.Context, uow unitofwork.UnitOfWork, plate, status, analysis string, facts *entity.ArrivalFacts) {
	logEntry := &entity.ArrivalLog{
		Id:        uuid.New(),
		Plate:     plate,
		Status:    status,
		Analysis:  analysis,
		Facts:     facts,
		CreatedAt: time.Now(),
	}
	if err := uow.ArrivalRepository().CreateLog(ctx, logEntry); err != nil {
		s.logger.Warn("Gate", "Failed to persist arrival log", map[string]interface{}{"error": err.Error()})
	}
}

// announce pushes the decision to the live feed, the event bus and the
// audit trail. All three are best-effort.
func (s *gateService) announce(plate, status, analysis string) {
	s.wsHub.BroadcastDecision(plate, status, analysis)

	bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(bgCtx, events.NewGateDecisionEvent(plate, status, analysis)); err != nil {
			s.logger.Warn("Gate", "Failed to publish gate event", map[string]interface{}{"error": err.Error()})
		}
	}

	if err := s.auditTrail.AppendGateDecision(bgCtx, plate, analysis); err != nil {
		s.logger.Warn("Gate", "Failed to append audit trail", map[string]interface{}{"error": err.Error()})
	}
}

func toFactsDTO(facts *entity.ArrivalFacts) *dto.ArrivalFactsDTO {
	if facts == nil {
		return nil
	}
	res := &dto.ArrivalFactsDTO{
		OrderId:        facts.OrderId,
		TruckType:      facts.TruckType,
		ClientName:     facts.ClientName,
		Phone:          facts.Phone,
		OrderStatus:    facts.OrderStatus,
		ProductName:    facts.ProductName,
		StockAvailable: facts.StockAvailable,
		DepotName:      facts.DepotName,
	}
	if facts.OrderDate != nil {
		res.OrderDate = facts.OrderDate.Format("2006-01-02")
	}
	return res
}
