package bootstrap

import (
	"log"
	"time"

	"smart-warehouse-be/internal/config"
	"smart-warehouse-be/internal/controller"
	"smart-warehouse-be/internal/pkg/logger"
	"smart-warehouse-be/internal/repository/memory"
	"smart-warehouse-be/internal/repository/unitofwork"
	"smart-warehouse-be/internal/service"
	"smart-warehouse-be/internal/websocket"
	"smart-warehouse-be/pkg/agent/decision"
	"smart-warehouse-be/pkg/agent/intent"
	"smart-warehouse-be/pkg/audit"
	"smart-warehouse-be/pkg/embedding"
	"smart-warehouse-be/pkg/llm/factory"
	"smart-warehouse-be/pkg/vision"

	pktNats "smart-warehouse-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	GateController      controller.IGateController
	ChatbotController   controller.IChatbotController
	AuthController      controller.IAuthController
	KnowledgeController controller.IKnowledgeController
	WarehouseController controller.IWarehouseController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	embeddingProvider := embedding.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.EmbeddingModel,
	)
	log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	detector := vision.NewHTTPDetector(cfg.Ai.DetectorBaseURL)
	composer := decision.NewComposer(llmProvider)
	extractor := intent.NewExtractor(llmProvider)

	// In-memory session storage for the chatbot
	sessionRepo := memory.NewSessionRepository()

	// 3.5 Infrastructure (best-effort: the gate keeps deciding without it)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	auditTrail, err := audit.NewTrail(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to Redis audit trail: %v", err)
		auditTrail = nil
	}

	// WebSocket Hub for the live gate feed
	wsHub := websocket.NewHub(sysLogger)
	go wsHub.Run()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.IngestChunkedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.IngestChunkedTopic,
		uowFactory,
		embeddingProvider,
	)

	gateService := service.NewGateService(
		uowFactory,
		detector,
		composer,
		embeddingProvider,
		natsPub,
		auditTrail,
		wsHub,
		sysLogger,
		llmProvider != nil,
	)

	chatbotService := service.NewChatbotService(
		uowFactory,
		extractor,
		sessionRepo,
		auditTrail,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory)
	knowledgeService := service.NewKnowledgeService(uowFactory, publisherService, sysLogger)
	warehouseService := service.NewWarehouseService(uowFactory)

	// 5. Controllers
	return &Container{
		GateController:      controller.NewGateController(gateService),
		ChatbotController:   controller.NewChatbotController(chatbotService),
		AuthController:      controller.NewAuthController(authService),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService),
		WarehouseController: controller.NewWarehouseController(warehouseService),

		ConsumerService: consumerService,

		WebSocketHub: wsHub,
	}
}
