package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smart-warehouse-be/internal/constant"
	"smart-warehouse-be/internal/dto"
	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/pkg/logger"
	"smart-warehouse-be/internal/repository/memory"
	"smart-warehouse-be/internal/repository/specification"
	"smart-warehouse-be/internal/repository/unitofwork"
	"smart-warehouse-be/pkg/agent/intent"
	"smart-warehouse-be/pkg/audit"
	"smart-warehouse-be/pkg/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IChatbotService interface {
	// HandleMessage never returns a transport error; failures are folded
	// into the flat status/message payload the terminal expects.
	HandleMessage(ctx context.Context, req *dto.ChatbotOrderRequest) *dto.ChatbotOrderResponse
}

type chatbotService struct {
	uowFactory  unitofwork.RepositoryFactory
	extractor   *intent.Extractor
	sessionRepo *memory.SessionRepository
	auditTrail  *audit.Trail
	logger      logger.ILogger
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	extractor *intent.Extractor,
	sessionRepo *memory.SessionRepository,
	auditTrail *audit.Trail,
	sysLogger logger.ILogger,
) IChatbotService {
	return &chatbotService{
		uowFactory:  uowFactory,
		extractor:   extractor,
		sessionRepo: sessionRepo,
		auditTrail:  auditTrail,
		logger:      sysLogger,
	}
}

func (s *chatbotService) HandleMessage(ctx context.Context, req *dto.ChatbotOrderRequest) *dto.ChatbotOrderResponse {
	sessionID := req.SessionId
	if sessionID == "" {
		sessionID = store.DefaultSessionID
	}

	// The entity snapshot is read fresh every turn so the model never
	// reasons over stale clients/products.
	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return &dto.ChatbotOrderResponse{Status: "error", Message: err.Error()}
	}

	history := s.sessionRepo.Recent(sessionID, constant.SessionHistoryWindow)

	parsed, err := s.extractor.Extract(ctx, snapshot, history, req.Message)
	if err != nil {
		if errors.Is(err, intent.ErrUnparsableReply) {
			return &dto.ChatbotOrderResponse{Status: "error", Message: constant.ModelUnparsableMessage}
		}
		return &dto.ChatbotOrderResponse{Status: "error", Message: err.Error()}
	}

	// History is appended before execution so the conversation stays
	// coherent even when the side effect below fails.
	s.recordTurn(ctx, sessionID, "User: "+req.Message)
	s.recordTurn(ctx, sessionID, "AI: "+parsed.Response)

	return s.execute(ctx, parsed)
}

func (s *chatbotService) loadSnapshot(ctx context.Context) (intent.Snapshot, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clients, err := uow.ClientRepository().FindAll(ctx)
	if err != nil {
		return intent.Snapshot{}, err
	}
	products, err := uow.ProductRepository().FindAll(ctx)
	if err != nil {
		return intent.Snapshot{}, err
	}

	snapshot := intent.Snapshot{
		Clients:  make([]string, 0, len(clients)),
		Products: make([]intent.ProductInfo, 0, len(products)),
	}
	for _, c := range clients {
		snapshot.Clients = append(snapshot.Clients, c.Name)
	}
	for _, p := range products {
		snapshot.Products = append(snapshot.Products, intent.ProductInfo{
			Name:  p.Name,
			Stock: p.Stock,
			Price: p.Price,
		})
	}
	return snapshot, nil
}

// execute performs at most one mutation per turn. Duplicate user messages
// legitimately create duplicate entities; there is no idempotency key
// beyond the freshly generated ids.
func (s *chatbotService) execute(ctx context.Context, parsed *intent.Intent) *dto.ChatbotOrderResponse {
	switch {
	case parsed.Intent == constant.ChatIntentRegister && parsed.Details.NewClientName != "":
		if _, err := s.createClient(ctx, parsed.Details.NewClientName); err != nil {
			s.logger.Warn("Chatbot", "Client registration failed", map[string]interface{}{"error": err.Error()})
			break
		}
		return &dto.ChatbotOrderResponse{
			Status:  "success",
			Message: parsed.Response + constant.AccountCreatedSuffix,
		}

	case parsed.Intent == constant.ChatIntentOrder:
		orderId, err := s.createOrder(ctx, parsed.Details.Client, parsed.Details.Product)
		if err != nil {
			return &dto.ChatbotOrderResponse{Status: "error", Message: err.Error()}
		}
		if orderId == nil {
			return &dto.ChatbotOrderResponse{
				Status:  "warning",
				Message: parsed.Response + constant.EntityNotFoundSuffix,
			}
		}
		return &dto.ChatbotOrderResponse{
			Status:  "success",
			Message: fmt.Sprintf("%s (Commande #%s active)", parsed.Response, orderId.String()),
		}
	}

	return &dto.ChatbotOrderResponse{Status: "chat", Message: parsed.Response}
}

// createClient registers a new client with a dummy backing user, mirroring
// the walk-in registration flow at the gate office.
func (s *chatbotService) createClient(ctx context.Context, name string) (*entity.Client, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(constant.DefaultClientPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:        uuid.New(),
		Email:     strings.ToLower(strings.ReplaceAll(name, " ", "")) + "@mail.com",
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	client := &entity.Client{
		Id:        uuid.New(),
		Name:      name,
		Address:   "Nouvel Entrepôt",
		Phone:     "00000000",
		UserId:    user.Id,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.ClientRepository().Create(ctx, client); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("Chatbot", "Client registered", map[string]interface{}{"client": name})
	return client, nil
}

// createOrder resolves client and product by lenient substring match
// (first match wins) and books the order into the default depot. A nil id
// with a nil error means a name failed to resolve.
func (s *chatbotService) createOrder(ctx context.Context, clientName, productName string) (*uuid.UUID, error) {
	if clientName == "" || productName == "" {
		return nil, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	client, err := uow.ClientRepository().FindOne(ctx, specification.NameContains{Fragment: clientName})
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}

	product, err := uow.ProductRepository().FindOne(ctx, specification.NameContains{Fragment: productName})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	depot, err := uow.DepotRepository().FindOne(ctx, specification.ByName{Name: constant.DefaultDepotName})
	if err != nil {
		return nil, err
	}
	if depot == nil {
		return nil, fmt.Errorf("default depot %q is not seeded", constant.DefaultDepotName)
	}

	order := &entity.Order{
		Id:        uuid.New(),
		ClientId:  client.Id,
		ProductId: product.Id,
		DepotId:   depot.Id,
		OrderDate: time.Now(),
		Status:    constant.OrderStatusPending,
		CreatedAt: time.Now(),
	}
	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Chatbot", "Order created", map[string]interface{}{
		"order_id": order.Id.String(),
		"client":   client.Name,
		"product":  product.Name,
	})
	return &order.Id, nil
}

func (s *chatbotService) recordTurn(ctx context.Context, sessionID, turn string) {
	s.sessionRepo.Append(sessionID, turn)
	if err := s.auditTrail.AppendChatTurn(ctx, sessionID, turn); err != nil {
		s.logger.Warn("Chatbot", "Failed to append audit trail", map[string]interface{}{"error": err.Error()})
	}
}
