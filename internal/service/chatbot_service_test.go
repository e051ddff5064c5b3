package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smart-warehouse-be/internal/constant"
	"smart-warehouse-be/internal/dto"
	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/repository/memory"
	"smart-warehouse-be/pkg/agent/intent"
	"smart-warehouse-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatbotFixture struct {
	uow      *fakeUnitOfWork
	gen      *scriptedLLM
	sessions *memory.SessionRepository
	svc      IChatbotService
}

func newChatbotFixture(reply string) *chatbotFixture {
	uow := newFakeUnitOfWork()
	uow.depots.depots = []*entity.Depot{
		{Id: uuid.New(), Name: constant.DefaultDepotName, Address: "Tunis"},
	}
	uow.clients.clients = []*entity.Client{
		{Id: uuid.New(), Name: "Client Alpha"},
		{Id: uuid.New(), Name: "Client Epsilon"},
	}
	uow.products.products = []*entity.Product{
		{Id: uuid.New(), Name: "Toners", Stock: 80, Price: 120},
		{Id: uuid.New(), Name: "Cartons A4", Stock: 500, Price: 15},
	}

	gen := &scriptedLLM{reply: reply}
	sessions := memory.NewSessionRepository()
	svc := NewChatbotService(
		&fakeFactory{uow: uow},
		intent.NewExtractor(gen),
		sessions,
		nil, // audit trail
		noopLogger{},
	)
	return &chatbotFixture{uow: uow, gen: gen, sessions: sessions, svc: svc}
}

func TestHandleMessageChat(t *testing.T) {
	f := newChatbotFixture(`{"response": "Bonjour, comment puis-je aider?", "intent": "chat", "details": {}}`)

	res := f.svc.HandleMessage(context.Background(), &dto.ChatbotOrderRequest{Message: "salut"})

	assert.Equal(t, "chat", res.Status)
	assert.Equal(t, "Bonjour, comment puis-je aider?", res.Message)

	// Both turns land in the default session.
	history := f.sessions.History(store.DefaultSessionID)
	require.Len(t, history, 2)
	assert.Equal(t, "User: salut", history[0])
	assert.Equal(t, "AI: Bonjour, comment puis-je aider?", history[1])
}

func TestHandleMessageSnapshotInPrompt(t *testing.T) {
	f := newChatbotFixture(`{"response": "Ok", "intent": "chat", "details": {}}`)

	f.svc.HandleMessage(context.Background(), &dto.ChatbotOrderRequest{Message: "que vendez-vous?"})

	assert.Contains(t, f.gen.lastPrompt, "Client Alpha, Client Epsilon")
	assert.Contains(t, f.gen.lastPrompt, "Toners, Cartons A4")
}

func TestHandleMessageOrder(t *testing.T) {
	f := newChatbotFixture(`{"response": "Commande enregistrée", "intent": "order", "details": {"client": "Epsilon", "product": "Toners", "quantity": 3}}`)

	res := f.svc.HandleMessage(context.Background(), &dto.ChatbotOrderRequest{Message: "3 toners pour Epsilon"})

	assert.Equal(t, "success", res.Status)
	require.Len(t, f.uow.orders.orders, 1)
	order := f.uow.orders.orders[0]
	assert.Equal(t, constant.OrderStatusPending, order.Status)
	assert.Contains(t, res.Message, "Commande enregistrée (Commande #"+order.Id.String()+" active)")

	// Substring match resolved the full entities, booked into the default depot.
	assert.Equal(t, f.uow.depots.depots[0].Id, order.DepotId)
}

func TestHandleMessageOrderUnknownClient(t *testing.T) {
	f := newChatbotFixture(`{"response": "Je vérifie", "intent": "order", "details": {"client": "Fantôme", "product": "Toners"}}`)

	res := f.svc.HandleMessage(context.Background(), &dto.ChatbotOrderRequest{Message: "toners pour Fantôme"})

	assert.Equal(t, "warning", res.Status)
	assert.Equal(t, "Je vérifie"+constant.EntityNotFoundSuffix, res.Message)
	assert.Empty(t, f.uow.orders.orders)
}

func TestHandleMessageOrderMissingDetails(t *testing.T) {
	f := newChatbotFixture(`{"response": "Quel produit?", "intent": "order", "details": {"client": "Epsilon"}}`)

	res := f.svc.HandleMessage(context.Background(), &dto.ChatbotOrderRequest{Message: "je veux commander"})

	assert.Equal(t, "warning", res.Status)
	assert.Empty(t, f.uow.orders.orders)
}

func TestHandleMessageRegister(t *testing.T) {
	f := newChatbotFixture(`{"response": "Bienvenue", "intent": "register", "details": {"new_client_name": "Client Sigma"}}`)

	res := f.svc.HandleMessage(context.Background(), &dto.ChatbotOrderRequest{Message: "je suis Client Sigma"})

	assert.Equal(t, "success", res.Status)
	assert.Equal(t, "Bienvenue"+constant.AccountCreatedSuffix, res.Message)

	require.Len(t, f.uow.users.users, 1)
	assert.Equal(t, "clientsigma@mail.com", f.uow.users.users[0].Email)
	require.Len(t, f.uow.clients.clients, 3)
	created := f.uow.clients.clients[2]
	assert.Equal(t, "Client Sigma", created.Name)
	assert.Equal(t, f.uow.users.users[0].Id, created.UserId)
	assert.Equal(t, 1, f.uow.commits)
}

func TestHandleMessageRegisterDuplicatesAllowed(t *testing.T) {
	f := newChatbotFixture(`{"response": "Bienvenue", "intent": "register", "details": {"new_client_name": "Client Sigma"}}`)

	f.svc.HandleMessage(context.Background(), &dto.ChatbotOrderRequest{Message: "je suis Client Sigma"})
	f.svc.HandleMessage(context.Background(), &dto.ChatbotOrderRequest{Message: "je suis Client Sigma"})

	// No idempotency key: two identical registrations make two clients.
	assert.Len(t, f.uow.clients.clients, 4)
	assert.Equal(t, 2, f.uow.commits)
}

func TestHandleMessageRegisterFailureFallsBackToChat(t *testing.T) {
	f := newChatbotFixture(`{"response": "Bienvenue", "intent": "register", "details": {"new_client_name": "Client Sigma"}}`)
	f.uow.users.err = errors.New("unique violation")

	res := f.svc.HandleMessage(context.Background(), &dto.ChatbotOrderRequest{Message: "je suis Client Sigma"})

	assert.Equal(t, "chat", res.Status)
	assert.Equal(t, "Bienvenue", res.Message)
	assert.Equal(t, 0, f.uow.commits)
	assert.Equal(t, 1, f.uow.rollbacks)
}

func TestHandleMessageRegisterWithoutName(t *testing.T) {
	f := newChatbotFixture(`{"response": "Quel est votre nom?", "intent": "register", "details": {}}`)

	res := f.svc.HandleMessage(context.Background(), &dto.ChatbotOrderRequest{Message: "je veux un compte"})

	assert.Equal(t, "chat", res.Status)
	assert.Empty(t, f.uow.users.users)
}

func TestHandleMessageUnparsableReply(t *testing.T) {
	f := newChatbotFixture("Je ne peux pas répondre en JSON, désolé.")

	res := f.svc.HandleMessage(context.Background(), &dto.ChatbotOrderRequest{Message: "salut"})

	assert.Equal(t, "error", res.Status)
	assert.Equal(t, constant.ModelUnparsableMessage, res.Message)

	// A turn the model never answered is not recorded.
	assert.Empty(t, f.sessions.History(store.DefaultSessionID))
}

func TestHandleMessageGenerationError(t *testing.T) {
	f := newChatbotFixture("")
	f.gen.err = errors.New("connection refused")

	res := f.svc.HandleMessage(context.Background(), &dto.ChatbotOrderRequest{Message: "salut"})

	assert.Equal(t, "error", res.Status)
	assert.Contains(t, res.Message, "connection refused")
	assert.Empty(t, f.sessions.History(store.DefaultSessionID))
}

func TestHandleMessageSessionIsolation(t *testing.T) {
	f := newChatbotFixture(`{"response": "Ok", "intent": "chat", "details": {}}`)

	f.svc.HandleMessage(context.Background(), &dto.ChatbotOrderRequest{Message: "un", SessionId: "a"})
	f.svc.HandleMessage(context.Background(), &dto.ChatbotOrderRequest{Message: "deux", SessionId: "b"})

	assert.Len(t, f.sessions.History("a"), 2)
	assert.Len(t, f.sessions.History("b"), 2)
	assert.Empty(t, f.sessions.History(store.DefaultSessionID))
}

func TestHandleMessageHistoryWindow(t *testing.T) {
	f := newChatbotFixture(`{"response": "Ok", "intent": "chat", "details": {}}`)

	for i := 0; i < 5; i++ {
		f.svc.HandleMessage(context.Background(), &dto.ChatbotOrderRequest{Message: "encore"})
	}

	// Ten turns recorded, but only the six-turn window reaches the prompt:
	// the fifth call sees three of its four predecessors' user turns.
	assert.Len(t, f.sessions.History(store.DefaultSessionID), 10)
	assert.Contains(t, f.gen.lastPrompt, "Recent History:")
	assert.Equal(t, 3, strings.Count(f.gen.lastPrompt, "User: encore"))
}
