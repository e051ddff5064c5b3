package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"smart-warehouse-be/internal/constant"
	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/pkg/agent/decision"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateFixture(uow *fakeUnitOfWork, detector *fakeDetector, gen *scriptedLLM, embedder *fakeEmbedder) IGateService {
	return NewGateService(
		&fakeFactory{uow: uow},
		detector,
		decision.NewComposer(gen),
		embedder,
		nil, // event publisher
		nil, // audit trail
		nil, // websocket hub
		noopLogger{},
		true,
	)
}

func knownFacts() *entity.ArrivalFacts {
	orderId := uuid.New()
	orderDate := time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC)
	stock := 80
	return &entity.ArrivalFacts{
		OrderId:        &orderId,
		TruckType:      "Camion fourgon",
		ClientName:     "Client Epsilon",
		Phone:          "20010005",
		OrderStatus:    constant.OrderStatusPending,
		OrderDate:      &orderDate,
		ProductName:    "Toners",
		StockAvailable: &stock,
		DepotName:      "Dépôt Central",
	}
}

func TestProcessArrivalNoPlateHolds(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newGateFixture(uow, &fakeDetector{plate: ""}, &scriptedLLM{reply: "unused"}, &fakeEmbedder{})

	res, err := svc.ProcessArrival(context.Background(), []byte("blurry"), "gate_cam.jpg")
	require.NoError(t, err)

	assert.Equal(t, "hold", res.Status)
	assert.Equal(t, constant.HoldMessage, res.Message)
	assert.Equal(t, constant.HoldAnalysis, res.Analysis)
	assert.Empty(t, res.Plate)
	assert.Nil(t, res.FactualData)

	// A hold never touches storage.
	assert.Empty(t, uow.arrivals.logs)
	assert.Empty(t, uow.orders.statusUpdates)
}

func TestProcessArrivalKnownVehicle(t *testing.T) {
	uow := newFakeUnitOfWork()
	facts := knownFacts()
	uow.arrivals.facts = facts
	uow.knowledge.chunks = []*entity.KnowledgeChunk{
		{Id: uuid.New(), Content: "Règle: Gate B pour le client Epsilon."},
	}

	gen := &scriptedLLM{reply: "Gate B. Priority: High."}
	embedder := &fakeEmbedder{}
	svc := newGateFixture(uow, &fakeDetector{plate: "302-502-TUN"}, gen, embedder)

	res, err := svc.ProcessArrival(context.Background(), []byte("jpeg"), "gate_cam.jpg")
	require.NoError(t, err)

	assert.Equal(t, "success", res.Status)
	assert.Equal(t, "302-502-TUN", res.Plate)
	assert.Equal(t, "Gate B. Priority: High.", res.Analysis)
	assert.NotEmpty(t, res.Timestamp)

	// The order on file is auto-transitioned and the response reflects it.
	require.Len(t, uow.orders.statusUpdates, 1)
	assert.Equal(t, *facts.OrderId, uow.orders.statusUpdates[0].orderId)
	assert.Equal(t, constant.OrderStatusProcessing, uow.orders.statusUpdates[0].status)
	require.NotNil(t, res.FactualData)
	assert.Equal(t, constant.OrderStatusProcessing, res.FactualData.OrderStatus)
	assert.Equal(t, "Client Epsilon", res.FactualData.ClientName)
	assert.Equal(t, "2025-11-25", res.FactualData.OrderDate)

	// Retrieval ran on the client consigne query and its snippets reached
	// the reasoning prompt.
	assert.Equal(t, "Consignes pour le client Client Epsilon", embedder.lastText)
	assert.Contains(t, gen.lastPrompt, "Règle: Gate B pour le client Epsilon.")
	assert.Contains(t, gen.lastPrompt, "VEHICLE: 302-502-TUN")

	// Decision is persisted.
	require.Len(t, uow.arrivals.logs, 1)
	assert.Equal(t, "success", uow.arrivals.logs[0].Status)
	assert.Equal(t, "302-502-TUN", uow.arrivals.logs[0].Plate)
}

func TestProcessArrivalUnknownVehicle(t *testing.T) {
	uow := newFakeUnitOfWork()
	gen := &scriptedLLM{reply: "Hold at visitor gate, manual check."}
	embedder := &fakeEmbedder{}
	svc := newGateFixture(uow, &fakeDetector{plate: "999 XYZ"}, gen, embedder)

	res, err := svc.ProcessArrival(context.Background(), []byte("jpeg"), "gate_cam.jpg")
	require.NoError(t, err)

	assert.Equal(t, "success", res.Status)
	assert.Nil(t, res.FactualData)
	assert.Empty(t, uow.orders.statusUpdates)
	assert.Contains(t, gen.lastPrompt, constant.NoActiveOrderSentinel)
	assert.Equal(t, "Consignes pour le client "+constant.UnknownClientFallback, embedder.lastText)
}

func TestProcessArrivalDetectorError(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newGateFixture(uow, &fakeDetector{err: errors.New("sidecar down")}, &scriptedLLM{}, &fakeEmbedder{})

	_, err := svc.ProcessArrival(context.Background(), []byte("jpeg"), "gate_cam.jpg")
	require.Error(t, err)
	assert.Empty(t, uow.arrivals.logs)
}

func TestProcessArrivalGenerationError(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newGateFixture(uow, &fakeDetector{plate: "AB-123"}, &scriptedLLM{err: errors.New("model timeout")}, &fakeEmbedder{})

	_, err := svc.ProcessArrival(context.Background(), []byte("jpeg"), "gate_cam.jpg")
	require.Error(t, err)
	assert.Empty(t, uow.arrivals.logs)
	assert.Empty(t, uow.orders.statusUpdates)
}

func TestProcessArrivalUpdateStatusErrorAborts(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.arrivals.facts = knownFacts()
	uow.orders.updateErr = errors.New("db gone")

	svc := newGateFixture(uow, &fakeDetector{plate: "302-502-TUN"}, &scriptedLLM{reply: "Gate A"}, &fakeEmbedder{})

	_, err := svc.ProcessArrival(context.Background(), []byte("jpeg"), "gate_cam.jpg")
	require.Error(t, err)
	assert.Empty(t, uow.arrivals.logs)
}

func TestProcessArrivalLogFailureDoesNotAbort(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.arrivals.logErr = errors.New("audit table missing")

	svc := newGateFixture(uow, &fakeDetector{plate: "999 XYZ"}, &scriptedLLM{reply: "Gate C"}, &fakeEmbedder{})

	res, err := svc.ProcessArrival(context.Background(), []byte("jpeg"), "gate_cam.jpg")
	require.NoError(t, err)
	assert.Equal(t, "success", res.Status)
}

func TestHealth(t *testing.T) {
	uow := newFakeUnitOfWork()

	svc := newGateFixture(uow, &fakeDetector{healthy: true}, &scriptedLLM{}, &fakeEmbedder{})
	res := svc.Health(context.Background())
	assert.Equal(t, "online", res.Status)
	assert.True(t, res.ModelLoaded)

	svc = newGateFixture(uow, &fakeDetector{healthy: false}, &scriptedLLM{}, &fakeEmbedder{})
	assert.False(t, svc.Health(context.Background()).ModelLoaded)

	svc = NewGateService(&fakeFactory{uow: uow}, &fakeDetector{healthy: true},
		decision.NewComposer(&scriptedLLM{}), &fakeEmbedder{}, nil, nil, nil, noopLogger{}, false)
	assert.False(t, svc.Health(context.Background()).ModelLoaded)
}

func TestRecentDecisions(t *testing.T) {
	uow := newFakeUnitOfWork()
	for i := 0; i < 3; i++ {
		uow.arrivals.logs = append(uow.arrivals.logs, &entity.ArrivalLog{
			Id:        uuid.New(),
			Plate:     "AB-12" + strings.Repeat("3", i+1),
			Status:    "success",
			Analysis:  "Gate A",
			CreatedAt: time.Now(),
		})
	}

	svc := newGateFixture(uow, &fakeDetector{}, &scriptedLLM{}, &fakeEmbedder{})

	res, err := svc.RecentDecisions(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "success", res[0].Status)
	assert.NotEmpty(t, res[0].CreatedAt)
}
