package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-warehouse-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateService struct {
	res       *dto.ProcessEntranceResponse
	lastImage []byte
	lastName  string
}

func (s *stubGateService) ProcessArrival(ctx context.Context, image []byte, filename string) (*dto.ProcessEntranceResponse, error) {
	s.lastImage = image
	s.lastName = filename
	return s.res, nil
}

func (s *stubGateService) Health(ctx context.Context) *dto.HealthResponse {
	return &dto.HealthResponse{Status: "online", ModelLoaded: true}
}

func (s *stubGateService) RecentDecisions(ctx context.Context, limit int) ([]*dto.ArrivalLogResponse, error) {
	return []*dto.ArrivalLogResponse{}, nil
}

func newGateApp(svc *stubGateService) *fiber.App {
	app := fiber.New()
	NewGateController(svc).RegisterRoutes(app, app.Group("/api"))
	return app
}

func multipartImage(t *testing.T, field, filename string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestProcessEntranceEndpoint(t *testing.T) {
	svc := &stubGateService{res: &dto.ProcessEntranceResponse{
		Status:   "success",
		Plate:    "302-502-TUN",
		Analysis: "Gate B. Priority: High.",
	}}
	app := newGateApp(svc)

	body, contentType := multipartImage(t, "file", "gate_cam.jpg", []byte("jpeg-bytes"))
	req := httptest.NewRequest("POST", "/process-entrance", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The upload reaches the service byte for byte.
	assert.Equal(t, []byte("jpeg-bytes"), svc.lastImage)
	assert.Equal(t, "gate_cam.jpg", svc.lastName)

	// Flat payload, no envelope.
	raw, _ := io.ReadAll(resp.Body)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "success", parsed["status"])
	assert.Equal(t, "302-502-TUN", parsed["plate"])
	assert.NotContains(t, parsed, "data")
}

func TestProcessEntranceMissingFile(t *testing.T) {
	app := newGateApp(&stubGateService{})

	req := httptest.NewRequest("POST", "/process-entrance", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	app := newGateApp(&stubGateService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var parsed dto.HealthResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "online", parsed.Status)
	assert.True(t, parsed.ModelLoaded)
}

func TestRecentDecisionsRequiresToken(t *testing.T) {
	app := newGateApp(&stubGateService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/gate/v1/decisions", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
