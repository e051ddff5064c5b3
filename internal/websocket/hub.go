package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"smart-warehouse-be/internal/pkg/logger"
)

// Hub fans gate decisions out to every connected dashboard. Connections
// are anonymous viewers; there is no per-user routing.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Gate feed client connected", map[string]interface{}{"total": h.clientCount()})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Gate feed client disconnected", map[string]interface{}{"total": h.clientCount()})
		}
	}
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastDecision pushes one arrival decision to all connected viewers.
// Slow consumers are dropped rather than blocking the pipeline.
func (h *Hub) BroadcastDecision(plate, status, analysis string) {
	if h == nil {
		return
	}

	data, _ := json.Marshal(map[string]interface{}{
		"type": "gate_decision",
		"data": map[string]interface{}{
			"plate":     plate,
			"status":    status,
			"analysis":  analysis,
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})

	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping connection", nil)
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
	h.mu.RUnlock()
}
