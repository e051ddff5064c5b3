package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Trail is a best-effort append-only record of conversations and gate
// decisions kept in Redis lists. The in-memory session window stays the
// prompt source of truth; the trail exists so operators can replay what
// the model was told after the fact.
type Trail struct {
	client *redis.Client
}

type Record struct {
	Kind      string    `json:"kind"` // "chat_turn" or "gate_decision"
	SessionID string    `json:"session_id,omitempty"`
	Plate     string    `json:"plate,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTrail parses a redis URL. A nil return with error means the trail is
// unavailable; callers keep running without it.
func NewTrail(redisURL string) (*Trail, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &Trail{client: redis.NewClient(opts)}, nil
}

func (t *Trail) AppendChatTurn(ctx context.Context, sessionID, content string) error {
	if t == nil {
		return nil
	}
	return t.push(ctx, "audit:chat:"+sessionID, Record{
		Kind:      "chat_turn",
		SessionID: sessionID,
		Content:   content,
		CreatedAt: time.Now(),
	})
}

func (t *Trail) AppendGateDecision(ctx context.Context, plate, content string) error {
	if t == nil {
		return nil
	}
	return t.push(ctx, "audit:gate", Record{
		Kind:      "gate_decision",
		Plate:     plate,
		Content:   content,
		CreatedAt: time.Now(),
	})
}

func (t *Trail) push(ctx context.Context, key string, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return t.client.RPush(ctx, key, data).Err()
}

func (t *Trail) Close() error {
	if t == nil {
		return nil
	}
	return t.client.Close()
}
