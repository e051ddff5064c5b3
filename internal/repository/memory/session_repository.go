package memory

import (
	"sync"

	"smart-warehouse-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps per-session chat history in process memory.
// Sessions live for the lifetime of the process and are lost on restart;
// that is a documented limitation of the demo scope, the Redis audit trail
// carries the durable copy.
type SessionRepository struct {
	cache *cache.Cache
	mu    sync.Mutex
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{
		cache: c,
	}
}

// Append adds one turn to the session history, creating the session on
// first access. The mutex serializes the read-modify-write so concurrent
// turns on the same session cannot drop entries.
func (r *SessionRepository) Append(sessionID, turn string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess := r.getOrCreate(sessionID)
	sess.Turns = append(sess.Turns, turn)
	r.cache.Set(sessionID, sess, cache.NoExpiration)
}

// Recent returns the last n turns in insertion order, fewer if the history
// is shorter. An unknown session yields an empty slice, not an error.
func (r *SessionRepository) Recent(sessionID string, n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess := r.getOrCreate(sessionID)
	if n <= 0 || len(sess.Turns) == 0 {
		return []string{}
	}
	start := len(sess.Turns) - n
	if start < 0 {
		start = 0
	}
	out := make([]string, len(sess.Turns)-start)
	copy(out, sess.Turns[start:])
	return out
}

// History returns the full recorded history for a session.
func (r *SessionRepository) History(sessionID string) []string {
	return r.Recent(sessionID, 1<<30)
}

func (r *SessionRepository) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Delete(sessionID)
}

func (r *SessionRepository) getOrCreate(sessionID string) *store.ChatSession {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.ChatSession)
	}
	sess := &store.ChatSession{ID: sessionID, Turns: []string{}}
	r.cache.Set(sessionID, sess, cache.NoExpiration)
	return sess
}
