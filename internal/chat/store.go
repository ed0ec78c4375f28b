// Package chat implements the conversational core: session and history
// stores, prompt assembly, and the per-turn orchestration service.
package chat

import (
	"sync"
	"time"

	"github.com/summit-coaching/assistant-api/internal/domain"
)

// MaxHistory caps the per-session turn log. Oldest entries are evicted
// first, preserving chronological order.
const MaxHistory = 30

// SessionStore is the process-wide in-memory session map. Sessions are
// never reclaimed; retention is bounded only by process lifetime.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	now      func() time.Time
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
		now:      time.Now,
	}
}

// GetOrCreate returns the session for id, creating it with defaults on
// first sight. Repeated calls with the same id return the same record.
func (s *SessionStore) GetOrCreate(id, userName string) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		return sess
	}

	name := userName
	if name == "" {
		name = domain.DefaultUserName
	}
	now := s.now()
	sess := &domain.Session{
		ID:           id,
		UserName:     name,
		Mood:         domain.MoodNeutral,
		CreatedAt:    now,
		LastActiveAt: now,
	}
	s.sessions[id] = sess
	return sess
}

// Get returns the session for id, or false when the id is unknown.
func (s *SessionStore) Get(id string) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	return sess, ok
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// HistoryStore keeps one bounded, ordered turn log per session id.
type HistoryStore struct {
	mu    sync.RWMutex
	turns map[string][]domain.Turn
}

// NewHistoryStore creates an empty history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		turns: make(map[string][]domain.Turn),
	}
}

// Append adds a turn to the session's log, creating the log if absent
// and evicting the oldest entries beyond MaxHistory.
func (h *HistoryStore) Append(sessionID string, t domain.Turn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	log := append(h.turns[sessionID], t)
	if len(log) > MaxHistory {
		log = log[len(log)-MaxHistory:]
	}
	h.turns[sessionID] = log
}

// Recent returns up to n of the most recent turns in chronological
// order. n <= 0 returns the full retained log. The returned slice is a
// copy; callers may not mutate stored history through it.
func (h *HistoryStore) Recent(sessionID string, n int) []domain.Turn {
	h.mu.RLock()
	defer h.mu.RUnlock()

	log := h.turns[sessionID]
	if n > 0 && len(log) > n {
		log = log[len(log)-n:]
	}
	out := make([]domain.Turn, len(log))
	copy(out, log)
	return out
}
