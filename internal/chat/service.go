package chat

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/summit-coaching/assistant-api/internal/analysis"
	"github.com/summit-coaching/assistant-api/internal/domain"
	"github.com/summit-coaching/assistant-api/internal/faq"
)

// namePattern captures "my name is <word>" shortcuts.
var namePattern = regexp.MustCompile(`(?i)\bmy name is ([a-zA-Z]+)`)

// interestKeywords are scanned as substrings of the lowercased message
// and recorded on the session as topic tags, first-seen order.
var interestKeywords = []string{
	"career", "leadership", "confidence", "goals", "promotion",
	"stress", "balance", "team", "interview", "transition",
}

// Service sequences one chat turn: FAQ short-circuit, session resolve,
// name shortcut, analysis, history, prompt, model call, response.
type Service struct {
	model    domain.ModelClient
	sessions *SessionStore
	history  *HistoryStore

	// locks serializes turns per session id so the read-modify-write
	// across the model call cannot interleave for one conversation.
	// Entries are never freed, matching session retention.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	now   func() time.Time
	newID func() string
}

// NewService creates the conversation service.
func NewService(model domain.ModelClient, sessions *SessionStore, history *HistoryStore) *Service {
	return &Service{
		model:    model,
		sessions: sessions,
		history:  history,
		locks:    make(map[string]*sync.Mutex),
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

// TurnInput is one user chat message plus optional session context.
type TurnInput struct {
	SessionID string
	UserName  string
	Message   string
}

// TurnOutput is the assembled chat response.
type TurnOutput struct {
	Response  string
	SessionID string
	Mood      domain.Mood
	Intent    domain.Intent
	Elapsed   time.Duration
	FAQ       bool
	Category  string
}

// ProcessTurn runs the full turn pipeline. FAQ-matched messages return
// a canned answer and leave session and history untouched; "my name is"
// messages update the session name and return a greeting without a
// model call. Everything else goes through sentiment/intent analysis
// and the model.
func (s *Service) ProcessTurn(ctx context.Context, in TurnInput) (*TurnOutput, error) {
	start := s.now()

	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, &domain.ValidationError{Messages: []string{"message is required"}}
	}

	// FAQ short-circuit happens before any session work.
	if m, ok := faq.Find(message); ok {
		return &TurnOutput{
			Response:  m.Answer + "\n\n" + BookingNudge + "\n\n" + Signature,
			SessionID: in.SessionID,
			Elapsed:   s.now().Sub(start),
			FAQ:       true,
			Category:  m.Category,
		}, nil
	}

	sessionID := in.SessionID
	if sessionID == "" {
		sessionID = s.newID()
	}

	unlock := s.lockSession(sessionID)
	defer unlock()

	sess := s.sessions.GetOrCreate(sessionID, in.UserName)
	sess.TurnCount++
	sess.LastActiveAt = s.now()

	// Name shortcut: counts as a turn but skips analysis, history, and
	// the model.
	if m := namePattern.FindStringSubmatch(message); m != nil {
		name := capitalize(m[1])
		sess.UserName = name
		return &TurnOutput{
			Response: fmt.Sprintf("Nice to meet you, %s! What would you like to work on? %s",
				name, Signature),
			SessionID: sessionID,
			Mood:      sess.Mood,
			Intent:    domain.IntentGreeting,
			Elapsed:   s.now().Sub(start),
		}, nil
	}

	mood := analysis.Sentiment(message)
	intent := analysis.DetectIntent(message)
	sess.Mood = mood

	s.history.Append(sessionID, domain.Turn{
		Role: domain.RoleUser,
		Text: message,
		At:   s.now(),
	})

	prompt := BuildPrompt(sess, mood, intent, s.history.Recent(sessionID, promptHistoryWindow), message)

	reply, err := s.model.Generate(ctx, prompt)
	if err != nil {
		slog.Error("model call failed", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("generate reply: %w", err)
	}

	s.history.Append(sessionID, domain.Turn{
		Role: domain.RoleAssistant,
		Text: reply,
		At:   s.now(),
	})

	s.updateInterests(sess, intent, strings.ToLower(message))

	return &TurnOutput{
		Response:  reply,
		SessionID: sessionID,
		Mood:      mood,
		Intent:    intent,
		Elapsed:   s.now().Sub(start),
	}, nil
}

// Session returns a copy of the session and its retained history.
// The copy is taken under the per-session lock so readers never see a
// half-applied turn.
func (s *Service) Session(id string) (domain.Session, []domain.Turn, error) {
	if _, ok := s.sessions.Get(id); !ok {
		return domain.Session{}, nil, domain.ErrSessionNotFound
	}

	unlock := s.lockSession(id)
	defer unlock()

	sess, ok := s.sessions.Get(id)
	if !ok {
		return domain.Session{}, nil, domain.ErrSessionNotFound
	}

	out := *sess
	out.Interests = append([]string(nil), sess.Interests...)
	if sess.Booking != nil {
		b := *sess.Booking
		out.Booking = &b
	}
	return out, s.history.Recent(id, 0), nil
}

// RecordBooking marks the session as booked and stores the booking
// details, returning the session's user name for personalization.
// Unknown ids are tolerated: ok is false and nothing is recorded.
func (s *Service) RecordBooking(id string, d domain.BookingDetails) (userName string, ok bool) {
	if id == "" {
		return "", false
	}
	if _, exists := s.sessions.Get(id); !exists {
		return "", false
	}

	unlock := s.lockSession(id)
	defer unlock()

	sess, found := s.sessions.Get(id)
	if !found {
		return "", false
	}
	sess.Booked = true
	sess.Booking = &d
	sess.LastActiveAt = s.now()
	return sess.UserName, true
}

func (s *Service) lockSession(id string) func() {
	s.locksMu.Lock()
	mu, ok := s.locks[id]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[id] = mu
	}
	s.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

func (s *Service) updateInterests(sess *domain.Session, intent domain.Intent, lower string) {
	switch intent {
	case domain.IntentBooking:
		sess.AddInterest("booking")
	case domain.IntentPricing:
		sess.AddInterest("pricing")
	}
	for _, kw := range interestKeywords {
		if strings.Contains(lower, kw) {
			sess.AddInterest(kw)
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
