package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/summit-coaching/assistant-api/internal/booking"
	"github.com/summit-coaching/assistant-api/internal/chat"
	"github.com/summit-coaching/assistant-api/internal/contact"
	"github.com/summit-coaching/assistant-api/internal/domain"
	"github.com/summit-coaching/assistant-api/internal/faq"
)

type fakeModel struct {
	reply string
	calls int
}

func (f *fakeModel) Generate(context.Context, string) (string, error) {
	f.calls++
	if f.reply == "" {
		return "", errors.New("model unavailable")
	}
	return f.reply, nil
}

type fakeMailer struct {
	sent []domain.MailMessage
}

func (f *fakeMailer) Send(_ context.Context, msg domain.MailMessage) error {
	f.sent = append(f.sent, msg)
	return nil
}

type fakeRecords struct{}

func (fakeRecords) InsertBooking(context.Context, *domain.BookingRecord) error           { return nil }
func (fakeRecords) InsertContactSubmission(context.Context, *domain.ContactRecord) error { return nil }
func (fakeRecords) CountContactSubmissionsSince(context.Context, string, int64) (int64, error) {
	return 0, nil
}
func (fakeRecords) Ping(context.Context) error { return nil }
func (fakeRecords) Close() error               { return nil }

type testEnv struct {
	router *chi.Mux
	model  *fakeModel
	mailer *fakeMailer
}

func newTestEnv() *testEnv {
	model := &fakeModel{reply: "Glad you're here!"}
	mailer := &fakeMailer{}
	records := fakeRecords{}

	chatSvc := chat.NewService(model, chat.NewSessionStore(), chat.NewHistoryStore())
	bookingSvc := booking.NewService(chatSvc, mailer, records, "team@summit.example", "https://calendly.com/summit")
	contactSvc := contact.NewService(contact.NewGuard(5*time.Minute), mailer, records, "team@summit.example")

	r := chi.NewRouter()
	NewHandler(chatSvc, bookingSvc, contactSvc).RegisterRoutes(r)

	return &testEnv{router: r, model: model, mailer: mailer}
}

func (e *testEnv) post(t *testing.T, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var got map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return got
}

func TestChat_Greeting(t *testing.T) {
	env := newTestEnv()

	w := env.post(t, "/api/chat", map[string]interface{}{"message": "hi"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	got := decodeBody(t, w)
	if got["intent"] != "greeting" {
		t.Errorf("intent = %v, want greeting", got["intent"])
	}
	if id, _ := got["sessionId"].(string); id == "" {
		t.Error("expected a generated sessionId")
	}
	if got["response"] != "Glad you're here!" {
		t.Errorf("response = %v", got["response"])
	}
	if _, ok := got["processingTime"]; !ok {
		t.Error("missing processingTime")
	}
}

func TestChat_BlankMessage(t *testing.T) {
	env := newTestEnv()

	w := env.post(t, "/api/chat", map[string]interface{}{"message": "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env.model.calls != 0 {
		t.Error("model must not be called for blank messages")
	}
}

func TestChat_FAQ(t *testing.T) {
	env := newTestEnv()

	w := env.post(t, "/api/chat", map[string]interface{}{"message": "what is the cost?"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	got := decodeBody(t, w)
	if got["responseType"] != "faq" {
		t.Errorf("responseType = %v, want faq", got["responseType"])
	}
	if got["category"] != "pricing" {
		t.Errorf("category = %v, want pricing", got["category"])
	}
	resp, _ := got["response"].(string)
	if !strings.Contains(resp, faq.Answers("pricing")) {
		t.Error("FAQ response must contain the canned answer verbatim")
	}
	if _, ok := got["intent"]; ok {
		t.Error("FAQ response must omit intent")
	}
	if env.model.calls != 0 {
		t.Error("model must not be called on FAQ match")
	}
}

func TestChat_ModelFailure(t *testing.T) {
	env := newTestEnv()
	env.model.reply = ""

	w := env.post(t, "/api/chat", map[string]interface{}{"message": "tell me about goal setting"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	got := decodeBody(t, w)
	if details, _ := got["details"].(string); !strings.Contains(details, "model unavailable") {
		t.Errorf("details = %v", got["details"])
	}
}

func TestBookMeeting_MissingEmail(t *testing.T) {
	env := newTestEnv()

	w := env.post(t, "/api/book-meeting", map[string]interface{}{"name": "Sam"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(env.mailer.sent) != 0 {
		t.Error("no mail may be attempted on validation failure")
	}
}

func TestBookMeeting_Success(t *testing.T) {
	env := newTestEnv()

	w := env.post(t, "/api/book-meeting", map[string]interface{}{
		"name":  "Sam Porter",
		"email": "sam@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	got := decodeBody(t, w)
	if link, _ := got["schedulingLink"].(string); !strings.HasPrefix(link, "https://calendly.com/summit/") {
		t.Errorf("schedulingLink = %v", got["schedulingLink"])
	}
	if got["emailSent"] != true {
		t.Errorf("emailSent = %v", got["emailSent"])
	}
	if len(env.mailer.sent) != 2 {
		t.Errorf("expected 2 mails, got %d", len(env.mailer.sent))
	}
}

func TestContact_DuplicateWindow(t *testing.T) {
	env := newTestEnv()
	body := map[string]interface{}{
		"name":    "Ana Lopez",
		"email":   "ana@example.com",
		"message": "I'd like to hear more about the program.",
	}

	first := env.post(t, "/api/contact", body)
	if first.Code != http.StatusOK {
		t.Fatalf("first submission status = %d, body = %s", first.Code, first.Body.String())
	}

	second := env.post(t, "/api/contact", body)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second submission status = %d, want 429", second.Code)
	}
}

func TestContact_ValidationErrors(t *testing.T) {
	env := newTestEnv()

	w := env.post(t, "/api/contact", map[string]interface{}{"email": "nope"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	got := decodeBody(t, w)
	errs, ok := got["errors"].([]interface{})
	if !ok || len(errs) == 0 {
		t.Errorf("expected a list of validation messages, got %v", got)
	}
}

func TestGetSession(t *testing.T) {
	env := newTestEnv()

	// Unknown id first.
	req := httptest.NewRequest(http.MethodGet, "/api/session/missing", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	// Create a session through a chat turn, then fetch it.
	chatResp := decodeBody(t, env.post(t, "/api/chat", map[string]interface{}{"message": "my name is Sam"}))
	id, _ := chatResp["sessionId"].(string)

	req = httptest.NewRequest(http.MethodGet, "/api/session/"+id, nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	got := decodeBody(t, w)
	sess, _ := got["session"].(map[string]interface{})
	if sess["userName"] != "Sam" {
		t.Errorf("userName = %v, want Sam", sess["userName"])
	}
}

func TestChat_InvalidJSON(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
