// Package api provides the HTTP handlers for the assistant API.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/summit-coaching/assistant-api/internal/booking"
	"github.com/summit-coaching/assistant-api/internal/chat"
	"github.com/summit-coaching/assistant-api/internal/contact"
	"github.com/summit-coaching/assistant-api/internal/domain"
)

// Handler wires the services behind the /api routes.
type Handler struct {
	chat    *chat.Service
	booking *booking.Service
	contact *contact.Service
}

// NewHandler creates a new Handler with its service dependencies.
func NewHandler(chatSvc *chat.Service, bookingSvc *booking.Service, contactSvc *contact.Service) *Handler {
	return &Handler{
		chat:    chatSvc,
		booking: bookingSvc,
		contact: contactSvc,
	}
}

// RegisterRoutes registers the assistant API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", h.Chat)
		r.Post("/book-meeting", h.BookMeeting)
		r.Post("/contact", h.Contact)
		r.Get("/session/{id}", h.GetSession)
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// decodeJSON parses the request body into T, writing a 400 and
// returning ok=false on malformed input.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return v, false
	}
	return v, true
}

// writeServiceError maps service errors onto the response taxonomy:
// validation 400, duplicate submission 429, unknown session 404, and
// everything else a generic 500 with the error text as detail.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"errors": verr.Messages,
		})
	case errors.Is(err, domain.ErrDuplicateSubmission):
		Error(w, http.StatusTooManyRequests, "duplicate submission, please wait before sending again")
	case errors.Is(err, domain.ErrSessionNotFound):
		Error(w, http.StatusNotFound, "session not found")
	default:
		JSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "internal server error",
			"details": err.Error(),
		})
	}
}
