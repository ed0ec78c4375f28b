package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type sessionResponse struct {
	ID           string    `json:"id"`
	UserName     string    `json:"userName"`
	TurnCount    int       `json:"turnCount"`
	Mood         string    `json:"mood"`
	Interests    []string  `json:"interests"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActiveAt time.Time `json:"lastActiveAt"`
	Booked       bool      `json:"booked"`
}

type turnResponse struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

type getSessionResponse struct {
	Session sessionResponse `json:"session"`
	History []turnResponse  `json:"history"`
}

// GetSession handles GET /api/session/{id}: a read-only view of one
// conversation for operational inspection.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sess, history, err := h.chat.Session(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := getSessionResponse{
		Session: sessionResponse{
			ID:           sess.ID,
			UserName:     sess.UserName,
			TurnCount:    sess.TurnCount,
			Mood:         string(sess.Mood),
			Interests:    sess.Interests,
			CreatedAt:    sess.CreatedAt,
			LastActiveAt: sess.LastActiveAt,
			Booked:       sess.Booked,
		},
		History: make([]turnResponse, 0, len(history)),
	}
	for _, t := range history {
		resp.History = append(resp.History, turnResponse{
			Role: string(t.Role),
			Text: t.Text,
			At:   t.At,
		})
	}
	if resp.Session.Interests == nil {
		resp.Session.Interests = []string{}
	}

	JSON(w, http.StatusOK, resp)
}
