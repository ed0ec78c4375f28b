package api

import (
	"net/http"

	"github.com/summit-coaching/assistant-api/internal/chat"
)

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
	UserName  string `json:"userName,omitempty"`
}

// chatResponse mirrors the public chat contract. Fields are additive:
// FAQ answers add responseType and category and omit intent; error
// paths never reuse this shape.
type chatResponse struct {
	Response       string  `json:"response"`
	SessionID      string  `json:"sessionId"`
	Mood           string  `json:"mood,omitempty"`
	Intent         string  `json:"intent,omitempty"`
	ProcessingTime float64 `json:"processingTime"`
	ResponseType   string  `json:"responseType,omitempty"`
	Category       string  `json:"category,omitempty"`
}

func toChatResponse(out *chat.TurnOutput) chatResponse {
	resp := chatResponse{
		Response:       out.Response,
		SessionID:      out.SessionID,
		Mood:           string(out.Mood),
		Intent:         string(out.Intent),
		ProcessingTime: float64(out.Elapsed.Microseconds()) / 1000.0,
	}
	if out.FAQ {
		resp.ResponseType = "faq"
		resp.Category = out.Category
	}
	return resp
}

// Chat handles POST /api/chat: one user message in, one assistant
// response out.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[chatRequest](w, r)
	if !ok {
		return
	}

	out, err := h.chat.ProcessTurn(r.Context(), chat.TurnInput{
		SessionID: req.SessionID,
		UserName:  req.UserName,
		Message:   req.Message,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toChatResponse(out))
}
