package api

import (
	"net/http"

	"github.com/summit-coaching/assistant-api/internal/booking"
)

type bookingRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message,omitempty"`
	Coach     string `json:"coach,omitempty"`
}

type bookingResponse struct {
	Message        string `json:"message"`
	SchedulingLink string `json:"schedulingLink"`
	EmailSent      bool   `json:"emailSent"`
}

// BookMeeting handles POST /api/book-meeting. Mail gateway failure
// degrades to a 200 carrying the scheduling link without confirmation.
func (h *Handler) BookMeeting(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[bookingRequest](w, r)
	if !ok {
		return
	}

	res, err := h.booking.Book(r.Context(), booking.Request{
		Name:      req.Name,
		Email:     req.Email,
		SessionID: req.SessionID,
		Message:   req.Message,
		Coach:     req.Coach,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, bookingResponse{
		Message:        res.Message,
		SchedulingLink: res.SchedulingLink,
		EmailSent:      res.EmailSent,
	})
}
