package api

import (
	"net/http"

	"github.com/summit-coaching/assistant-api/internal/contact"
)

type contactRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Message          string `json:"message"`
	Phone            string `json:"phone,omitempty"`
	Subject          string `json:"subject,omitempty"`
	PreferredContact string `json:"preferredContact,omitempty"`
}

// Contact handles POST /api/contact.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[contactRequest](w, r)
	if !ok {
		return
	}

	err := h.contact.Submit(r.Context(), contact.Request{
		Name:             req.Name,
		Email:            req.Email,
		Message:          req.Message,
		Phone:            req.Phone,
		Subject:          req.Subject,
		PreferredContact: req.PreferredContact,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]string{
		"message": "Thanks for reaching out! We'll get back to you within one business day.",
	})
}
