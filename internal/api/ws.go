package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/summit-coaching/assistant-api/internal/chat"
	"github.com/summit-coaching/assistant-api/internal/domain"
)

// WSHandler serves the chat pipeline over a WebSocket: one JSON
// message frame in, one JSON response frame out, same shapes as
// POST /api/chat.
type WSHandler struct {
	chat           *chat.Service
	originPatterns []string
}

// NewWSHandler creates the WebSocket chat handler. originPatterns
// follow the CORS allow-list; empty means same-origin only.
func NewWSHandler(chatSvc *chat.Service, originPatterns []string) *WSHandler {
	return &WSHandler{
		chat:           chatSvc,
		originPatterns: originPatterns,
	}
}

type wsError struct {
	Error string `json:"error"`
}

// ServeHTTP upgrades the connection and relays chat turns until the
// client disconnects.
func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		slog.Error("failed to accept websocket", "error", err, "ip", r.RemoteAddr)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "chat ended"); closeErr != nil {
			slog.Debug("failed to close websocket", "error", closeErr)
		}
	}()

	ctx := r.Context()
	for {
		var req chatRequest
		if err := wsjson.Read(ctx, ws, &req); err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || errors.Is(err, context.Canceled) {
				return
			}
			slog.Debug("websocket read failed", "error", err)
			return
		}

		out, err := h.chat.ProcessTurn(ctx, chat.TurnInput{
			SessionID: req.SessionID,
			UserName:  req.UserName,
			Message:   req.Message,
		})
		if err != nil {
			var verr *domain.ValidationError
			msg := "internal server error"
			if errors.As(err, &verr) {
				msg = verr.Messages[0]
			}
			if werr := wsjson.Write(ctx, ws, wsError{Error: msg}); werr != nil {
				return
			}
			continue
		}

		if err := wsjson.Write(ctx, ws, toChatResponse(out)); err != nil {
			slog.Debug("websocket write failed", "error", err)
			return
		}
	}
}
