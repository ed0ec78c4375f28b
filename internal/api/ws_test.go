package api

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/summit-coaching/assistant-api/internal/chat"
)

func TestWSHandler_ChatTurn(t *testing.T) {
	model := &fakeModel{reply: "Hello from the socket!"}
	chatSvc := chat.NewService(model, chat.NewSessionStore(), chat.NewHistoryStore())
	srv := httptest.NewServer(NewWSHandler(chatSvc, []string{"*"}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	if err := wsjson.Write(ctx, conn, map[string]string{"message": "hi"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var resp map[string]interface{}
	if err := wsjson.Read(ctx, conn, &resp); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if resp["response"] != "Hello from the socket!" {
		t.Errorf("response = %v", resp["response"])
	}
	if id, _ := resp["sessionId"].(string); id == "" {
		t.Error("expected a sessionId")
	}
}

func TestWSHandler_BlankMessageErrorFrame(t *testing.T) {
	chatSvc := chat.NewService(&fakeModel{reply: "x"}, chat.NewSessionStore(), chat.NewHistoryStore())
	srv := httptest.NewServer(NewWSHandler(chatSvc, []string{"*"}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	if err := wsjson.Write(ctx, conn, map[string]string{"message": "  "}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var resp map[string]interface{}
	if err := wsjson.Read(ctx, conn, &resp); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if _, ok := resp["error"]; !ok {
		t.Errorf("expected an error frame, got %v", resp)
	}

	// The connection stays usable after an error frame.
	if err := wsjson.Write(ctx, conn, map[string]string{"message": "hi"}); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	if err := wsjson.Read(ctx, conn, &resp); err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if resp["response"] != "x" {
		t.Errorf("response = %v", resp["response"])
	}
}
