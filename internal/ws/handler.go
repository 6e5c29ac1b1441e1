// Package ws implements the WebSocket transport for real-time task
// change events.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/btouchard/taskboard/internal/notify"
)

const writeTimeout = 5 * time.Second

// Handler upgrades HTTP connections to WebSocket, registers each one
// as an event subscriber, and streams its registry channel to the
// remote party until the connection closes.
type Handler struct {
	registry *notify.Registry
}

// NewHandler creates a Handler backed by the given registry.
func NewHandler(registry *notify.Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // origin checks left to the deployment
	})
	if err != nil {
		slog.Error("websocket accept failed", "error", err)
		return
	}

	sub := h.registry.Register()
	slog.Info("websocket connected",
		"subscriber_id", sub.ID,
		"remote", r.RemoteAddr)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Read loop: clients send nothing we act on; reading only detects
	// disconnects and consumes pings.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	h.writePump(ctx, conn, sub)

	h.registry.Unregister(sub)
	_ = conn.Close(websocket.StatusNormalClosure, "")
	slog.Info("websocket disconnected", "subscriber_id", sub.ID)
}

func (h *Handler) writePump(ctx context.Context, conn *websocket.Conn, sub *notify.Subscriber) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Done():
			return
		case event := <-sub.C:
			if err := write(ctx, conn, event); err != nil {
				slog.Debug("websocket write failed",
					"subscriber_id", sub.ID,
					"error", err)
				return
			}
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, event notify.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(wctx, websocket.MessageText, data)
}
