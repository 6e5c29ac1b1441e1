package notify

import (
	"context"
	"log/slog"
)

// MCPSender abstracts the mcp-go server notification methods.
// Defined consumer-side per Go convention.
type MCPSender interface {
	SendNotificationToAllClients(method string, params map[string]any)
}

// MCPNotifier forwards task_updated events to connected MCP clients.
// It subscribes to the registry like any other consumer, so MCP
// sessions get the same best-effort delivery as WebSocket clients.
type MCPNotifier struct {
	sender   MCPSender
	registry *Registry
}

// NewMCPNotifier creates an MCPNotifier pumping from the given registry.
func NewMCPNotifier(sender MCPSender, registry *Registry) *MCPNotifier {
	return &MCPNotifier{
		sender:   sender,
		registry: registry,
	}
}

// Run registers a subscriber and forwards events until ctx is
// cancelled. Intended to run in its own goroutine.
func (n *MCPNotifier) Run(ctx context.Context) {
	sub := n.registry.Register()
	defer n.registry.Unregister(sub)

	slog.Debug("mcp notifier started", "subscriber_id", sub.ID)

	for {
		select {
		case <-ctx.Done():
			return
		case event := <-sub.C:
			n.send(event)
		}
	}
}

func (n *MCPNotifier) send(event Event) {
	params := map[string]any{
		"level":  "info",
		"logger": "taskboard",
		"data": map[string]any{
			"type":    event.Type,
			"task_id": event.Task.ID,
			"title":   event.Task.Title,
			"status":  string(event.Task.Status),
		},
	}

	n.sender.SendNotificationToAllClients("notifications/message", params)
}
