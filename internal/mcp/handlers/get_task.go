package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/btouchard/taskboard/internal/task"
)

// GetTask returns a handler that reads a single task by ID.
func GetTask(tasks *task.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok := taskIDArg(req)
		if !ok {
			return mcp.NewToolResultError("task_id is required"), nil
		}

		t, err := tasks.Get(id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Task not found: %s", err)), nil
		}

		return mcp.NewToolResultText(formatTask(t)), nil
	}
}

// taskIDArg extracts the numeric task_id argument.
func taskIDArg(req mcp.CallToolRequest) (int64, bool) {
	id, ok := req.GetArguments()["task_id"].(float64)
	if !ok || id < 1 {
		return 0, false
	}
	return int64(id), true
}

func formatTask(t task.Task) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s **#%d** — %s\n", statusIcon(t.Status), t.ID, t.Title)
	fmt.Fprintf(&b, "  Status: %s\n", t.Status)
	if t.Description != "" {
		fmt.Fprintf(&b, "  Description: %s\n", t.Description)
	}
	fmt.Fprintf(&b, "  Updated: %s\n", t.UpdatedAt.Format("2006-01-02 15:04:05"))

	return b.String()
}

func statusIcon(s task.Status) string {
	switch s {
	case task.StatusTodo:
		return "⏳"
	case task.StatusInProgress:
		return "🔄"
	case task.StatusDone:
		return "✅"
	default:
		return "❓"
	}
}
