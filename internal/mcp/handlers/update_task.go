package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/btouchard/taskboard/internal/notify"
	"github.com/btouchard/taskboard/internal/task"
)

// UpdateTask returns a handler that applies a partial update to a
// task and triggers the change-notification side channel.
func UpdateTask(tasks *task.Store, svc *notify.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		id, ok := taskIDArg(req)
		if !ok {
			return mcp.NewToolResultError("task_id is required"), nil
		}

		var update task.Update
		if title, ok := args["title"].(string); ok && title != "" {
			update.Title = &title
		}
		if description, ok := args["description"].(string); ok {
			update.Description = &description
		}
		if s, ok := args["status"].(string); ok && s != "" {
			status := task.Status(s)
			if !status.Valid() {
				return mcp.NewToolResultError(fmt.Sprintf("invalid status %q", s)), nil
			}
			update.Status = &status
		}

		updated, err := tasks.Apply(id, update)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Task not found: %s", err)), nil
		}

		svc.OnTaskUpdated(updated)

		return mcp.NewToolResultText("Task updated.\n\n" + formatTask(updated)), nil
	}
}
