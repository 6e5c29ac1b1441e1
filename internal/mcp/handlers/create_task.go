package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/btouchard/taskboard/internal/task"
)

// CreateTask returns a handler that stores a new task.
func CreateTask(tasks *task.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		title, _ := args["title"].(string)
		if title == "" {
			return mcp.NewToolResultError("title is required"), nil
		}

		description, _ := args["description"].(string)

		status := task.StatusTodo
		if s, ok := args["status"].(string); ok && s != "" {
			status = task.Status(s)
			if !status.Valid() {
				return mcp.NewToolResultError(fmt.Sprintf("invalid status %q", s)), nil
			}
		}

		t := tasks.Create(title, description, status)

		return mcp.NewToolResultText(formatTask(t)), nil
	}
}
