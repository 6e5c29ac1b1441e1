package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/btouchard/taskboard/internal/task"
)

// ListTasks returns a handler that lists tasks with optional filters.
func ListTasks(tasks *task.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		filter := task.Filter{
			Limit: 20,
		}

		if status, ok := args["status"].(string); ok {
			filter.Status = status
		}
		if limit, ok := args["limit"].(float64); ok && limit > 0 {
			filter.Limit = int(limit)
		}

		results := tasks.List(filter)

		if len(results) == 0 {
			return mcp.NewToolResultText("No tasks found matching the given filters."), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "📋 Tasks (%d found)\n\n", len(results))

		for _, t := range results {
			sb.WriteString(formatTask(t))
			sb.WriteString("\n")
		}

		return mcp.NewToolResultText(sb.String()), nil
	}
}
