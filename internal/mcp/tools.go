package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/btouchard/taskboard/internal/mcp/handlers"
)

func registerTools(s *server.MCPServer, deps *Deps) {
	// create_task — Create a new task record
	s.AddTool(
		mcp.NewTool("create_task",
			mcp.WithDescription("Create a new task. Returns the stored task with its assigned ID."),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("Short title of the task"),
			),
			mcp.WithString("description",
				mcp.Description("Longer free-form description"),
			),
			mcp.WithString("status",
				mcp.Description("Initial status (default: todo)"),
				mcp.Enum("todo", "in_progress", "done"),
			),
		),
		handlers.CreateTask(deps.Tasks),
	)

	// get_task — Read a single task
	s.AddTool(
		mcp.NewTool("get_task",
			mcp.WithDescription("Get a task by ID."),
			mcp.WithNumber("task_id",
				mcp.Required(),
				mcp.Description("The task ID"),
			),
		),
		handlers.GetTask(deps.Tasks),
	)

	// update_task — Modify a task; connected subscribers are notified
	s.AddTool(
		mcp.NewTool("update_task",
			mcp.WithDescription("Update a task's fields. Subscribers receive a task_updated event and a notification is dispatched in the background."),
			mcp.WithNumber("task_id",
				mcp.Required(),
				mcp.Description("The task ID"),
			),
			mcp.WithString("title",
				mcp.Description("New title"),
			),
			mcp.WithString("description",
				mcp.Description("New description"),
			),
			mcp.WithString("status",
				mcp.Description("New status"),
				mcp.Enum("todo", "in_progress", "done"),
			),
		),
		handlers.UpdateTask(deps.Tasks, deps.Notify),
	)

	// list_tasks — List tasks
	s.AddTool(
		mcp.NewTool("list_tasks",
			mcp.WithDescription("List tasks with optional filters."),
			mcp.WithString("status",
				mcp.Description("Filter by status"),
				mcp.Enum("all", "todo", "in_progress", "done"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of tasks to return (default: 20)"),
			),
		),
		handlers.ListTasks(deps.Tasks),
	)
}
