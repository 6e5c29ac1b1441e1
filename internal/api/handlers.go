// Package api implements the HTTP JSON API for task records.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/btouchard/taskboard/internal/notify"
	"github.com/btouchard/taskboard/internal/store"
	"github.com/btouchard/taskboard/internal/task"
)

const maxRequestBodySize = 1 << 20 // 1 MB

// NotificationLister reads the notification audit log.
// Defined at the consumer side per Go conventions.
type NotificationLister interface {
	ListNotifications(f store.NotificationFilter) ([]store.NotificationRecord, error)
}

// Handlers holds the HTTP handler dependencies.
type Handlers struct {
	Tasks         *task.Store
	Notify        *notify.Service
	Notifications NotificationLister // nil disables /api/notifications content
}

// Register mounts the task API routes on r.
func (h *Handlers) Register(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/tasks", h.createTask)
		r.Get("/tasks", h.listTasks)
		r.Get("/tasks/{id}", h.getTask)
		r.Patch("/tasks/{id}", h.updateTask)
		r.Get("/notifications", h.listNotifications)
	})
}

type createTaskRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      task.Status `json:"status"`
}

func (h *Handlers) createTask(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[createTaskRequest](w, r)
	if !ok {
		return
	}

	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Status != "" && !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	t := h.Tasks.Create(req.Title, req.Description, req.Status)
	writeJSON(w, http.StatusCreated, t)
}

func (h *Handlers) listTasks(w http.ResponseWriter, r *http.Request) {
	filter := task.Filter{
		Status: r.URL.Query().Get("status"),
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = n
	}

	writeJSON(w, http.StatusOK, h.Tasks.List(filter))
}

func (h *Handlers) getTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	t, err := h.Tasks.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, t)
}

type updateTaskRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Status      *task.Status `json:"status"`
}

func (h *Handlers) updateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	req, ok := readJSON[updateTaskRequest](w, r)
	if !ok {
		return
	}

	if req.Status != nil && !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}
	if req.Title != nil && *req.Title == "" {
		writeError(w, http.StatusBadRequest, "title must not be empty")
		return
	}

	updated, err := h.Tasks.Apply(id, task.Update{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	// The mutation is committed; the notification side channel runs
	// without delaying or failing this response.
	h.Notify.OnTaskUpdated(updated)

	writeJSON(w, http.StatusOK, updated)
}

type notificationResponse struct {
	ID      int64  `json:"id"`
	TaskID  int64  `json:"task_id"`
	Message string `json:"message"`
	SentAt  string `json:"sent_at"`
}

func (h *Handlers) listNotifications(w http.ResponseWriter, r *http.Request) {
	if h.Notifications == nil {
		writeJSON(w, http.StatusOK, []notificationResponse{})
		return
	}

	filter := store.NotificationFilter{Limit: 50}
	if v := r.URL.Query().Get("task_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id < 1 {
			writeError(w, http.StatusBadRequest, "invalid task_id")
			return
		}
		filter.TaskID = id
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = n
	}

	records, err := h.Notifications.ListNotifications(filter)
	if err != nil {
		slog.Error("listing notifications failed", "error", err)
		writeError(w, http.StatusInternalServerError, "listing notifications failed")
		return
	}

	resp := make([]notificationResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, notificationResponse{
			ID:      rec.ID,
			TaskID:  rec.TaskID,
			Message: rec.Message,
			SentAt:  rec.SentAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return 0, false
	}
	return id, true
}

// readJSON decodes a JSON request body with a size limit.
func readJSON[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		} else {
			writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return v, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("writing response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
