package task

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Store is the in-memory task collection. It owns identifier
// generation: nextID is incremented under the store mutex, so IDs are
// unique and monotonically increasing. The store hands out copies,
// never pointers into the map.
type Store struct {
	mu     sync.RWMutex
	tasks  map[int64]Task
	nextID int64
}

// NewStore creates an empty task store.
func NewStore() *Store {
	return &Store{
		tasks: make(map[int64]Task),
	}
}

// Create stores a new task with the given fields and returns it with
// its assigned ID and timestamps filled in.
func (s *Store) Create(title, description string, status Status) Task {
	if status == "" {
		status = StatusTodo
	}
	now := time.Now()

	s.mu.Lock()
	s.nextID++
	t := Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks[t.ID] = t
	s.mu.Unlock()

	slog.Info("task created",
		"task_id", t.ID,
		"status", string(t.Status))

	return t
}

// Get returns a task by ID.
func (s *Store) Get(id int64) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return Task{}, fmt.Errorf("task %d not found", id)
	}
	return t, nil
}

// Apply mutates a stored task with the non-nil fields of u and
// returns the updated copy.
func (s *Store) Apply(id int64, u Update) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return Task{}, fmt.Errorf("task %d not found", id)
	}

	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	t.UpdatedAt = time.Now()
	s.tasks[id] = t

	return t, nil
}

// List returns tasks matching the given filter, newest first.
func (s *Store) List(f Filter) []Task {
	s.mu.RLock()
	results := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if f.Status != "" && f.Status != "all" && t.Status != Status(f.Status) {
			continue
		}
		results = append(results, t)
	}
	s.mu.RUnlock()

	sort.Slice(results, func(i, j int) bool {
		if results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].ID > results[j].ID
		}
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	if f.Limit > 0 && len(results) > f.Limit {
		results = results[:f.Limit]
	}

	return results
}

// Count returns the number of stored tasks.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
