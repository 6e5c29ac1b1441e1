package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btouchard/taskboard/internal/notify"
	"github.com/btouchard/taskboard/internal/task"
)

func TestHandler_StreamsTaskUpdatedEvents(t *testing.T) {
	t.Parallel()

	registry := notify.NewRegistry(0)
	hub := notify.NewHub(registry)

	srv := httptest.NewServer(NewHandler(registry))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()

	require.Eventually(t, func() bool { return registry.Count() == 1 },
		time.Second, 5*time.Millisecond)

	hub.Publish(notify.NewTaskUpdated(task.Task{
		ID:     7,
		Title:  "ship release",
		Status: task.StatusDone,
	}))

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var got struct {
		Type string `json:"type"`
		Task struct {
			ID     int64  `json:"id"`
			Title  string `json:"title"`
			Status string `json:"status"`
		} `json:"task"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "task_updated", got.Type)
	assert.Equal(t, int64(7), got.Task.ID)
	assert.Equal(t, "ship release", got.Task.Title)
	assert.Equal(t, "done", got.Task.Status)
}

func TestHandler_UnregistersOnClientClose(t *testing.T) {
	t.Parallel()

	registry := notify.NewRegistry(0)

	srv := httptest.NewServer(NewHandler(registry))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return registry.Count() == 1 },
		time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	require.Eventually(t, func() bool { return registry.Count() == 0 },
		time.Second, 5*time.Millisecond)
}

func TestHandler_MultipleClientsEachReceiveBroadcast(t *testing.T) {
	t.Parallel()

	registry := notify.NewRegistry(0)
	hub := notify.NewHub(registry)

	srv := httptest.NewServer(NewHandler(registry))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	var conns []*websocket.Conn
	for range 3 {
		conn, _, err := websocket.Dial(ctx, url, nil)
		require.NoError(t, err)
		conns = append(conns, conn)
	}
	defer func() {
		for _, c := range conns {
			_ = c.Close(websocket.StatusNormalClosure, "")
		}
	}()

	require.Eventually(t, func() bool { return registry.Count() == 3 },
		time.Second, 5*time.Millisecond)

	hub.Publish(notify.NewTaskUpdated(task.Task{ID: 9, Status: task.StatusInProgress}))

	for _, conn := range conns {
		_, data, err := conn.Read(ctx)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"type":"task_updated"`)
		assert.Contains(t, string(data), `"id":9`)
	}
}
