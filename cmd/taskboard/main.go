package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/server"

	"github.com/btouchard/taskboard/internal/api"
	"github.com/btouchard/taskboard/internal/config"
	tbmcp "github.com/btouchard/taskboard/internal/mcp"
	"github.com/btouchard/taskboard/internal/notify"
	"github.com/btouchard/taskboard/internal/store"
	"github.com/btouchard/taskboard/internal/task"
	"github.com/btouchard/taskboard/internal/tunnel"
	"github.com/btouchard/taskboard/internal/ws"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "version":
		fmt.Printf("taskboard %s\n", version)
	case "check":
		cmdCheck(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: taskboard <command> [flags]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the Taskboard server\n")
	fmt.Fprintf(os.Stderr, "  check     Validate configuration\n")
	fmt.Fprintf(os.Stderr, "  version   Print version\n")
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	_ = fs.Parse(args) // ExitOnError handles errors

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	slog.Info("starting taskboard",
		"version", version,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	_ = fs.Parse(args) // ExitOnError handles errors

	_, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("configuration is valid")
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func setupLogging(cfg *config.Config) {
	var level slog.Level
	switch cfg.Server.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlers := []slog.Handler{
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}),
	}

	if cfg.Server.LogFile != "" {
		f, err := os.OpenFile(cfg.Server.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
		if err != nil {
			slog.Warn("failed to open log file, using stdout only", "path", cfg.Server.LogFile, "error", err)
		} else {
			handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		}
	}

	logger := slog.New(slog.NewMultiHandler(handlers...))
	slog.SetDefault(logger)
}

func run(ctx context.Context, cfg *config.Config) error {
	// --- Notification Log (SQLite) ---
	db, err := store.NewSQLiteStore(cfg.Database.Path, cfg.Database.RetentionDays)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	slog.Info("database opened", "path", cfg.Database.Path)

	if err := db.Cleanup(); err != nil {
		slog.Warn("notification log cleanup failed", "error", err)
	}

	// --- Task Store ---
	tasks := task.NewStore()

	// --- Change-Notification Core ---
	registry := notify.NewRegistry(cfg.Notify.BufferSize)
	hub := notify.NewHub(registry)
	dispatcher := notify.NewDispatcher(cfg.Notify.Delay, db)
	svc := notify.NewService(dispatcher, hub)

	// --- MCP Server ---
	mcpServer := tbmcp.NewServer(&tbmcp.Deps{
		Tasks:   tasks,
		Notify:  svc,
		Version: version,
	})
	mcpHTTP := server.NewStreamableHTTPServer(mcpServer)

	mcpNotifier := notify.NewMCPNotifier(mcpServer, registry)
	go mcpNotifier.Run(ctx)

	// --- HTTP Router ---
	r := chi.NewRouter()

	handlers := &api.Handlers{
		Tasks:         tasks,
		Notify:        svc,
		Notifications: db,
	}
	handlers.Register(r)

	r.Handle("/ws", ws.NewHandler(registry))
	r.Handle("/mcp", mcpHTTP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- HTTP Server ---
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	errCh := make(chan error, 1)

	if cfg.Tunnel.Enabled {
		tun := tunnel.NewNgrok(cfg.Tunnel.AuthToken, cfg.Tunnel.Domain)
		publicURL, err := tun.Start(ctx)
		if err != nil {
			return fmt.Errorf("starting tunnel: %w", err)
		}
		defer func() { _ = tun.Close() }()

		go func() {
			slog.Info("taskboard is ready", "addr", addr, "public_url", publicURL)
			if err := srv.Serve(tun.Listener()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()
	} else {
		go func() {
			slog.Info("taskboard is ready", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()
	}

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
