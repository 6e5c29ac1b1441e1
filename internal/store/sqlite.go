package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339

var migrations = []string{
	`CREATE TABLE notifications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id INTEGER NOT NULL,
		message TEXT NOT NULL,
		sent_at TEXT NOT NULL
	);
	CREATE INDEX idx_notifications_task_id ON notifications(task_id);
	CREATE INDEX idx_notifications_sent_at ON notifications(sent_at);`,
}

// SQLiteStore persists the notification log using modernc.org/sqlite
// (pure Go, zero CGO).
type SQLiteStore struct {
	db        *sql.DB
	retention time.Duration
}

// NewSQLiteStore opens (or creates) a SQLite database and runs
// migrations. retentionDays bounds how long notification rows are kept
// (0 disables cleanup). The database file is created with 0600
// permissions and its parent directory with 0700.
func NewSQLiteStore(path string, retentionDays int) (*SQLiteStore, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0600)
			if err != nil {
				return nil, fmt.Errorf("creating database file: %w", err)
			}
			_ = f.Close()
		}
	}

	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite handles one writer at a time
	db.SetMaxIdleConns(1)

	s := &SQLiteStore{
		db:        db,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
	}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`)
	if err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	var current int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version")
	if err := row.Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := current; i < len(migrations); i++ {
		slog.Info("applying migration", "version", i+1)
		if _, err := s.db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", i+1); err != nil {
			return fmt.Errorf("recording migration %d: %w", i+1, err)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AddNotification appends one entry to the notification log. It
// satisfies the notify.Log interface.
func (s *SQLiteStore) AddNotification(taskID int64, message string, sentAt time.Time) error {
	_, err := s.db.Exec(`INSERT INTO notifications (task_id, message, sent_at) VALUES (?, ?, ?)`,
		taskID, message, formatTime(sentAt))
	if err != nil {
		return fmt.Errorf("adding notification: %w", err)
	}
	return nil
}

// ListNotifications returns logged notifications, newest first.
func (s *SQLiteStore) ListNotifications(f NotificationFilter) ([]NotificationRecord, error) {
	query := "SELECT id, task_id, message, sent_at FROM notifications WHERE 1=1"
	var args []interface{}

	if f.TaskID > 0 {
		query += " AND task_id = ?"
		args = append(args, f.TaskID)
	}

	query += " ORDER BY sent_at DESC, id DESC"

	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []NotificationRecord
	for rows.Next() {
		var r NotificationRecord
		var sentAt string
		if err := rows.Scan(&r.ID, &r.TaskID, &r.Message, &sentAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		r.SentAt = parseTime(sentAt)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Cleanup deletes notification rows older than the retention window.
func (s *SQLiteStore) Cleanup() error {
	if s.retention <= 0 {
		return nil
	}

	cutoff := formatTime(time.Now().Add(-s.retention))
	if _, err := s.db.Exec("DELETE FROM notifications WHERE sent_at < ?", cutoff); err != nil {
		return fmt.Errorf("cleaning notifications: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeFormat)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(timeFormat, s)
	return t
}
