// Package storage persists the application state as two opaque keyed values
// in a local SQLite database: the full task collection as one JSON snapshot,
// and the theme flag. Saves are best-effort last-write-wins; a missing or
// corrupt snapshot loads as "no tasks yet" so bad persisted state can never
// prevent startup.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"daytick/internal/model"
)

const (
	keyTasks = "tasks"
	keyTheme = "theme"

	ThemeDark  = "dark"
	ThemeLight = "light"
)

var ErrNotFound = errors.New("storage: not found")

type Store struct {
	db *sql.DB
}

// DefaultPath returns the per-user database location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".daytick.db"), nil
}

// Open opens (creating if missing) the database at path and applies the
// schema migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTasks writes the whole collection snapshot.
func (s *Store) SaveTasks(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	payload, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	return s.put(ctx, keyTasks, string(payload))
}

// LoadTasks reads the collection snapshot. A missing or unreadable snapshot
// yields an empty collection, not an error; date sets are re-normalized in
// case an older snapshot stored them unsorted.
func (s *Store) LoadTasks(ctx context.Context) ([]model.Task, error) {
	raw, err := s.get(ctx, keyTasks)
	if errors.Is(err, ErrNotFound) {
		return []model.Task{}, nil
	}
	if err != nil {
		return nil, err
	}
	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return []model.Task{}, nil
	}
	for i := range tasks {
		tasks[i].Completions = tasks[i].Completions.Normalize()
		tasks[i].HiddenDates = tasks[i].HiddenDates.Normalize()
	}
	return tasks, nil
}

// SaveTheme persists the theme flag.
func (s *Store) SaveTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight {
		theme = ThemeDark
	}
	return s.put(ctx, keyTheme, theme)
}

// LoadTheme reads the theme flag, defaulting to dark.
func (s *Store) LoadTheme(ctx context.Context) string {
	raw, err := s.get(ctx, keyTheme)
	if err != nil || raw != ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *Store) put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}
