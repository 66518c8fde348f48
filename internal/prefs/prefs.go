// Package prefs persists client state between sessions: theme, panel
// layout, the last selected tracker, and the current user record. The
// schema is versioned through embedded migrations so older databases
// upgrade in place.
package prefs

import (
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/mkrause/bethere/internal/model"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Namespaced preference keys.
const (
	KeyTheme                 = "bethere_theme"
	KeySidebarCollapsed      = "bethere_sidebar_collapsed"
	KeyFriendsPanelCollapsed = "bethere_friends_panel_collapsed"
	KeySidebarWidth          = "bethere_sidebar_width"
	KeyFriendsPanelWidth     = "bethere_friends_panel_width"
	KeySelectedTracker       = "bethere_selected_tracker"

	keyCurrentUser = "bethere_user"
)

// Store is the preference database. Reads never fail the caller: a missing
// or unreadable value falls back to the provided default.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the preference database at path and brings the
// schema up to the current version.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open prefs db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping prefs db: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate prefs db: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// String returns the stored value for key, or fallback if the key is absent
// or unreadable.
func (s *Store) String(key, fallback string) string {
	var value string
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return fallback
	}
	if err != nil {
		s.logger.Warn("read preference", "key", key, "error", err)
		return fallback
	}
	return value
}

func (s *Store) SetString(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}

func (s *Store) Bool(key string, fallback bool) bool {
	raw := s.String(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		s.logger.Warn("bad boolean preference", "key", key, "value", raw)
		return fallback
	}
	return v
}

func (s *Store) SetBool(key string, value bool) error {
	return s.SetString(key, strconv.FormatBool(value))
}

func (s *Store) Float(key string, fallback float64) float64 {
	raw := s.String(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.logger.Warn("bad numeric preference", "key", key, "value", raw)
		return fallback
	}
	return v
}

func (s *Store) SetFloat(key string, value float64) error {
	return s.SetString(key, strconv.FormatFloat(value, 'f', -1, 64))
}

// CurrentUser loads the persisted user record. ok is false when none is
// stored or the stored shape no longer decodes.
func (s *Store) CurrentUser() (model.User, bool) {
	raw := s.String(keyCurrentUser, "")
	if raw == "" {
		return model.User{}, false
	}
	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.logger.Warn("corrupt stored user record", "error", err)
		return model.User{}, false
	}
	return u, true
}

func (s *Store) SetCurrentUser(u model.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user record: %w", err)
	}
	return s.SetString(keyCurrentUser, string(raw))
}

func (s *Store) ClearCurrentUser() error {
	_, err := s.db.Exec(`DELETE FROM prefs WHERE key = ?`, keyCurrentUser)
	if err != nil {
		return fmt.Errorf("clear user record: %w", err)
	}
	return nil
}
