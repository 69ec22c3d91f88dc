package settings

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"

	// Register the modernc sqlite driver under the name "sqlite".
	_ "modernc.org/sqlite"

	"github.com/voicepod/devicekit-go/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	namespace TEXT NOT NULL,
	key       TEXT NOT NULL,
	value     TEXT NOT NULL,
	PRIMARY KEY (namespace, key)
);`

// Store is a namespaced string key/value store on SQLite.
type Store struct {
	log    *slog.Logger
	db     *sql.DB
	closed atomic.Bool
}

// Open opens (or creates) the store at path and applies the schema.
//
// The DSN enables WAL journaling and a busy timeout so burst writes from the
// application worker do not fail with SQLITE_BUSY.
func Open(log *slog.Logger, path string) (*Store, error) {
	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("settings: open %q: %w", path, err)
	}

	// A single connection keeps in-memory databases coherent and is plenty
	// for a settings store.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("settings: apply schema: %w", err)
	}

	return &Store{
		log: log.With("component", "settings"),
		db:  db,
	}, nil
}

// GetString returns the value for (namespace, key), or "" when unset.
func (s *Store) GetString(ctx context.Context, namespace, key string) (string, error) {
	if s.closed.Load() {
		return "", errors.ErrSettingsClosed
	}

	var value string

	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE namespace = ? AND key = ?`,
		namespace, key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("settings: get %s/%s: %w", namespace, key, err)
	}

	return value, nil
}

// SetString stores value under (namespace, key), replacing any prior value.
func (s *Store) SetString(ctx context.Context, namespace, key, value string) error {
	if s.closed.Load() {
		return errors.ErrSettingsClosed
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (namespace, key, value) VALUES (?, ?, ?)
		 ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value`,
		namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("settings: set %s/%s: %w", namespace, key, err)
	}

	s.log.Debug("Setting stored", "namespace", namespace, "key", key)

	return nil
}

// Close releases the database. Further calls return ErrSettingsClosed.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	return s.db.Close()
}
