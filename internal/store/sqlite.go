// ABOUTME: SQLite implementation of the Store interface using modernc.org/sqlite
// ABOUTME: Provides employee/client/contract/event persistence with automatic schema creation

package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"database/sql"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLite store at the given path.
// The schema is automatically created if it doesn't exist.
// Parent directories are created if needed.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	logger := slog.Default().With("component", "store")

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{
		db:     db,
		logger: logger,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("SQLite store initialized", "path", path)
	return s, nil
}

// createSchema creates the database tables if they don't exist
func (s *SQLiteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS employees (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_number TEXT NOT NULL UNIQUE,
			full_name       TEXT NOT NULL,
			email           TEXT NOT NULL UNIQUE,
			password_hash   TEXT NOT NULL,
			department      TEXT NOT NULL,
			role            TEXT NOT NULL,
			created_at      TEXT NOT NULL,
			updated_at      TEXT NOT NULL,

			CHECK (department IN ('commercial', 'support', 'management'))
		);

		CREATE INDEX IF NOT EXISTS idx_employees_email ON employees(email);
		CREATE INDEX IF NOT EXISTS idx_employees_department ON employees(department);

		CREATE TABLE IF NOT EXISTS clients (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			full_name     TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			phone         TEXT,
			company_name  TEXT,
			commercial_id INTEGER NOT NULL REFERENCES employees(id),
			created_at    TEXT NOT NULL,
			updated_at    TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_clients_commercial ON clients(commercial_id);
		CREATE INDEX IF NOT EXISTS idx_clients_email ON clients(email);

		CREATE TABLE IF NOT EXISTS contracts (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			client_id       INTEGER NOT NULL REFERENCES clients(id),
			commercial_id   INTEGER NOT NULL REFERENCES employees(id),
			total_cents     INTEGER NOT NULL,
			remaining_cents INTEGER NOT NULL,
			is_signed       INTEGER NOT NULL DEFAULT 0,
			created_at      TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_contracts_client ON contracts(client_id);
		CREATE INDEX IF NOT EXISTS idx_contracts_commercial ON contracts(commercial_id);

		CREATE TABLE IF NOT EXISTS events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			contract_id INTEGER NOT NULL REFERENCES contracts(id),
			support_id  INTEGER REFERENCES employees(id),
			name        TEXT NOT NULL,
			start_date  TEXT NOT NULL,
			end_date    TEXT NOT NULL,
			location    TEXT,
			attendees   INTEGER,
			notes       TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_events_contract ON events(contract_id);
		CREATE INDEX IF NOT EXISTS idx_events_support ON events(support_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	s.logger.Info("closing SQLite store")
	return s.db.Close()
}

// isUniqueConstraintError checks if an error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	// SQLite returns "UNIQUE constraint failed" in the error message
	return err != nil && (strings.Contains(err.Error(), "UNIQUE constraint failed") || strings.Contains(err.Error(), "unique constraint"))
}

// nullString returns nil for empty strings, otherwise the string itself
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Ensure SQLiteStore implements the Store interface
var _ Store = (*SQLiteStore)(nil)
