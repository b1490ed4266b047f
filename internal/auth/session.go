// ABOUTME: Single-slot local session persistence for the current employee's token
// ABOUTME: Saves atomically via renameio; clearing an already-empty slot is not an error

package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

// ErrNoSession is returned by Load when no session token is stored.
var ErrNoSession = errors.New("no session")

// SessionStore persists the current employee's session token at a fixed
// per-user path. At most one token is held at a time; saving overwrites any
// prior session.
type SessionStore struct {
	path string
}

// NewSessionStore creates a session store persisting to the given path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Save writes the token to the session slot, replacing any existing one.
// The write is atomic: a partially written slot is never observable.
func (s *SessionStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	pending, err := renameio.NewPendingFile(s.path, renameio.WithPermissions(0600))
	if err != nil {
		return fmt.Errorf("creating pending session file: %w", err)
	}
	defer func() { _ = pending.Cleanup() }()

	if _, err := pending.Write([]byte(token)); err != nil {
		return fmt.Errorf("writing session token: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing session file: %w", err)
	}
	return nil
}

// Load returns the stored token, or ErrNoSession if the slot is empty.
func (s *SessionStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("reading session file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

// Clear removes the stored token and reports whether a session was present.
// Clearing an empty slot is not an error.
func (s *SessionStore) Clear() (bool, error) {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("removing session file: %w", err)
	}
	return true, nil
}
