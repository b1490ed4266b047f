// ABOUTME: Auth engine orchestrating authentication, session lifecycle and permission checks
// ABOUTME: The sole authority consulted before any privileged CRM operation

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/epicevents/crm/internal/store"
)

// Engine orchestrates authentication, session lifecycle and permission
// evaluation. It is a read-only consumer of the credential store: employee
// records are never mutated here.
type Engine struct {
	credentials store.CredentialStore
	codec       *TokenCodec
	sessions    *SessionStore
	ttl         time.Duration
	logger      *slog.Logger
}

// NewEngine creates an auth engine. A non-positive ttl selects
// DefaultTokenTTL.
func NewEngine(credentials store.CredentialStore, codec *TokenCodec, sessions *SessionStore, ttl time.Duration) *Engine {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Engine{
		credentials: credentials,
		codec:       codec,
		sessions:    sessions,
		ttl:         ttl,
		logger:      slog.Default().With("component", "auth"),
	}
}

// Authenticate verifies the email/password pair. On success it mints a
// session token, persists it (replacing any prior session) and returns the
// employee's display name. A bad email and a bad password both return the
// same (false, "") shape so callers cannot enumerate registered emails.
// Only credential store failures are returned as errors.
func (e *Engine) Authenticate(ctx context.Context, email, password string) (bool, string, error) {
	employee, err := e.credentials.GetEmployeeByEmail(ctx, email)
	if errors.Is(err, store.ErrEmployeeNotFound) {
		// Burn a hash comparison to keep timing flat for unknown emails
		verifyDummy(password)
		return false, "", nil
	}
	if err != nil {
		return false, "", fmt.Errorf("looking up employee: %w", err)
	}

	if !VerifyPassword(employee.PasswordHash, password) {
		return false, "", nil
	}

	token, err := e.codec.Issue(employee.ID, employee.Department, e.ttl)
	if err != nil {
		return false, "", fmt.Errorf("issuing session token: %w", err)
	}

	if err := e.sessions.Save(token); err != nil {
		return false, "", fmt.Errorf("saving session: %w", err)
	}

	e.logger.Info("authenticated", "employee_id", employee.ID, "department", employee.Department)
	return true, employee.FullName, nil
}

// CurrentPrincipal resolves the employee behind the stored session token.
//
// Returns (nil, nil) when no session is stored or when the employee named by
// a valid token no longer exists; both are plain Anonymous. An expired token
// purges the session and returns ErrTokenExpired; a token that fails
// verification purges the session and returns ErrTokenInvalid. The employee
// is re-resolved from the credential store on every call, so role changes
// take effect without waiting for token expiry.
func (e *Engine) CurrentPrincipal(ctx context.Context) (*store.Employee, error) {
	token, err := e.sessions.Load()
	if errors.Is(err, ErrNoSession) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	claims, err := e.codec.Decode(token)
	if errors.Is(err, ErrTokenExpired) {
		if _, clearErr := e.sessions.Clear(); clearErr != nil {
			return nil, clearErr
		}
		return nil, ErrTokenExpired
	}
	if errors.Is(err, ErrTokenInvalid) {
		// Possible tampering or corruption; worth an audit trace
		e.logger.Warn("purging invalid session token", "error", err)
		if _, clearErr := e.sessions.Clear(); clearErr != nil {
			return nil, clearErr
		}
		return nil, ErrTokenInvalid
	}
	if err != nil {
		return nil, err
	}

	employee, err := e.credentials.GetEmployee(ctx, claims.EmployeeID)
	if errors.Is(err, store.ErrEmployeeNotFound) {
		// Deleted after issuance; indistinguishable from Anonymous on purpose
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolving employee: %w", err)
	}

	return employee, nil
}

// HasPermission reports whether the current principal's department satisfies
// the required department. Management always passes; other departments need
// an exact match. An anonymous, expired or invalidated session is simply not
// authorized. Only credential store failures are returned as errors.
func (e *Engine) HasPermission(ctx context.Context, required store.Department) (bool, error) {
	employee, err := e.CurrentPrincipal(ctx)
	if errors.Is(err, ErrTokenExpired) || errors.Is(err, ErrTokenInvalid) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if employee == nil {
		return false, nil
	}
	return employee.HasPermission(required), nil
}

// Logout clears the stored session and reports whether one was present, so
// callers can distinguish "logged out" from "was never logged in". Neither
// case is a failure.
func (e *Engine) Logout() (bool, error) {
	present, err := e.sessions.Clear()
	if err != nil {
		return false, err
	}
	if present {
		e.logger.Info("logged out")
	}
	return present, nil
}
