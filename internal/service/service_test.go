// ABOUTME: Shared test fixture for the CRM services
// ABOUTME: Wires a real SQLite store, auth engine and session slot in a temp dir

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/epicevents/crm/internal/auth"
	"github.com/epicevents/crm/internal/store"
)

const testPassword = "Secret123"

type fixture struct {
	store     *store.SQLiteStore
	codec     *auth.TokenCodec
	sessions  *auth.SessionStore
	engine    *auth.Engine
	employees *EmployeeService
	clients   *ClientService
	contracts *ContractService
	events    *EventService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	s, err := store.NewSQLiteStore(filepath.Join(dir, "crm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	codec := auth.NewTokenCodec([]byte("test-secret-key-for-jwt-signing"))
	sessions := auth.NewSessionStore(filepath.Join(dir, "token"))
	engine := auth.NewEngine(s, codec, sessions, time.Hour)

	return &fixture{
		store:     s,
		codec:     codec,
		sessions:  sessions,
		engine:    engine,
		employees: NewEmployeeService(engine, s),
		clients:   NewClientService(engine, s),
		contracts: NewContractService(engine, s),
		events:    NewEventService(engine, s),
	}
}

var seedSeq int

// seedEmployee inserts an employee directly into the store, bypassing the
// guarded service path so fixtures do not depend on a logged-in manager.
func (f *fixture) seedEmployee(t *testing.T, name string, dept store.Department) *store.Employee {
	t.Helper()

	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)

	seedSeq++
	now := time.Now().UTC()
	e := &store.Employee{
		Number:       uuid.NewString(),
		FullName:     name,
		Email:        fmt.Sprintf("seed%d@epicevents.com", seedSeq),
		PasswordHash: hash,
		Department:   dept,
		Role:         "staff",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, f.store.CreateEmployee(context.Background(), e))
	return e
}

// loginAs replaces the current session with the given employee's.
func (f *fixture) loginAs(t *testing.T, e *store.Employee) {
	t.Helper()

	ok, _, err := f.engine.Authenticate(context.Background(), e.Email, testPassword)
	require.NoError(t, err)
	require.True(t, ok)
}

func (f *fixture) logout(t *testing.T) {
	t.Helper()

	_, err := f.engine.Logout()
	require.NoError(t, err)
}

// seedClient inserts a client owned by the given commercial employee.
func (f *fixture) seedClient(t *testing.T, commercialID int64) *store.Client {
	t.Helper()

	seedSeq++
	now := time.Now().UTC()
	c := &store.Client{
		FullName:     fmt.Sprintf("Client %d", seedSeq),
		Email:        fmt.Sprintf("client%d@example.com", seedSeq),
		CommercialID: commercialID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, f.store.CreateClient(context.Background(), c))
	return c
}

// seedContract inserts a contract between the client and commercial.
func (f *fixture) seedContract(t *testing.T, clientID, commercialID int64, signed bool) *store.Contract {
	t.Helper()

	c := &store.Contract{
		ClientID:       clientID,
		CommercialID:   commercialID,
		TotalCents:     500000,
		RemainingCents: 500000,
		IsSigned:       signed,
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, f.store.CreateContract(context.Background(), c))
	return c
}

// seedEvent inserts an event for the contract, optionally assigned.
func (f *fixture) seedEvent(t *testing.T, contractID, supportID int64) *store.Event {
	t.Helper()

	start := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
	e := &store.Event{
		ContractID: contractID,
		SupportID:  supportID,
		Name:       "Annual Gala",
		StartDate:  start,
		EndDate:    start.Add(6 * time.Hour),
		Location:   "Grand Hôtel, Paris",
		Attendees:  200,
	}
	require.NoError(t, f.store.CreateEvent(context.Background(), e))
	return e
}
