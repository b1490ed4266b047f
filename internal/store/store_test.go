// ABOUTME: Shared test fixtures for the SQLite store
// ABOUTME: Provides a temp-dir store and entity factories used across entity tests

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

var employeeSeq int

func makeEmployee(t *testing.T, s *SQLiteStore, dept Department) *Employee {
	t.Helper()

	employeeSeq++
	now := time.Now().UTC()
	e := &Employee{
		Number:       fmt.Sprintf("EMP-%04d", employeeSeq),
		FullName:     fmt.Sprintf("Employee %d", employeeSeq),
		Email:        fmt.Sprintf("employee%d@epicevents.com", employeeSeq),
		PasswordHash: "$2a$10$fakehashforstoretestsonlyabcdefghijklmnopqrstuv",
		Department:   dept,
		Role:         "staff",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.CreateEmployee(context.Background(), e))
	return e
}

var clientSeq int

func makeClient(t *testing.T, s *SQLiteStore, commercialID int64) *Client {
	t.Helper()

	clientSeq++
	now := time.Now().UTC()
	c := &Client{
		FullName:     fmt.Sprintf("Client %d", clientSeq),
		Email:        fmt.Sprintf("client%d@example.com", clientSeq),
		Phone:        "+33 6 12 34 56 78",
		CompanyName:  "Example Corp",
		CommercialID: commercialID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.CreateClient(context.Background(), c))
	return c
}

func makeContract(t *testing.T, s *SQLiteStore, clientID, commercialID int64, signed bool) *Contract {
	t.Helper()

	c := &Contract{
		ClientID:       clientID,
		CommercialID:   commercialID,
		TotalCents:     100000,
		RemainingCents: 100000,
		IsSigned:       signed,
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, s.CreateContract(context.Background(), c))
	return c
}

func makeEvent(t *testing.T, s *SQLiteStore, contractID, supportID int64) *Event {
	t.Helper()

	start := time.Date(2026, 6, 4, 13, 0, 0, 0, time.UTC)
	e := &Event{
		ContractID: contractID,
		SupportID:  supportID,
		Name:       "Launch Party",
		StartDate:  start,
		EndDate:    start.Add(4 * time.Hour),
		Location:   "53 Rue du Château, Candé-sur-Beuvron",
		Attendees:  75,
		Notes:      "Catering arrives at noon",
	}
	require.NoError(t, s.CreateEvent(context.Background(), e))
	return e
}
