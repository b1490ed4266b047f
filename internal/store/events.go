// ABOUTME: Event entity store methods
// ABOUTME: Events attach to contracts; support_id is nullable until assignment

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateEvent creates a new event. The assigned ID is written back to the
// struct. A zero SupportID is stored as NULL (unassigned).
func (s *SQLiteStore) CreateEvent(ctx context.Context, e *Event) error {
	query := `
		INSERT INTO events (contract_id, support_id, name, start_date, end_date, location, attendees, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		e.ContractID,
		nullInt64(e.SupportID),
		e.Name,
		e.StartDate.UTC().Format(time.RFC3339),
		e.EndDate.UTC().Format(time.RFC3339),
		nullString(e.Location),
		e.Attendees,
		nullString(e.Notes),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	e.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting event id: %w", err)
	}

	s.logger.Info("created event", "id", e.ID, "contract_id", e.ContractID, "name", e.Name)
	return nil
}

// nullInt64 returns nil for zero values, otherwise the value itself
func nullInt64(n int64) any {
	if n == 0 {
		return nil
	}
	return n
}

// GetEvent retrieves an event by ID.
// Returns ErrEventNotFound if the event doesn't exist.
func (s *SQLiteStore) GetEvent(ctx context.Context, id int64) (*Event, error) {
	query := `
		SELECT id, contract_id, support_id, name, start_date, end_date, location, attendees, notes
		FROM events
		WHERE id = ?
	`

	var e Event
	var supportID sql.NullInt64
	var attendees sql.NullInt64
	var location, notes sql.NullString
	var startStr, endStr string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.ContractID,
		&supportID,
		&e.Name,
		&startStr,
		&endStr,
		&location,
		&attendees,
		&notes,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying event: %w", err)
	}

	e.SupportID = supportID.Int64
	e.Location = location.String
	e.Attendees = int(attendees.Int64)
	e.Notes = notes.String

	e.StartDate, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	e.EndDate, err = time.Parse(time.RFC3339, endStr)
	if err != nil {
		return nil, fmt.Errorf("parsing end_date: %w", err)
	}

	return &e, nil
}

// UpdateEvent updates an existing event.
// Returns ErrEventNotFound if the event doesn't exist.
func (s *SQLiteStore) UpdateEvent(ctx context.Context, e *Event) error {
	query := `
		UPDATE events
		SET support_id = ?, name = ?, start_date = ?, end_date = ?, location = ?, attendees = ?, notes = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		nullInt64(e.SupportID),
		e.Name,
		e.StartDate.UTC().Format(time.RFC3339),
		e.EndDate.UTC().Format(time.RFC3339),
		nullString(e.Location),
		e.Attendees,
		nullString(e.Notes),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	s.logger.Info("updated event", "id", e.ID)
	return nil
}

// ListEvents returns events matching the filter, ordered by start date.
// Zero-valued filter fields are ignored.
func (s *SQLiteStore) ListEvents(ctx context.Context, filter EventFilter) ([]*Event, error) {
	query := `
		SELECT id, contract_id, support_id, name, start_date, end_date, location, attendees, notes
		FROM events
	`

	var conds []string
	var args []any

	if filter.NoSupport {
		conds = append(conds, "support_id IS NULL")
	}
	if filter.SupportID != 0 {
		conds = append(conds, "support_id = ?")
		args = append(args, filter.SupportID)
	}

	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY start_date ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []*Event
	for rows.Next() {
		var e Event
		var supportID, attendees sql.NullInt64
		var location, notes sql.NullString
		var startStr, endStr string

		if err := rows.Scan(&e.ID, &e.ContractID, &supportID, &e.Name, &startStr, &endStr, &location, &attendees, &notes); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}

		e.SupportID = supportID.Int64
		e.Location = location.String
		e.Attendees = int(attendees.Int64)
		e.Notes = notes.String

		e.StartDate, err = time.Parse(time.RFC3339, startStr)
		if err != nil {
			return nil, fmt.Errorf("parsing start_date: %w", err)
		}
		e.EndDate, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			return nil, fmt.Errorf("parsing end_date: %w", err)
		}
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}
