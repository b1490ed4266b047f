// ABOUTME: Client entity store methods
// ABOUTME: Clients carry a commercial_id foreign key naming their owning commercial

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateClient creates a new client. The assigned ID is written back to the
// struct. Returns ErrDuplicateEmail if the email is already registered.
func (s *SQLiteStore) CreateClient(ctx context.Context, c *Client) error {
	query := `
		INSERT INTO clients (full_name, email, phone, company_name, commercial_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		c.FullName,
		c.Email,
		nullString(c.Phone),
		nullString(c.CompanyName),
		c.CommercialID,
		c.CreatedAt.UTC().Format(time.RFC3339),
		c.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("inserting client: %w", err)
	}

	c.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting client id: %w", err)
	}

	s.logger.Info("created client", "id", c.ID, "email", c.Email, "commercial_id", c.CommercialID)
	return nil
}

// GetClient retrieves a client by ID.
// Returns ErrClientNotFound if the client doesn't exist.
func (s *SQLiteStore) GetClient(ctx context.Context, id int64) (*Client, error) {
	query := `
		SELECT id, full_name, email, phone, company_name, commercial_id, created_at, updated_at
		FROM clients
		WHERE id = ?
	`
	return s.scanClient(s.db.QueryRowContext(ctx, query, id))
}

// GetClientByEmail retrieves a client by email.
// Returns ErrClientNotFound if the client doesn't exist.
func (s *SQLiteStore) GetClientByEmail(ctx context.Context, email string) (*Client, error) {
	query := `
		SELECT id, full_name, email, phone, company_name, commercial_id, created_at, updated_at
		FROM clients
		WHERE email = ?
	`
	return s.scanClient(s.db.QueryRowContext(ctx, query, email))
}

func (s *SQLiteStore) scanClient(row *sql.Row) (*Client, error) {
	var c Client
	var phone, company sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&c.ID,
		&c.FullName,
		&c.Email,
		&phone,
		&company,
		&c.CommercialID,
		&createdAtStr,
		&updatedAtStr,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying client: %w", err)
	}

	c.Phone = phone.String
	c.CompanyName = company.String

	c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &c, nil
}

// UpdateClient updates an existing client.
// Returns ErrClientNotFound if the client doesn't exist.
func (s *SQLiteStore) UpdateClient(ctx context.Context, c *Client) error {
	query := `
		UPDATE clients
		SET full_name = ?, email = ?, phone = ?, company_name = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		c.FullName,
		c.Email,
		nullString(c.Phone),
		nullString(c.CompanyName),
		time.Now().UTC().Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("updating client: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	s.logger.Info("updated client", "id", c.ID)
	return nil
}

// ListClients returns all clients ordered by creation time.
func (s *SQLiteStore) ListClients(ctx context.Context) ([]*Client, error) {
	query := `
		SELECT id, full_name, email, phone, company_name, commercial_id, created_at, updated_at
		FROM clients
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying clients: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var clients []*Client
	for rows.Next() {
		var c Client
		var phone, company sql.NullString
		var createdAtStr, updatedAtStr string

		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &phone, &company, &c.CommercialID, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}

		c.Phone = phone.String
		c.CompanyName = company.String

		c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		clients = append(clients, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clients: %w", err)
	}

	return clients, nil
}
