// ABOUTME: Contract entity store methods
// ABOUTME: Amounts are stored as integer cents; listing supports unsigned/unpaid filters

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateContract creates a new contract. The assigned ID is written back to
// the struct.
func (s *SQLiteStore) CreateContract(ctx context.Context, c *Contract) error {
	query := `
		INSERT INTO contracts (client_id, commercial_id, total_cents, remaining_cents, is_signed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		c.ClientID,
		c.CommercialID,
		c.TotalCents,
		c.RemainingCents,
		c.IsSigned,
		c.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting contract: %w", err)
	}

	c.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting contract id: %w", err)
	}

	s.logger.Info("created contract", "id", c.ID, "client_id", c.ClientID, "commercial_id", c.CommercialID)
	return nil
}

// GetContract retrieves a contract by ID.
// Returns ErrContractNotFound if the contract doesn't exist.
func (s *SQLiteStore) GetContract(ctx context.Context, id int64) (*Contract, error) {
	query := `
		SELECT id, client_id, commercial_id, total_cents, remaining_cents, is_signed, created_at
		FROM contracts
		WHERE id = ?
	`

	var c Contract
	var createdAtStr string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.ClientID,
		&c.CommercialID,
		&c.TotalCents,
		&c.RemainingCents,
		&c.IsSigned,
		&createdAtStr,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrContractNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying contract: %w", err)
	}

	c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &c, nil
}

// UpdateContract updates an existing contract.
// Returns ErrContractNotFound if the contract doesn't exist.
func (s *SQLiteStore) UpdateContract(ctx context.Context, c *Contract) error {
	query := `
		UPDATE contracts
		SET client_id = ?, commercial_id = ?, total_cents = ?, remaining_cents = ?, is_signed = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		c.ClientID,
		c.CommercialID,
		c.TotalCents,
		c.RemainingCents,
		c.IsSigned,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating contract: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrContractNotFound
	}

	s.logger.Info("updated contract", "id", c.ID, "is_signed", c.IsSigned)
	return nil
}

// ListContracts returns contracts matching the filter, ordered by creation
// time. Zero-valued filter fields are ignored.
func (s *SQLiteStore) ListContracts(ctx context.Context, filter ContractFilter) ([]*Contract, error) {
	query := `
		SELECT id, client_id, commercial_id, total_cents, remaining_cents, is_signed, created_at
		FROM contracts
	`

	var conds []string
	var args []any

	if filter.Unsigned {
		conds = append(conds, "is_signed = 0")
	}
	if filter.Unpaid {
		conds = append(conds, "remaining_cents > 0")
	}
	if filter.CommercialID != 0 {
		conds = append(conds, "commercial_id = ?")
		args = append(args, filter.CommercialID)
	}

	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying contracts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var contracts []*Contract
	for rows.Next() {
		var c Contract
		var createdAtStr string

		if err := rows.Scan(&c.ID, &c.ClientID, &c.CommercialID, &c.TotalCents, &c.RemainingCents, &c.IsSigned, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning contract: %w", err)
		}

		c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		contracts = append(contracts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contracts: %w", err)
	}

	return contracts, nil
}
