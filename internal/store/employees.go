// ABOUTME: Employee entity store methods backing the credential store
// ABOUTME: Lookup by id/email plus create, update, delete and list operations

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateEmployee creates a new employee. The assigned ID is written back to
// the struct. Returns ErrDuplicateEmail if the email is already registered.
func (s *SQLiteStore) CreateEmployee(ctx context.Context, e *Employee) error {
	query := `
		INSERT INTO employees (employee_number, full_name, email, password_hash, department, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		e.Number,
		e.FullName,
		e.Email,
		e.PasswordHash,
		e.Department,
		e.Role,
		e.CreatedAt.UTC().Format(time.RFC3339),
		e.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("inserting employee: %w", err)
	}

	e.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting employee id: %w", err)
	}

	s.logger.Info("created employee", "id", e.ID, "email", e.Email, "department", e.Department)
	return nil
}

// GetEmployee retrieves an employee by ID.
// Returns ErrEmployeeNotFound if the employee doesn't exist.
func (s *SQLiteStore) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	query := `
		SELECT id, employee_number, full_name, email, password_hash, department, role, created_at, updated_at
		FROM employees
		WHERE id = ?
	`
	return s.scanEmployee(s.db.QueryRowContext(ctx, query, id))
}

// GetEmployeeByEmail retrieves an employee by email.
// Returns ErrEmployeeNotFound if the employee doesn't exist.
func (s *SQLiteStore) GetEmployeeByEmail(ctx context.Context, email string) (*Employee, error) {
	query := `
		SELECT id, employee_number, full_name, email, password_hash, department, role, created_at, updated_at
		FROM employees
		WHERE email = ?
	`
	return s.scanEmployee(s.db.QueryRowContext(ctx, query, email))
}

func (s *SQLiteStore) scanEmployee(row *sql.Row) (*Employee, error) {
	var e Employee
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&e.ID,
		&e.Number,
		&e.FullName,
		&e.Email,
		&e.PasswordHash,
		&e.Department,
		&e.Role,
		&createdAtStr,
		&updatedAtStr,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying employee: %w", err)
	}

	e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &e, nil
}

// UpdateEmployee updates an existing employee.
// Returns ErrEmployeeNotFound if the employee doesn't exist.
func (s *SQLiteStore) UpdateEmployee(ctx context.Context, e *Employee) error {
	query := `
		UPDATE employees
		SET full_name = ?, email = ?, password_hash = ?, department = ?, role = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		e.FullName,
		e.Email,
		e.PasswordHash,
		e.Department,
		e.Role,
		time.Now().UTC().Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("updating employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}

	s.logger.Info("updated employee", "id", e.ID)
	return nil
}

// DeleteEmployee removes an employee.
// Returns ErrEmployeeNotFound if the employee doesn't exist.
func (s *SQLiteStore) DeleteEmployee(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}

	s.logger.Info("deleted employee", "id", id)
	return nil
}

// ListEmployees returns all employees ordered by creation time.
func (s *SQLiteStore) ListEmployees(ctx context.Context) ([]*Employee, error) {
	query := `
		SELECT id, employee_number, full_name, email, password_hash, department, role, created_at, updated_at
		FROM employees
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying employees: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var employees []*Employee
	for rows.Next() {
		var e Employee
		var createdAtStr, updatedAtStr string

		if err := rows.Scan(&e.ID, &e.Number, &e.FullName, &e.Email, &e.PasswordHash, &e.Department, &e.Role, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}

		e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		employees = append(employees, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employees: %w", err)
	}

	return employees, nil
}

// CountEmployees returns the number of employees.
func (s *SQLiteStore) CountEmployees(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting employees: %w", err)
	}
	return count, nil
}
