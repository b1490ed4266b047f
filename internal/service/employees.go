// ABOUTME: Employee management use cases, restricted to the management department
// ABOUTME: Handles registration, profile/role/password changes, deletion and listing

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/epicevents/crm/internal/auth"
	"github.com/epicevents/crm/internal/store"
)

// ErrWrongDepartment is returned when an operation targets an employee from
// the wrong department (e.g. assigning a commercial as event support).
var ErrWrongDepartment = errors.New("employee is in the wrong department")

// EmployeeService implements employee management use cases.
type EmployeeService struct {
	guard
	store store.Store
}

// NewEmployeeService creates an employee service.
func NewEmployeeService(engine *auth.Engine, s store.Store) *EmployeeService {
	return &EmployeeService{guard: guard{auth: engine}, store: s}
}

// CreateEmployeeInput carries the fields for registering an employee.
type CreateEmployeeInput struct {
	FullName   string
	Email      string
	Department store.Department
	Role       string
	Password   string
}

// Create registers a new employee. Management only. The password is hashed
// before it ever reaches the store; the plaintext is not retained.
func (s *EmployeeService) Create(ctx context.Context, input CreateEmployeeInput) (*store.Employee, error) {
	if _, err := s.require(ctx, store.DepartmentManagement); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	employee := &store.Employee{
		Number:       uuid.NewString(),
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hash,
		Department:   input.Department,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateEmployee(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// UpdateEmployeeInput carries optional updates; empty fields are unchanged.
type UpdateEmployeeInput struct {
	FullName   string
	Department store.Department
	Role       string
	Password   string
}

// Update modifies an existing employee looked up by email. Management only.
// A new password is re-hashed; the old hash is discarded.
func (s *EmployeeService) Update(ctx context.Context, email string, input UpdateEmployeeInput) (*store.Employee, error) {
	if _, err := s.require(ctx, store.DepartmentManagement); err != nil {
		return nil, err
	}

	employee, err := s.store.GetEmployeeByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if input.FullName != "" {
		employee.FullName = input.FullName
	}
	if input.Department != "" {
		employee.Department = input.Department
	}
	if input.Role != "" {
		employee.Role = input.Role
	}
	if input.Password != "" {
		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		employee.PasswordHash = hash
	}

	if err := s.store.UpdateEmployee(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Delete removes an employee looked up by email. Management only.
func (s *EmployeeService) Delete(ctx context.Context, email string) error {
	if _, err := s.require(ctx, store.DepartmentManagement); err != nil {
		return err
	}

	employee, err := s.store.GetEmployeeByEmail(ctx, email)
	if err != nil {
		return err
	}

	return s.store.DeleteEmployee(ctx, employee.ID)
}

// List returns all employees. Any authenticated employee may list.
func (s *EmployeeService) List(ctx context.Context) ([]*store.Employee, error) {
	if _, err := s.caller(ctx); err != nil {
		return nil, err
	}
	return s.store.ListEmployees(ctx)
}

// Bootstrap creates the first management employee when the store is empty,
// bypassing the guard since no principal can exist yet. Returns an error if
// any employee is already registered.
func (s *EmployeeService) Bootstrap(ctx context.Context, input CreateEmployeeInput) (*store.Employee, error) {
	count, err := s.store.CountEmployees(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("store already has %d employees: %w", count, ErrPermissionDenied)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	employee := &store.Employee{
		Number:       uuid.NewString(),
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hash,
		Department:   store.DepartmentManagement,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateEmployee(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}
