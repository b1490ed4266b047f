// ABOUTME: Store interface and data types for epicevents persistence
// ABOUTME: Defines Employee, Client, Contract, Event structs and the Store interface

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrEmployeeNotFound is returned when an employee doesn't exist
var ErrEmployeeNotFound = errors.New("employee not found")

// ErrClientNotFound is returned when a client doesn't exist
var ErrClientNotFound = errors.New("client not found")

// ErrContractNotFound is returned when a contract doesn't exist
var ErrContractNotFound = errors.New("contract not found")

// ErrEventNotFound is returned when an event doesn't exist
var ErrEventNotFound = errors.New("event not found")

// ErrDuplicateEmail is returned when creating a record with an email that
// already exists
var ErrDuplicateEmail = errors.New("email already exists")

// Department represents the role-department an employee belongs to
type Department string

const (
	DepartmentCommercial Department = "commercial"
	DepartmentSupport    Department = "support"
	DepartmentManagement Department = "management"
)

// ValidDepartments lists all valid departments
var ValidDepartments = []Department{
	DepartmentCommercial,
	DepartmentSupport,
	DepartmentManagement,
}

// ParseDepartment converts a string to a Department, validating it against
// the closed set of departments.
func ParseDepartment(s string) (Department, error) {
	d := Department(s)
	for _, valid := range ValidDepartments {
		if d == valid {
			return d, nil
		}
	}
	return "", errors.New("invalid department: " + s)
}

// Employee represents an identity record (a principal). The password hash is
// opaque and write-only from the employee's perspective; no accessor ever
// derives the plaintext.
type Employee struct {
	ID           int64
	Number       string // unique employee identifier
	FullName     string
	Email        string
	PasswordHash string
	Department   Department
	Role         string // specific role title within the department
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPermission reports whether the employee's department satisfies the
// required department. Management is a super-scope and always passes.
func (e *Employee) HasPermission(required Department) bool {
	if e.Department == DepartmentManagement {
		return true
	}
	return e.Department == required
}

// Client represents a customer record owned by a commercial employee
type Client struct {
	ID           int64
	FullName     string
	Email        string
	Phone        string
	CompanyName  string
	CommercialID int64 // owning commercial employee
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Contract represents a sales contract between a client and a commercial
// employee. Amounts are stored in cents.
type Contract struct {
	ID             int64
	ClientID       int64
	CommercialID   int64
	TotalCents     int64
	RemainingCents int64
	IsSigned       bool
	CreatedAt      time.Time
}

// Event represents an organized event attached to a signed contract
type Event struct {
	ID         int64
	ContractID int64
	SupportID  int64 // assigned support employee, 0 if unassigned
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	Location   string
	Attendees  int
	Notes      string
}

// EventFilter narrows event listings
type EventFilter struct {
	NoSupport bool  // only events without an assigned support employee
	SupportID int64 // only events assigned to this support employee
}

// ContractFilter narrows contract listings
type ContractFilter struct {
	Unsigned     bool  // only unsigned contracts
	Unpaid       bool  // only contracts with a remaining amount
	CommercialID int64 // only contracts owned by this commercial employee
}

// CredentialStore is the subset of the store the auth engine consumes.
// The engine is a read-only consumer of employee records.
type CredentialStore interface {
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (*Employee, error)
}

// Store defines the interface for CRM persistence
type Store interface {
	CredentialStore

	// Employees
	CreateEmployee(ctx context.Context, e *Employee) error
	UpdateEmployee(ctx context.Context, e *Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
	ListEmployees(ctx context.Context) ([]*Employee, error)
	CountEmployees(ctx context.Context) (int, error)

	// Clients
	CreateClient(ctx context.Context, c *Client) error
	GetClient(ctx context.Context, id int64) (*Client, error)
	GetClientByEmail(ctx context.Context, email string) (*Client, error)
	UpdateClient(ctx context.Context, c *Client) error
	ListClients(ctx context.Context) ([]*Client, error)

	// Contracts
	CreateContract(ctx context.Context, c *Contract) error
	GetContract(ctx context.Context, id int64) (*Contract, error)
	UpdateContract(ctx context.Context, c *Contract) error
	ListContracts(ctx context.Context, filter ContractFilter) ([]*Contract, error)

	// Events
	CreateEvent(ctx context.Context, e *Event) error
	GetEvent(ctx context.Context, id int64) (*Event, error)
	UpdateEvent(ctx context.Context, e *Event) error
	ListEvents(ctx context.Context, filter EventFilter) ([]*Event, error)

	// Close releases any resources held by the store
	Close() error
}
