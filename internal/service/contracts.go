// ABOUTME: Contract management use cases
// ABOUTME: Creation is management-only; commercial employees manage their own contracts

package service

import (
	"context"
	"errors"
	"time"

	"github.com/epicevents/crm/internal/auth"
	"github.com/epicevents/crm/internal/store"
)

// ErrContractNotSigned is returned when an operation requires a signed
// contract.
var ErrContractNotSigned = errors.New("contract is not signed")

// ContractService implements contract management use cases.
type ContractService struct {
	guard
	store store.Store
}

// NewContractService creates a contract service.
func NewContractService(engine *auth.Engine, s store.Store) *ContractService {
	return &ContractService{guard: guard{auth: engine}, store: s}
}

// CreateContractInput carries the fields for creating a contract.
type CreateContractInput struct {
	ClientID       int64
	CommercialID   int64
	TotalCents     int64
	RemainingCents int64
}

// Create creates a new contract. Management only. The named client must
// exist and the named commercial must be a commercial-department employee.
func (s *ContractService) Create(ctx context.Context, input CreateContractInput) (*store.Contract, error) {
	if _, err := s.require(ctx, store.DepartmentManagement); err != nil {
		return nil, err
	}

	if _, err := s.store.GetClient(ctx, input.ClientID); err != nil {
		return nil, err
	}

	commercial, err := s.store.GetEmployee(ctx, input.CommercialID)
	if err != nil {
		return nil, err
	}
	if commercial.Department != store.DepartmentCommercial {
		return nil, ErrWrongDepartment
	}

	contract := &store.Contract{
		ClientID:       input.ClientID,
		CommercialID:   input.CommercialID,
		TotalCents:     input.TotalCents,
		RemainingCents: input.RemainingCents,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.store.CreateContract(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

// UpdateContractInput carries optional updates; nil fields are unchanged.
type UpdateContractInput struct {
	TotalCents     *int64
	RemainingCents *int64
}

// Update modifies an existing contract's amounts. Management may update any
// contract; a commercial employee only those assigned to them.
func (s *ContractService) Update(ctx context.Context, contractID int64, input UpdateContractInput) (*store.Contract, error) {
	contract, err := s.ownedContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if input.TotalCents != nil {
		contract.TotalCents = *input.TotalCents
	}
	if input.RemainingCents != nil {
		contract.RemainingCents = *input.RemainingCents
	}

	if err := s.store.UpdateContract(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

// Sign marks a contract as signed. Same access rules as Update. Signing an
// already-signed contract is a no-op.
func (s *ContractService) Sign(ctx context.Context, contractID int64) (*store.Contract, error) {
	contract, err := s.ownedContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if contract.IsSigned {
		return contract, nil
	}

	contract.IsSigned = true
	if err := s.store.UpdateContract(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

// ownedContract resolves the contract and enforces the shared access rule:
// management or the contract's assigned commercial.
func (s *ContractService) ownedContract(ctx context.Context, contractID int64) (*store.Contract, error) {
	caller, err := s.require(ctx, store.DepartmentManagement, store.DepartmentCommercial)
	if err != nil {
		return nil, err
	}

	contract, err := s.store.GetContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if caller.Department != store.DepartmentManagement && contract.CommercialID != caller.ID {
		return nil, ErrNotOwner
	}
	return contract, nil
}

// ListContractsOptions narrows contract listings.
type ListContractsOptions struct {
	Unsigned bool
	Unpaid   bool
}

// List returns contracts visible to the caller. Management sees all
// contracts; a commercial employee sees only their own.
func (s *ContractService) List(ctx context.Context, opts ListContractsOptions) ([]*store.Contract, error) {
	caller, err := s.require(ctx, store.DepartmentManagement, store.DepartmentCommercial)
	if err != nil {
		return nil, err
	}

	filter := store.ContractFilter{
		Unsigned: opts.Unsigned,
		Unpaid:   opts.Unpaid,
	}
	if caller.Department != store.DepartmentManagement {
		filter.CommercialID = caller.ID
	}

	return s.store.ListContracts(ctx, filter)
}
