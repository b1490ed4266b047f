// ABOUTME: Client management use cases for commercial employees
// ABOUTME: Updates require the caller to be the client's assigned commercial

package service

import (
	"context"
	"time"

	"github.com/epicevents/crm/internal/auth"
	"github.com/epicevents/crm/internal/store"
)

// ClientService implements client management use cases.
type ClientService struct {
	guard
	store store.Store
}

// NewClientService creates a client service.
func NewClientService(engine *auth.Engine, s store.Store) *ClientService {
	return &ClientService{guard: guard{auth: engine}, store: s}
}

// CreateClientInput carries the fields for creating a client.
type CreateClientInput struct {
	FullName    string
	Email       string
	Phone       string
	CompanyName string
}

// Create creates a new client owned by the calling commercial employee.
func (s *ClientService) Create(ctx context.Context, input CreateClientInput) (*store.Client, error) {
	caller, err := s.require(ctx, store.DepartmentCommercial)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	client := &store.Client{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		CompanyName:  input.CompanyName,
		CommercialID: caller.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateClient(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// UpdateClientInput carries optional updates; empty fields are unchanged.
type UpdateClientInput struct {
	FullName    string
	Email       string
	Phone       string
	CompanyName string
}

// Update modifies an existing client. The caller must be a commercial
// employee and the client's assigned commercial; management does not bypass
// the ownership check here since clients belong to their commercial.
func (s *ClientService) Update(ctx context.Context, clientID int64, input UpdateClientInput) (*store.Client, error) {
	caller, err := s.require(ctx, store.DepartmentCommercial)
	if err != nil {
		return nil, err
	}

	client, err := s.store.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if client.CommercialID != caller.ID {
		return nil, ErrNotOwner
	}

	if input.FullName != "" {
		client.FullName = input.FullName
	}
	if input.Email != "" {
		client.Email = input.Email
	}
	if input.Phone != "" {
		client.Phone = input.Phone
	}
	if input.CompanyName != "" {
		client.CompanyName = input.CompanyName
	}

	if err := s.store.UpdateClient(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// List returns all clients. Any authenticated employee may list.
func (s *ClientService) List(ctx context.Context) ([]*store.Client, error) {
	if _, err := s.caller(ctx); err != nil {
		return nil, err
	}
	return s.store.ListClients(ctx)
}
