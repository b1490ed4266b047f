// ABOUTME: Event management use cases
// ABOUTME: Events require a signed contract; updates are scoped to the assigned support

package service

import (
	"context"
	"time"

	"github.com/epicevents/crm/internal/auth"
	"github.com/epicevents/crm/internal/store"
)

// EventService implements event management use cases.
type EventService struct {
	guard
	store store.Store
}

// NewEventService creates an event service.
func NewEventService(engine *auth.Engine, s store.Store) *EventService {
	return &EventService{guard: guard{auth: engine}, store: s}
}

// CreateEventInput carries the fields for creating an event.
type CreateEventInput struct {
	ContractID int64
	SupportID  int64 // optional, 0 leaves the event unassigned
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	Location   string
	Attendees  int
	Notes      string
}

// Create creates a new event for a signed contract. Commercial employees may
// only create events for their own contracts; management may create for any.
// An optional support assignee must be a support-department employee.
func (s *EventService) Create(ctx context.Context, input CreateEventInput) (*store.Event, error) {
	caller, err := s.require(ctx, store.DepartmentCommercial, store.DepartmentManagement)
	if err != nil {
		return nil, err
	}

	contract, err := s.store.GetContract(ctx, input.ContractID)
	if err != nil {
		return nil, err
	}
	if !contract.IsSigned {
		return nil, ErrContractNotSigned
	}
	if caller.Department != store.DepartmentManagement && contract.CommercialID != caller.ID {
		return nil, ErrNotOwner
	}

	if input.SupportID != 0 {
		if err := s.checkSupport(ctx, input.SupportID); err != nil {
			return nil, err
		}
	}

	event := &store.Event{
		ContractID: input.ContractID,
		SupportID:  input.SupportID,
		Name:       input.Name,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Location:   input.Location,
		Attendees:  input.Attendees,
		Notes:      input.Notes,
	}

	if err := s.store.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEventInput carries optional updates; zero fields are unchanged.
type UpdateEventInput struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Location  string
	Attendees int
	Notes     string
}

// Update modifies an existing event. A support employee may only update
// events assigned to them; a commercial only events on their own contracts;
// management may update any.
func (s *EventService) Update(ctx context.Context, eventID int64, input UpdateEventInput) (*store.Event, error) {
	caller, err := s.require(ctx, store.DepartmentManagement, store.DepartmentCommercial, store.DepartmentSupport)
	if err != nil {
		return nil, err
	}

	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	switch caller.Department {
	case store.DepartmentSupport:
		if event.SupportID != caller.ID {
			return nil, ErrNotOwner
		}
	case store.DepartmentCommercial:
		contract, err := s.store.GetContract(ctx, event.ContractID)
		if err != nil {
			return nil, err
		}
		if contract.CommercialID != caller.ID {
			return nil, ErrNotOwner
		}
	}

	if input.Name != "" {
		event.Name = input.Name
	}
	if !input.StartDate.IsZero() {
		event.StartDate = input.StartDate
	}
	if !input.EndDate.IsZero() {
		event.EndDate = input.EndDate
	}
	if input.Location != "" {
		event.Location = input.Location
	}
	if input.Attendees != 0 {
		event.Attendees = input.Attendees
	}
	if input.Notes != "" {
		event.Notes = input.Notes
	}

	if err := s.store.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// AssignSupport assigns a support employee to an event. Management only.
func (s *EventService) AssignSupport(ctx context.Context, eventID, supportID int64) (*store.Event, error) {
	if _, err := s.require(ctx, store.DepartmentManagement); err != nil {
		return nil, err
	}

	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.checkSupport(ctx, supportID); err != nil {
		return nil, err
	}

	event.SupportID = supportID
	if err := s.store.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// checkSupport verifies the employee exists and is in the support department.
func (s *EventService) checkSupport(ctx context.Context, supportID int64) error {
	support, err := s.store.GetEmployee(ctx, supportID)
	if err != nil {
		return err
	}
	if support.Department != store.DepartmentSupport {
		return ErrWrongDepartment
	}
	return nil
}

// ListEventsOptions narrows event listings.
type ListEventsOptions struct {
	NoSupport bool // only events without an assigned support employee
	Mine      bool // only events assigned to the caller
}

// List returns events. Any authenticated employee may list.
func (s *EventService) List(ctx context.Context, opts ListEventsOptions) ([]*store.Event, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	filter := store.EventFilter{NoSupport: opts.NoSupport}
	if opts.Mine {
		filter.SupportID = caller.ID
	}

	return s.store.ListEvents(ctx, filter)
}
