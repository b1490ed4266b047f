// ABOUTME: Authorization guard shared by all CRM services
// ABOUTME: Resolves the caller and enforces department scopes before each use case

package service

import (
	"context"
	"errors"

	"github.com/epicevents/crm/internal/auth"
	"github.com/epicevents/crm/internal/store"
)

// ErrNotAuthenticated is returned when no valid session is present.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrPermissionDenied is returned when the caller's department does not
// satisfy the operation's required scope.
var ErrPermissionDenied = errors.New("permission denied")

// ErrNotOwner is returned when the caller is authorized by department but is
// not the recorded owner of the target record.
var ErrNotOwner = errors.New("not the owner of this record")

// guard wraps the auth engine with the scope checks the services share.
type guard struct {
	auth *auth.Engine
}

// caller resolves the current principal. Token expiry and invalidation are
// propagated unchanged so the CLI can render distinct messages; an absent
// session or deleted employee surfaces as ErrNotAuthenticated.
func (g guard) caller(ctx context.Context) (*store.Employee, error) {
	employee, err := g.auth.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrNotAuthenticated
	}
	return employee, nil
}

// require resolves the caller and checks that at least one of the given
// departments is satisfied. Management passes every check.
func (g guard) require(ctx context.Context, departments ...store.Department) (*store.Employee, error) {
	employee, err := g.caller(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range departments {
		if employee.HasPermission(d) {
			return employee, nil
		}
	}
	return nil, ErrPermissionDenied
}
