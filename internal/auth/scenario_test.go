// ABOUTME: End-to-end session lifecycle walkthrough against the auth engine
// ABOUTME: Login, identity resolution, authorization and logout in one flow

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicevents/crm/internal/store"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	fx := newEngineFixture(t, time.Hour)
	fx.addEmployee(t, 1, "Alice Martin", "alice@epicevents.com", "Secret123", store.DepartmentCommercial)
	fx.addEmployee(t, 2, "Bob Durand", "bob@epicevents.com", "Hunter456", store.DepartmentSupport)

	// Nobody is logged in yet
	employee, err := fx.engine.CurrentPrincipal(ctx)
	require.NoError(t, err)
	require.Nil(t, employee)

	// Alice logs in
	ok, name, err := fx.engine.Authenticate(ctx, "alice@epicevents.com", "Secret123")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Alice Martin", name)

	// She is the current principal and holds commercial scope only
	employee, err = fx.engine.CurrentPrincipal(ctx)
	require.NoError(t, err)
	require.NotNil(t, employee)
	assert.Equal(t, "Alice Martin", employee.FullName)
	assert.Equal(t, store.DepartmentCommercial, employee.Department)

	authorized, err := fx.engine.HasPermission(ctx, store.DepartmentCommercial)
	require.NoError(t, err)
	assert.True(t, authorized)

	authorized, err = fx.engine.HasPermission(ctx, store.DepartmentManagement)
	require.NoError(t, err)
	assert.False(t, authorized)

	// Bob logs in on the same machine; his session replaces Alice's
	ok, name, err = fx.engine.Authenticate(ctx, "bob@epicevents.com", "Hunter456")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Bob Durand", name)

	employee, err = fx.engine.CurrentPrincipal(ctx)
	require.NoError(t, err)
	require.NotNil(t, employee)
	assert.Equal(t, int64(2), employee.ID)

	// Logout returns the slot to Anonymous
	present, err := fx.engine.Logout()
	require.NoError(t, err)
	assert.True(t, present)

	employee, err = fx.engine.CurrentPrincipal(ctx)
	require.NoError(t, err)
	assert.Nil(t, employee)

	authorized, err = fx.engine.HasPermission(ctx, store.DepartmentSupport)
	require.NoError(t, err)
	assert.False(t, authorized)
}
