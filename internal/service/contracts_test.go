// ABOUTME: Tests for contract management use cases
// ABOUTME: Covers management-only creation, ownership on updates and scoped listing

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicevents/crm/internal/store"
)

func TestContractService_Create(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	manager := fx.seedEmployee(t, "Manager", store.DepartmentManagement)
	commercial := fx.seedEmployee(t, "Commercial", store.DepartmentCommercial)
	client := fx.seedClient(t, commercial.ID)

	fx.loginAs(t, manager)
	contract, err := fx.contracts.Create(ctx, CreateContractInput{
		ClientID:       client.ID,
		CommercialID:   commercial.ID,
		TotalCents:     250000,
		RemainingCents: 250000,
	})
	require.NoError(t, err)
	assert.NotZero(t, contract.ID)
	assert.False(t, contract.IsSigned)
}

func TestContractService_CreateRequiresManagement(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	commercial := fx.seedEmployee(t, "Commercial", store.DepartmentCommercial)
	client := fx.seedClient(t, commercial.ID)

	fx.loginAs(t, commercial)
	_, err := fx.contracts.Create(ctx, CreateContractInput{
		ClientID:     client.ID,
		CommercialID: commercial.ID,
		TotalCents:   250000,
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestContractService_CreateValidatesReferences(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	manager := fx.seedEmployee(t, "Manager", store.DepartmentManagement)
	support := fx.seedEmployee(t, "Support", store.DepartmentSupport)
	commercial := fx.seedEmployee(t, "Commercial", store.DepartmentCommercial)
	client := fx.seedClient(t, commercial.ID)
	fx.loginAs(t, manager)

	// Unknown client
	_, err := fx.contracts.Create(ctx, CreateContractInput{ClientID: 999, CommercialID: commercial.ID})
	assert.ErrorIs(t, err, store.ErrClientNotFound)

	// Unknown commercial
	_, err = fx.contracts.Create(ctx, CreateContractInput{ClientID: client.ID, CommercialID: 999})
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)

	// Assignee from the wrong department
	_, err = fx.contracts.Create(ctx, CreateContractInput{ClientID: client.ID, CommercialID: support.ID})
	assert.ErrorIs(t, err, ErrWrongDepartment)
}

func TestContractService_UpdateOwnership(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	owner := fx.seedEmployee(t, "Owner", store.DepartmentCommercial)
	rival := fx.seedEmployee(t, "Rival", store.DepartmentCommercial)
	manager := fx.seedEmployee(t, "Manager", store.DepartmentManagement)
	client := fx.seedClient(t, owner.ID)
	contract := fx.seedContract(t, client.ID, owner.ID, false)

	remaining := int64(100000)

	// The assigned commercial may update
	fx.loginAs(t, owner)
	updated, err := fx.contracts.Update(ctx, contract.ID, UpdateContractInput{RemainingCents: &remaining})
	require.NoError(t, err)
	assert.Equal(t, remaining, updated.RemainingCents)

	// Another commercial may not
	fx.loginAs(t, rival)
	_, err = fx.contracts.Update(ctx, contract.ID, UpdateContractInput{RemainingCents: &remaining})
	assert.ErrorIs(t, err, ErrNotOwner)

	// Management may update any contract
	fx.loginAs(t, manager)
	zero := int64(0)
	updated, err = fx.contracts.Update(ctx, contract.ID, UpdateContractInput{RemainingCents: &zero})
	require.NoError(t, err)
	assert.Zero(t, updated.RemainingCents)
}

func TestContractService_Sign(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	owner := fx.seedEmployee(t, "Owner", store.DepartmentCommercial)
	client := fx.seedClient(t, owner.ID)
	contract := fx.seedContract(t, client.ID, owner.ID, false)

	fx.loginAs(t, owner)
	signed, err := fx.contracts.Sign(ctx, contract.ID)
	require.NoError(t, err)
	assert.True(t, signed.IsSigned)

	// Signing again is a no-op
	signed, err = fx.contracts.Sign(ctx, contract.ID)
	require.NoError(t, err)
	assert.True(t, signed.IsSigned)
}

func TestContractService_SignRequiresDepartment(t *testing.T) {
	fx := newFixture(t)

	owner := fx.seedEmployee(t, "Owner", store.DepartmentCommercial)
	support := fx.seedEmployee(t, "Support", store.DepartmentSupport)
	client := fx.seedClient(t, owner.ID)
	contract := fx.seedContract(t, client.ID, owner.ID, false)

	fx.loginAs(t, support)
	_, err := fx.contracts.Sign(context.Background(), contract.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestContractService_ListScoping(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	alice := fx.seedEmployee(t, "Alice", store.DepartmentCommercial)
	bob := fx.seedEmployee(t, "Bob", store.DepartmentCommercial)
	manager := fx.seedEmployee(t, "Manager", store.DepartmentManagement)
	client := fx.seedClient(t, alice.ID)

	fx.seedContract(t, client.ID, alice.ID, true)
	fx.seedContract(t, client.ID, alice.ID, false)
	fx.seedContract(t, client.ID, bob.ID, false)

	// A commercial sees only their own contracts
	fx.loginAs(t, alice)
	contracts, err := fx.contracts.List(ctx, ListContractsOptions{})
	require.NoError(t, err)
	assert.Len(t, contracts, 2)

	unsigned, err := fx.contracts.List(ctx, ListContractsOptions{Unsigned: true})
	require.NoError(t, err)
	assert.Len(t, unsigned, 1)

	// Management sees everything
	fx.loginAs(t, manager)
	contracts, err = fx.contracts.List(ctx, ListContractsOptions{})
	require.NoError(t, err)
	assert.Len(t, contracts, 3)
}
