package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-system/internal/dto"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

func TestCreateDecommission(t *testing.T) {
	env := newTestEnv()
	eq := env.seedAvailable()

	ctx := utils.WithActor(context.Background(), "admin-1", "Ana Torres")
	record, err := env.decommissionSvc.CreateDecommission(ctx, dto.CreateDecommissionDTO{
		EquipmentID: eq.ID,
		Reason:      "Obsoleto",
	})
	require.NoError(t, err)

	require.NotNil(t, record.ResponsibleUserID)
	assert.Equal(t, "admin-1", *record.ResponsibleUserID)
	require.NotNil(t, record.EquipmentCode)
	assert.Equal(t, eq.InventoryCode, *record.EquipmentCode)

	got, _ := env.equipment.FindEquipment(ctx, eq.ID)
	assert.Equal(t, constants.EquipmentStatusDecommissioned, got.Status)
	assert.Nil(t, got.AssignedTo)

	logs, _ := env.logs.ListForEquipment(ctx, eq.ID, 10)
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Description, "Obsoleto")
}

func TestDecommissionAssignedEquipment(t *testing.T) {
	assignee := "emp-1"
	env := newTestEnv()
	eq := env.seedEquipment(constants.EquipmentStatusAssigned, &assignee)

	_, err := env.decommissionSvc.CreateDecommission(context.Background(), dto.CreateDecommissionDTO{
		EquipmentID: eq.ID,
		Reason:      "Robo",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	got, _ := env.equipment.FindEquipment(context.Background(), eq.ID)
	assert.Equal(t, constants.EquipmentStatusAssigned, got.Status)
}

func TestDecommissionTwice(t *testing.T) {
	env := newTestEnv()
	eq := env.seedAvailable()

	_, err := env.decommissionSvc.CreateDecommission(context.Background(), dto.CreateDecommissionDTO{
		EquipmentID: eq.ID,
		Reason:      "Obsoleto",
	})
	require.NoError(t, err)

	_, err = env.decommissionSvc.CreateDecommission(context.Background(), dto.CreateDecommissionDTO{
		EquipmentID: eq.ID,
		Reason:      "Obsoleto otra vez",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	_, total, err := env.decommissions.GetDecommissions(context.Background(), defaultFilter())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
}

func TestDecommissionInMaintenanceEquipment(t *testing.T) {
	env := newTestEnv()
	eq := env.seedEquipment(constants.EquipmentStatusInMaintenance, nil)

	record, err := env.decommissionSvc.CreateDecommission(context.Background(), dto.CreateDecommissionDTO{
		EquipmentID: eq.ID,
		Reason:      "Dano irreparable",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)

	got, _ := env.equipment.FindEquipment(context.Background(), eq.ID)
	assert.Equal(t, constants.EquipmentStatusDecommissioned, got.Status)
}

// De Baja is terminal: no ledger operation may move the equipment again.
func TestDecommissionedIsTerminal(t *testing.T) {
	env := newTestEnv(testEmployee())
	eq := env.seedAvailable()

	_, err := env.decommissionSvc.CreateDecommission(context.Background(), dto.CreateDecommissionDTO{
		EquipmentID: eq.ID,
		Reason:      "Obsoleto",
	})
	require.NoError(t, err)

	_, err = env.assignmentSvc.CreateAssignment(context.Background(), dto.CreateAssignmentDTO{
		EquipmentID:  eq.ID,
		EmployeeID:   "emp-1",
		DeliveryDate: "2026-02-01",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	got, _ := env.equipment.FindEquipment(context.Background(), eq.ID)
	assert.Equal(t, constants.EquipmentStatusDecommissioned, got.Status)
}
