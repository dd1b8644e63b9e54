package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/utils"
)

func TestCreateLogCapturesActor(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewEquipmentLogService(repo, zap.NewNop())

	ctx := utils.WithActor(context.Background(), "tech-3", "Sara Nunez")
	entry, err := svc.CreateLog(ctx, dto.CreateEquipmentLogDTO{
		EquipmentID: "eq-1",
		LogType:     constants.LogCategoryStatusChange,
		Description: "Manual note",
	})
	require.NoError(t, err)

	require.NotNil(t, entry.PerformedBy)
	assert.Equal(t, "tech-3", *entry.PerformedBy)
	require.NotNil(t, entry.PerformedByName)
	assert.Equal(t, "Sara Nunez", *entry.PerformedByName)
	assert.NotEmpty(t, entry.ID)
}

func TestCreateLogWithoutActor(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewEquipmentLogService(repo, zap.NewNop())

	entry, err := svc.CreateLog(context.Background(), dto.CreateEquipmentLogDTO{
		EquipmentID: "eq-1",
		LogType:     constants.LogCategoryMaintenance,
		Description: "Unattributed note",
	})
	require.NoError(t, err)
	assert.Nil(t, entry.PerformedBy)
	assert.Nil(t, entry.PerformedByName)
}

func TestListForEquipmentFilters(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewEquipmentLogService(repo, zap.NewNop())

	svc.Record(context.Background(), "eq-1", constants.LogCategoryStatusChange, "first")
	svc.Record(context.Background(), "eq-2", constants.LogCategoryStatusChange, "other")
	svc.Record(context.Background(), "eq-1", constants.LogCategoryMaintenance, "second")

	logs, err := svc.ListForEquipment(context.Background(), "eq-1", 10)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}
