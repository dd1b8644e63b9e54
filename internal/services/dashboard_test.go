package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/pkg/constants"
)

type fakeDashboardRepo struct {
	byStatus map[string]uint64
	calls    int
}

func (f *fakeDashboardRepo) CountEquipmentByStatus(ctx context.Context) (map[string]uint64, uint64, error) {
	f.calls++
	var total uint64
	for _, n := range f.byStatus {
		total += n
	}
	return f.byStatus, total, nil
}

func (f *fakeDashboardRepo) CountActiveAssignments(ctx context.Context) (uint64, error) {
	return 3, nil
}

func (f *fakeDashboardRepo) CountOpenMaintenance(ctx context.Context) (uint64, error) {
	return 2, nil
}

func TestDashboardStats(t *testing.T) {
	repo := &fakeDashboardRepo{byStatus: map[string]uint64{
		constants.EquipmentStatusAvailable:      5,
		constants.EquipmentStatusAssigned:       3,
		constants.EquipmentStatusInMaintenance:  2,
		constants.EquipmentStatusDecommissioned: 1,
	}}
	cache := newFakeCacheRepo()
	svc := NewDashboardService(repo, &fakeLogRepo{}, cache, time.Minute, zap.NewNop())

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(11), stats.EquipmentTotal)
	assert.Equal(t, uint64(3), stats.ActiveAssignments)
	assert.Equal(t, uint64(2), stats.OpenMaintenance)
	assert.Equal(t, uint64(1), stats.Decommissioned)
	assert.Equal(t, uint64(5), stats.EquipmentByStatus[constants.EquipmentStatusAvailable])
}

func TestDashboardStatsCached(t *testing.T) {
	repo := &fakeDashboardRepo{byStatus: map[string]uint64{
		constants.EquipmentStatusAvailable: 4,
	}}
	cache := newFakeCacheRepo()
	svc := NewDashboardService(repo, &fakeLogRepo{}, cache, time.Minute, zap.NewNop())

	_, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	_, err = svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls, "second read must be served from cache")

	svc.InvalidateStats(context.Background())
	_, err = svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls, "invalidation must force a recount")
}
