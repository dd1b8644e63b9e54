package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
)

const dashboardCacheKey = "dashboard:stats"

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
	InvalidateStats(ctx context.Context)
}

// DashboardService aggregates counters for the overview page. The
// result is cached in Redis for a short TTL; a cache miss or a broken
// Redis falls through to Postgres, never to an error.
type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	logRepo       repositories.EquipmentLogRepositoryInterface
	cache         repositories.CacheRepositoryInterface
	cacheTTL      time.Duration
	logger        *zap.Logger
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	logRepo repositories.EquipmentLogRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		logRepo:       logRepo,
		cache:         cache,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	if cached, err := s.cache.Get(ctx, dashboardCacheKey); err == nil && cached != "" {
		var stats dto.DashboardStatsDTO
		if err := json.Unmarshal([]byte(cached), &stats); err != nil {
			s.logger.Warn("failed to decode cached dashboard stats", zap.Error(err))
		} else {
			return &stats, nil
		}
	}

	byStatus, total, err := s.dashboardRepo.CountEquipmentByStatus(ctx)
	if err != nil {
		return nil, err
	}
	activeAssignments, err := s.dashboardRepo.CountActiveAssignments(ctx)
	if err != nil {
		return nil, err
	}
	openMaintenance, err := s.dashboardRepo.CountOpenMaintenance(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.logRepo.ListRecent(ctx, 10)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsDTO{
		EquipmentTotal:    total,
		EquipmentByStatus: byStatus,
		ActiveAssignments: activeAssignments,
		OpenMaintenance:   openMaintenance,
		Decommissioned:    byStatus[constants.EquipmentStatusDecommissioned],
		RecentActivity:    recent,
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, dashboardCacheKey, payload, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache dashboard stats", zap.Error(err))
		}
	}

	return stats, nil
}

// InvalidateStats drops the cached snapshot after a lifecycle write so
// the next read reflects it immediately instead of waiting out the TTL.
func (s *DashboardService) InvalidateStats(ctx context.Context) {
	if err := s.cache.Del(ctx, dashboardCacheKey); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}
