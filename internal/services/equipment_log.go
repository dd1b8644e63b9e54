package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/utils"
)

type EquipmentLogServiceInterface interface {
	// Record appends an audit entry on behalf of a ledger operation.
	// It is fire-and-forget: a failed append is logged and swallowed so
	// it can never roll back or mask the primary transition.
	Record(ctx context.Context, equipmentID, logType, description string)
	CreateLog(ctx context.Context, d dto.CreateEquipmentLogDTO) (*entities.EquipmentLog, error)
	ListForEquipment(ctx context.Context, equipmentID string, limit uint64) ([]entities.EquipmentLog, error)
}

type EquipmentLogService struct {
	logRepo repositories.EquipmentLogRepositoryInterface
	logger  *zap.Logger
}

func NewEquipmentLogService(logRepo repositories.EquipmentLogRepositoryInterface, logger *zap.Logger) EquipmentLogServiceInterface {
	return &EquipmentLogService{logRepo: logRepo, logger: logger}
}

func (s *EquipmentLogService) buildEntry(ctx context.Context, equipmentID, logType, description string) *entities.EquipmentLog {
	entry := &entities.EquipmentLog{
		EquipmentID: equipmentID,
		LogType:     logType,
		Description: description,
	}
	if actorID := utils.GetActorFromCtx(ctx); actorID != "" {
		entry.PerformedBy = &actorID
	}
	if actorName := utils.GetActorNameFromCtx(ctx); actorName != "" {
		entry.PerformedByName = &actorName
	}
	return entry
}

func (s *EquipmentLogService) Record(ctx context.Context, equipmentID, logType, description string) {
	entry := s.buildEntry(ctx, equipmentID, logType, description)
	if err := s.logRepo.Append(ctx, entry); err != nil {
		s.logger.Warn("failed to append equipment log",
			zap.String("equipment_id", equipmentID),
			zap.String("log_type", logType),
			zap.Error(err))
	}
}

func (s *EquipmentLogService) CreateLog(ctx context.Context, d dto.CreateEquipmentLogDTO) (*entities.EquipmentLog, error) {
	entry := s.buildEntry(ctx, d.EquipmentID, d.LogType, d.Description)
	if err := s.logRepo.Append(ctx, entry); err != nil {
		s.logger.Error("failed to create equipment log", zap.Any("payload", d), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (s *EquipmentLogService) ListForEquipment(ctx context.Context, equipmentID string, limit uint64) ([]entities.EquipmentLog, error) {
	return s.logRepo.ListForEquipment(ctx, equipmentID, limit)
}
