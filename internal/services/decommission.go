package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
	"inventory-system/pkg/utils"
)

type DecommissionServiceInterface interface {
	GetDecommissions(ctx context.Context, filter types.Filter) ([]entities.DecommissionRecord, uint64, error)
	FindDecommission(ctx context.Context, id string) (*entities.DecommissionRecord, error)
	CreateDecommission(ctx context.Context, d dto.CreateDecommissionDTO) (*entities.DecommissionRecord, error)
}

// DecommissionService retires equipment. De Baja is terminal: nothing
// un-decommissions a record, so the precondition checks here are the
// last gate before the status freezes.
type DecommissionService struct {
	txManager        repositories.TxManagerInterface
	decommissionRepo repositories.DecommissionRepositoryInterface
	equipmentRepo    repositories.EquipmentRepositoryInterface
	logs             EquipmentLogServiceInterface
	logger           *zap.Logger
}

func NewDecommissionService(
	txManager repositories.TxManagerInterface,
	decommissionRepo repositories.DecommissionRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logs EquipmentLogServiceInterface,
	logger *zap.Logger,
) DecommissionServiceInterface {
	return &DecommissionService{
		txManager:        txManager,
		decommissionRepo: decommissionRepo,
		equipmentRepo:    equipmentRepo,
		logs:             logs,
		logger:           logger,
	}
}

func (s *DecommissionService) GetDecommissions(ctx context.Context, filter types.Filter) ([]entities.DecommissionRecord, uint64, error) {
	return s.decommissionRepo.GetDecommissions(ctx, filter)
}

func (s *DecommissionService) FindDecommission(ctx context.Context, id string) (*entities.DecommissionRecord, error) {
	return s.decommissionRepo.FindDecommission(ctx, id)
}

func (s *DecommissionService) CreateDecommission(ctx context.Context, d dto.CreateDecommissionDTO) (*entities.DecommissionRecord, error) {
	record := &entities.DecommissionRecord{
		EquipmentID:      d.EquipmentID,
		DecommissionDate: time.Now().UTC(),
		Reason:           d.Reason,
		Description:      d.Description.Ptr(),
		CustomFields:     d.CustomFields,
	}
	if actorID := utils.GetActorFromCtx(ctx); actorID != "" {
		record.ResponsibleUserID = &actorID
	}

	var equipmentCode string

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		eq, err := s.equipmentRepo.FindEquipmentTx(ctx, tx, d.EquipmentID)
		if err != nil {
			return err
		}
		switch eq.Status {
		case constants.EquipmentStatusDecommissioned:
			return apperrors.NewInvalidStateError("equipment", eq.ID, eq.Status,
				"equipment was already decommissioned")
		case constants.EquipmentStatusAssigned:
			return apperrors.NewInvalidStateError("equipment", eq.ID, eq.Status,
				"equipment %s is assigned; return it before decommissioning", eq.InventoryCode)
		}

		if err := s.equipmentRepo.UpdateStatusGuarded(ctx, tx,
			eq.ID, eq.Status, constants.EquipmentStatusDecommissioned, nil); err != nil {
			return err
		}

		equipmentCode = eq.InventoryCode
		return s.decommissionRepo.CreateDecommissionTx(ctx, tx, record)
	})
	if err != nil {
		return nil, err
	}

	s.logs.Record(ctx, d.EquipmentID, constants.LogCategoryStatusChange,
		fmt.Sprintf("Equipment decommissioned: %s", d.Reason))
	s.logger.Info("equipment decommissioned",
		zap.String("equipment_id", d.EquipmentID),
		zap.String("reason", d.Reason))

	record.EquipmentCode = &equipmentCode
	return record, nil
}
