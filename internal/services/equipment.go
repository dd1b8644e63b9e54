package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, d dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	logs          EquipmentLogServiceInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logs EquipmentLogServiceInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		logs:          logs,
		logger:        logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	return s.equipmentRepo.GetEquipments(ctx, filter)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	eq := &entities.Equipment{
		CompanyID:     d.CompanyID,
		BranchID:      d.BranchID.Ptr(),
		InventoryCode: d.InventoryCode,
		EquipmentType: d.EquipmentType,
		Brand:         d.Brand,
		Model:         d.Model,
		SerialNumber:  d.SerialNumber,
		Status:        constants.EquipmentStatusAvailable,
		Observations:  d.Observations.Ptr(),
		CustomFields:  d.CustomFields,
	}

	if err := s.equipmentRepo.CreateEquipment(ctx, eq); err != nil {
		s.logger.Error("failed to create equipment", zap.String("inventory_code", d.InventoryCode), zap.Error(err))
		return nil, err
	}

	s.logs.Record(ctx, eq.ID, constants.LogCategoryStatusChange, "Equipment registered as available")
	return eq, nil
}

// UpdateEquipment patches the descriptive fields. Status and assigned_to
// belong to the ledgers and are never written here.
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, d dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	eq := &entities.Equipment{
		CompanyID:     d.CompanyID,
		BranchID:      d.BranchID.Ptr(),
		InventoryCode: d.InventoryCode,
		EquipmentType: d.EquipmentType,
		Brand:         d.Brand,
		Model:         d.Model,
		SerialNumber:  d.SerialNumber,
		Observations:  d.Observations.Ptr(),
		CustomFields:  d.CustomFields,
	}

	if err := s.equipmentRepo.UpdateEquipment(ctx, id, eq); err != nil {
		return nil, err
	}
	return s.equipmentRepo.FindEquipment(ctx, id)
}

// DeleteEquipment refuses to orphan ledger history: once any assignment,
// maintenance, decommission or audit row references the equipment, the
// record can no longer be hard-deleted.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	has, err := s.equipmentRepo.HasLedgerHistory(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return apperrors.NewConflictError("equipment", id,
			"equipment has ledger history and cannot be deleted")
	}
	return s.equipmentRepo.DeleteEquipment(ctx, id)
}
