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

type MaintenanceServiceInterface interface {
	GetOrders(ctx context.Context, filter types.Filter) ([]entities.MaintenanceOrder, uint64, error)
	FindOrder(ctx context.Context, id string) (*entities.MaintenanceOrder, error)
	CreateOrder(ctx context.Context, d dto.CreateMaintenanceDTO) (*entities.MaintenanceOrder, error)
	StartOrder(ctx context.Context, id string) (*entities.MaintenanceOrder, error)
	CompleteOrder(ctx context.Context, id string, d dto.CompleteMaintenanceDTO) (*entities.MaintenanceOrder, error)
}

// MaintenanceService owns the Pendiente -> En Proceso -> Finalizado
// order workflow and the equipment InMaintenance leg it drives.
//
// Creating an order never moves the equipment; an order can be logged
// against equipment in any state (historical backfill). Starting an
// order does not clear an active assignment: custody and maintenance are
// tracked independently, and completion restores the status custody
// implies (Asignado when an assignee is still set, Disponible otherwise).
type MaintenanceService struct {
	txManager       repositories.TxManagerInterface
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	equipmentRepo   repositories.EquipmentRepositoryInterface
	logs            EquipmentLogServiceInterface
	logger          *zap.Logger
}

func NewMaintenanceService(
	txManager repositories.TxManagerInterface,
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logs EquipmentLogServiceInterface,
	logger *zap.Logger,
) MaintenanceServiceInterface {
	return &MaintenanceService{
		txManager:       txManager,
		maintenanceRepo: maintenanceRepo,
		equipmentRepo:   equipmentRepo,
		logs:            logs,
		logger:          logger,
	}
}

func (s *MaintenanceService) GetOrders(ctx context.Context, filter types.Filter) ([]entities.MaintenanceOrder, uint64, error) {
	return s.maintenanceRepo.GetOrders(ctx, filter)
}

func (s *MaintenanceService) FindOrder(ctx context.Context, id string) (*entities.MaintenanceOrder, error) {
	return s.maintenanceRepo.FindOrder(ctx, id)
}

func (s *MaintenanceService) CreateOrder(ctx context.Context, d dto.CreateMaintenanceDTO) (*entities.MaintenanceOrder, error) {
	eq, err := s.equipmentRepo.FindEquipment(ctx, d.EquipmentID)
	if err != nil {
		return nil, err
	}

	order := &entities.MaintenanceOrder{
		EquipmentID:          d.EquipmentID,
		Kind:                 d.Kind,
		Status:               constants.MaintenanceStatusPending,
		Description:          d.Description,
		Technician:           d.Technician.Ptr(),
		MaintenanceFrequency: d.MaintenanceFrequency.Ptr(),
		ProblemDiagnosis:     d.ProblemDiagnosis.Ptr(),
		SolutionApplied:      d.SolutionApplied.Ptr(),
		RepairTimeHours:      d.RepairTimeHours.Ptr(),
		PartsUsed:            d.PartsUsed.Ptr(),
		CustomFields:         d.CustomFields,
	}

	if d.NextMaintenanceDate.Valid {
		next, err := time.Parse("2006-01-02", d.NextMaintenanceDate.String)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("invalid next_maintenance_date %q", d.NextMaintenanceDate.String)
		}
		order.NextMaintenanceDate = &next
	}

	if actorID := utils.GetActorFromCtx(ctx); actorID != "" {
		order.PerformedBy = &actorID
	}

	if err := s.maintenanceRepo.CreateOrder(ctx, order); err != nil {
		s.logger.Error("failed to create maintenance order", zap.Any("payload", d), zap.Error(err))
		return nil, err
	}

	s.logs.Record(ctx, d.EquipmentID, constants.LogCategoryMaintenance,
		fmt.Sprintf("Maintenance %s: %s", d.Kind, d.Description))

	order.EquipmentCode = &eq.InventoryCode
	return order, nil
}

func (s *MaintenanceService) StartOrder(ctx context.Context, id string) (*entities.MaintenanceOrder, error) {
	var started *entities.MaintenanceOrder

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		order, err := s.maintenanceRepo.FindOrderTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if order.Status != constants.MaintenanceStatusPending {
			return apperrors.NewInvalidStateError("maintenance order", order.ID, order.Status,
				"maintenance was already started")
		}

		eq, err := s.equipmentRepo.FindEquipmentTx(ctx, tx, order.EquipmentID)
		if err != nil {
			return err
		}
		switch eq.Status {
		case constants.EquipmentStatusDecommissioned:
			return apperrors.NewInvalidStateError("equipment", eq.ID, eq.Status,
				"equipment was decommissioned and cannot enter maintenance")
		case constants.EquipmentStatusInMaintenance:
			return apperrors.NewInvalidStateError("equipment", eq.ID, eq.Status,
				"another maintenance is already in progress for this equipment")
		}

		if err := s.maintenanceRepo.SetStatusTx(ctx, tx, order.ID, constants.MaintenanceStatusInProgress); err != nil {
			return err
		}
		// assigned_to is preserved on purpose; see the service comment.
		if err := s.equipmentRepo.UpdateStatusGuarded(ctx, tx,
			eq.ID, eq.Status, constants.EquipmentStatusInMaintenance, eq.AssignedTo); err != nil {
			return err
		}

		order.Status = constants.MaintenanceStatusInProgress
		started = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("maintenance started",
		zap.String("order_id", id),
		zap.String("equipment_id", started.EquipmentID))
	return started, nil
}

func (s *MaintenanceService) CompleteOrder(ctx context.Context, id string, d dto.CompleteMaintenanceDTO) (*entities.MaintenanceOrder, error) {
	var completed *entities.MaintenanceOrder

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		order, err := s.maintenanceRepo.FindOrderTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if order.Status == constants.MaintenanceStatusCompleted {
			return apperrors.NewInvalidStateError("maintenance order", order.ID, order.Status,
				"maintenance was already completed")
		}

		description := order.Description
		if d.Notes.Valid && d.Notes.String != "" {
			description = description + " | Notas: " + d.Notes.String
		}

		now := time.Now().UTC()
		if err := s.maintenanceRepo.CompleteOrderTx(ctx, tx, order.ID, description, now); err != nil {
			return err
		}

		// Only an order that actually put the equipment into maintenance
		// releases it; completing a Pendiente order (backfill) leaves the
		// equipment alone.
		if order.Status == constants.MaintenanceStatusInProgress {
			eq, err := s.equipmentRepo.FindEquipmentTx(ctx, tx, order.EquipmentID)
			if err != nil {
				return err
			}
			if eq.Status == constants.EquipmentStatusInMaintenance {
				next := constants.EquipmentStatusAvailable
				assignedTo := eq.AssignedTo
				if assignedTo != nil {
					next = constants.EquipmentStatusAssigned
				}
				if err := s.equipmentRepo.UpdateStatusGuarded(ctx, tx,
					eq.ID, constants.EquipmentStatusInMaintenance, next, assignedTo); err != nil {
					return err
				}
			}
		}

		order.Status = constants.MaintenanceStatusCompleted
		order.Description = description
		order.CompletedAt = &now
		completed = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logs.Record(ctx, completed.EquipmentID, constants.LogCategoryMaintenance,
		fmt.Sprintf("Maintenance %s completed", completed.Kind))
	s.logger.Info("maintenance completed",
		zap.String("order_id", id),
		zap.String("equipment_id", completed.EquipmentID))

	return completed, nil
}
