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
)

type AssignmentServiceInterface interface {
	GetAssignments(ctx context.Context, filter types.Filter) ([]entities.Assignment, uint64, error)
	FindAssignment(ctx context.Context, id string) (*entities.Assignment, error)
	CreateAssignment(ctx context.Context, d dto.CreateAssignmentDTO) (*entities.Assignment, error)
	ReturnAssignment(ctx context.Context, id string, d dto.ReturnAssignmentDTO) (*entities.Assignment, error)
}

// AssignmentService owns the Available -> Assigned -> Available leg of
// the equipment lifecycle. Every transition runs in one transaction and
// goes through the guarded status update, so two concurrent assignments
// of the same equipment can never both succeed.
type AssignmentService struct {
	txManager      repositories.TxManagerInterface
	assignmentRepo repositories.AssignmentRepositoryInterface
	equipmentRepo  repositories.EquipmentRepositoryInterface
	employeeRepo   repositories.EmployeeRepositoryInterface
	logs           EquipmentLogServiceInterface
	logger         *zap.Logger
}

func NewAssignmentService(
	txManager repositories.TxManagerInterface,
	assignmentRepo repositories.AssignmentRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	employeeRepo repositories.EmployeeRepositoryInterface,
	logs EquipmentLogServiceInterface,
	logger *zap.Logger,
) AssignmentServiceInterface {
	return &AssignmentService{
		txManager:      txManager,
		assignmentRepo: assignmentRepo,
		equipmentRepo:  equipmentRepo,
		employeeRepo:   employeeRepo,
		logs:           logs,
		logger:         logger,
	}
}

func (s *AssignmentService) GetAssignments(ctx context.Context, filter types.Filter) ([]entities.Assignment, uint64, error) {
	return s.assignmentRepo.GetAssignments(ctx, filter)
}

func (s *AssignmentService) FindAssignment(ctx context.Context, id string) (*entities.Assignment, error) {
	return s.assignmentRepo.FindAssignment(ctx, id)
}

func (s *AssignmentService) CreateAssignment(ctx context.Context, d dto.CreateAssignmentDTO) (*entities.Assignment, error) {
	employee, err := s.employeeRepo.FindEmployee(ctx, d.EmployeeID)
	if err != nil {
		return nil, err
	}

	deliveryDate, err := time.Parse("2006-01-02", d.DeliveryDate)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("invalid delivery_date %q", d.DeliveryDate)
	}

	assignment := &entities.Assignment{
		EquipmentID:  d.EquipmentID,
		EmployeeID:   d.EmployeeID,
		DeliveryDate: deliveryDate,
		Status:       constants.AssignmentStatusActive,
		Observations: d.Observations.Ptr(),
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		eq, err := s.equipmentRepo.FindEquipmentTx(ctx, tx, d.EquipmentID)
		if err != nil {
			return err
		}
		if eq.Status != constants.EquipmentStatusAvailable {
			return apperrors.NewInvalidStateError("equipment", eq.ID, eq.Status,
				"equipment %s is not available for assignment (status %q)", eq.InventoryCode, eq.Status)
		}

		// Gate the ledger insert on the status swap: if another request
		// grabbed the equipment between our read and this write, the
		// guard fails and nothing is inserted.
		employeeID := d.EmployeeID
		if err := s.equipmentRepo.UpdateStatusGuarded(ctx, tx,
			eq.ID, constants.EquipmentStatusAvailable, constants.EquipmentStatusAssigned, &employeeID); err != nil {
			return err
		}

		return s.assignmentRepo.CreateAssignmentTx(ctx, tx, assignment)
	})
	if err != nil {
		return nil, err
	}

	employeeName := employee.FullName()
	s.logs.Record(ctx, d.EquipmentID, constants.LogCategoryStatusChange,
		fmt.Sprintf("Equipment assigned to %s", employeeName))
	s.logger.Info("equipment assigned",
		zap.String("equipment_id", d.EquipmentID),
		zap.String("employee_id", d.EmployeeID))

	assignment.EmployeeName = &employeeName
	return assignment, nil
}

func (s *AssignmentService) ReturnAssignment(ctx context.Context, id string, d dto.ReturnAssignmentDTO) (*entities.Assignment, error) {
	var returned *entities.Assignment

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		assignment, err := s.assignmentRepo.FindAssignmentTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if assignment.Status != constants.AssignmentStatusActive {
			return apperrors.NewInvalidStateError("assignment", assignment.ID, assignment.Status,
				"assignment was already closed")
		}

		eq, err := s.equipmentRepo.FindEquipmentTx(ctx, tx, assignment.EquipmentID)
		if err != nil {
			return err
		}
		if eq.Status == constants.EquipmentStatusDecommissioned {
			return apperrors.NewInvalidStateError("equipment", eq.ID, eq.Status,
				"equipment was decommissioned and cannot change status")
		}

		now := time.Now().UTC()
		if err := s.assignmentRepo.CloseAssignmentTx(ctx, tx, assignment.ID, now, d.Observations.Ptr()); err != nil {
			return err
		}

		// The equipment is normally Asignado here, but starting a
		// maintenance while assigned may have overwritten that; swap
		// from whatever this transaction observed.
		if err := s.equipmentRepo.UpdateStatusGuarded(ctx, tx,
			eq.ID, eq.Status, constants.EquipmentStatusAvailable, nil); err != nil {
			return err
		}

		assignment.Status = constants.AssignmentStatusClosed
		assignment.ReturnDate = &now
		assignment.ReturnObservations = d.Observations.Ptr()
		returned = assignment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logs.Record(ctx, returned.EquipmentID, constants.LogCategoryStatusChange,
		"Equipment returned and marked as available")
	s.logger.Info("equipment returned",
		zap.String("assignment_id", id),
		zap.String("equipment_id", returned.EquipmentID))

	return returned, nil
}
