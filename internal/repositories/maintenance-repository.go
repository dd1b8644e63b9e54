package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

const maintenanceTable = "maintenance_orders"

const maintenanceFields = `m.id, m.equipment_id, m.maintenance_type, m.status, m.description, m.technician,
	m.next_maintenance_date, m.maintenance_frequency, m.problem_diagnosis, m.solution_applied,
	m.repair_time_hours, m.parts_used, m.custom_fields, m.performed_by, m.completed_at,
	m.created_at, m.updated_at`

var maintenanceColumnMap = map[string]string{
	"equipment_id":     "m.equipment_id",
	"maintenance_type": "m.maintenance_type",
	"status":           "m.status",
	"created_at":       "m.created_at",
}

type MaintenanceRepositoryInterface interface {
	GetOrders(ctx context.Context, filter types.Filter) ([]entities.MaintenanceOrder, uint64, error)
	FindOrder(ctx context.Context, id string) (*entities.MaintenanceOrder, error)
	FindOrderTx(ctx context.Context, tx pgx.Tx, id string) (*entities.MaintenanceOrder, error)
	CreateOrder(ctx context.Context, m *entities.MaintenanceOrder) error
	SetStatusTx(ctx context.Context, tx pgx.Tx, id, status string) error
	CompleteOrderTx(ctx context.Context, tx pgx.Tx, id, description string, completedAt time.Time) error
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
}

func NewMaintenanceRepository(storage *pgxpool.Pool) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage}
}

func scanMaintenanceOrder(row pgx.Row) (*entities.MaintenanceOrder, error) {
	var m entities.MaintenanceOrder
	var technician, frequency, diagnosis, solution, parts, performedBy, equipmentCode sql.NullString
	var nextDate, completedAt sql.NullTime
	var repairHours sql.NullFloat64

	err := row.Scan(
		&m.ID, &m.EquipmentID, &m.Kind, &m.Status, &m.Description, &technician,
		&nextDate, &frequency, &diagnosis, &solution,
		&repairHours, &parts, &m.CustomFields, &performedBy, &completedAt,
		&m.CreatedAt, &m.UpdatedAt,
		&equipmentCode,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan maintenance order: %w", err)
	}

	if technician.Valid {
		m.Technician = &technician.String
	}
	if nextDate.Valid {
		m.NextMaintenanceDate = &nextDate.Time
	}
	if frequency.Valid {
		m.MaintenanceFrequency = &frequency.String
	}
	if diagnosis.Valid {
		m.ProblemDiagnosis = &diagnosis.String
	}
	if solution.Valid {
		m.SolutionApplied = &solution.String
	}
	if repairHours.Valid {
		m.RepairTimeHours = &repairHours.Float64
	}
	if parts.Valid {
		m.PartsUsed = &parts.String
	}
	if performedBy.Valid {
		m.PerformedBy = &performedBy.String
	}
	if completedAt.Valid {
		m.CompletedAt = &completedAt.Time
	}
	if equipmentCode.Valid {
		m.EquipmentCode = &equipmentCode.String
	}
	return &m, nil
}

func (r *MaintenanceRepository) GetOrders(ctx context.Context, filter types.Filter) ([]entities.MaintenanceOrder, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select(maintenanceFields + ", e.inventory_code").
		From(maintenanceTable + " m").
		LeftJoin("equipments e ON e.id = m.equipment_id")
	countQ := psql.Select("COUNT(*)").From(maintenanceTable + " m")

	for key, value := range filter.Filter {
		col, ok := maintenanceColumnMap[key]
		if !ok {
			continue
		}
		base = base.Where(sq.Eq{col: value})
		countQ = countQ.Where(sq.Eq{col: value})
	}

	base = base.OrderBy("m.created_at DESC")
	if filter.Limit > 0 {
		base = base.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build maintenance query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.MaintenanceOrder
	for rows.Next() {
		m, err := scanMaintenanceOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *MaintenanceRepository) findByID(ctx context.Context, q querier, id string) (*entities.MaintenanceOrder, error) {
	query := fmt.Sprintf(`
		SELECT %s, e.inventory_code
		FROM %s m
		LEFT JOIN equipments e ON e.id = m.equipment_id
		WHERE m.id = $1`, maintenanceFields, maintenanceTable)

	m, err := scanMaintenanceOrder(q.QueryRow(ctx, query, id))
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NewNotFoundError("maintenance order", id)
	}
	return m, err
}

func (r *MaintenanceRepository) FindOrder(ctx context.Context, id string) (*entities.MaintenanceOrder, error) {
	return r.findByID(ctx, r.storage, id)
}

func (r *MaintenanceRepository) FindOrderTx(ctx context.Context, tx pgx.Tx, id string) (*entities.MaintenanceOrder, error) {
	return r.findByID(ctx, tx, id)
}

func (r *MaintenanceRepository) CreateOrder(ctx context.Context, m *entities.MaintenanceOrder) error {
	m.ID = uuid.NewString()

	query := fmt.Sprintf(`
		INSERT INTO %s (id, equipment_id, maintenance_type, status, description, technician,
			next_maintenance_date, maintenance_frequency, problem_diagnosis, solution_applied,
			repair_time_hours, parts_used, custom_fields, performed_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`, maintenanceTable)

	return r.storage.QueryRow(ctx, query,
		m.ID, m.EquipmentID, m.Kind, m.Status, m.Description, m.Technician,
		m.NextMaintenanceDate, m.MaintenanceFrequency, m.ProblemDiagnosis, m.SolutionApplied,
		m.RepairTimeHours, m.PartsUsed, m.CustomFields, m.PerformedBy,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
}

func (r *MaintenanceRepository) SetStatusTx(ctx context.Context, tx pgx.Tx, id, status string) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, maintenanceTable)

	result, err := tx.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("maintenance order", id)
	}
	return nil
}

func (r *MaintenanceRepository) CompleteOrderTx(ctx context.Context, tx pgx.Tx, id, description string, completedAt time.Time) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, description = $2, completed_at = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4`, maintenanceTable)

	result, err := tx.Exec(ctx, query, constants.MaintenanceStatusCompleted, description, completedAt, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("maintenance order", id)
	}
	return nil
}
