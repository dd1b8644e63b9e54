package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

const equipmentTable = "equipments"

const equipmentFields = `e.id, e.company_id, e.branch_id, e.inventory_code, e.equipment_type, e.brand, e.model,
	e.serial_number, e.status, e.assigned_to, e.observations, e.custom_fields, e.created_at, e.updated_at`

// Allow-listed filter and sort columns for list queries.
var equipmentColumnMap = map[string]string{
	"company_id":     "e.company_id",
	"branch_id":      "e.branch_id",
	"status":         "e.status",
	"equipment_type": "e.equipment_type",
	"brand":          "e.brand",
	"created_at":     "e.created_at",
	"inventory_code": "e.inventory_code",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	FindEquipmentTx(ctx context.Context, tx pgx.Tx, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, eq *entities.Equipment) error
	UpdateEquipment(ctx context.Context, id string, eq *entities.Equipment) error
	DeleteEquipment(ctx context.Context, id string) error
	// UpdateStatusGuarded is the compare-and-swap every ledger transition
	// goes through: the row is updated only when its current status still
	// matches expected, and status/assigned_to change together.
	UpdateStatusGuarded(ctx context.Context, tx pgx.Tx, id, expected, next string, assignedTo *string) error
	HasLedgerHistory(ctx context.Context, id string) (bool, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var branchID, assignedTo, observations, employeeName sql.NullString

	err := row.Scan(
		&e.ID, &e.CompanyID, &branchID, &e.InventoryCode, &e.EquipmentType, &e.Brand, &e.Model,
		&e.SerialNumber, &e.Status, &assignedTo, &observations, &e.CustomFields,
		&e.CreatedAt, &e.UpdatedAt,
		&employeeName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan equipment: %w", err)
	}

	if branchID.Valid {
		e.BranchID = &branchID.String
	}
	if assignedTo.Valid {
		e.AssignedTo = &assignedTo.String
	}
	if observations.Valid {
		e.Observations = &observations.String
	}
	if employeeName.Valid {
		name := strings.TrimSpace(employeeName.String)
		e.AssignedEmployeeName = &name
	}
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select(equipmentFields + `, emp.first_name || ' ' || emp.last_name AS assigned_employee_name`).
		From(equipmentTable + " e").
		LeftJoin("employees emp ON emp.id = e.assigned_to")
	countQ := psql.Select("COUNT(*)").From(equipmentTable + " e")

	for key, value := range filter.Filter {
		col, ok := equipmentColumnMap[key]
		if !ok {
			continue
		}
		base = base.Where(sq.Eq{col: value})
		countQ = countQ.Where(sq.Eq{col: value})
	}

	if filter.Search != "" {
		pat := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.ILike{"e.inventory_code": pat},
			sq.ILike{"e.serial_number": pat},
			sq.ILike{"e.brand": pat},
			sq.ILike{"e.model": pat},
		}
		base = base.Where(cond)
		countQ = countQ.Where(cond)
	}

	orderBy := "e.created_at DESC"
	for key, dir := range filter.Sort {
		if col, ok := equipmentColumnMap[key]; ok {
			if strings.EqualFold(dir, "asc") {
				orderBy = col + " ASC"
			} else {
				orderBy = col + " DESC"
			}
			break
		}
	}
	base = base.OrderBy(orderBy)

	if filter.Limit > 0 {
		base = base.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build equipment query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.Equipment
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *eq)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build equipment count query: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *EquipmentRepository) findByID(ctx context.Context, q querier, id string) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT %s, emp.first_name || ' ' || emp.last_name AS assigned_employee_name
		FROM %s e
		LEFT JOIN employees emp ON emp.id = e.assigned_to
		WHERE e.id = $1`, equipmentFields, equipmentTable)

	eq, err := scanEquipment(q.QueryRow(ctx, query, id))
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NewNotFoundError("equipment", id)
	}
	return eq, err
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return r.findByID(ctx, r.storage, id)
}

func (r *EquipmentRepository) FindEquipmentTx(ctx context.Context, tx pgx.Tx, id string) (*entities.Equipment, error) {
	return r.findByID(ctx, tx, id)
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, eq *entities.Equipment) error {
	eq.ID = uuid.NewString()

	query := fmt.Sprintf(`
		INSERT INTO %s (id, company_id, branch_id, inventory_code, equipment_type, brand, model,
			serial_number, status, observations, custom_fields)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`, equipmentTable)

	err := r.storage.QueryRow(ctx, query,
		eq.ID, eq.CompanyID, eq.BranchID, eq.InventoryCode, eq.EquipmentType, eq.Brand, eq.Model,
		eq.SerialNumber, eq.Status, eq.Observations, eq.CustomFields,
	).Scan(&eq.CreatedAt, &eq.UpdatedAt)

	if err != nil {
		return mapEquipmentUniqueError(err, eq)
	}
	return nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id string, eq *entities.Equipment) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET company_id = $1, branch_id = $2, inventory_code = $3, equipment_type = $4, brand = $5,
			model = $6, serial_number = $7, observations = $8, custom_fields = $9, updated_at = CURRENT_TIMESTAMP
		WHERE id = $10`, equipmentTable)

	result, err := r.storage.Exec(ctx, query,
		eq.CompanyID, eq.BranchID, eq.InventoryCode, eq.EquipmentType, eq.Brand,
		eq.Model, eq.SerialNumber, eq.Observations, eq.CustomFields, id,
	)
	if err != nil {
		return mapEquipmentUniqueError(err, eq)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("equipment", id)
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("equipment", id)
	}
	return nil
}

func (r *EquipmentRepository) UpdateStatusGuarded(ctx context.Context, tx pgx.Tx, id, expected, next string, assignedTo *string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, assigned_to = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3 AND status = $4`, equipmentTable)

	result, err := tx.Exec(ctx, query, next, assignedTo, id, expected)
	if err != nil {
		return err
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	// Guard failed: tell NotFound apart from a lost status race.
	var current string
	err = tx.QueryRow(ctx, fmt.Sprintf("SELECT status FROM %s WHERE id = $1", equipmentTable), id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError("equipment", id)
	}
	if err != nil {
		return err
	}

	r.logger.Warn("equipment status guard failed",
		zap.String("equipment_id", id),
		zap.String("expected", expected),
		zap.String("current", current))
	return apperrors.NewConflictError("equipment", id,
		"equipment status changed concurrently: expected %q, found %q", expected, current)
}

func (r *EquipmentRepository) HasLedgerHistory(ctx context.Context, id string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM assignments WHERE equipment_id = $1)
			OR EXISTS (SELECT 1 FROM maintenance_orders WHERE equipment_id = $1)
			OR EXISTS (SELECT 1 FROM decommissions WHERE equipment_id = $1)
			OR EXISTS (SELECT 1 FROM equipment_logs WHERE equipment_id = $1)`

	var has bool
	if err := r.storage.QueryRow(ctx, query, id).Scan(&has); err != nil {
		return false, err
	}
	return has, nil
}

// mapEquipmentUniqueError turns unique-index violations on the identity
// columns into Conflict errors the caller can act on.
func mapEquipmentUniqueError(err error, eq *entities.Equipment) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "serial_number"):
			return apperrors.NewConflictError("equipment", eq.SerialNumber,
				"an equipment with serial number %q already exists", eq.SerialNumber)
		case strings.Contains(pgErr.ConstraintName, "inventory_code"):
			return apperrors.NewConflictError("equipment", eq.InventoryCode,
				"an equipment with inventory code %q already exists", eq.InventoryCode)
		}
	}
	return err
}
