package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
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

const assignmentTable = "assignments"

const assignmentFields = `a.id, a.equipment_id, a.employee_id, a.delivery_date, a.return_date, a.status,
	a.observations, a.return_observations, a.created_at, a.updated_at`

var assignmentColumnMap = map[string]string{
	"equipment_id": "a.equipment_id",
	"employee_id":  "a.employee_id",
	"status":       "a.status",
	"created_at":   "a.created_at",
}

type AssignmentRepositoryInterface interface {
	GetAssignments(ctx context.Context, filter types.Filter) ([]entities.Assignment, uint64, error)
	FindAssignment(ctx context.Context, id string) (*entities.Assignment, error)
	FindAssignmentTx(ctx context.Context, tx pgx.Tx, id string) (*entities.Assignment, error)
	CreateAssignmentTx(ctx context.Context, tx pgx.Tx, a *entities.Assignment) error
	CloseAssignmentTx(ctx context.Context, tx pgx.Tx, id string, returnDate time.Time, returnObservations *string) error
}

type AssignmentRepository struct {
	storage *pgxpool.Pool
}

func NewAssignmentRepository(storage *pgxpool.Pool) AssignmentRepositoryInterface {
	return &AssignmentRepository{storage: storage}
}

func scanAssignment(row pgx.Row) (*entities.Assignment, error) {
	var a entities.Assignment
	var returnDate sql.NullTime
	var observations, returnObservations, equipmentCode, equipmentType, employeeName sql.NullString

	err := row.Scan(
		&a.ID, &a.EquipmentID, &a.EmployeeID, &a.DeliveryDate, &returnDate, &a.Status,
		&observations, &returnObservations, &a.CreatedAt, &a.UpdatedAt,
		&equipmentCode, &equipmentType, &employeeName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan assignment: %w", err)
	}

	if returnDate.Valid {
		a.ReturnDate = &returnDate.Time
	}
	if observations.Valid {
		a.Observations = &observations.String
	}
	if returnObservations.Valid {
		a.ReturnObservations = &returnObservations.String
	}
	if equipmentCode.Valid {
		a.EquipmentCode = &equipmentCode.String
	}
	if equipmentType.Valid {
		a.EquipmentType = &equipmentType.String
	}
	if employeeName.Valid {
		name := strings.TrimSpace(employeeName.String)
		a.EmployeeName = &name
	}
	return &a, nil
}

const assignmentJoins = ` LEFT JOIN equipments e ON e.id = a.equipment_id
	LEFT JOIN employees emp ON emp.id = a.employee_id`

const assignmentJoinFields = `, e.inventory_code, e.equipment_type, emp.first_name || ' ' || emp.last_name`

func (r *AssignmentRepository) GetAssignments(ctx context.Context, filter types.Filter) ([]entities.Assignment, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select(assignmentFields + assignmentJoinFields).
		From(assignmentTable + " a").
		JoinClause(assignmentJoins)
	countQ := psql.Select("COUNT(*)").From(assignmentTable + " a")

	for key, value := range filter.Filter {
		col, ok := assignmentColumnMap[key]
		if !ok {
			continue
		}
		base = base.Where(sq.Eq{col: value})
		countQ = countQ.Where(sq.Eq{col: value})
	}

	base = base.OrderBy("a.created_at DESC")
	if filter.Limit > 0 {
		base = base.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build assignment query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *a)
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

func (r *AssignmentRepository) findByID(ctx context.Context, q querier, id string) (*entities.Assignment, error) {
	query := fmt.Sprintf(`SELECT %s%s FROM %s a%s WHERE a.id = $1`,
		assignmentFields, assignmentJoinFields, assignmentTable, assignmentJoins)

	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NewNotFoundError("assignment", id)
	}
	return a, err
}

func (r *AssignmentRepository) FindAssignment(ctx context.Context, id string) (*entities.Assignment, error) {
	return r.findByID(ctx, r.storage, id)
}

func (r *AssignmentRepository) FindAssignmentTx(ctx context.Context, tx pgx.Tx, id string) (*entities.Assignment, error) {
	return r.findByID(ctx, tx, id)
}

func (r *AssignmentRepository) CreateAssignmentTx(ctx context.Context, tx pgx.Tx, a *entities.Assignment) error {
	a.ID = uuid.NewString()

	query := fmt.Sprintf(`
		INSERT INTO %s (id, equipment_id, employee_id, delivery_date, status, observations)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`, assignmentTable)

	return tx.QueryRow(ctx, query,
		a.ID, a.EquipmentID, a.EmployeeID, a.DeliveryDate, a.Status, a.Observations,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *AssignmentRepository) CloseAssignmentTx(ctx context.Context, tx pgx.Tx, id string, returnDate time.Time, returnObservations *string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, return_date = $2, return_observations = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4`, assignmentTable)

	result, err := tx.Exec(ctx, query, constants.AssignmentStatusClosed, returnDate, returnObservations, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("assignment", id)
	}
	return nil
}
