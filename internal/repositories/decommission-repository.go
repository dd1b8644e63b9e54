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
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

const decommissionTable = "decommissions"

const decommissionFields = `d.id, d.equipment_id, d.decommission_date, d.reason, d.description,
	d.responsible_user_id, d.custom_fields`

var decommissionColumnMap = map[string]string{
	"equipment_id": "d.equipment_id",
	"reason":       "d.reason",
}

type DecommissionRepositoryInterface interface {
	GetDecommissions(ctx context.Context, filter types.Filter) ([]entities.DecommissionRecord, uint64, error)
	FindDecommission(ctx context.Context, id string) (*entities.DecommissionRecord, error)
	CreateDecommissionTx(ctx context.Context, tx pgx.Tx, d *entities.DecommissionRecord) error
}

type DecommissionRepository struct {
	storage *pgxpool.Pool
}

func NewDecommissionRepository(storage *pgxpool.Pool) DecommissionRepositoryInterface {
	return &DecommissionRepository{storage: storage}
}

func scanDecommission(row pgx.Row) (*entities.DecommissionRecord, error) {
	var d entities.DecommissionRecord
	var description, responsibleID, equipmentCode, responsibleName sql.NullString

	err := row.Scan(
		&d.ID, &d.EquipmentID, &d.DecommissionDate, &d.Reason, &description,
		&responsibleID, &d.CustomFields,
		&equipmentCode, &responsibleName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan decommission record: %w", err)
	}

	if description.Valid {
		d.Description = &description.String
	}
	if responsibleID.Valid {
		d.ResponsibleUserID = &responsibleID.String
	}
	if equipmentCode.Valid {
		d.EquipmentCode = &equipmentCode.String
	}
	if responsibleName.Valid {
		name := strings.TrimSpace(responsibleName.String)
		d.ResponsibleUserName = &name
	}
	return &d, nil
}

const decommissionJoin = ` LEFT JOIN equipments e ON e.id = d.equipment_id`
const decommissionJoinFields = `, e.inventory_code, NULL::text AS responsible_user_name`

func (r *DecommissionRepository) GetDecommissions(ctx context.Context, filter types.Filter) ([]entities.DecommissionRecord, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select(decommissionFields + decommissionJoinFields).
		From(decommissionTable + " d").
		JoinClause(decommissionJoin)
	countQ := psql.Select("COUNT(*)").From(decommissionTable + " d")

	for key, value := range filter.Filter {
		col, ok := decommissionColumnMap[key]
		if !ok {
			continue
		}
		base = base.Where(sq.Eq{col: value})
		countQ = countQ.Where(sq.Eq{col: value})
	}

	base = base.OrderBy("d.decommission_date DESC")
	if filter.Limit > 0 {
		base = base.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build decommission query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.DecommissionRecord
	for rows.Next() {
		d, err := scanDecommission(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *d)
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

func (r *DecommissionRepository) FindDecommission(ctx context.Context, id string) (*entities.DecommissionRecord, error) {
	query := fmt.Sprintf(`SELECT %s%s FROM %s d%s WHERE d.id = $1`,
		decommissionFields, decommissionJoinFields, decommissionTable, decommissionJoin)

	d, err := scanDecommission(r.storage.QueryRow(ctx, query, id))
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NewNotFoundError("decommission record", id)
	}
	return d, err
}

func (r *DecommissionRepository) CreateDecommissionTx(ctx context.Context, tx pgx.Tx, d *entities.DecommissionRecord) error {
	d.ID = uuid.NewString()

	query := fmt.Sprintf(`
		INSERT INTO %s (id, equipment_id, decommission_date, reason, description, responsible_user_id, custom_fields)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`, decommissionTable)

	_, err := tx.Exec(ctx, query,
		d.ID, d.EquipmentID, d.DecommissionDate, d.Reason, d.Description, d.ResponsibleUserID, d.CustomFields)
	return err
}
