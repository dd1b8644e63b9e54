package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

const equipmentLogTable = "equipment_logs"

// EquipmentLogRepository is the append-only audit trail. Entries are
// inserted and read, never updated or deleted.
type EquipmentLogRepositoryInterface interface {
	Append(ctx context.Context, log *entities.EquipmentLog) error
	ListForEquipment(ctx context.Context, equipmentID string, limit uint64) ([]entities.EquipmentLog, error)
	ListRecent(ctx context.Context, limit uint64) ([]entities.EquipmentLog, error)
}

type EquipmentLogRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentLogRepository(storage *pgxpool.Pool) EquipmentLogRepositoryInterface {
	return &EquipmentLogRepository{storage: storage}
}

func (r *EquipmentLogRepository) Append(ctx context.Context, log *entities.EquipmentLog) error {
	log.ID = uuid.NewString()

	query := fmt.Sprintf(`
		INSERT INTO %s (id, equipment_id, log_type, description, performed_by, performed_by_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`, equipmentLogTable)

	err := r.storage.QueryRow(ctx, query,
		log.ID, log.EquipmentID, log.LogType, log.Description, log.PerformedBy, log.PerformedByName,
	).Scan(&log.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return apperrors.NewNotFoundError("equipment", log.EquipmentID)
	}
	return err
}

func (r *EquipmentLogRepository) list(ctx context.Context, where string, args []interface{}, limit uint64) ([]entities.EquipmentLog, error) {
	if limit == 0 {
		limit = 50
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT l.id, l.equipment_id, l.log_type, l.description, l.performed_by, l.performed_by_name, l.created_at
		FROM %s l
		%s
		ORDER BY l.created_at DESC
		LIMIT $%d`, equipmentLogTable, where, len(args))

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []entities.EquipmentLog
	for rows.Next() {
		var l entities.EquipmentLog
		var performedBy, performedByName sql.NullString
		if err := rows.Scan(&l.ID, &l.EquipmentID, &l.LogType, &l.Description, &performedBy, &performedByName, &l.CreatedAt); err != nil {
			return nil, err
		}
		if performedBy.Valid {
			l.PerformedBy = &performedBy.String
		}
		if performedByName.Valid {
			l.PerformedByName = &performedByName.String
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *EquipmentLogRepository) ListForEquipment(ctx context.Context, equipmentID string, limit uint64) ([]entities.EquipmentLog, error) {
	return r.list(ctx, "WHERE l.equipment_id = $1", []interface{}{equipmentID}, limit)
}

func (r *EquipmentLogRepository) ListRecent(ctx context.Context, limit uint64) ([]entities.EquipmentLog, error) {
	return r.list(ctx, "", nil, limit)
}
