package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/pkg/constants"
)

type DashboardRepositoryInterface interface {
	CountEquipmentByStatus(ctx context.Context) (map[string]uint64, uint64, error)
	CountActiveAssignments(ctx context.Context) (uint64, error)
	CountOpenMaintenance(ctx context.Context) (uint64, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

func (r *DashboardRepository) CountEquipmentByStatus(ctx context.Context) (map[string]uint64, uint64, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("status", "COUNT(*)").
		From(equipmentTable).
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	counts := make(map[string]uint64, len(constants.EquipmentStatuses))
	var total uint64
	for rows.Next() {
		var status string
		var n uint64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, 0, err
		}
		counts[status] = n
		total += n
	}
	return counts, total, rows.Err()
}

func (r *DashboardRepository) countWhere(ctx context.Context, table string, cond sq.Sqlizer) (uint64, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("COUNT(*)").
		From(table).
		Where(cond).
		ToSql()
	if err != nil {
		return 0, err
	}

	var n uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *DashboardRepository) CountActiveAssignments(ctx context.Context) (uint64, error) {
	return r.countWhere(ctx, assignmentTable, sq.Eq{"status": constants.AssignmentStatusActive})
}

func (r *DashboardRepository) CountOpenMaintenance(ctx context.Context) (uint64, error) {
	return r.countWhere(ctx, maintenanceTable, sq.NotEq{"status": constants.MaintenanceStatusCompleted})
}
