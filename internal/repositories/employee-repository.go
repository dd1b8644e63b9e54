package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

const employeeTable = "employees"

// EmployeeRepository is the read side of the externally-maintained
// employee directory. The assignment ledger validates targets against it
// and denormalizes display names from it.
type EmployeeRepositoryInterface interface {
	FindEmployee(ctx context.Context, id string) (*entities.Employee, error)
	Exists(ctx context.Context, id string) (bool, error)
	NameOf(ctx context.Context, id string) (string, error)
}

type EmployeeRepository struct {
	storage *pgxpool.Pool
}

func NewEmployeeRepository(storage *pgxpool.Pool) EmployeeRepositoryInterface {
	return &EmployeeRepository{storage: storage}
}

func (r *EmployeeRepository) FindEmployee(ctx context.Context, id string) (*entities.Employee, error) {
	query := fmt.Sprintf(`
		SELECT id, company_id, branch_id, first_name, last_name, position, department, email, is_active,
			created_at, updated_at
		FROM %s WHERE id = $1`, employeeTable)

	var e entities.Employee
	var branchID, position, department, email sql.NullString

	err := r.storage.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.CompanyID, &branchID, &e.FirstName, &e.LastName, &position, &department, &email,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("employee", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan employee: %w", err)
	}

	if branchID.Valid {
		e.BranchID = &branchID.String
	}
	if position.Valid {
		e.Position = &position.String
	}
	if department.Valid {
		e.Department = &department.String
	}
	if email.Valid {
		e.Email = &email.String
	}
	return &e, nil
}

func (r *EmployeeRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", employeeTable)
	if err := r.storage.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *EmployeeRepository) NameOf(ctx context.Context, id string) (string, error) {
	emp, err := r.FindEmployee(ctx, id)
	if err != nil {
		return "", err
	}
	return emp.FullName(), nil
}
