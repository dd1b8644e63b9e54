package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
)

// These tests run against a real database with the migrations applied.
// Set TEST_DATABASE_URL to enable them.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(context.Background()))
	return pool
}

func seedTestEquipment(t *testing.T, repo EquipmentRepositoryInterface) *entities.Equipment {
	t.Helper()

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	eq := &entities.Equipment{
		CompanyID:     "test-co",
		InventoryCode: "TST-" + suffix,
		EquipmentType: "Laptop",
		Brand:         "Dell",
		Model:         "Latitude",
		SerialNumber:  "SN-" + suffix,
		Status:        constants.EquipmentStatusAvailable,
	}
	require.NoError(t, repo.CreateEquipment(context.Background(), eq))

	t.Cleanup(func() {
		_ = repo.DeleteEquipment(context.Background(), eq.ID)
	})
	return eq
}

func TestEquipmentRepositoryRoundTrip(t *testing.T) {
	pool := testPool(t)
	repo := NewEquipmentRepository(pool, zap.NewNop())
	eq := seedTestEquipment(t, repo)

	got, err := repo.FindEquipment(context.Background(), eq.ID)
	require.NoError(t, err)
	assert.Equal(t, eq.InventoryCode, got.InventoryCode)
	assert.Equal(t, constants.EquipmentStatusAvailable, got.Status)
	assert.Nil(t, got.AssignedTo)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestEquipmentRepositoryDuplicateSerial(t *testing.T) {
	pool := testPool(t)
	repo := NewEquipmentRepository(pool, zap.NewNop())
	eq := seedTestEquipment(t, repo)

	dup := &entities.Equipment{
		CompanyID:     "test-co",
		InventoryCode: eq.InventoryCode + "-other",
		EquipmentType: "Laptop",
		Brand:         "Dell",
		Model:         "Latitude",
		SerialNumber:  eq.SerialNumber,
		Status:        constants.EquipmentStatusAvailable,
	}
	err := repo.CreateEquipment(context.Background(), dup)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUpdateStatusGuardedConflict(t *testing.T) {
	pool := testPool(t)
	repo := NewEquipmentRepository(pool, zap.NewNop())
	eq := seedTestEquipment(t, repo)

	ctx := context.Background()

	inTx := func(fn func(tx pgx.Tx) error) error {
		tx, err := pool.Begin(ctx)
		require.NoError(t, err)
		if err := fn(tx); err != nil {
			_ = tx.Rollback(ctx)
			return err
		}
		return tx.Commit(ctx)
	}

	employeeID := fmt.Sprintf("emp-%d", time.Now().UnixNano())
	_, err := pool.Exec(ctx,
		`INSERT INTO employees (id, company_id, first_name, last_name) VALUES ($1, 'test-co', 'Guard', 'Test')`,
		employeeID)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `UPDATE equipments SET assigned_to = NULL WHERE assigned_to = $1`, employeeID)
		_, _ = pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, employeeID)
	})

	err = inTx(func(tx pgx.Tx) error {
		return repo.UpdateStatusGuarded(ctx, tx,
			eq.ID, constants.EquipmentStatusAvailable, constants.EquipmentStatusAssigned, &employeeID)
	})
	require.NoError(t, err)

	// the equipment is no longer Disponible, so the same swap must lose
	err = inTx(func(tx pgx.Tx) error {
		return repo.UpdateStatusGuarded(ctx, tx,
			eq.ID, constants.EquipmentStatusAvailable, constants.EquipmentStatusAssigned, &employeeID)
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	err = inTx(func(tx pgx.Tx) error {
		return repo.UpdateStatusGuarded(ctx, tx,
			"00000000-0000-0000-0000-000000000000", constants.EquipmentStatusAvailable,
			constants.EquipmentStatusAssigned, nil)
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
