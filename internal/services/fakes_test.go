package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

// In-memory doubles for the repository layer. The equipment fake
// reproduces the conditional-update semantics of the real guarded
// status swap so concurrency scenarios behave like Postgres would.

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeEquipmentRepo struct {
	mu         sync.Mutex
	items      map[string]*entities.Equipment
	hasHistory bool
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{items: make(map[string]*entities.Equipment)}
}

func (f *fakeEquipmentRepo) put(eq *entities.Equipment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if eq.ID == "" {
		eq.ID = uuid.NewString()
	}
	f.items[eq.ID] = eq
}

func (f *fakeEquipmentRepo) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []entities.Equipment
	for _, eq := range f.items {
		list = append(list, *eq)
	}
	return list, uint64(len(list)), nil
}

func (f *fakeEquipmentRepo) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	eq, ok := f.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("equipment", id)
	}
	cp := *eq
	return &cp, nil
}

func (f *fakeEquipmentRepo) FindEquipmentTx(ctx context.Context, tx pgx.Tx, id string) (*entities.Equipment, error) {
	return f.FindEquipment(ctx, id)
}

func (f *fakeEquipmentRepo) CreateEquipment(ctx context.Context, eq *entities.Equipment) error {
	eq.ID = uuid.NewString()
	eq.CreatedAt = time.Now()
	eq.UpdatedAt = eq.CreatedAt
	cp := *eq
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[eq.ID] = &cp
	return nil
}

func (f *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, id string, eq *entities.Equipment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.items[id]
	if !ok {
		return apperrors.NewNotFoundError("equipment", id)
	}
	eq.ID = id
	eq.Status = current.Status
	eq.AssignedTo = current.AssignedTo
	f.items[id] = eq
	return nil
}

func (f *fakeEquipmentRepo) DeleteEquipment(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return apperrors.NewNotFoundError("equipment", id)
	}
	delete(f.items, id)
	return nil
}

func (f *fakeEquipmentRepo) UpdateStatusGuarded(ctx context.Context, tx pgx.Tx, id, expected, next string, assignedTo *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	eq, ok := f.items[id]
	if !ok {
		return apperrors.NewNotFoundError("equipment", id)
	}
	if eq.Status != expected {
		return apperrors.NewConflictError("equipment", id,
			"status changed concurrently")
	}
	eq.Status = next
	eq.AssignedTo = assignedTo
	return nil
}

func (f *fakeEquipmentRepo) HasLedgerHistory(ctx context.Context, id string) (bool, error) {
	return f.hasHistory, nil
}

type fakeAssignmentRepo struct {
	mu    sync.Mutex
	items map[string]*entities.Assignment
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{items: make(map[string]*entities.Assignment)}
}

func (f *fakeAssignmentRepo) GetAssignments(ctx context.Context, filter types.Filter) ([]entities.Assignment, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []entities.Assignment
	for _, a := range f.items {
		list = append(list, *a)
	}
	return list, uint64(len(list)), nil
}

func (f *fakeAssignmentRepo) FindAssignment(ctx context.Context, id string) (*entities.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("assignment", id)
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAssignmentRepo) FindAssignmentTx(ctx context.Context, tx pgx.Tx, id string) (*entities.Assignment, error) {
	return f.FindAssignment(ctx, id)
}

func (f *fakeAssignmentRepo) CreateAssignmentTx(ctx context.Context, tx pgx.Tx, a *entities.Assignment) error {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[a.ID] = &cp
	return nil
}

func (f *fakeAssignmentRepo) CloseAssignmentTx(ctx context.Context, tx pgx.Tx, id string, returnDate time.Time, returnObservations *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.items[id]
	if !ok {
		return apperrors.NewNotFoundError("assignment", id)
	}
	a.Status = constants.AssignmentStatusClosed
	a.ReturnDate = &returnDate
	a.ReturnObservations = returnObservations
	return nil
}

type fakeMaintenanceRepo struct {
	mu    sync.Mutex
	items map[string]*entities.MaintenanceOrder
}

func newFakeMaintenanceRepo() *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{items: make(map[string]*entities.MaintenanceOrder)}
}

func (f *fakeMaintenanceRepo) GetOrders(ctx context.Context, filter types.Filter) ([]entities.MaintenanceOrder, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []entities.MaintenanceOrder
	for _, m := range f.items {
		list = append(list, *m)
	}
	return list, uint64(len(list)), nil
}

func (f *fakeMaintenanceRepo) FindOrder(ctx context.Context, id string) (*entities.MaintenanceOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("maintenance order", id)
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMaintenanceRepo) FindOrderTx(ctx context.Context, tx pgx.Tx, id string) (*entities.MaintenanceOrder, error) {
	return f.FindOrder(ctx, id)
}

func (f *fakeMaintenanceRepo) CreateOrder(ctx context.Context, m *entities.MaintenanceOrder) error {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	cp := *m
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[m.ID] = &cp
	return nil
}

func (f *fakeMaintenanceRepo) SetStatusTx(ctx context.Context, tx pgx.Tx, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.items[id]
	if !ok {
		return apperrors.NewNotFoundError("maintenance order", id)
	}
	m.Status = status
	return nil
}

func (f *fakeMaintenanceRepo) CompleteOrderTx(ctx context.Context, tx pgx.Tx, id, description string, completedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.items[id]
	if !ok {
		return apperrors.NewNotFoundError("maintenance order", id)
	}
	m.Status = constants.MaintenanceStatusCompleted
	m.Description = description
	m.CompletedAt = &completedAt
	return nil
}

type fakeDecommissionRepo struct {
	mu    sync.Mutex
	items map[string]*entities.DecommissionRecord
}

func newFakeDecommissionRepo() *fakeDecommissionRepo {
	return &fakeDecommissionRepo{items: make(map[string]*entities.DecommissionRecord)}
}

func (f *fakeDecommissionRepo) GetDecommissions(ctx context.Context, filter types.Filter) ([]entities.DecommissionRecord, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []entities.DecommissionRecord
	for _, d := range f.items {
		list = append(list, *d)
	}
	return list, uint64(len(list)), nil
}

func (f *fakeDecommissionRepo) FindDecommission(ctx context.Context, id string) (*entities.DecommissionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("decommission record", id)
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDecommissionRepo) CreateDecommissionTx(ctx context.Context, tx pgx.Tx, d *entities.DecommissionRecord) error {
	d.ID = uuid.NewString()
	cp := *d
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[d.ID] = &cp
	return nil
}

type fakeEmployeeRepo struct {
	items map[string]*entities.Employee
}

func newFakeEmployeeRepo(employees ...*entities.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{items: make(map[string]*entities.Employee)}
	for _, e := range employees {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		f.items[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) FindEmployee(ctx context.Context, id string) (*entities.Employee, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("employee", id)
	}
	return e, nil
}

func (f *fakeEmployeeRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeEmployeeRepo) NameOf(ctx context.Context, id string) (string, error) {
	e, err := f.FindEmployee(ctx, id)
	if err != nil {
		return "", err
	}
	return e.FullName(), nil
}

type fakeLogRepo struct {
	mu      sync.Mutex
	entries []entities.EquipmentLog
}

func (f *fakeLogRepo) Append(ctx context.Context, log *entities.EquipmentLog) error {
	log.ID = uuid.NewString()
	log.CreatedAt = time.Now()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, *log)
	return nil
}

func (f *fakeLogRepo) ListForEquipment(ctx context.Context, equipmentID string, limit uint64) ([]entities.EquipmentLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var logs []entities.EquipmentLog
	for _, l := range f.entries {
		if l.EquipmentID == equipmentID {
			logs = append(logs, l)
		}
	}
	return logs, nil
}

func (f *fakeLogRepo) ListRecent(ctx context.Context, limit uint64) ([]entities.EquipmentLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	logs := make([]entities.EquipmentLog, len(f.entries))
	copy(logs, f.entries)
	return logs, nil
}

type fakeCacheRepo struct {
	mu    sync.Mutex
	items map[string]string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{items: make(map[string]string)}
}

func (f *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		f.items[key] = string(v)
	case string:
		f.items[key] = v
	}
	return nil
}

func (f *fakeCacheRepo) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.items[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (f *fakeCacheRepo) Del(ctx context.Context, key ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range key {
		delete(f.items, k)
	}
	return nil
}
