package services

import (
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/types"
)

func defaultFilter() types.Filter {
	return types.Filter{Limit: 20, Page: 1}
}

type testEnv struct {
	equipment     *fakeEquipmentRepo
	assignments   *fakeAssignmentRepo
	maintenance   *fakeMaintenanceRepo
	decommissions *fakeDecommissionRepo
	employees     *fakeEmployeeRepo
	logs          *fakeLogRepo

	equipmentSvc    EquipmentServiceInterface
	assignmentSvc   AssignmentServiceInterface
	maintenanceSvc  MaintenanceServiceInterface
	decommissionSvc DecommissionServiceInterface
}

func newTestEnv(employees ...*entities.Employee) *testEnv {
	env := &testEnv{
		equipment:     newFakeEquipmentRepo(),
		assignments:   newFakeAssignmentRepo(),
		maintenance:   newFakeMaintenanceRepo(),
		decommissions: newFakeDecommissionRepo(),
		employees:     newFakeEmployeeRepo(employees...),
		logs:          &fakeLogRepo{},
	}

	logger := zap.NewNop()
	tx := &fakeTxManager{}
	logSvc := NewEquipmentLogService(env.logs, logger)

	env.equipmentSvc = NewEquipmentService(env.equipment, logSvc, logger)
	env.assignmentSvc = NewAssignmentService(tx, env.assignments, env.equipment, env.employees, logSvc, logger)
	env.maintenanceSvc = NewMaintenanceService(tx, env.maintenance, env.equipment, logSvc, logger)
	env.decommissionSvc = NewDecommissionService(tx, env.decommissions, env.equipment, logSvc, logger)
	return env
}

// seedEquipment registers one equipment in the given status and returns it.
func (env *testEnv) seedEquipment(status string, assignedTo *string) *entities.Equipment {
	eq := &entities.Equipment{
		CompanyID:     "acme",
		InventoryCode: "INV-001",
		EquipmentType: "Laptop",
		Brand:         "Dell",
		Model:         "Latitude 5440",
		SerialNumber:  "SN-001",
		Status:        status,
		AssignedTo:    assignedTo,
	}
	env.equipment.put(eq)
	return eq
}

func (env *testEnv) seedAvailable() *entities.Equipment {
	return env.seedEquipment(constants.EquipmentStatusAvailable, nil)
}
