package constants

// Equipment lifecycle statuses. Wire values match the legacy Inventario
// TI data, so existing records and the frontend keep working unchanged.
const (
	EquipmentStatusAvailable      = "Disponible"
	EquipmentStatusAssigned       = "Asignado"
	EquipmentStatusInMaintenance  = "En Mantenimiento"
	EquipmentStatusDecommissioned = "De Baja"
)

// EquipmentStatuses lists every valid equipment status.
var EquipmentStatuses = []string{
	EquipmentStatusAvailable,
	EquipmentStatusAssigned,
	EquipmentStatusInMaintenance,
	EquipmentStatusDecommissioned,
}

func IsValidEquipmentStatus(status string) bool {
	for _, s := range EquipmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminalEquipmentStatus reports whether no transition may leave the
// given status.
func IsTerminalEquipmentStatus(status string) bool {
	return status == EquipmentStatusDecommissioned
}

// Assignment statuses: one-way Activa -> Finalizada.
const (
	AssignmentStatusActive = "Activa"
	AssignmentStatusClosed = "Finalizada"
)

// Maintenance order statuses: strictly forward
// Pendiente -> En Proceso -> Finalizado.
const (
	MaintenanceStatusPending    = "Pendiente"
	MaintenanceStatusInProgress = "En Proceso"
	MaintenanceStatusCompleted  = "Finalizado"
)

// Maintenance kinds.
const (
	MaintenanceKindPreventive = "Preventivo"
	MaintenanceKindCorrective = "Correctivo"
	MaintenanceKindRepair     = "Reparacion"
	MaintenanceKindOther      = "Otro"
)

var MaintenanceKinds = []string{
	MaintenanceKindPreventive,
	MaintenanceKindCorrective,
	MaintenanceKindRepair,
	MaintenanceKindOther,
}

func IsValidMaintenanceKind(kind string) bool {
	for _, k := range MaintenanceKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Audit log categories.
const (
	LogCategoryStatusChange = "Cambio"
	LogCategoryMaintenance  = "Mantenimiento"
)
