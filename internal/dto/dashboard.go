package dto

import "inventory-system/internal/entities"

type DashboardStatsDTO struct {
	EquipmentTotal     uint64            `json:"equipment_total"`
	EquipmentByStatus  map[string]uint64 `json:"equipment_by_status"`
	ActiveAssignments  uint64            `json:"active_assignments"`
	OpenMaintenance    uint64            `json:"open_maintenance"`
	Decommissioned     uint64            `json:"decommissioned"`
	RecentActivity     []entities.EquipmentLog `json:"recent_activity"`
}
