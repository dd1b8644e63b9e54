package entities

import (
	"time"

	"inventory-system/pkg/types"
)

// MaintenanceOrder is a work order against one equipment. Creating an
// order never moves the equipment; only start/complete do.
type MaintenanceOrder struct {
	ID          string `json:"id"`
	EquipmentID string `json:"equipment_id"`
	Kind        string `json:"maintenance_type"`
	Status      string `json:"status"`
	Description string `json:"description"`
	Technician  *string `json:"technician,omitempty"`

	// Preventive orders.
	NextMaintenanceDate  *time.Time `json:"next_maintenance_date,omitempty"`
	MaintenanceFrequency *string    `json:"maintenance_frequency,omitempty"`

	// Corrective and repair orders.
	ProblemDiagnosis *string  `json:"problem_diagnosis,omitempty"`
	SolutionApplied  *string  `json:"solution_applied,omitempty"`
	RepairTimeHours  *float64 `json:"repair_time_hours,omitempty"`
	PartsUsed        *string  `json:"parts_used,omitempty"`

	CustomFields map[string]interface{} `json:"custom_fields,omitempty"`
	PerformedBy  *string                `json:"performed_by,omitempty"`
	CompletedAt  *time.Time             `json:"completed_at,omitempty"`

	types.BaseEntity

	// Denormalized for display.
	EquipmentCode *string `db:"-" json:"equipment_code,omitempty"`
}
