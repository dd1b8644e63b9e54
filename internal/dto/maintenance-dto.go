package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateMaintenanceDTO struct {
	EquipmentID string `json:"equipment_id" validate:"required"`
	Kind        string `json:"maintenance_type" validate:"required,oneof=Preventivo Correctivo Reparacion Otro"`
	Description string `json:"description" validate:"required"`
	Technician  null.String `json:"technician"`

	// Preventive.
	NextMaintenanceDate  null.String `json:"next_maintenance_date" validate:"omitempty,datetime=2006-01-02"`
	MaintenanceFrequency null.String `json:"maintenance_frequency" validate:"omitempty,oneof=Mensual Trimestral Semestral Anual"`

	// Corrective / repair.
	ProblemDiagnosis null.String  `json:"problem_diagnosis"`
	SolutionApplied  null.String  `json:"solution_applied"`
	RepairTimeHours  null.Float64 `json:"repair_time_hours"`
	PartsUsed        null.String  `json:"parts_used"`

	CustomFields map[string]interface{} `json:"custom_fields"`
}

type CompleteMaintenanceDTO struct {
	Notes null.String `json:"notes"`
}
