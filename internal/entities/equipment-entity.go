package entities

import (
	"inventory-system/pkg/types"
)

// Equipment is the root entity of the lifecycle core. Its status and
// assigned_to are mutated only through the guarded repository update the
// ledgers call; they always change together.
type Equipment struct {
	ID            string                 `json:"id"`
	CompanyID     string                 `json:"company_id"`
	BranchID      *string                `json:"branch_id,omitempty"`
	InventoryCode string                 `json:"inventory_code"`
	EquipmentType string                 `json:"equipment_type"`
	Brand         string                 `json:"brand"`
	Model         string                 `json:"model"`
	SerialNumber  string                 `json:"serial_number"`
	Status        string                 `json:"status"`
	AssignedTo    *string                `json:"assigned_to,omitempty"`
	Observations  *string                `json:"observations,omitempty"`
	CustomFields  map[string]interface{} `json:"custom_fields,omitempty"`

	types.BaseEntity

	// Denormalized for display, not columns of the equipments table.
	AssignedEmployeeName *string `db:"-" json:"assigned_employee_name,omitempty"`
}
