package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	CompanyID     string                 `json:"company_id" validate:"required"`
	BranchID      null.String            `json:"branch_id"`
	InventoryCode string                 `json:"inventory_code" validate:"required"`
	EquipmentType string                 `json:"equipment_type" validate:"required"`
	Brand         string                 `json:"brand" validate:"required"`
	Model         string                 `json:"model" validate:"required"`
	SerialNumber  string                 `json:"serial_number" validate:"required"`
	Observations  null.String            `json:"observations"`
	CustomFields  map[string]interface{} `json:"custom_fields"`
}

// UpdateEquipmentDTO covers the descriptive fields only. Status and
// assigned_to are owned by the ledgers and cannot be patched here.
type UpdateEquipmentDTO struct {
	CompanyID     string                 `json:"company_id" validate:"required"`
	BranchID      null.String            `json:"branch_id"`
	InventoryCode string                 `json:"inventory_code" validate:"required"`
	EquipmentType string                 `json:"equipment_type" validate:"required"`
	Brand         string                 `json:"brand" validate:"required"`
	Model         string                 `json:"model" validate:"required"`
	SerialNumber  string                 `json:"serial_number" validate:"required"`
	Observations  null.String            `json:"observations"`
	CustomFields  map[string]interface{} `json:"custom_fields"`
}
