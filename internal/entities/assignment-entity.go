package entities

import (
	"time"

	"inventory-system/pkg/types"
)

// Assignment records custody of one equipment by one employee.
// At most one Activa assignment exists per equipment at any time.
type Assignment struct {
	ID                 string     `json:"id"`
	EquipmentID        string     `json:"equipment_id"`
	EmployeeID         string     `json:"employee_id"`
	DeliveryDate       time.Time  `json:"delivery_date"`
	ReturnDate         *time.Time `json:"return_date,omitempty"`
	Status             string     `json:"status"`
	Observations       *string    `json:"observations,omitempty"`
	ReturnObservations *string    `json:"return_observations,omitempty"`

	types.BaseEntity

	// Denormalized for display.
	EquipmentCode *string `db:"-" json:"equipment_code,omitempty"`
	EquipmentType *string `db:"-" json:"equipment_type,omitempty"`
	EmployeeName  *string `db:"-" json:"employee_name,omitempty"`
}
