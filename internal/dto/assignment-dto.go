package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateAssignmentDTO struct {
	EquipmentID  string      `json:"equipment_id" validate:"required"`
	EmployeeID   string      `json:"employee_id" validate:"required"`
	DeliveryDate string      `json:"delivery_date" validate:"required,datetime=2006-01-02"`
	Observations null.String `json:"observations"`
}

type ReturnAssignmentDTO struct {
	Observations null.String `json:"observations"`
}
