package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateDecommissionDTO struct {
	EquipmentID  string                 `json:"equipment_id" validate:"required"`
	Reason       string                 `json:"reason" validate:"required"`
	Description  null.String            `json:"description"`
	CustomFields map[string]interface{} `json:"custom_fields"`
}
