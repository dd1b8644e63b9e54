package entities

import (
	"time"
)

// DecommissionRecord is the terminal retirement of one equipment. There
// is no un-decommission operation.
type DecommissionRecord struct {
	ID                string                 `json:"id"`
	EquipmentID       string                 `json:"equipment_id"`
	DecommissionDate  time.Time              `json:"decommission_date"`
	Reason            string                 `json:"reason"`
	Description       *string                `json:"description,omitempty"`
	ResponsibleUserID *string                `json:"responsible_user_id,omitempty"`
	CustomFields      map[string]interface{} `json:"custom_fields,omitempty"`

	// Denormalized for display.
	EquipmentCode       *string `db:"-" json:"equipment_code,omitempty"`
	ResponsibleUserName *string `db:"-" json:"responsible_user_name,omitempty"`
}
