package entities

import "time"

// EquipmentLog is one immutable audit entry in an equipment's history.
// Entries are appended by the ledgers and never updated or deleted.
type EquipmentLog struct {
	ID          string    `json:"id"`
	EquipmentID string    `json:"equipment_id"`
	LogType     string    `json:"log_type"`
	Description string    `json:"description"`
	PerformedBy *string   `json:"performed_by,omitempty"`
	// Actor display name captured at write time; the core has no user
	// directory to resolve it from later.
	PerformedByName *string   `json:"performed_by_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
