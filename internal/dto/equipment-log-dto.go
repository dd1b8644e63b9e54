package dto

type CreateEquipmentLogDTO struct {
	EquipmentID string `json:"equipment_id" validate:"required"`
	LogType     string `json:"log_type" validate:"required"`
	Description string `json:"description" validate:"required"`
}
