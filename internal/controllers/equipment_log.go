package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/api"
	apperrors "inventory-system/pkg/errors"
)

// EquipmentLogController exposes manual audit entries. Lifecycle
// operations write their own entries; this endpoint is for ad-hoc notes
// an operator wants on the record.
type EquipmentLogController struct {
	logService services.EquipmentLogServiceInterface
	logger     *zap.Logger
}

func NewEquipmentLogController(logService services.EquipmentLogServiceInterface, logger *zap.Logger) *EquipmentLogController {
	return &EquipmentLogController{logService: logService, logger: logger}
}

func (c *EquipmentLogController) CreateLog(ctx echo.Context) error {
	var payload dto.CreateEquipmentLogDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	entry, err := c.logService.CreateLog(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("failed to create equipment log", zap.Any("payload", payload), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "log entry created", entry)
}
