package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/api"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logService       services.EquipmentLogServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	logService services.EquipmentLogServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		logService:       logService,
		logger:           logger,
	}
}

func pathID(ctx echo.Context) (string, error) {
	id := ctx.Param("id")
	if err := uuid.Validate(id); err != nil {
		return "", apperrors.NewHttpError(http.StatusBadRequest, "invalid id format", err,
			map[string]interface{}{"param": id})
	}
	return id, nil
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	list, total, err := c.equipmentService.GetEquipments(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("failed to list equipment", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.SuccessList(ctx, "equipment list", list, total, filter.Page, filter.Limit)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	eq, err := c.equipmentService.FindEquipment(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "equipment found", eq)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	eq, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("failed to create equipment", zap.Any("payload", payload), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "equipment created", eq)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	var payload dto.UpdateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	eq, err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("failed to update equipment", zap.String("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "equipment updated", eq)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), id); err != nil {
		c.logger.Error("failed to delete equipment", zap.String("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "equipment deleted", struct{}{})
}

func (c *EquipmentController) GetEquipmentLogs(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	params := utils.ParseQuery(ctx.Request().URL.Query())
	logs, err := c.logService.ListForEquipment(ctx.Request().Context(), id, params.Limit)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessList(ctx, "equipment history", logs, uint64(len(logs)), int(params.Page), int(params.Limit))
}
