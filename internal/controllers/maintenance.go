package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/api"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

type MaintenanceController struct {
	maintenanceService services.MaintenanceServiceInterface
	logger             *zap.Logger
}

func NewMaintenanceController(maintenanceService services.MaintenanceServiceInterface, logger *zap.Logger) *MaintenanceController {
	return &MaintenanceController{maintenanceService: maintenanceService, logger: logger}
}

func (c *MaintenanceController) GetOrders(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	list, total, err := c.maintenanceService.GetOrders(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("failed to list maintenance orders", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessList(ctx, "maintenance list", list, total, filter.Page, filter.Limit)
}

func (c *MaintenanceController) FindOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	order, err := c.maintenanceService.FindOrder(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "maintenance order found", order)
}

func (c *MaintenanceController) CreateOrder(ctx echo.Context) error {
	var payload dto.CreateMaintenanceDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	order, err := c.maintenanceService.CreateOrder(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("failed to create maintenance order", zap.Any("payload", payload), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "maintenance order created", order)
}

func (c *MaintenanceController) StartOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	order, err := c.maintenanceService.StartOrder(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("failed to start maintenance order", zap.String("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "maintenance started", order)
}

func (c *MaintenanceController) CompleteOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	var payload dto.CompleteMaintenanceDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	order, err := c.maintenanceService.CompleteOrder(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("failed to complete maintenance order", zap.String("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "maintenance completed", order)
}
