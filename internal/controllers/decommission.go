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

type DecommissionController struct {
	decommissionService services.DecommissionServiceInterface
	logger              *zap.Logger
}

func NewDecommissionController(decommissionService services.DecommissionServiceInterface, logger *zap.Logger) *DecommissionController {
	return &DecommissionController{decommissionService: decommissionService, logger: logger}
}

func (c *DecommissionController) GetDecommissions(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	list, total, err := c.decommissionService.GetDecommissions(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("failed to list decommission records", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessList(ctx, "decommission list", list, total, filter.Page, filter.Limit)
}

func (c *DecommissionController) FindDecommission(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	record, err := c.decommissionService.FindDecommission(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "decommission record found", record)
}

func (c *DecommissionController) CreateDecommission(ctx echo.Context) error {
	var payload dto.CreateDecommissionDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	record, err := c.decommissionService.CreateDecommission(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("failed to decommission equipment", zap.Any("payload", payload), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "equipment decommissioned", record)
}
