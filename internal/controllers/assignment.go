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

type AssignmentController struct {
	assignmentService services.AssignmentServiceInterface
	logger            *zap.Logger
}

func NewAssignmentController(assignmentService services.AssignmentServiceInterface, logger *zap.Logger) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService, logger: logger}
}

func (c *AssignmentController) GetAssignments(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	list, total, err := c.assignmentService.GetAssignments(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("failed to list assignments", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessList(ctx, "assignment list", list, total, filter.Page, filter.Limit)
}

func (c *AssignmentController) FindAssignment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	assignment, err := c.assignmentService.FindAssignment(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "assignment found", assignment)
}

func (c *AssignmentController) CreateAssignment(ctx echo.Context) error {
	var payload dto.CreateAssignmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	assignment, err := c.assignmentService.CreateAssignment(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("failed to create assignment", zap.Any("payload", payload), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "equipment assigned", assignment)
}

func (c *AssignmentController) ReturnAssignment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	var payload dto.ReturnAssignmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	assignment, err := c.assignmentService.ReturnAssignment(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("failed to return assignment", zap.String("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "equipment returned", assignment)
}
