package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/services"
	"inventory-system/pkg/api"
	"inventory-system/pkg/utils"
)

// ReportController exports the equipment registry. With format=xlsx the
// full filtered set is streamed as a spreadsheet; otherwise it behaves
// like the plain paginated listing.
type ReportController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewReportController(equipmentService services.EquipmentServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{equipmentService: equipmentService, logger: logger}
}

func (c *ReportController) GetEquipmentReport(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	format := strings.ToLower(ctx.QueryParam("format"))

	if format == "xlsx" {
		// export everything matching the filter, not one page
		filter.Limit = 100000
		filter.Offset = 0
	}

	list, total, err := c.equipmentService.GetEquipments(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("failed to build equipment report", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, list)
	}
	return api.SuccessList(ctx, "equipment report", list, total, filter.Page, filter.Limit)
}

var equipmentReportHeaders = []string{
	"Inventory Code", "Type", "Brand", "Model", "Serial Number",
	"Status", "Assigned To", "Observations", "Registered At",
}

func equipmentToRow(eq entities.Equipment) []interface{} {
	var assignedTo, observations string
	if eq.AssignedEmployeeName != nil {
		assignedTo = *eq.AssignedEmployeeName
	}
	if eq.Observations != nil {
		observations = *eq.Observations
	}

	return []interface{}{
		eq.InventoryCode, eq.EquipmentType, eq.Brand, eq.Model, eq.SerialNumber,
		eq.Status, assignedTo, observations, eq.CreatedAt.Format("02.01.2006"),
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, list []entities.Equipment) error {
	f := excelize.NewFile()
	sheet := "Equipment"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &equipmentReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "I1", style)

	for i, eq := range list {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := equipmentToRow(eq)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "E", 20)
	f.SetColWidth(sheet, "F", "G", 25)
	f.SetColWidth(sheet, "H", "H", 40)

	fileName := fmt.Sprintf("equipment_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
