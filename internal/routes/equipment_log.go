package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runEquipmentLogRouter(g *echo.Group, ctrl *controllers.EquipmentLogController) {
	g.POST("/equipment-logs", ctrl.CreateLog)
}
