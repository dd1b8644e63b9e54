package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runEquipmentRouter(g *echo.Group, ctrl *controllers.EquipmentController) {
	g.GET("/equipment", ctrl.GetEquipments)
	g.GET("/equipment/:id", ctrl.FindEquipment)
	g.POST("/equipment", ctrl.CreateEquipment)
	g.PUT("/equipment/:id", ctrl.UpdateEquipment)
	g.DELETE("/equipment/:id", ctrl.DeleteEquipment)
	g.GET("/equipment/:id/logs", ctrl.GetEquipmentLogs)
}
