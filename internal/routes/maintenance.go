package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runMaintenanceRouter(g *echo.Group, ctrl *controllers.MaintenanceController) {
	g.GET("/maintenance", ctrl.GetOrders)
	g.GET("/maintenance/:id", ctrl.FindOrder)
	g.POST("/maintenance", ctrl.CreateOrder)
	g.POST("/maintenance/:id/start", ctrl.StartOrder)
	g.POST("/maintenance/:id/complete", ctrl.CompleteOrder)
}
