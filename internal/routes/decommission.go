package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runDecommissionRouter(g *echo.Group, ctrl *controllers.DecommissionController) {
	g.GET("/decommissions", ctrl.GetDecommissions)
	g.GET("/decommissions/:id", ctrl.FindDecommission)
	g.POST("/decommissions", ctrl.CreateDecommission)
}
