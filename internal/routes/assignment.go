package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runAssignmentRouter(g *echo.Group, ctrl *controllers.AssignmentController) {
	g.GET("/assignments", ctrl.GetAssignments)
	g.GET("/assignments/:id", ctrl.FindAssignment)
	g.POST("/assignments", ctrl.CreateAssignment)
	g.POST("/assignments/:id/return", ctrl.ReturnAssignment)
}
