package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/config"
	"inventory-system/pkg/middleware"
)

// InitRouter wires repositories, services and controllers and mounts
// everything under /api. All construction happens here so every handler
// shares the same pool, cache and transaction manager.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	api.Use(middleware.Actor())
	api.Use(middleware.RequestLogger(logger))

	txManager := repositories.NewTxManager(dbConn)

	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	assignmentRepo := repositories.NewAssignmentRepository(dbConn)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn)
	decommissionRepo := repositories.NewDecommissionRepository(dbConn)
	logRepo := repositories.NewEquipmentLogRepository(dbConn)
	employeeRepo := repositories.NewEmployeeRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	logService := services.NewEquipmentLogService(logRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, logService, logger)
	assignmentService := services.NewAssignmentService(txManager, assignmentRepo, equipmentRepo, employeeRepo, logService, logger)
	maintenanceService := services.NewMaintenanceService(txManager, maintenanceRepo, equipmentRepo, logService, logger)
	decommissionService := services.NewDecommissionService(txManager, decommissionRepo, equipmentRepo, logService, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, logRepo, cacheRepo, cfg.Dashboard.CacheTTL, logger)

	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logService, logger)
	assignmentCtrl := controllers.NewAssignmentController(assignmentService, logger)
	maintenanceCtrl := controllers.NewMaintenanceController(maintenanceService, logger)
	decommissionCtrl := controllers.NewDecommissionController(decommissionService, logger)
	logCtrl := controllers.NewEquipmentLogController(logService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	reportCtrl := controllers.NewReportController(equipmentService, logger)

	runEquipmentRouter(api, equipmentCtrl)
	runAssignmentRouter(api, assignmentCtrl)
	runMaintenanceRouter(api, maintenanceCtrl)
	runDecommissionRouter(api, decommissionCtrl)
	runEquipmentLogRouter(api, logCtrl)
	runDashboardRouter(api, dashboardCtrl, reportCtrl)

	logger.Info("routes mounted")
}
