package routes

import (
	"github.com/gin-gonic/gin"

	"fixtrack/internal/interfaces/http/handlers"
	"fixtrack/internal/interfaces/http/middleware"
)

type RepairRouteConfig struct {
	RepairHandler  *handlers.RepairHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRepairRoutes(engine *gin.Engine, config *RepairRouteConfig) {
	repairs := engine.Group("/api/repairs")
	repairs.Use(config.AuthMiddleware.RequireAuth())
	{
		repairs.POST("", config.RepairHandler.CreateRepair)
		repairs.GET("", config.RepairHandler.ListRepairs)

		// Specific paths before parameterized ones to avoid route conflicts
		repairs.GET("/:id/log", config.RepairHandler.GetRepairLog)

		repairs.GET("/:id", config.RepairHandler.GetRepair)
		repairs.PATCH("/:id", config.RepairHandler.UpdateRepair)
		repairs.DELETE("/:id", config.RepairHandler.DeleteRepair)
	}
}
