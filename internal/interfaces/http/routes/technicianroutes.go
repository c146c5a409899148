package routes

import (
	"github.com/gin-gonic/gin"

	"fixtrack/internal/interfaces/http/handlers"
	"fixtrack/internal/interfaces/http/middleware"
)

type TechnicianRouteConfig struct {
	TechnicianHandler *handlers.TechnicianHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupTechnicianRoutes(engine *gin.Engine, config *TechnicianRouteConfig) {
	technicians := engine.Group("/api/technicians")
	technicians.Use(config.AuthMiddleware.RequireAuth())
	{
		technicians.POST("", config.TechnicianHandler.CreateTechnician)
		technicians.GET("", config.TechnicianHandler.ListTechnicians)

		technicians.GET("/:id/profile", config.TechnicianHandler.GetTechnicianProfile)

		technicians.GET("/:id", config.TechnicianHandler.GetTechnician)
		technicians.PATCH("/:id", config.TechnicianHandler.UpdateTechnician)
		technicians.DELETE("/:id", config.TechnicianHandler.DeleteTechnician)
	}
}
