package routes

import (
	"github.com/gin-gonic/gin"

	"fixtrack/internal/interfaces/http/handlers"
	"fixtrack/internal/interfaces/http/middleware"
)

type SettingRouteConfig struct {
	SettingHandler *handlers.SettingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupSettingRoutes(engine *gin.Engine, config *SettingRouteConfig) {
	settings := engine.Group("/api/settings")
	settings.Use(config.AuthMiddleware.RequireAuth())
	{
		settings.GET("", config.SettingHandler.GetSettings)
		settings.PATCH("", config.SettingHandler.UpdateSettings)
	}
}
