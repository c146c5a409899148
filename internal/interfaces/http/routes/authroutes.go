package routes

import (
	"github.com/gin-gonic/gin"

	"fixtrack/internal/interfaces/http/handlers"
	"fixtrack/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler      *handlers.AuthHandler
	LoginRateLimiter *middleware.RateLimitMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		login := auth.Group("")
		if config.LoginRateLimiter != nil {
			login.Use(config.LoginRateLimiter.Limit())
		}
		login.POST("/login", config.AuthHandler.Login)
	}
}
