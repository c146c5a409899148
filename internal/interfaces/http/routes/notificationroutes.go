package routes

import (
	"github.com/gin-gonic/gin"

	"fixtrack/internal/interfaces/http/handlers"
	"fixtrack/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/api/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", config.NotificationHandler.ListNotifications)
		notifications.POST("/read-all", config.NotificationHandler.MarkAllRead)
		notifications.POST("/:id/read", config.NotificationHandler.MarkRead)
		notifications.DELETE("", config.NotificationHandler.ClearNotifications)
	}

	push := engine.Group("/api/push")
	push.Use(config.AuthMiddleware.RequireAuth())
	{
		push.GET("/key", config.NotificationHandler.GetPushKey)
		push.POST("/subscribe", config.NotificationHandler.SubscribePush)
		push.POST("/unsubscribe", config.NotificationHandler.UnsubscribePush)
	}
}
