package routes

import (
	"github.com/gin-gonic/gin"

	"fixtrack/internal/interfaces/http/handlers"
	"fixtrack/internal/interfaces/http/middleware"
)

type AccountRouteConfig struct {
	AccountHandler *handlers.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAccountRoutes(engine *gin.Engine, config *AccountRouteConfig) {
	accounts := engine.Group("/api/accounts")
	accounts.Use(config.AuthMiddleware.RequireAuth())
	{
		accounts.GET("/summary", config.AccountHandler.GetSummary)
		accounts.GET("/parts", config.AccountHandler.GetPartsReport)

		accounts.GET("/transactions", config.AccountHandler.ListTransactions)
		accounts.POST("/transactions", config.AccountHandler.CreateTransaction)
		accounts.PATCH("/transactions/:id", config.AccountHandler.UpdateTransaction)
		accounts.DELETE("/transactions/:id", config.AccountHandler.DeleteTransaction)
	}
}
