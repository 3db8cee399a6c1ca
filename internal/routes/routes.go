package routes

import (
	"inventory_backend/internal/handlers"
	"inventory_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Маршруты аутентификации сами решают, что публично, а что за auth gate;
// вся группа /master закрыта целиком.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authGate gin.HandlerFunc,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)

		master := api.Group("/master")
		master.Use(authGate)
		{
			appHandlers.StockHandler.RegisterRoutes(master)
			appHandlers.CustomerHandler.RegisterRoutes(master)
		}
	}

	logger.Info("HTTP routes registered")
}
