package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.getState)
		alerts.GET("/:id", h.getAlert)
	}

	// Изменяющие маршруты закрыты ключом, если ключи заданы
	protected := alerts.Group("")
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		protected.POST("/refresh", h.refreshAlerts)
		protected.POST("/report", h.submitReport)
		protected.POST("/:id/acknowledge", h.acknowledgeAlert)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
