package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes. The health check stays open;
// everything else goes behind the API-key middleware when keys are configured.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/system/health", h.healthCheck)

	if len(h.cfg.APIKeys) > 0 {
		api.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	sos := api.Group("/sos")
	{
		sos.POST("", h.createReport)
		sos.GET("", h.listTriage)
		sos.GET("/history", h.getHistory)
		sos.GET("/:id", h.getReport)
		sos.POST("/:id/units", h.assignUnits)
		sos.DELETE("/:id/units/:unitId", h.removeUnit)
		sos.POST("/:id/resolve", h.resolveReport)
	}

	personnel := api.Group("/personnel")
	{
		personnel.GET("/rescuers", h.listRescuers)
		personnel.GET("/volunteers", h.listVolunteers)
	}
}
