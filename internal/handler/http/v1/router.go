package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1. Всё, кроме health-check,
// требует API-ключ.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	occurrences := protected.Group("/occurrences")
	{
		occurrences.POST("", h.openOccurrence)
		occurrences.GET("", h.listOccurrences)
		occurrences.GET("/:id", h.getOccurrence)
		occurrences.GET("/:id/details", h.getOccurrenceDetails)
		occurrences.POST("/:id/confirm-arrival", h.confirmArrival)
		occurrences.POST("/:id/conclude", h.concludeOccurrence)
		occurrences.POST("/:id/cancel", h.cancelOccurrence)
	}

	dispatch := protected.Group("/dispatch")
	{
		dispatch.GET("/candidates/:occurrenceId", h.findCandidates)
		dispatch.POST("", h.dispatchAmbulance)
	}

	ambulances := protected.Group("/ambulances")
	{
		ambulances.POST("", h.createAmbulance)
		ambulances.GET("", h.listAmbulances)
		ambulances.GET("/:id", h.getAmbulance)
		ambulances.PUT("/:id/status", h.setAmbulanceStatus)
		ambulances.DELETE("/:id", h.deleteAmbulance)
	}

	professionals := protected.Group("/professionals")
	{
		professionals.POST("", h.createProfessional)
		professionals.GET("", h.listProfessionals)
		professionals.PUT("/:id", h.updateProfessional)
		professionals.DELETE("/:id", h.deleteProfessional)
	}

	teams := protected.Group("/teams")
	{
		teams.POST("", h.createTeam)
		teams.GET("", h.listTeams)
		teams.GET("/:id", h.getTeam)
		teams.PUT("/:id", h.updateTeam)
		teams.DELETE("/:id", h.deleteTeam)
	}

	areas := protected.Group("/areas")
	{
		areas.GET("", h.listAreas)
		areas.POST("/topology", h.saveTopology)
		areas.POST("/graph/reload", h.reloadGraph)
	}

	protected.GET("/dashboard", h.getDashboard)
	reports := protected.Group("/reports")
	{
		reports.GET("/occurrences-by-area", h.occurrencesByArea)
		reports.GET("/distance-by-type", h.distanceByType)
		reports.GET("/attendances.xlsx", h.exportAttendances)
	}
}
