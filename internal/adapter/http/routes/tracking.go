package routes

import (
	"lavacar_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathTracking = "/tenants/:tenant_id/tracking"

func addTrackingRoutes(rg *gin.RouterGroup, trackingHandler *handlers.TrackingHandler) {
	tracking := rg.Group(PathTracking)
	{
		// Public plate lookup consumed by the customer tracking page.
		tracking.GET("/:plate", trackingHandler.GetTracking)
		tracking.GET("/:plate/position", trackingHandler.GetPosition)
		tracking.GET("/:plate/watch", trackingHandler.WatchTracking)
	}
}
