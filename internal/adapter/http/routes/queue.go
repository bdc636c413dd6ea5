package routes

import (
	"lavacar_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/tenants/:tenant_id/orders"
	PathQueue    = "/tenants/:tenant_id/queue"
	PathServices = "/tenants/:tenant_id/services"
)

func addQueueRoutes(rg *gin.RouterGroup, queueHandler *handlers.QueueHandler, catalogHandler *handlers.CatalogHandler) {
	orders := rg.Group(PathOrders)
	{
		// Staff panel order writes.
		orders.POST("", queueHandler.AdmitVehicle)
		orders.GET("/:order_id", queueHandler.GetOrder)
		orders.PATCH("/:order_id/advance", queueHandler.AdvanceOrder)
		orders.PATCH("/:order_id/cancel", queueHandler.CancelOrder)
	}

	queue := rg.Group(PathQueue)
	{
		queue.GET("", queueHandler.ListQueue)
		queue.GET("/watch", queueHandler.WatchQueue)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", catalogHandler.CreateService)
		services.GET("", catalogHandler.ListServices)
		services.PUT("/:service_id", catalogHandler.UpdateService)
		services.PATCH("/:service_id/deactivate", catalogHandler.DeactivateService)
	}
}
