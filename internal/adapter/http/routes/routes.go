package routes

import (
	"strconv"

	_ "lavacar_xpto/docs" // This will be auto-generated
	"lavacar_xpto/internal/adapter/http/handlers"
	repository2 "lavacar_xpto/internal/adapter/persistence/repository"
	"lavacar_xpto/internal/adapter/persistence/streams"
	"lavacar_xpto/internal/infrastructure/config"
	"lavacar_xpto/internal/infrastructure/database"
	"lavacar_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	settings, err := config.LoadTrackingSettings()
	if err != nil {
		log.Fatalf("Failed to load tracking settings: %v", err)
	}

	ddb := database.ConnectDynamoDB()
	streamsClient := database.ConnectDynamoDBStreams()

	orderRepo := repository2.NewWashOrderDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogServiceDynamoRepository(ddb)

	changeFeed := streams.NewOrderChangeFeed(ddb, streamsClient, settings.WashOrdersTable, settings.StreamPollInterval)
	subscriptions := usecase.NewSubscriptionManager(changeFeed)

	trackingUseCase := usecase.NewTrackingUseCase(orderRepo, settings.AverageBayMinutes)
	queueUseCase := usecase.NewQueueUseCase(orderRepo, catalogRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)

	trackingHandler := handlers.NewTrackingHandler(trackingUseCase, subscriptions)
	queueHandler := handlers.NewQueueHandler(queueUseCase, subscriptions)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTrackingRoutes(v1, trackingHandler)
	addQueueRoutes(v1, queueHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
