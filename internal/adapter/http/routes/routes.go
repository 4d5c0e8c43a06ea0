package routes

import (
	"log"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "payment-gateway-service/docs" // This will be auto-generated
	"payment-gateway-service/internal/adapter/http/handlers"
	"payment-gateway-service/internal/infrastructure/audit"
	"payment-gateway-service/internal/infrastructure/config"
	"payment-gateway-service/internal/infrastructure/gateways"
	"payment-gateway-service/internal/usecase"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.HTTPPort))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	auditLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize audit logger: %v", err)
	}
	emitter := audit.NewEmitter(auditLogger)

	// The registry is populated once here and read-only afterwards; adding a
	// gateway type means a new registration and a redeploy.
	registry := gateways.NewRegistry(cfg)

	dispatcher := usecase.NewDispatchUseCase(registry, emitter, cfg.DispatchTimeout)
	gatewayHandler := handlers.NewPaymentGatewayHandler(dispatcher)

	addPaymentGatewayRoutes(router, gatewayHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	// TODO: restrict allowed origins once the front-end domains are settled.
	router.Use(cors.Default())
}
