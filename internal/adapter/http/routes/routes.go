package routes

import (
	"log"
	_ "respresso/docs" // This will be auto-generated
	"respresso/internal/adapter/http/handlers"
	repository2 "respresso/internal/adapter/persistence/repository"
	"respresso/internal/infrastructure/database"
	"respresso/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
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
	ddb := database.ConnectDynamoDB()

	userRepo := repository2.NewUserDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	sessionRepo := repository2.NewSessionDynamoRepository(ddb)
	invRepo := repository2.NewInventoryLogDynamoRepository(ddb)
	debtRepo := repository2.NewDebtPaymentDynamoRepository(ddb)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err.Error())
	}

	authUseCase := usecase.NewAuthUseCase(userRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, userRepo, invRepo)
	sessionUseCase := usecase.NewSessionUseCase(sessionRepo)
	inventoryUseCase := usecase.NewInventoryUseCase(invRepo, productRepo)
	debtUseCase := usecase.NewDebtUseCase(debtRepo, userRepo)
	reportUseCase := usecase.NewReportUseCase(orderRepo, sessionRepo, debtRepo, invRepo, productRepo, userRepo, logger)

	authHandler := handlers.NewAuthHandler(authUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase)
	debtHandler := handlers.NewDebtHandler(debtUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)
	addStoreRoutes(v1, userHandler, productHandler, orderHandler, sessionHandler, inventoryHandler, debtHandler)
	addReportRoutes(v1, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
