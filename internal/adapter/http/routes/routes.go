package routes

import (
	"log"
	"strconv"

	_ "onecrew_paving/docs" // swag-generated
	"onecrew_paving/internal/adapter/http/handlers"
	"onecrew_paving/internal/adapter/persistence/repository"
	"onecrew_paving/internal/config"
	"onecrew_paving/internal/infrastructure/database"
	"onecrew_paving/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Service.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	customerRepo := repository.NewCustomerDynamoRepository(ddb, cfg.AWS.CustomersTable)
	estimateRepo := repository.NewEstimateDynamoRepository(ddb, cfg.AWS.EstimatesTable)

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo, estimateRepo)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)

	// The browser client calls these paths without a version prefix.
	root := router.Group("")
	addPingRoutes(root)
	addEstimateRoutes(root, estimateHandler)
	addCustomerRoutes(root, customerHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	// The form is served from a different origin than the API.
	router.Use(cors.Default())
}
