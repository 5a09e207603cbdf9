package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/JoFly70/lumiere-student-portal-v2-sub001/docs" // This will be auto-generated
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/adapter/http/handlers"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/adapter/persistence/repository"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/infrastructure/database"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/infrastructure/payments"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/platform/logger"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/usecase"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
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
	appLog, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ddb := database.ConnectDynamoDB()

	enrollmentRepo := repository.NewEnrollmentDynamoRepository(ddb)
	metricRepo := repository.NewWeeklyMetricDynamoRepository(ddb)
	pricingRepo := repository.NewPricingRuleDynamoRepository(ddb)
	financialRepo := repository.NewFinancialRulesDynamoRepository(ddb)
	planRepo := repository.NewPlanFinancialsDynamoRepository(ddb)
	paymentRepo := repository.NewPlanPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), appLog)
	if err != nil {
		appLog.Warn("mercado pago gateway not configured", "error", err)
	} else {
		paymentGateway = mpGateway
	}

	flightDeckUseCase := usecase.NewFlightDeckUseCase(enrollmentRepo, metricRepo, pricingRepo, financialRepo, planRepo, appLog)
	estimateUseCase := usecase.NewPlanEstimateUseCase(financialRepo)
	paymentUseCase := usecase.NewPlanPaymentUseCase(paymentRepo, planRepo, paymentGateway, appLog)

	flightDeckHandler := handlers.NewFlightDeckHandler(flightDeckUseCase)
	estimateHandler := handlers.NewPlanEstimateHandler(estimateUseCase)
	paymentHandler := handlers.NewPlanPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPlanRoutes(v1, flightDeckHandler, estimateHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
