package routes

import (
	"log"
	"net/http"
	"strconv"

	_ "cobranca_service/docs" // swag-generated registration
	"cobranca_service/internal/adapter/http/handlers"
	"cobranca_service/internal/adapter/persistence/repository"
	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/infrastructure/config"
	"cobranca_service/internal/infrastructure/database"
	"cobranca_service/internal/infrastructure/payments"
	"cobranca_service/internal/usecase"
	"cobranca_service/internal/usecase/interfaces"

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
	ddb := database.ConnectDynamoDB()

	installmentRepo := repository.NewInstallmentDynamoRepository(ddb)
	negotiationRepo := repository.NewNegotiationDynamoRepository(ddb)
	agreementRepo := repository.NewAgreementInstallmentDynamoRepository(ddb)

	rules := config.NewEnvRulesProvider()

	gatewayRouter := buildGatewayRouter()

	eligibilityUseCase := usecase.NewEligibilityUseCase(installmentRepo, negotiationRepo, rules)
	negotiationUseCase := usecase.NewNegotiationUseCase(installmentRepo, negotiationRepo, agreementRepo, rules)
	chargeUseCase := usecase.NewChargeUseCase(installmentRepo, agreementRepo, negotiationRepo, gatewayRouter, getenvDefault("PAYMENT_CALLBACK_URL", ""))

	negotiationHandler := handlers.NewNegotiationHandler(eligibilityUseCase, negotiationUseCase)
	chargeHandler := handlers.NewChargeHandler(chargeUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCobrancaRoutes(v1, negotiationHandler, chargeHandler)
}

// buildGatewayRouter registers every adapter whose credentials are present.
// An unregistered provider later resolves to ErrUnconfiguredGateway instead
// of failing startup.
func buildGatewayRouter() interfaces.IGatewayRouter {
	defaultProvider := entities.GatewayProvider(getenvDefault("PAYMENT_GATEWAY_DEFAULT", string(entities.ProviderLytex)))

	adapters := make([]interfaces.IPaymentGateway, 0, 2)
	if lytex := payments.NewLytexGatewayFromEnv(); lytex != nil {
		adapters = append(adapters, lytex)
	}
	if infinity := payments.NewInfinityPayGatewayFromEnv(); infinity != nil {
		adapters = append(adapters, infinity)
	}
	if len(adapters) == 0 {
		log.Printf("no payment gateway configured; charge endpoints will reject requests")
	}

	return payments.NewGatewayRouter(defaultProvider, adapters...)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
