package routes

import (
	"log"
	"os"
	"strconv"

	"fieldserve_crm/internal/adapter/http/handlers"
	repository2 "fieldserve_crm/internal/adapter/persistence/repository"
	"fieldserve_crm/internal/infrastructure/database"
	"fieldserve_crm/internal/infrastructure/payments"
	"fieldserve_crm/internal/usecase"
	"fieldserve_crm/internal/usecase/interfaces"

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

	opportunityRepo := repository2.NewOpportunityDynamoRepository(ddb)
	transitionRepo := repository2.NewStageTransitionDynamoRepository(ddb)
	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	opportunityUseCase := usecase.NewOpportunityUseCase(opportunityRepo, transitionRepo)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, invoiceRepo, productRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, invoiceRepo, paymentGateway)
	reportingUseCase := usecase.NewReportingUseCase(invoiceRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)

	opportunityHandler := handlers.NewOpportunityHandler(opportunityUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	reportingHandler := handlers.NewReportingHandler(reportingUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPipelineRoutes(v1, opportunityHandler, productHandler)
	addBillingRoutes(v1, estimateHandler, invoiceHandler, paymentHandler, reportingHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
