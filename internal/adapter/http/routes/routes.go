package routes

import (
	"log"
	"math/rand"
	"strconv"
	"time"

	_ "tradie_quote/docs" // This will be auto-generated
	"tradie_quote/internal/adapter/http/handlers"
	"tradie_quote/internal/adapter/http/middleware"
	repository2 "tradie_quote/internal/adapter/persistence/repository"
	"tradie_quote/internal/engine"
	"tradie_quote/internal/infrastructure/database"
	"tradie_quote/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Per-IP request budget for the public API.
const (
	rateLimitCapacity = 60
	rateLimitWindow   = time.Minute
)

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

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)

	estimator, err := engine.NewEstimator(engine.DefaultCatalog(), rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		log.Fatalf("Failed to build estimation engine: %v", err)
	}

	quoteUseCase := usecase.NewQuoteUseCase(estimator, quoteRepo, clientRepo, invoiceRepo)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.RateLimit(middleware.NewRateLimiter(rateLimitCapacity, rateLimitWindow)))
}
