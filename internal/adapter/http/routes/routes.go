package routes

import (
	"context"
	"fmt"

	_ "checkout_gateway/docs" // swag-generated
	"checkout_gateway/internal/adapter/http/handlers"
	"checkout_gateway/internal/adapter/persistence/repository"
	"checkout_gateway/internal/config"
	"checkout_gateway/internal/infrastructure/database"
	"checkout_gateway/internal/infrastructure/hostauth"
	"checkout_gateway/internal/infrastructure/payments"
	"checkout_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Session     *handlers.SessionHandler
	Transaction *handlers.TransactionHandler
	Payment     *handlers.PaymentHandler
}

// Run wires the application and blocks serving HTTP.
func Run(cfg *config.Config, logger *zap.Logger) error {
	h, err := BuildHandlers(context.Background(), cfg, logger)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.Server.GinMode)
	router := NewRouter(h, logger)
	logger.Info("[http] listening", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// BuildHandlers connects storage, transports and use cases.
func BuildHandlers(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB, logger)
	if err != nil {
		return Handlers{}, err
	}

	tenantConfigs := repository.NewTenantConfigDynamoRepository(ddb, cfg.DynamoDB.TenantConfigTable)
	notifications := repository.NewNotificationDynamoRepository(ddb, cfg.DynamoDB.NotificationsTable, cfg.DynamoDB.SessionIndex)
	authenticator := hostauth.NewKillBillAuthenticator(cfg.Host.BaseURL, cfg.Host.Timeout, logger)

	transports := &payments.Factory{
		Timeout:  cfg.Gateway.Timeout,
		BaseURL:  cfg.Gateway.BaseURL,
		MockMode: cfg.Gateway.MockMode,
		Logger:   logger,
	}
	processors := usecase.NewProcessorFactory(transports.NewTransport, logger)

	sessionUseCase := usecase.NewSessionVerificationUseCase(tenantConfigs, authenticator, processors, logger)
	queryUseCase := usecase.NewNotificationQueryUseCase(notifications, logger)
	paymentUseCase := usecase.NewPaymentUseCase(tenantConfigs, processors, logger)

	return Handlers{
		Session:     handlers.NewSessionHandler(sessionUseCase, logger),
		Transaction: handlers.NewTransactionHandler(queryUseCase, logger),
		Payment:     handlers.NewPaymentHandler(paymentUseCase, logger),
	}, nil
}

// NewRouter registers middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGatewayRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("[http] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
