package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"jirabridge/internal/application/webhook/usecases"
	"jirabridge/internal/infrastructure/config"
	"jirabridge/internal/infrastructure/repository"
	"jirabridge/internal/interfaces/http/handlers/common"
	webhookhandlers "jirabridge/internal/interfaces/http/handlers/webhook"
	"jirabridge/internal/interfaces/http/middleware"
	"jirabridge/internal/interfaces/http/routes"
	"jirabridge/internal/shared/logger"
)

// Router wires HTTP handlers, middleware and routes for the service.
type Router struct {
	engine         *gin.Engine
	webhookHandler *webhookhandlers.WebhookHandler
	healthHandler  *common.HealthHandler
	rateLimiter    *middleware.RateLimiter
	logger         logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	mappingRepo := repository.NewMappingRepository(db)
	processWebhookUC := usecases.NewProcessWebhookUseCase(mappingRepo, cfg.Jira.BaseURL, log)

	webhookHandler := webhookhandlers.NewWebhookHandler(processWebhookUC, log)
	healthHandler := common.NewHealthHandler(db)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil && cfg.Webhook.RateLimitPerMinute > 0 {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.Webhook.RateLimitPerMinute, time.Minute)
	}

	return &Router{
		engine:         engine,
		webhookHandler: webhookHandler,
		healthHandler:  healthHandler,
		rateLimiter:    rateLimiter,
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.RequestLogging(r.logger))
	r.engine.Use(middleware.Recovery())

	r.engine.GET("/health", r.healthHandler.Health)

	routes.SetupWebhookRoutes(r.engine, &routes.WebhookRouteConfig{
		WebhookHandler: r.webhookHandler,
		RateLimiter:    r.rateLimiter,
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
