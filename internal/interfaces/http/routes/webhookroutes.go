package routes

import (
	"github.com/gin-gonic/gin"

	webhookhandlers "jirabridge/internal/interfaces/http/handlers/webhook"
	"jirabridge/internal/interfaces/http/middleware"
)

type WebhookRouteConfig struct {
	WebhookHandler *webhookhandlers.WebhookHandler
	RateLimiter    *middleware.RateLimiter
}

func SetupWebhookRoutes(engine *gin.Engine, config *WebhookRouteConfig) {
	handlers := []gin.HandlerFunc{}
	if config.RateLimiter != nil {
		handlers = append(handlers, config.RateLimiter.Limit())
	}
	handlers = append(handlers, config.WebhookHandler.Receive)

	engine.POST("/jira-webhook", handlers...)
}
