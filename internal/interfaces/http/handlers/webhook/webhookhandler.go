package webhook

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jirabridge/internal/application/webhook/usecases"
	"jirabridge/internal/domain/webhook"
	"jirabridge/internal/interfaces/http/middleware"
	"jirabridge/internal/shared/errors"
	"jirabridge/internal/shared/logger"
	"jirabridge/internal/shared/utils"
)

// WebhookHandler receives Jira automation webhooks and hands them to the
// processing use case.
type WebhookHandler struct {
	processWebhook usecases.ProcessWebhookExecutor
	logger         logger.Interface
}

func NewWebhookHandler(processWebhook usecases.ProcessWebhookExecutor, log logger.Interface) *WebhookHandler {
	return &WebhookHandler{
		processWebhook: processWebhook,
		logger:         log,
	}
}

// Receive handles POST /jira-webhook.
func (h *WebhookHandler) Receive(c *gin.Context) {
	log := middleware.RequestLogger(c, h.logger)

	triggeredBy := c.Query("triggeredByUser")
	if triggeredBy != "" {
		log.Infow("Webhook received", "triggered_by_param", triggeredBy)
	} else {
		log.Infow("Webhook received")
	}

	var payload webhook.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Warnw("Invalid webhook payload", "error", err.Error())
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid webhook payload", err.Error()))
		return
	}

	cmd := usecases.ProcessWebhookCommand{
		Payload:         payload,
		TriggeredByUser: triggeredBy,
	}

	result, err := h.processWebhook.Execute(c.Request.Context(), cmd)
	if err != nil {
		log.Errorw("Failed to process webhook", "error", err.Error())
		c.JSON(http.StatusInternalServerError, WebhookResponse{
			Status:   "error",
			Message:  "Internal server error occurred",
			IssueKey: webhook.ExtractIssueKey(payload.Issue),
		})
		return
	}

	c.JSON(http.StatusOK, toWebhookResponse(result))
}
