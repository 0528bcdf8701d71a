package webhook

import (
	"time"

	"jirabridge/internal/application/webhook/usecases"
)

// WebhookResponse is the wire response for POST /jira-webhook.
//
// triggeredByUser reports the display name resolved from the payload's user
// object, not the query parameter of the same name; the query parameter is
// only used for log correlation.
type WebhookResponse struct {
	Status          string  `json:"status"`
	Message         string  `json:"message"`
	IssueKey        *string `json:"issueKey,omitempty"`
	ProjectKey      *string `json:"projectKey,omitempty"`
	ProjectName     *string `json:"projectName,omitempty"`
	TriggeredByUser *string `json:"triggeredByUser,omitempty"`
	SavedAt         *string `json:"savedAt,omitempty"`
}

func toWebhookResponse(result *usecases.ProcessWebhookResult) WebhookResponse {
	resp := WebhookResponse{
		Status:          result.Status,
		Message:         result.Message,
		IssueKey:        result.IssueKey,
		ProjectKey:      result.ProjectKey,
		ProjectName:     result.ProjectName,
		TriggeredByUser: result.UserName,
	}

	if result.SavedAt != nil {
		saved := result.SavedAt.UTC().Format(time.RFC3339)
		resp.SavedAt = &saved
	}

	return resp
}
