package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jirabridge/internal/domain/mapping"
	"jirabridge/internal/domain/webhook"
	sharedErrors "jirabridge/internal/shared/errors"
	"jirabridge/internal/shared/logger"
)

// Terminal statuses of the webhook pipeline. Errors are returned as Go errors
// and mapped to the "error" status at the HTTP boundary.
const (
	StatusIgnored   = "ignored"
	StatusProcessed = "processed"
)

type ProcessWebhookCommand struct {
	Payload webhook.Payload
	// TriggeredByUser is the optional query parameter. It is logged for
	// correlation but the response reports the payload user's display name.
	TriggeredByUser string
}

type ProcessWebhookResult struct {
	Status      string
	Message     string
	MappingID   string
	IssueKey    *string
	ProjectKey  *string
	ProjectName *string
	UserName    *string
	SavedAt     *time.Time
}

type ProcessWebhookExecutor interface {
	Execute(ctx context.Context, cmd ProcessWebhookCommand) (*ProcessWebhookResult, error)
}

type ProcessWebhookUseCase struct {
	mappingRepo mapping.MappingRepository
	jiraBaseURL string
	logger      logger.Interface
}

func NewProcessWebhookUseCase(
	mappingRepo mapping.MappingRepository,
	jiraBaseURL string,
	log logger.Interface,
) *ProcessWebhookUseCase {
	return &ProcessWebhookUseCase{
		mappingRepo: mappingRepo,
		jiraBaseURL: jiraBaseURL,
		logger:      log,
	}
}

// Execute runs the pipeline over a single delivery: structural check on the
// issue key, close-transition filter, duplicate check, then extraction and
// insert. The first applicable terminal condition wins.
func (uc *ProcessWebhookUseCase) Execute(ctx context.Context, cmd ProcessWebhookCommand) (*ProcessWebhookResult, error) {
	projectKey, projectName := webhook.ExtractProjectInfo(cmd.Payload.Issue)
	userName := webhook.ExtractUserDisplayName(cmd.Payload.User)
	isClosed := webhook.IsCloseTransition(cmd.Payload.Changelog)
	issueKey := webhook.ExtractIssueKey(cmd.Payload.Issue)

	uc.logger.Infow("received jira webhook",
		"issue_key", strOrEmpty(issueKey),
		"event", cmd.Payload.WebhookEvent,
		"close_transition", isClosed,
		"project_key", strOrEmpty(projectKey),
		"triggered_by_user", cmd.TriggeredByUser,
		"user_name", strOrEmpty(userName),
	)

	if issueKey == nil || *issueKey == "" {
		uc.logger.Infow("ignoring webhook: missing issue key")
		return &ProcessWebhookResult{
			Status:  StatusIgnored,
			Message: "Missing issue key",
		}, nil
	}

	if !isClosed {
		uc.logger.Infow("ignoring webhook: not a close transition", "issue_key", *issueKey)
		return &ProcessWebhookResult{
			Status:      StatusIgnored,
			Message:     "Not a transition to 'Close' status",
			IssueKey:    issueKey,
			ProjectKey:  projectKey,
			ProjectName: projectName,
			UserName:    userName,
		}, nil
	}

	existing, err := uc.mappingRepo.FindByTicketKey(ctx, *issueKey)
	if err != nil {
		uc.logger.Errorw("failed to check for existing ticket", "issue_key", *issueKey, "error", err)
		return nil, err
	}

	if existing != nil {
		uc.logger.Infow("ignoring webhook: ticket already recorded", "issue_key", *issueKey)
		return uc.duplicateResult(*issueKey, projectKey, projectName, userName), nil
	}

	return uc.saveNewMapping(ctx, cmd.Payload, *issueKey, projectKey, projectName, userName)
}

func (uc *ProcessWebhookUseCase) saveNewMapping(
	ctx context.Context,
	payload webhook.Payload,
	issueKey string,
	projectKey, projectName, userName *string,
) (*ProcessWebhookResult, error) {
	fields := webhook.ExtractTicketFields(payload.Issue, issueKey, uc.jiraBaseURL)

	newMapping, err := mapping.NewMapping(
		uuid.NewString(),
		issueKey,
		fields.CustomerID,
		fields.CustomerPhone,
		fields.TransactionID,
		fields.TicketSummary,
		fields.TicketURL,
		fields.Priority,
		payload.Issue,
		userName,
		time.Now(),
	)
	if err != nil {
		uc.logger.Errorw("failed to build ticket mapping", "issue_key", issueKey, "error", err)
		return nil, sharedErrors.NewInternalError("failed to build ticket mapping", err.Error())
	}

	if err := uc.mappingRepo.Save(ctx, newMapping); err != nil {
		if sharedErrors.IsConflictError(err) {
			// A concurrent delivery won the insert race; the record exists,
			// which is exactly the duplicate outcome.
			uc.logger.Warnw("concurrent insert detected, treating as duplicate", "issue_key", issueKey)
			return uc.duplicateResult(issueKey, projectKey, projectName, userName), nil
		}
		uc.logger.Errorw("failed to save ticket mapping", "issue_key", issueKey, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket mapping saved",
		"issue_key", issueKey,
		"mapping_id", newMapping.MappingID(),
		"customer_id", newMapping.CustomerID(),
	)

	savedAt := newMapping.CreatedOn()
	return &ProcessWebhookResult{
		Status:      StatusProcessed,
		Message:     "Webhook processed and ticket saved successfully",
		MappingID:   newMapping.MappingID(),
		IssueKey:    &issueKey,
		ProjectKey:  projectKey,
		ProjectName: projectName,
		UserName:    userName,
		SavedAt:     &savedAt,
	}, nil
}

func (uc *ProcessWebhookUseCase) duplicateResult(
	issueKey string,
	projectKey, projectName, userName *string,
) *ProcessWebhookResult {
	return &ProcessWebhookResult{
		Status:      StatusIgnored,
		Message:     fmt.Sprintf("Ticket %s already exists in database", issueKey),
		IssueKey:    &issueKey,
		ProjectKey:  projectKey,
		ProjectName: projectName,
		UserName:    userName,
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
