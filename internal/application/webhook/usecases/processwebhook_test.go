package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jirabridge/internal/domain/mapping"
	"jirabridge/internal/domain/webhook"
	sharedErrors "jirabridge/internal/shared/errors"
)

const testBaseURL = "https://example.atlassian.net"

func newTestUseCase(repo *mockMappingRepository) *ProcessWebhookUseCase {
	return NewProcessWebhookUseCase(repo, testBaseURL, noopLogger{})
}

func closePayload(issueKey string) webhook.Payload {
	ts := int64(1741595400000)
	return webhook.Payload{
		Timestamp:          &ts,
		WebhookEvent:       "jira:issue_updated",
		IssueEventTypeName: "issue_generic",
		User: map[string]interface{}{
			"displayName": "Budi Santoso",
		},
		Issue: map[string]interface{}{
			"key": issueKey,
			"fields": map[string]interface{}{
				"summary": "Payment stuck",
				"project": map[string]interface{}{
					"key":  "SDO",
					"name": "Service Desk Ops",
				},
				"priority": map[string]interface{}{
					"name": "High",
				},
				"customfield_11226": "TRX-9",
			},
		},
		Changelog: &webhook.Changelog{
			ID: "100",
			Items: []webhook.ChangelogItem{
				{Field: "status", FromString: "In Progress", ToString: "Close"},
			},
		},
	}
}

func existingMapping(t *testing.T, ticketKey string) *mapping.Mapping {
	t.Helper()
	now := time.Now().UTC()
	m, err := mapping.ReconstructMapping(
		"existing-id", ticketKey, "CUST-1", nil, nil,
		"summary", testBaseURL+"/browse/"+ticketKey, "High",
		0, map[string]interface{}{"key": ticketKey}, true, &now, nil,
		now, now,
	)
	require.NoError(t, err)
	return m
}

func TestProcessWebhook_MissingIssueKey(t *testing.T) {
	repo := &mockMappingRepository{}
	uc := newTestUseCase(repo)

	payload := closePayload("SDO-100")
	payload.Issue = map[string]interface{}{
		"fields": map[string]interface{}{},
	}

	result, err := uc.Execute(context.Background(), ProcessWebhookCommand{Payload: payload})
	require.NoError(t, err)

	assert.Equal(t, StatusIgnored, result.Status)
	assert.Equal(t, "Missing issue key", result.Message)
	assert.Nil(t, result.IssueKey)
	assert.Empty(t, repo.findCalls)
	assert.Empty(t, repo.saveCalls)
}

func TestProcessWebhook_NotCloseTransition(t *testing.T) {
	repo := &mockMappingRepository{}
	uc := newTestUseCase(repo)

	payload := closePayload("SDO-100")
	payload.Changelog = &webhook.Changelog{
		Items: []webhook.ChangelogItem{
			{Field: "status", FromString: "Open", ToString: "In Progress"},
		},
	}

	result, err := uc.Execute(context.Background(), ProcessWebhookCommand{Payload: payload})
	require.NoError(t, err)

	assert.Equal(t, StatusIgnored, result.Status)
	assert.Equal(t, "Not a transition to 'Close' status", result.Message)
	require.NotNil(t, result.IssueKey)
	assert.Equal(t, "SDO-100", *result.IssueKey)
	require.NotNil(t, result.ProjectKey)
	assert.Equal(t, "SDO", *result.ProjectKey)
	require.NotNil(t, result.UserName)
	assert.Equal(t, "Budi Santoso", *result.UserName)
	assert.Empty(t, repo.findCalls)
	assert.Empty(t, repo.saveCalls)
}

func TestProcessWebhook_NilChangelog(t *testing.T) {
	repo := &mockMappingRepository{}
	uc := newTestUseCase(repo)

	payload := closePayload("SDO-100")
	payload.Changelog = nil

	result, err := uc.Execute(context.Background(), ProcessWebhookCommand{Payload: payload})
	require.NoError(t, err)

	assert.Equal(t, StatusIgnored, result.Status)
	assert.Empty(t, repo.saveCalls)
}

func TestProcessWebhook_DuplicateTicket(t *testing.T) {
	repo := &mockMappingRepository{
		FindByTicketKeyFunc: func(_ context.Context, ticketKey string) (*mapping.Mapping, error) {
			return existingMapping(t, ticketKey), nil
		},
	}
	uc := newTestUseCase(repo)

	result, err := uc.Execute(context.Background(), ProcessWebhookCommand{Payload: closePayload("SDO-100")})
	require.NoError(t, err)

	assert.Equal(t, StatusIgnored, result.Status)
	assert.Equal(t, "Ticket SDO-100 already exists in database", result.Message)
	assert.Empty(t, repo.saveCalls)
}

func TestProcessWebhook_SaveConflictTreatedAsDuplicate(t *testing.T) {
	repo := &mockMappingRepository{
		SaveFunc: func(_ context.Context, _ *mapping.Mapping) error {
			return sharedErrors.NewConflictError("ticket SDO-100 already exists")
		},
	}
	uc := newTestUseCase(repo)

	result, err := uc.Execute(context.Background(), ProcessWebhookCommand{Payload: closePayload("SDO-100")})
	require.NoError(t, err)

	assert.Equal(t, StatusIgnored, result.Status)
	assert.Equal(t, "Ticket SDO-100 already exists in database", result.Message)
	assert.Len(t, repo.saveCalls, 1)
}

func TestProcessWebhook_FindError(t *testing.T) {
	infraErr := errors.New("connection refused")
	repo := &mockMappingRepository{
		FindByTicketKeyFunc: func(_ context.Context, _ string) (*mapping.Mapping, error) {
			return nil, infraErr
		},
	}
	uc := newTestUseCase(repo)

	result, err := uc.Execute(context.Background(), ProcessWebhookCommand{Payload: closePayload("SDO-100")})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, repo.saveCalls)
}

func TestProcessWebhook_SaveError(t *testing.T) {
	infraErr := errors.New("connection refused")
	repo := &mockMappingRepository{
		SaveFunc: func(_ context.Context, _ *mapping.Mapping) error {
			return infraErr
		},
	}
	uc := newTestUseCase(repo)

	result, err := uc.Execute(context.Background(), ProcessWebhookCommand{Payload: closePayload("SDO-100")})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestProcessWebhook_Success(t *testing.T) {
	savedAt := time.Date(2025, 3, 10, 8, 30, 1, 0, time.UTC)
	repo := &mockMappingRepository{
		SaveFunc: func(_ context.Context, m *mapping.Mapping) error {
			return m.MarkPersisted(savedAt, savedAt)
		},
	}
	uc := newTestUseCase(repo)

	result, err := uc.Execute(context.Background(), ProcessWebhookCommand{
		Payload:         closePayload("SDO-100"),
		TriggeredByUser: "automation",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusProcessed, result.Status)
	assert.Equal(t, "Webhook processed and ticket saved successfully", result.Message)
	assert.NotEmpty(t, result.MappingID)
	require.NotNil(t, result.IssueKey)
	assert.Equal(t, "SDO-100", *result.IssueKey)
	require.NotNil(t, result.ProjectKey)
	assert.Equal(t, "SDO", *result.ProjectKey)
	require.NotNil(t, result.ProjectName)
	assert.Equal(t, "Service Desk Ops", *result.ProjectName)
	require.NotNil(t, result.UserName)
	assert.Equal(t, "Budi Santoso", *result.UserName)
	require.NotNil(t, result.SavedAt)
	assert.True(t, result.SavedAt.Equal(savedAt))

	require.Len(t, repo.saveCalls, 1)
	saved := repo.saveCalls[0]
	assert.Equal(t, "SDO-100", saved.TicketKey())
	assert.Equal(t, 0, saved.IntentionType())
}

func TestProcessWebhook_SavedMappingFields(t *testing.T) {
	repo := &mockMappingRepository{}
	uc := newTestUseCase(repo)

	payload := closePayload("SDO-100")
	fields := payload.Issue["fields"].(map[string]interface{})
	fields["customfield_11227"] = "08123456789"

	_, err := uc.Execute(context.Background(), ProcessWebhookCommand{Payload: payload})
	require.NoError(t, err)

	require.Len(t, repo.saveCalls, 1)
	saved := repo.saveCalls[0]

	// No customer ID slot carries a value besides the phone slot.
	assert.Equal(t, "08123456789", saved.CustomerID())
	require.NotNil(t, saved.CustomerPhone())
	assert.Equal(t, "08123456789", *saved.CustomerPhone())
	require.NotNil(t, saved.TransactionID())
	assert.Equal(t, "TRX-9", *saved.TransactionID())
	assert.Equal(t, "Payment stuck", saved.TicketSummary())
	assert.Equal(t, testBaseURL+"/browse/SDO-100", saved.TicketURL())
	assert.Equal(t, "High", saved.Priority())
	assert.True(t, saved.CloseNotified())
	require.NotNil(t, saved.CloseNotifiedBy())
	assert.Equal(t, "Budi Santoso", *saved.CloseNotifiedBy())
	assert.Equal(t, payload.Issue["key"], saved.ComplaintData()["key"])
}

func TestProcessWebhook_EmptyStringCustomerIDPersists(t *testing.T) {
	repo := &mockMappingRepository{}
	uc := newTestUseCase(repo)

	payload := closePayload("SDO-100")
	fields := payload.Issue["fields"].(map[string]interface{})
	fields["customfield_10496"] = ""
	fields["customfield_10019"] = "CUST-2"

	result, err := uc.Execute(context.Background(), ProcessWebhookCommand{Payload: payload})
	require.NoError(t, err)

	assert.Equal(t, StatusProcessed, result.Status)
	require.Len(t, repo.saveCalls, 1)
	assert.Equal(t, "", repo.saveCalls[0].CustomerID())
}

func TestProcessWebhook_UnknownCustomerID(t *testing.T) {
	repo := &mockMappingRepository{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), ProcessWebhookCommand{Payload: closePayload("SDO-100")})
	require.NoError(t, err)

	require.Len(t, repo.saveCalls, 1)
	assert.Equal(t, webhook.UnknownCustomerID, repo.saveCalls[0].CustomerID())
}
