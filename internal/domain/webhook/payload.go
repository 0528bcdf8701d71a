// Package webhook holds the inbound Jira webhook payload types and the pure
// rules applied to them: the close-transition filter and the field extractor.
// Nothing in this package performs I/O.
package webhook

// Payload is the decoded body of a Jira webhook delivery. The tracker's field
// set is open-ended, so user and issue stay generic maps; custom fields are
// accessed by their opaque string keys.
//
// Timestamp is a pointer so that a literal zero passes the required binding;
// only an absent field is rejected.
type Payload struct {
	Timestamp          *int64                 `json:"timestamp" binding:"required"`
	WebhookEvent       string                 `json:"webhookEvent" binding:"required"`
	IssueEventTypeName string                 `json:"issue_event_type_name"`
	User               map[string]interface{} `json:"user" binding:"required"`
	Issue              map[string]interface{} `json:"issue" binding:"required"`
	Changelog          *Changelog             `json:"changelog"`
}

// Changelog lists the field changes that triggered the event, in order.
type Changelog struct {
	ID    string          `json:"id"`
	Items []ChangelogItem `json:"items"`
}

type ChangelogItem struct {
	Field      string `json:"field"`
	FieldID    string `json:"fieldId"`
	FromString string `json:"fromString"`
	ToString   string `json:"toString"`
}
