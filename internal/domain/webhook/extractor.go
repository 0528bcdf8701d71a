package webhook

import "strconv"

// Custom field slots assigned by the tracker. The customer ID is resolved
// through a fallback chain because older projects stored it in different slots.
const (
	customFieldCustomerCode  = "customfield_10496"
	customFieldCustomerInfo  = "customfield_10019"
	customFieldCustomerID    = "customfield_11227"
	customFieldCustomerPhone = "customfield_11227"
	customFieldTransactionID = "customfield_11226"
)

// UnknownCustomerID is stored when no customer ID slot carries a value.
const UnknownCustomerID = "UNKNOWN"

// TicketFields is the extraction result for a single issue.
type TicketFields struct {
	CustomerID    string
	CustomerPhone *string
	TransactionID *string
	TicketSummary string
	TicketURL     string
	Priority      string
}

// ExtractTicketFields resolves the business fields from the issue's field map.
// A slot only falls through the customer ID chain when it is absent or null;
// an empty string is a present value and stops the chain.
func ExtractTicketFields(issue map[string]interface{}, issueKey, jiraBaseURL string) TicketFields {
	fields := fieldMap(issue)

	customerID := UnknownCustomerID
	for _, slot := range []string{customFieldCustomerCode, customFieldCustomerInfo, customFieldCustomerID} {
		if v := StringValue(fields, slot); v != nil {
			customerID = *v
			break
		}
	}

	summary := ""
	if v := StringValue(fields, "summary"); v != nil {
		summary = *v
	}

	return TicketFields{
		CustomerID:    customerID,
		CustomerPhone: StringValue(fields, customFieldCustomerPhone),
		TransactionID: StringValue(fields, customFieldTransactionID),
		TicketSummary: summary,
		TicketURL:     extractTicketURL(issue, issueKey, jiraBaseURL),
		Priority:      extractPriority(fields),
	}
}

// ExtractIssueKey returns the issue key, or nil when the issue object carries none.
func ExtractIssueKey(issue map[string]interface{}) *string {
	return StringValue(issue, "key")
}

// ExtractProjectInfo returns the project key and name from the nested project
// object. Both are nil when the object is missing or not a mapping.
func ExtractProjectInfo(issue map[string]interface{}) (*string, *string) {
	fields := fieldMap(issue)

	project, ok := fields["project"].(map[string]interface{})
	if !ok {
		return nil, nil
	}

	return StringValue(project, "key"), StringValue(project, "name")
}

// ExtractUserDisplayName returns the triggering user's display name if resolvable.
func ExtractUserDisplayName(user map[string]interface{}) *string {
	if user == nil {
		return nil
	}
	return StringValue(user, "displayName")
}

// StringValue reads a scalar from a generic map as a string pointer. Absent
// keys, nulls, and non-scalar values yield nil; JSON numbers are formatted
// back to their literal form.
func StringValue(m map[string]interface{}, key string) *string {
	if m == nil {
		return nil
	}

	raw, ok := m[key]
	if !ok || raw == nil {
		return nil
	}

	switch v := raw.(type) {
	case string:
		return &v
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		return &s
	case bool:
		s := strconv.FormatBool(v)
		return &s
	default:
		return nil
	}
}

func fieldMap(issue map[string]interface{}) map[string]interface{} {
	if issue == nil {
		return nil
	}
	fields, _ := issue["fields"].(map[string]interface{})
	return fields
}

func extractTicketURL(issue map[string]interface{}, issueKey, jiraBaseURL string) string {
	if v := StringValue(issue, "self"); v != nil && *v != "" {
		return *v
	}
	return jiraBaseURL + "/browse/" + issueKey
}

func extractPriority(fields map[string]interface{}) string {
	priority, ok := fields["priority"].(map[string]interface{})
	if !ok {
		return "Unknown"
	}
	if v := StringValue(priority, "name"); v != nil {
		return *v
	}
	return "Unknown"
}
