package webhook

import "strings"

const closedStatusLabel = "Close"

// IsCloseTransition reports whether the changelog contains a status change to
// the "Close" value. The field name comparison is case-insensitive while the
// target value comparison is exact; the tracker workflow defines the status
// label with this exact casing, so a lowercase "close" does not match.
func IsCloseTransition(changelog *Changelog) bool {
	if changelog == nil {
		return false
	}

	for _, item := range changelog.Items {
		field := strings.ToLower(item.Field)
		fieldID := strings.ToLower(item.FieldID)

		if (field == "status" || fieldID == "status") && item.ToString == closedStatusLabel {
			return true
		}
	}

	return false
}
