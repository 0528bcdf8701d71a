package mapping

import (
	"fmt"
	"time"
)

// Mapping links a closed Jira ticket to the customer who raised the complaint.
// It is created exactly once per ticket key, when the close transition is
// first observed, and is never mutated afterwards.
type Mapping struct {
	mappingID       string
	ticketKey       string
	customerID      string
	customerPhone   *string
	transactionID   *string
	ticketSummary   string
	ticketURL       string
	priority        string
	intentionType   int
	complaintData   map[string]interface{}
	closeNotified   bool
	closeNotifiedOn *time.Time
	closeNotifiedBy *string
	createdOn       time.Time
	updatedOn       time.Time
}

// NewMapping builds a close-notified mapping for a ticket that has just
// transitioned to Close. complaintData must be the raw issue object from the
// triggering event, stored verbatim for audit and replay.
func NewMapping(
	mappingID string,
	ticketKey string,
	customerID string,
	customerPhone *string,
	transactionID *string,
	ticketSummary string,
	ticketURL string,
	priority string,
	complaintData map[string]interface{},
	closeNotifiedBy *string,
	closeNotifiedOn time.Time,
) (*Mapping, error) {
	if len(mappingID) == 0 {
		return nil, fmt.Errorf("mapping ID is required")
	}
	if len(ticketKey) == 0 {
		return nil, fmt.Errorf("ticket key is required")
	}
	// customerID may be empty: an empty string in a customer ID slot is a
	// present value and is stored as-is. The "UNKNOWN" default only applies
	// when every slot is absent or null.
	if len(ticketURL) == 0 {
		return nil, fmt.Errorf("ticket URL is required")
	}
	if complaintData == nil {
		return nil, fmt.Errorf("complaint data is required")
	}

	return &Mapping{
		mappingID:       mappingID,
		ticketKey:       ticketKey,
		customerID:      customerID,
		customerPhone:   customerPhone,
		transactionID:   transactionID,
		ticketSummary:   ticketSummary,
		ticketURL:       ticketURL,
		priority:        priority,
		intentionType:   0,
		complaintData:   complaintData,
		closeNotified:   true,
		closeNotifiedOn: &closeNotifiedOn,
		closeNotifiedBy: closeNotifiedBy,
	}, nil
}

// ReconstructMapping rebuilds a mapping from persisted state.
func ReconstructMapping(
	mappingID string,
	ticketKey string,
	customerID string,
	customerPhone *string,
	transactionID *string,
	ticketSummary string,
	ticketURL string,
	priority string,
	intentionType int,
	complaintData map[string]interface{},
	closeNotified bool,
	closeNotifiedOn *time.Time,
	closeNotifiedBy *string,
	createdOn, updatedOn time.Time,
) (*Mapping, error) {
	if len(mappingID) == 0 {
		return nil, fmt.Errorf("mapping ID is required")
	}
	if len(ticketKey) == 0 {
		return nil, fmt.Errorf("ticket key is required")
	}

	return &Mapping{
		mappingID:       mappingID,
		ticketKey:       ticketKey,
		customerID:      customerID,
		customerPhone:   customerPhone,
		transactionID:   transactionID,
		ticketSummary:   ticketSummary,
		ticketURL:       ticketURL,
		priority:        priority,
		intentionType:   intentionType,
		complaintData:   complaintData,
		closeNotified:   closeNotified,
		closeNotifiedOn: closeNotifiedOn,
		closeNotifiedBy: closeNotifiedBy,
		createdOn:       createdOn,
		updatedOn:       updatedOn,
	}, nil
}

func (m *Mapping) MappingID() string {
	return m.mappingID
}

func (m *Mapping) TicketKey() string {
	return m.ticketKey
}

func (m *Mapping) CustomerID() string {
	return m.customerID
}

func (m *Mapping) CustomerPhone() *string {
	return m.customerPhone
}

func (m *Mapping) TransactionID() *string {
	return m.transactionID
}

func (m *Mapping) TicketSummary() string {
	return m.ticketSummary
}

func (m *Mapping) TicketURL() string {
	return m.ticketURL
}

func (m *Mapping) Priority() string {
	return m.priority
}

func (m *Mapping) IntentionType() int {
	return m.intentionType
}

func (m *Mapping) ComplaintData() map[string]interface{} {
	dataCopy := make(map[string]interface{}, len(m.complaintData))
	for k, v := range m.complaintData {
		dataCopy[k] = v
	}
	return dataCopy
}

func (m *Mapping) CloseNotified() bool {
	return m.closeNotified
}

func (m *Mapping) CloseNotifiedOn() *time.Time {
	return m.closeNotifiedOn
}

func (m *Mapping) CloseNotifiedBy() *string {
	return m.closeNotifiedBy
}

func (m *Mapping) CreatedOn() time.Time {
	return m.createdOn
}

func (m *Mapping) UpdatedOn() time.Time {
	return m.updatedOn
}

// MarkPersisted records the storage-assigned timestamps after a successful insert.
func (m *Mapping) MarkPersisted(createdOn, updatedOn time.Time) error {
	if !m.createdOn.IsZero() {
		return fmt.Errorf("mapping is already persisted")
	}
	if createdOn.IsZero() {
		return fmt.Errorf("created timestamp cannot be zero")
	}
	m.createdOn = createdOn
	m.updatedOn = updatedOn
	return nil
}
