package mapping

import (
	"testing"
	"time"
)

func validComplaintData() map[string]interface{} {
	return map[string]interface{}{
		"key": "SDO-42",
		"fields": map[string]interface{}{
			"summary": "Payment stuck",
		},
	}
}

func strPtr(s string) *string { return &s }

func TestNewMapping(t *testing.T) {
	notifiedOn := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

	m, err := NewMapping(
		"b2f1c2d3-0000-0000-0000-000000000001",
		"SDO-42",
		"CUST-1",
		strPtr("08123456789"),
		strPtr("TRX-9"),
		"Payment stuck",
		"https://example.atlassian.net/browse/SDO-42",
		"High",
		validComplaintData(),
		strPtr("Budi Santoso"),
		notifiedOn,
	)
	if err != nil {
		t.Fatalf("NewMapping() error = %v", err)
	}

	if m.TicketKey() != "SDO-42" {
		t.Errorf("TicketKey() = %q, want SDO-42", m.TicketKey())
	}
	if m.CustomerID() != "CUST-1" {
		t.Errorf("CustomerID() = %q, want CUST-1", m.CustomerID())
	}
	if !m.CloseNotified() {
		t.Error("CloseNotified() = false, want true")
	}
	if m.IntentionType() != 0 {
		t.Errorf("IntentionType() = %d, want 0", m.IntentionType())
	}
	if m.CloseNotifiedOn() == nil || !m.CloseNotifiedOn().Equal(notifiedOn) {
		t.Errorf("CloseNotifiedOn() = %v, want %v", m.CloseNotifiedOn(), notifiedOn)
	}
	if m.CloseNotifiedBy() == nil || *m.CloseNotifiedBy() != "Budi Santoso" {
		t.Errorf("CloseNotifiedBy() = %v, want Budi Santoso", m.CloseNotifiedBy())
	}
	if !m.CreatedOn().IsZero() {
		t.Errorf("CreatedOn() = %v, want zero before persistence", m.CreatedOn())
	}
}

func TestNewMapping_Validation(t *testing.T) {
	notifiedOn := time.Now().UTC()

	tests := []struct {
		name          string
		mappingID     string
		ticketKey     string
		customerID    string
		ticketURL     string
		complaintData map[string]interface{}
	}{
		{"missing mapping ID", "", "SDO-42", "CUST-1", "https://x/browse/SDO-42", validComplaintData()},
		{"missing ticket key", "id-1", "", "CUST-1", "https://x/browse/SDO-42", validComplaintData()},
		{"missing ticket URL", "id-1", "SDO-42", "CUST-1", "", validComplaintData()},
		{"missing complaint data", "id-1", "SDO-42", "CUST-1", "https://x/browse/SDO-42", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMapping(
				tt.mappingID, tt.ticketKey, tt.customerID,
				nil, nil, "summary", tt.ticketURL, "High",
				tt.complaintData, nil, notifiedOn,
			)
			if err == nil {
				t.Error("NewMapping() error = nil, want error")
			}
		})
	}
}

func TestNewMapping_EmptyCustomerIDAllowed(t *testing.T) {
	m, err := NewMapping(
		"id-1", "SDO-42", "", nil, nil,
		"summary", "https://x/browse/SDO-42", "High",
		validComplaintData(), nil, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("NewMapping() error = %v, want nil", err)
	}
	if m.CustomerID() != "" {
		t.Errorf("CustomerID() = %q, want empty", m.CustomerID())
	}
}

func TestMapping_ComplaintDataIsCopied(t *testing.T) {
	data := validComplaintData()
	m, err := NewMapping(
		"id-1", "SDO-42", "CUST-1", nil, nil,
		"summary", "https://x/browse/SDO-42", "High",
		data, nil, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("NewMapping() error = %v", err)
	}

	out := m.ComplaintData()
	out["key"] = "tampered"

	if m.ComplaintData()["key"] != "SDO-42" {
		t.Error("ComplaintData() returned a shared map")
	}
}

func TestMapping_MarkPersisted(t *testing.T) {
	m, err := NewMapping(
		"id-1", "SDO-42", "CUST-1", nil, nil,
		"summary", "https://x/browse/SDO-42", "High",
		validComplaintData(), nil, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("NewMapping() error = %v", err)
	}

	createdOn := time.Date(2025, 3, 10, 8, 30, 1, 0, time.UTC)

	if err := m.MarkPersisted(createdOn, createdOn); err != nil {
		t.Fatalf("MarkPersisted() error = %v", err)
	}
	if !m.CreatedOn().Equal(createdOn) {
		t.Errorf("CreatedOn() = %v, want %v", m.CreatedOn(), createdOn)
	}

	if err := m.MarkPersisted(createdOn.Add(time.Hour), createdOn.Add(time.Hour)); err == nil {
		t.Error("second MarkPersisted() error = nil, want error")
	}
}

func TestMapping_MarkPersisted_ZeroTimestamp(t *testing.T) {
	m, err := NewMapping(
		"id-1", "SDO-42", "CUST-1", nil, nil,
		"summary", "https://x/browse/SDO-42", "High",
		validComplaintData(), nil, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("NewMapping() error = %v", err)
	}

	if err := m.MarkPersisted(time.Time{}, time.Time{}); err == nil {
		t.Error("MarkPersisted(zero) error = nil, want error")
	}
}

func TestReconstructMapping(t *testing.T) {
	createdOn := time.Date(2025, 3, 10, 8, 30, 1, 0, time.UTC)
	notifiedOn := createdOn.Add(-time.Second)

	m, err := ReconstructMapping(
		"id-1", "SDO-42", "CUST-1",
		strPtr("08123456789"), strPtr("TRX-9"),
		"Payment stuck", "https://x/browse/SDO-42", "High",
		0, validComplaintData(), true, &notifiedOn, strPtr("Budi Santoso"),
		createdOn, createdOn,
	)
	if err != nil {
		t.Fatalf("ReconstructMapping() error = %v", err)
	}

	if m.MappingID() != "id-1" {
		t.Errorf("MappingID() = %q, want id-1", m.MappingID())
	}
	if !m.CreatedOn().Equal(createdOn) {
		t.Errorf("CreatedOn() = %v, want %v", m.CreatedOn(), createdOn)
	}

	if _, err := ReconstructMapping(
		"", "SDO-42", "CUST-1", nil, nil, "", "", "",
		0, nil, false, nil, nil, createdOn, createdOn,
	); err == nil {
		t.Error("ReconstructMapping() with empty mapping ID: error = nil, want error")
	}
}
