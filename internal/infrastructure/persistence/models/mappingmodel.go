package models

import "gorm.io/datatypes"

type TicketCustomerMappingModel struct {
	MappingID       string         `gorm:"primaryKey;size:36;column:mapping_id"`
	TicketKey       string         `gorm:"uniqueIndex;size:50;not null"`
	CustomerID      string         `gorm:"size:255;not null"`
	CustomerPhone   *string        `gorm:"size:50"`
	TransactionID   *string        `gorm:"size:255"`
	TicketSummary   string         `gorm:"type:text;not null"`
	TicketURL       string         `gorm:"size:500;not null;column:ticket_url"`
	Priority        *string        `gorm:"size:50"`
	IntentionType   int            `gorm:"not null;default:0"`
	ComplaintData   datatypes.JSON `gorm:"not null"`
	CreatedOn       int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedOn       int64          `gorm:"autoUpdateTime:milli;not null"`
	CloseNotified   bool           `gorm:"not null;default:false"`
	CloseNotifiedOn *int64
	CloseNotifiedBy *string `gorm:"size:255"`

	// Note: No foreign key constraints or associations.
	// Customer identity lives in an external system; only the ID is recorded.
}

func (TicketCustomerMappingModel) TableName() string {
	return "tb_r_ticket_customer_mapping"
}
