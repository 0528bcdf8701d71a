package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"jirabridge/internal/domain/mapping"
	"jirabridge/internal/infrastructure/persistence/models"
)

// MappingMapper handles the conversion between Mapping domain entities and persistence models.
type MappingMapper interface {
	// ToModel converts a mapping domain entity to a persistence model.
	ToModel(m *mapping.Mapping) (*models.TicketCustomerMappingModel, error)

	// ToDomain converts a mapping persistence model to a domain entity.
	ToDomain(model *models.TicketCustomerMappingModel) (*mapping.Mapping, error)
}

type MappingMapperImpl struct{}

// NewMappingMapper creates a new MappingMapper.
func NewMappingMapper() MappingMapper {
	return &MappingMapperImpl{}
}

func (mm *MappingMapperImpl) ToModel(m *mapping.Mapping) (*models.TicketCustomerMappingModel, error) {
	complaintJSON, err := json.Marshal(m.ComplaintData())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal complaint data (ticket=%s): %w", m.TicketKey(), err)
	}

	model := &models.TicketCustomerMappingModel{
		MappingID:       m.MappingID(),
		TicketKey:       m.TicketKey(),
		CustomerID:      m.CustomerID(),
		CustomerPhone:   m.CustomerPhone(),
		TransactionID:   m.TransactionID(),
		TicketSummary:   m.TicketSummary(),
		TicketURL:       m.TicketURL(),
		IntentionType:   m.IntentionType(),
		ComplaintData:   complaintJSON,
		CloseNotified:   m.CloseNotified(),
		CloseNotifiedBy: m.CloseNotifiedBy(),
	}

	if p := m.Priority(); p != "" {
		model.Priority = &p
	}

	if m.CloseNotifiedOn() != nil {
		notified := m.CloseNotifiedOn().UnixMilli()
		model.CloseNotifiedOn = &notified
	}

	if !m.CreatedOn().IsZero() {
		model.CreatedOn = m.CreatedOn().UnixMilli()
		model.UpdatedOn = m.UpdatedOn().UnixMilli()
	}

	return model, nil
}

func (mm *MappingMapperImpl) ToDomain(model *models.TicketCustomerMappingModel) (*mapping.Mapping, error) {
	var complaintData map[string]interface{}
	if len(model.ComplaintData) > 0 {
		if err := json.Unmarshal(model.ComplaintData, &complaintData); err != nil {
			return nil, fmt.Errorf("failed to unmarshal complaint data (ticket=%s): %w", model.TicketKey, err)
		}
	}

	priority := ""
	if model.Priority != nil {
		priority = *model.Priority
	}

	var closeNotifiedOn *time.Time
	if model.CloseNotifiedOn != nil {
		t := MillisToTime(*model.CloseNotifiedOn)
		closeNotifiedOn = &t
	}

	return mapping.ReconstructMapping(
		model.MappingID,
		model.TicketKey,
		model.CustomerID,
		model.CustomerPhone,
		model.TransactionID,
		model.TicketSummary,
		model.TicketURL,
		priority,
		model.IntentionType,
		complaintData,
		model.CloseNotified,
		closeNotifiedOn,
		model.CloseNotifiedBy,
		MillisToTime(model.CreatedOn),
		MillisToTime(model.UpdatedOn),
	)
}

// MillisToTime converts a unix millisecond column value to time.Time.
func MillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
