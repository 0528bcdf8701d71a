package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"jirabridge/internal/domain/mapping"
	"jirabridge/internal/infrastructure/persistence/mappers"
	"jirabridge/internal/infrastructure/persistence/models"
	sharedErrors "jirabridge/internal/shared/errors"
)

// queryTimeout bounds every persistence call so a stalled database surfaces
// as an error instead of hanging the request.
const queryTimeout = 5 * time.Second

type MappingRepository struct {
	db     *gorm.DB
	mapper mappers.MappingMapper
}

func NewMappingRepository(db *gorm.DB) *MappingRepository {
	return &MappingRepository{
		db:     db,
		mapper: mappers.NewMappingMapper(),
	}
}

func (r *MappingRepository) FindByTicketKey(ctx context.Context, ticketKey string) (*mapping.Mapping, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var model models.TicketCustomerMappingModel
	if err := r.db.WithContext(ctx).
		Where("ticket_key = ?", ticketKey).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket mapping: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MappingRepository) Save(ctx context.Context, m *mapping.Mapping) error {
	// The insert is the source of truth; a caller disconnect must not abort a
	// write that is already in flight, so only the timeout bounds it.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), queryTimeout)
	defer cancel()

	model, err := r.mapper.ToModel(m)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			return sharedErrors.NewConflictError(
				fmt.Sprintf("ticket %s already exists", m.TicketKey()))
		}
		return fmt.Errorf("failed to save ticket mapping: %w", err)
	}

	return m.MarkPersisted(
		mappers.MillisToTime(model.CreatedOn),
		mappers.MillisToTime(model.UpdatedOn),
	)
}
