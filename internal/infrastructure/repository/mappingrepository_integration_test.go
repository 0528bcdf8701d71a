package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jirabridge/internal/domain/mapping"
	"jirabridge/internal/infrastructure/persistence/models"
	sharedErrors "jirabridge/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.TicketCustomerMappingModel{})
	require.NoError(t, err)

	return db
}

func strPtr(s string) *string { return &s }

func newTestMapping(t *testing.T, mappingID, ticketKey string) *mapping.Mapping {
	t.Helper()
	m, err := mapping.NewMapping(
		mappingID,
		ticketKey,
		"CUST-1",
		strPtr("08123456789"),
		strPtr("TRX-9"),
		"Payment stuck",
		"https://example.atlassian.net/browse/"+ticketKey,
		"High",
		map[string]interface{}{
			"key": ticketKey,
			"fields": map[string]interface{}{
				"summary": "Payment stuck",
			},
		},
		strPtr("Budi Santoso"),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return m
}

func TestMappingRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMappingRepository(db)
	ctx := context.Background()

	t.Run("save new mapping successfully", func(t *testing.T) {
		m := newTestMapping(t, "id-save-1", "SDO-1")

		err := repo.Save(ctx, m)
		assert.NoError(t, err)
		assert.False(t, m.CreatedOn().IsZero())
	})

	t.Run("duplicate ticket key returns conflict", func(t *testing.T) {
		first := newTestMapping(t, "id-dup-1", "SDO-DUP")
		require.NoError(t, repo.Save(ctx, first))

		second := newTestMapping(t, "id-dup-2", "SDO-DUP")
		err := repo.Save(ctx, second)
		require.Error(t, err)
		assert.True(t, sharedErrors.IsConflictError(err))
	})

	t.Run("same mapping id for different key fails", func(t *testing.T) {
		first := newTestMapping(t, "id-pk", "SDO-PK-1")
		require.NoError(t, repo.Save(ctx, first))

		second := newTestMapping(t, "id-pk", "SDO-PK-2")
		err := repo.Save(ctx, second)
		assert.Error(t, err)
	})
}

func TestMappingRepository_FindByTicketKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMappingRepository(db)
	ctx := context.Background()

	t.Run("found mapping round-trips", func(t *testing.T) {
		m := newTestMapping(t, "id-find-1", "SDO-10")
		require.NoError(t, repo.Save(ctx, m))

		found, err := repo.FindByTicketKey(ctx, "SDO-10")
		require.NoError(t, err)
		require.NotNil(t, found)

		assert.Equal(t, "id-find-1", found.MappingID())
		assert.Equal(t, "SDO-10", found.TicketKey())
		assert.Equal(t, "CUST-1", found.CustomerID())
		require.NotNil(t, found.CustomerPhone())
		assert.Equal(t, "08123456789", *found.CustomerPhone())
		require.NotNil(t, found.TransactionID())
		assert.Equal(t, "TRX-9", *found.TransactionID())
		assert.Equal(t, "Payment stuck", found.TicketSummary())
		assert.Equal(t, "High", found.Priority())
		assert.Equal(t, 0, found.IntentionType())
		assert.True(t, found.CloseNotified())
		require.NotNil(t, found.CloseNotifiedBy())
		assert.Equal(t, "Budi Santoso", *found.CloseNotifiedBy())
		assert.Equal(t, "SDO-10", found.ComplaintData()["key"])
		assert.False(t, found.CreatedOn().IsZero())
	})

	t.Run("absent key returns nil without error", func(t *testing.T) {
		found, err := repo.FindByTicketKey(ctx, "SDO-MISSING")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}
