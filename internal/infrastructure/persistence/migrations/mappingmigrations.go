package migrations

import (
	"gorm.io/gorm"

	"jirabridge/internal/infrastructure/persistence/models"
)

func MigrateMappingTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TicketCustomerMappingModel{},
	)
}
