package migration

import (
	"jirabridge/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketCustomerMappingModel{},
	}
}
