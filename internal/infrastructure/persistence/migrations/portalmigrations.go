package migrations

import (
	"gorm.io/gorm"

	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/persistence/models"
)

// MigratePortalTables brings the schema for all portal entities up to date.
func MigratePortalTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.TicketModel{},
		&models.ReplyModel{},
		&models.FAQModel{},
		&models.ChatMessageModel{},
	)
}
