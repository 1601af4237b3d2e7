package database

import (
	"fmt"

	"proprospect-backend/models"

	"gorm.io/gorm"
)

// AutoMigrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns)
// - Composite indexes for user-controlled ordering columns
// - Idempotency keys unique index
func AutoMigrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.User{},
			&models.Property{},
			&models.Contact{},
			&models.PhoneData{},
			&models.EmailData{},
			&models.Note{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		// --- Composite / helpful indexes (idempotent) ---
		indexes := []string{
			`CREATE INDEX IF NOT EXISTS idx_contacts_property_position ON contacts (property_id, position)`,
			`CREATE INDEX IF NOT EXISTS idx_phone_data_contact_position ON phone_data (contact_id, position)`,
			`CREATE INDEX IF NOT EXISTS idx_email_data_contact_position ON email_data (contact_id, position)`,
			`CREATE INDEX IF NOT EXISTS idx_notes_property_seq ON notes (property_id, seq DESC)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_key ON idempotency_keys (key)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}
		return nil
	})
}
