package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes añade índices para acelerar los listados del panel
func AddIndexes(db *gorm.DB) error {
	// Índices de la tabla questionnaires
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_questionnaires_tipo ON questionnaires (tipo)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_questionnaires_status ON questionnaires (status)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_questionnaires_created_at ON questionnaires (created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_questionnaires_user_id ON questionnaires (user_id)").Error; err != nil {
		return err
	}

	// Índices de la tabla contact_messages
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_contact_messages_status ON contact_messages (status)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages (created_at)").Error; err != nil {
		return err
	}

	return nil
}
