package migrations

import (
	"gorm.io/gorm"

	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
)

// Migrate crea o actualiza el esquema de las tablas del dominio
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.Questionnaire{},
		&entities.ContactMessage{},
	)
}
