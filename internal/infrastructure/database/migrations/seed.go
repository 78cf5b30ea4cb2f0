package migrations

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
)

// SeedSystemUser garantiza que exista la cuenta admin del sistema, que es la
// propietaria de los envíos anónimos de cuestionarios. Si no se configuran
// ADMIN_EMAIL y ADMIN_PASSWORD y no existe ningún admin, los envíos anónimos
// fallarán hasta que se cree la cuenta.
func SeedSystemUser(db *gorm.DB, nombre, email, password string) error {
	var existing entities.User
	err := db.Where("role = ?", entities.RoleAdmin).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD no configurados: no se creó la cuenta admin del sistema")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error al generar el hash de la contraseña: %w", err)
	}

	admin := entities.User{
		UserID:       uuid.NewString(),
		Nombre:       nombre,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entities.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("error al crear la cuenta admin: %w", err)
	}

	log.Printf("✅ Cuenta admin del sistema creada: %s", email)
	return nil
}
