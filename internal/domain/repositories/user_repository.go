package repositories

import (
	"fmt"

	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
	"gorm.io/gorm"
)

// UserRepository implementa el acceso a datos de usuarios
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository crea una nueva instancia de UserRepository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserta un usuario nuevo
func (r *UserRepository) Create(u *entities.User) error {
	if err := r.db.Create(u).Error; err != nil {
		return fmt.Errorf("error al crear usuario: %w", err)
	}
	return nil
}

// FindByEmail busca un usuario por su email
func (r *UserRepository) FindByEmail(email string) (entities.User, error) {
	var u entities.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return entities.User{}, err
	}
	return u, nil
}

// FindByID busca un usuario por su identificador
func (r *UserRepository) FindByID(id string) (entities.User, error) {
	var u entities.User
	if err := r.db.Where("user_id = ?", id).First(&u).Error; err != nil {
		return entities.User{}, err
	}
	return u, nil
}

// FindSystemUser devuelve la cuenta admin del sistema, propietaria de los
// envíos anónimos. Que exista es una precondición del despliegue.
func (r *UserRepository) FindSystemUser() (entities.User, error) {
	var u entities.User
	err := r.db.Where("role = ?", entities.RoleAdmin).Order("created_at asc").First(&u).Error
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}
