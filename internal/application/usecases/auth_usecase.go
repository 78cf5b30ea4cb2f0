package usecases

import (
	"errors"

	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
	"github.com/mentesana/cuestionarios-api/internal/domain/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthUseCase implementa la autenticación de usuarios del panel
type AuthUseCase struct {
	userRepo *repositories.UserRepository
}

// NewAuthUseCase crea una nueva instancia de AuthUseCase
func NewAuthUseCase(userRepo *repositories.UserRepository) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
	}
}

// Authenticate verifica email y contraseña y devuelve el usuario. Un email
// inexistente y una contraseña incorrecta producen el mismo error.
func (u *AuthUseCase) Authenticate(email, password string) (entities.User, error) {
	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, ErrInvalidCredentials
		}
		return entities.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return entities.User{}, ErrInvalidCredentials
	}

	return user, nil
}
