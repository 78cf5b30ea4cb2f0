package usecases

import (
	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
	"github.com/mentesana/cuestionarios-api/internal/domain/repositories"
)

// ContactUseCase implementa los casos de uso de mensajes de contacto
type ContactUseCase struct {
	repo *repositories.ContactRepository
}

// NewContactUseCase crea una nueva instancia de ContactUseCase
func NewContactUseCase(repo *repositories.ContactRepository) *ContactUseCase {
	return &ContactUseCase{
		repo: repo,
	}
}

// Submit almacena un mensaje del formulario público de contacto y devuelve
// el identificador asignado
func (u *ContactUseCase) Submit(nombre, email, asunto, mensaje string) (uint, error) {
	m := entities.ContactMessage{
		Nombre:  nombre,
		Email:   email,
		Asunto:  asunto,
		Mensaje: mensaje,
		Status:  entities.ContactUnread,
	}
	if err := u.repo.Create(&m); err != nil {
		return 0, err
	}
	return m.ID, nil
}

// List devuelve mensajes con filtro por estado y paginación
func (u *ContactUseCase) List(page, limit int, status string) ([]entities.ContactMessage, int64, error) {
	params := map[string]interface{}{
		"page":   page,
		"limit":  limit,
		"status": status,
	}
	return u.repo.List(params)
}

// MarkStatus cambia el estado de un mensaje (unread, read, replied)
func (u *ContactUseCase) MarkStatus(id uint, status string) error {
	if !entities.IsValidContactStatus(status) {
		return ErrInvalidStatus
	}
	return u.repo.UpdateStatus(id, status)
}

// Delete elimina físicamente un mensaje de contacto
func (u *ContactUseCase) Delete(id uint) error {
	return u.repo.Delete(id)
}
