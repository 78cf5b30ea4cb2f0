package repositories

import (
	"fmt"

	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
	"gorm.io/gorm"
)

// ContactRepository implementa el acceso a datos de mensajes de contacto
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository crea una nueva instancia de ContactRepository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

// Create inserta un mensaje de contacto nuevo
func (r *ContactRepository) Create(m *entities.ContactMessage) error {
	if err := r.db.Create(m).Error; err != nil {
		return fmt.Errorf("error al crear mensaje de contacto: %w", err)
	}
	return nil
}

// GetByID devuelve un mensaje por su identificador
func (r *ContactRepository) GetByID(id uint) (entities.ContactMessage, error) {
	var m entities.ContactMessage
	if err := r.db.First(&m, id).Error; err != nil {
		return entities.ContactMessage{}, err
	}
	return m, nil
}

// List devuelve mensajes de contacto con filtro por estado y paginación
func (r *ContactRepository) List(params map[string]interface{}) ([]entities.ContactMessage, int64, error) {
	var msgs []entities.ContactMessage
	var total int64

	query := r.db.Model(&entities.ContactMessage{})

	if status, ok := params["status"].(string); ok && status != "" {
		query = query.Where("status = ?", status)
	}

	query.Count(&total)

	page, _ := params["page"].(int)
	limit, _ := params["limit"].(int)

	if page <= 0 {
		page = 1
	}

	if limit <= 0 {
		limit = 10
	}

	offset := (page - 1) * limit
	query = query.Order("created_at desc").Offset(offset).Limit(limit)

	if err := query.Find(&msgs).Error; err != nil {
		return nil, 0, fmt.Errorf("error al buscar mensajes de contacto: %w", err)
	}

	return msgs, total, nil
}

// UpdateStatus cambia el estado de un mensaje y refresca updated_at
func (r *ContactRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&entities.ContactMessage{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("error al actualizar estado del mensaje: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete elimina físicamente un mensaje de contacto
func (r *ContactRepository) Delete(id uint) error {
	result := r.db.Delete(&entities.ContactMessage{}, id)
	if result.Error != nil {
		return fmt.Errorf("error al eliminar mensaje de contacto: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
