package repositories

import (
	"fmt"

	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
	"gorm.io/gorm"
)

// QuestionnaireRepository implementa el acceso a datos de cuestionarios
type QuestionnaireRepository struct {
	db *gorm.DB
}

// NewQuestionnaireRepository crea una nueva instancia de QuestionnaireRepository
func NewQuestionnaireRepository(db *gorm.DB) *QuestionnaireRepository {
	return &QuestionnaireRepository{
		db: db,
	}
}

// Create inserta un cuestionario nuevo y rellena el ID generado
func (r *QuestionnaireRepository) Create(q *entities.Questionnaire) error {
	if err := r.db.Create(q).Error; err != nil {
		return fmt.Errorf("error al crear cuestionario: %w", err)
	}
	return nil
}

// GetByID devuelve un cuestionario por su identificador
func (r *QuestionnaireRepository) GetByID(id uint) (entities.Questionnaire, error) {
	var q entities.Questionnaire
	if err := r.db.First(&q, id).Error; err != nil {
		return entities.Questionnaire{}, err
	}
	return q, nil
}

// GetAll devuelve todos los cuestionarios, ordenados por id, para el barrido
// de mantenimiento
func (r *QuestionnaireRepository) GetAll() ([]entities.Questionnaire, error) {
	var qs []entities.Questionnaire
	if err := r.db.Order("id asc").Find(&qs).Error; err != nil {
		return nil, fmt.Errorf("error al buscar cuestionarios: %w", err)
	}
	return qs, nil
}

// List devuelve cuestionarios con filtros y paginación
func (r *QuestionnaireRepository) List(params map[string]interface{}) ([]entities.Questionnaire, int64, error) {
	var qs []entities.Questionnaire
	var total int64

	query := r.db.Model(&entities.Questionnaire{})

	// Aplicando filtros
	if tipo, ok := params["tipo"].(string); ok && tipo != "" {
		query = query.Where("tipo = ?", tipo)
	}

	if status, ok := params["status"].(string); ok && status != "" {
		query = query.Where("status = ?", status)
	}

	// Contar total de registros antes de la paginación
	query.Count(&total)

	// Aplicar ordenación
	sortBy, _ := params["sort_by"].(string)
	sortDirection, _ := params["sort_direction"].(string)

	if sortBy == "" {
		sortBy = "created_at"
	}

	if sortDirection != "asc" {
		sortDirection = "desc"
	}

	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortDirection))

	// Aplicar paginación
	page, _ := params["page"].(int)
	limit, _ := params["limit"].(int)

	if page <= 0 {
		page = 1
	}

	if limit <= 0 {
		limit = 10
	}

	offset := (page - 1) * limit
	query = query.Offset(offset).Limit(limit)

	if err := query.Find(&qs).Error; err != nil {
		return nil, 0, fmt.Errorf("error al buscar cuestionarios: %w", err)
	}

	return qs, total, nil
}

// Update guarda los cambios de un cuestionario existente
func (r *QuestionnaireRepository) Update(q *entities.Questionnaire) error {
	if err := r.db.Save(q).Error; err != nil {
		return fmt.Errorf("error al actualizar cuestionario: %w", err)
	}
	return nil
}

// Delete elimina físicamente un cuestionario. No hay borrado lógico.
func (r *QuestionnaireRepository) Delete(id uint) error {
	result := r.db.Delete(&entities.Questionnaire{}, id)
	if result.Error != nil {
		return fmt.Errorf("error al eliminar cuestionario: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
