package usecases

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/mentesana/cuestionarios-api/internal/domain/answers"
	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
	"github.com/mentesana/cuestionarios-api/internal/domain/questions"
	"github.com/mentesana/cuestionarios-api/internal/domain/repositories"
	"github.com/mentesana/cuestionarios-api/internal/utils"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// QuestionnaireUseCase implementa los casos de uso de cuestionarios
type QuestionnaireUseCase struct {
	repo     *repositories.QuestionnaireRepository
	userRepo *repositories.UserRepository
	cache    *gocache.Cache
}

// NewQuestionnaireUseCase crea una nueva instancia de QuestionnaireUseCase
func NewQuestionnaireUseCase(repo *repositories.QuestionnaireRepository, userRepo *repositories.UserRepository, cache *gocache.Cache) *QuestionnaireUseCase {
	return &QuestionnaireUseCase{
		repo:     repo,
		userRepo: userRepo,
		cache:    cache,
	}
}

// AnswerView es una respuesta emparejada con el texto de su pregunta
type AnswerView struct {
	Indice    int    `json:"indice"`
	Pregunta  string `json:"pregunta"`
	Respuesta string `json:"respuesta"`
}

// QuestionnaireView es la forma de presentación de un cuestionario para el
// panel de administración
type QuestionnaireView struct {
	ID           uint                 `json:"id"`
	Tipo         string               `json:"tipo"`
	PersonalInfo answers.PersonalInfo `json:"personal_info"`
	Respuestas   []AnswerView         `json:"respuestas"`
	Status       string               `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// Create valida el envío, normaliza cada respuesta y persiste el cuestionario.
// Los envíos sin usuario autenticado se atribuyen a la cuenta admin del
// sistema. Devuelve el identificador asignado.
func (u *QuestionnaireUseCase) Create(tipo string, personalInfo answers.PersonalInfo, rawAnswers map[string]any, completed bool, userID string) (uint, error) {
	if !entities.IsValidTipo(tipo) {
		return 0, ErrInvalidType
	}

	// Resolver propietario: usuario autenticado o cuenta de sistema
	if userID == "" {
		system, err := u.userRepo.FindSystemUser()
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrNoSystemUser
			}
			return 0, fmt.Errorf("error al resolver cuenta de sistema: %w", err)
		}
		userID = system.UserID
	}

	// Datos personales: nunca se rechazan, solo se completan
	info, _ := personalInfo.Complete()

	// Cada respuesta pasa por el normalizador antes de almacenarse,
	// conservando las claves tal como llegan
	normalized := answers.NormalizeAll(rawAnswers)

	infoJSON, err := json.Marshal(info)
	if err != nil {
		return 0, fmt.Errorf("error al serializar datos personales: %w", err)
	}

	answersJSON, err := json.Marshal(normalized)
	if err != nil {
		return 0, fmt.Errorf("error al serializar respuestas: %w", err)
	}

	status := entities.StatusPending
	if completed {
		status = entities.StatusCompleted
	}

	q := entities.Questionnaire{
		Tipo:         tipo,
		UserID:       userID,
		PersonalInfo: string(infoJSON),
		Answers:      string(answersJSON),
		Status:       status,
	}

	if err := u.repo.Create(&q); err != nil {
		return 0, err
	}

	u.cache.Flush()
	return q.ID, nil
}

// Update modifica respuestas y/o datos personales de un cuestionario que aún
// no está completado. Las respuestas nuevas se normalizan y se fusionan con
// las existentes por clave.
func (u *QuestionnaireUseCase) Update(id uint, personalInfo *answers.PersonalInfo, rawAnswers map[string]any) error {
	q, err := u.repo.GetByID(id)
	if err != nil {
		return err
	}

	if q.Status == entities.StatusCompleted {
		return ErrAlreadyCompleted
	}

	if personalInfo != nil {
		info, _ := personalInfo.Complete()
		infoJSON, err := json.Marshal(info)
		if err != nil {
			return fmt.Errorf("error al serializar datos personales: %w", err)
		}
		q.PersonalInfo = string(infoJSON)
	}

	if len(rawAnswers) > 0 {
		existing, _ := answers.ParseAnswers(q.Answers)
		merged := answers.NormalizeAll(existing)
		for k, v := range answers.NormalizeAll(rawAnswers) {
			merged[k] = v
		}
		answersJSON, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("error al serializar respuestas: %w", err)
		}
		q.Answers = string(answersJSON)
	}

	if err := u.repo.Update(&q); err != nil {
		return err
	}

	u.cache.Flush()
	return nil
}

// Complete marca un cuestionario como completado. Es idempotente: completar
// un cuestionario ya completado no es un error y no refresca updated_at.
func (u *QuestionnaireUseCase) Complete(id uint) error {
	q, err := u.repo.GetByID(id)
	if err != nil {
		return err
	}

	if q.Status == entities.StatusCompleted {
		return nil
	}

	q.Status = entities.StatusCompleted
	if err := u.repo.Update(&q); err != nil {
		return err
	}

	u.cache.Flush()
	return nil
}

// Delete elimina físicamente un cuestionario (acción explícita de admin)
func (u *QuestionnaireUseCase) Delete(id uint) error {
	if err := u.repo.Delete(id); err != nil {
		return err
	}
	u.cache.Flush()
	return nil
}

// Get devuelve la vista de presentación de un cuestionario
func (u *QuestionnaireUseCase) Get(id uint) (QuestionnaireView, error) {
	q, err := u.repo.GetByID(id)
	if err != nil {
		return QuestionnaireView{}, err
	}
	return u.toView(q), nil
}

// List devuelve cuestionarios en forma de presentación, con filtros y
// paginación. Los resultados se cachean brevemente por combinación de
// parámetros; cualquier mutación vacía la caché.
func (u *QuestionnaireUseCase) List(page, limit int, tipo, status, sortBy, sortDirection string) ([]QuestionnaireView, int64, error) {
	cacheKey := fmt.Sprintf("list:%d:%d:%s:%s:%s:%s", page, limit, tipo, status, sortBy, sortDirection)
	if cached, found := u.cache.Get(cacheKey); found {
		if entry, ok := cached.(listCacheEntry); ok {
			return entry.views, entry.total, nil
		}
	}

	params := map[string]interface{}{
		"page":           page,
		"limit":          limit,
		"tipo":           tipo,
		"status":         status,
		"sort_by":        sortBy,
		"sort_direction": sortDirection,
	}

	qs, total, err := u.repo.List(params)
	if err != nil {
		return nil, 0, err
	}

	views := make([]QuestionnaireView, len(qs))
	for i, q := range qs {
		views[i] = u.toView(q)
	}

	u.cache.Set(cacheKey, listCacheEntry{views: views, total: total}, gocache.DefaultExpiration)
	return views, total, nil
}

// ListAll devuelve todos los cuestionarios en forma de presentación, sin
// paginar, para la exportación del panel
func (u *QuestionnaireUseCase) ListAll() ([]QuestionnaireView, error) {
	qs, err := u.repo.GetAll()
	if err != nil {
		return nil, err
	}
	views := make([]QuestionnaireView, len(qs))
	for i, q := range qs {
		views[i] = u.toView(q)
	}
	return views, nil
}

type listCacheEntry struct {
	views []QuestionnaireView
	total int64
}

// toView aplica de nuevo la normalización en lectura (cinturón y tirantes
// frente a filas antiguas que nunca pasaron por el normalizador) y empareja
// cada respuesta con el texto de su pregunta.
func (u *QuestionnaireUseCase) toView(q entities.Questionnaire) QuestionnaireView {
	loc := utils.GetMadridLocation()

	info, _ := answers.ParsePersonalInfo(q.PersonalInfo)

	raw, _ := answers.ParseAnswers(q.Answers)
	respuestas := make([]AnswerView, 0, len(raw))
	for key, value := range raw {
		idx, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		respuestas = append(respuestas, AnswerView{
			Indice:    idx,
			Pregunta:  questions.Label(q.Tipo, idx),
			Respuesta: answers.Normalize(value),
		})
	}
	sort.Slice(respuestas, func(i, j int) bool {
		return respuestas[i].Indice < respuestas[j].Indice
	})

	return QuestionnaireView{
		ID:           q.ID,
		Tipo:         q.Tipo,
		PersonalInfo: info,
		Respuestas:   respuestas,
		Status:       q.Status,
		CreatedAt:    q.CreatedAt.In(loc),
		UpdatedAt:    q.UpdatedAt.In(loc),
	}
}
