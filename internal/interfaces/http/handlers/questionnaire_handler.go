package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mentesana/cuestionarios-api/internal/application/usecases"
	"github.com/mentesana/cuestionarios-api/internal/domain/answers"
	"github.com/mentesana/cuestionarios-api/internal/interfaces/http/middleware"
)

// QuestionnaireHandler atiende las peticiones públicas de cuestionarios
type QuestionnaireHandler struct {
	useCase  *usecases.QuestionnaireUseCase
	validate *validator.Validate
}

// NewQuestionnaireHandler crea una nueva instancia de QuestionnaireHandler
func NewQuestionnaireHandler(useCase *usecases.QuestionnaireUseCase) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		useCase:  useCase,
		validate: validator.New(),
	}
}

type createQuestionnaireRequest struct {
	Tipo         string               `json:"tipo" validate:"required"`
	PersonalInfo answers.PersonalInfo `json:"personal_info"`
	Answers      map[string]any       `json:"answers"`
	Completed    bool                 `json:"completed"`
}

type updateQuestionnaireRequest struct {
	PersonalInfo *answers.PersonalInfo `json:"personal_info"`
	Answers      map[string]any        `json:"answers"`
}

// Create recibe un envío de cuestionario. Las respuestas mal formadas no se
// rechazan: se limpian con el normalizador antes de persistir.
func (h *QuestionnaireHandler) Create(c *fiber.Ctx) error {
	var req createQuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Cuerpo de la petición no válido"})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Falta el tipo de cuestionario"})
	}

	userID := middleware.AuthenticatedUserID(c)

	id, err := h.useCase.Create(req.Tipo, req.PersonalInfo, req.Answers, req.Completed, userID)
	if err != nil {
		if errors.Is(err, usecases.ErrInvalidType) {
			return c.Status(400).JSON(fiber.Map{"error": "Tipo de cuestionario no válido"})
		}
		// ErrNoSystemUser es un fallo de despliegue: no se expone el detalle
		return c.Status(500).JSON(fiber.Map{"error": "Error al guardar el cuestionario"})
	}

	return c.Status(201).JSON(fiber.Map{
		"id":     id,
		"status": "ok",
	})
}

// Update modifica respuestas o datos personales de un cuestionario pendiente
func (h *QuestionnaireHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de cuestionario no válido"})
	}

	var req updateQuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Cuerpo de la petición no válido"})
	}

	if err := h.useCase.Update(id, req.PersonalInfo, req.Answers); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Cuestionario no encontrado"})
		case errors.Is(err, usecases.ErrAlreadyCompleted):
			return c.Status(409).JSON(fiber.Map{"error": "El cuestionario ya está completado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error al actualizar el cuestionario"})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

// Complete marca un cuestionario como completado (idempotente)
func (h *QuestionnaireHandler) Complete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de cuestionario no válido"})
	}

	if err := h.useCase.Complete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Cuestionario no encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error al completar el cuestionario"})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("id no válido")
	}
	return uint(id), nil
}
