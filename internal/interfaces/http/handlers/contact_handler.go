package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mentesana/cuestionarios-api/internal/application/usecases"
)

// ContactHandler atiende el formulario público de contacto
type ContactHandler struct {
	useCase  *usecases.ContactUseCase
	validate *validator.Validate
}

// NewContactHandler crea una nueva instancia de ContactHandler
func NewContactHandler(useCase *usecases.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		useCase:  useCase,
		validate: validator.New(),
	}
}

type contactRequest struct {
	Nombre  string `json:"nombre" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Asunto  string `json:"asunto" validate:"max=255"`
	Mensaje string `json:"mensaje" validate:"required"`
}

// Submit almacena un mensaje de contacto
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Cuerpo de la petición no válido"})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Nombre, email y mensaje son obligatorios"})
	}

	id, err := h.useCase.Submit(req.Nombre, req.Email, req.Asunto, req.Mensaje)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al enviar el mensaje"})
	}

	return c.Status(201).JSON(fiber.Map{
		"id":     id,
		"status": "ok",
	})
}
