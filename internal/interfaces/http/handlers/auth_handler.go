package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mentesana/cuestionarios-api/internal/application/usecases"
	"github.com/mentesana/cuestionarios-api/internal/interfaces/http/middleware"
)

// AuthHandler atiende el login del panel de administración
type AuthHandler struct {
	useCase   *usecases.AuthUseCase
	jwtSecret string
	validate  *validator.Validate
}

// NewAuthHandler crea una nueva instancia de AuthHandler
func NewAuthHandler(useCase *usecases.AuthUseCase, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		useCase:   useCase,
		jwtSecret: jwtSecret,
		validate:  validator.New(),
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login valida credenciales y emite un token de sesión
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Cuerpo de la petición no válido"})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Email y contraseña son obligatorios"})
	}

	user, err := h.useCase.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecases.ErrInvalidCredentials) {
			return c.Status(401).JSON(fiber.Map{"error": "Credenciales no válidas"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error al iniciar sesión"})
	}

	token, err := middleware.SignToken(h.jwtSecret, user.UserID, user.Role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al emitir el token"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"user_id": user.UserID,
			"nombre":  user.Nombre,
			"email":   user.Email,
			"role":    user.Role,
		},
	})
}
