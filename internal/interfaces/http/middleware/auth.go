package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
)

// Claves de contexto con los datos del usuario autenticado
const (
	LocalUserID = "auth_user_id"
	LocalRole   = "auth_role"
)

// TokenTTL es la vigencia de los tokens emitidos
const TokenTTL = 24 * time.Hour

// Claims son los claims del token de sesión
type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SignToken emite un token HS256 para el usuario indicado
func SignToken(secret, userID, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseToken(secret, tok string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tok, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, errors.New("token no válido")
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	h := c.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")), true
}

// OptionalAuth adjunta los datos del usuario al contexto si la petición trae
// un token válido; si no, deja pasar la petición como anónima.
func OptionalAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tok, ok := bearerToken(c); ok {
			if claims, err := parseToken(secret, tok); err == nil {
				c.Locals(LocalUserID, claims.UserID)
				c.Locals(LocalRole, claims.Role)
			}
		}
		return c.Next()
	}
}

// RequireAdmin exige un token válido con rol admin
func RequireAdmin(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Autenticación requerida"})
		}

		claims, err := parseToken(secret, tok)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token no válido o expirado"})
		}

		if claims.Role != entities.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Acceso restringido a administradores"})
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// AuthenticatedUserID devuelve el id del usuario autenticado, si lo hay
func AuthenticatedUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalUserID).(string); ok {
		return id
	}
	return ""
}
