package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
)

const testSecret = "secreto-de-pruebas"

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin/ping", RequireAdmin(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": AuthenticatedUserID(c)})
	})
	app.Get("/publico", OptionalAuth(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": AuthenticatedUserID(c)})
	})
	return app
}

func TestRequireAdmin(t *testing.T) {
	t.Run("sin token devuelve 401", func(t *testing.T) {
		app := protectedApp()
		resp, err := app.Test(httptest.NewRequest("GET", "/admin/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("token firmado con otro secreto devuelve 401", func(t *testing.T) {
		app := protectedApp()
		tok, err := SignToken("otro-secreto", "u1", entities.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("token de usuario sin rol admin devuelve 403", func(t *testing.T) {
		app := protectedApp()
		tok, err := SignToken(testSecret, "u1", entities.RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
	})

	t.Run("token admin válido pasa", func(t *testing.T) {
		app := protectedApp()
		tok, err := SignToken(testSecret, "u1", entities.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}

func TestOptionalAuth(t *testing.T) {
	t.Run("sin token la petición pasa como anónima", func(t *testing.T) {
		app := protectedApp()
		resp, err := app.Test(httptest.NewRequest("GET", "/publico", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("token no válido también pasa como anónima", func(t *testing.T) {
		app := protectedApp()
		req := httptest.NewRequest("GET", "/publico", nil)
		req.Header.Set("Authorization", "Bearer basura")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}
