package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mentesana/cuestionarios-api/internal/application/usecases"
	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
	"github.com/mentesana/cuestionarios-api/internal/domain/repositories"
)

func setupContactApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entities.ContactMessage{}))

	handler := NewContactHandler(usecases.NewContactUseCase(repositories.NewContactRepository(db)))

	app := fiber.New()
	app.Post("/contacto", handler.Submit)
	return app, db
}

func TestContactSubmit(t *testing.T) {
	t.Run("mensaje válido se almacena como unread", func(t *testing.T) {
		app, db := setupContactApp(t)

		body, _ := json.Marshal(map[string]string{
			"nombre":  "Ana",
			"email":   "ana@x.com",
			"asunto":  "Consulta",
			"mensaje": "Hola, quería preguntar por las citas.",
		})
		req := httptest.NewRequest("POST", "/contacto", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		var m entities.ContactMessage
		require.NoError(t, db.First(&m).Error)
		assert.Equal(t, "Ana", m.Nombre)
		assert.Equal(t, entities.ContactUnread, m.Status)
	})

	t.Run("faltan campos obligatorios", func(t *testing.T) {
		app, _ := setupContactApp(t)

		body, _ := json.Marshal(map[string]string{"nombre": "Ana"})
		req := httptest.NewRequest("POST", "/contacto", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("email mal formado", func(t *testing.T) {
		app, _ := setupContactApp(t)

		body, _ := json.Marshal(map[string]string{
			"nombre":  "Ana",
			"email":   "no-es-un-email",
			"mensaje": "Hola",
		})
		req := httptest.NewRequest("POST", "/contacto", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}
