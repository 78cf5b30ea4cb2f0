package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"github.com/mentesana/cuestionarios-api/internal/application/usecases"
	"github.com/mentesana/cuestionarios-api/internal/config"
	"github.com/mentesana/cuestionarios-api/internal/domain/repositories"
	"github.com/mentesana/cuestionarios-api/internal/interfaces/http/handlers"
	"github.com/mentesana/cuestionarios-api/internal/interfaces/http/middleware"
)

// SetupRoutes construye repositorios, casos de uso y handlers, y registra
// todas las rutas de la aplicación
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(etag.New())

	app.Use(middleware.RequestLogger())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Caché breve para los listados del panel; cualquier mutación la vacía
	listCache := gocache.New(30*time.Second, time.Minute)

	// Repositories
	questionnaireRepo := repositories.NewQuestionnaireRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Use Cases
	questionnaireUseCase := usecases.NewQuestionnaireUseCase(questionnaireRepo, userRepo, listCache)
	contactUseCase := usecases.NewContactUseCase(contactRepo)
	repairUseCase := usecases.NewRepairUseCase(questionnaireRepo, listCache)
	authUseCase := usecases.NewAuthUseCase(userRepo)

	// Handlers
	questionnaireHandler := handlers.NewQuestionnaireHandler(questionnaireUseCase)
	contactHandler := handlers.NewContactHandler(contactUseCase)
	adminHandler := handlers.NewAdminHandler(questionnaireUseCase, contactUseCase, repairUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase, cfg.JWTSecret)

	// Routes
	groups := middleware.SetupRouteGroups(app, cfg)

	// Login del panel
	groups.Public.Post("/auth/login", authHandler.Login)

	// Envíos públicos, con límite de peticiones por IP
	rateLimited := middleware.SubmitRateLimiter()
	groups.Public.Post("/cuestionarios", rateLimited, questionnaireHandler.Create)
	groups.Public.Put("/cuestionarios/:id", rateLimited, questionnaireHandler.Update)
	groups.Public.Post("/cuestionarios/:id/complete", rateLimited, questionnaireHandler.Complete)
	groups.Public.Post("/contacto", rateLimited, contactHandler.Submit)

	// Panel de administración
	groups.Admin.Get("/cuestionarios", adminHandler.ListQuestionnaires)
	groups.Admin.Get("/cuestionarios/export", adminHandler.ExportQuestionnaires)
	groups.Admin.Get("/cuestionarios/:id", adminHandler.GetQuestionnaire)
	groups.Admin.Delete("/cuestionarios/:id", adminHandler.DeleteQuestionnaire)
	groups.Admin.Post("/repair", adminHandler.RunRepair)
	groups.Admin.Get("/contactos", adminHandler.ListContacts)
	groups.Admin.Put("/contactos/:id/status", adminHandler.UpdateContactStatus)
	groups.Admin.Delete("/contactos/:id", adminHandler.DeleteContact)
}
