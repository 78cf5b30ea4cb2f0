package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/mentesana/cuestionarios-api/internal/config"
)

// SetupMiddlewares registra los middlewares globales de la aplicación
func SetupMiddlewares(app *fiber.App, cfg config.Config) {
	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutos
	}))
}

// SubmitRateLimiter limita los envíos de los formularios públicos
// (cuestionarios y contacto) por IP
func SubmitRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Demasiadas peticiones, inténtalo de nuevo en un minuto",
			})
		},
	})
}

// RouteGroups define los grupos de rutas de la API
type RouteGroups struct {
	Public fiber.Router
	Admin  fiber.Router
}

// SetupRouteGroups configura los grupos de rutas con sus middlewares
func SetupRouteGroups(app *fiber.App, cfg config.Config) RouteGroups {
	// Grupo público: envíos de cuestionarios y contacto, con auth opcional
	// para atribuir envíos a usuarios con sesión
	public := app.Group("/")
	public.Use(OptionalAuth(cfg.JWTSecret))

	// Grupo de administración, solo para admins autenticados
	admin := app.Group("/admin")
	admin.Use(RequireAdmin(cfg.JWTSecret))

	return RouteGroups{
		Public: public,
		Admin:  admin,
	}
}
