package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger mide el tiempo de respuesta de las rutas de administración
// y mantenimiento
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		// Rutas cuya latencia interesa vigilar
		monitoredRoutes := []string{
			"/admin",
			"/cuestionarios",
		}

		shouldMonitor := false
		for _, route := range monitoredRoutes {
			if strings.HasPrefix(path, route) {
				shouldMonitor = true
				break
			}
		}

		if !shouldMonitor {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		log.Printf(
			"[REQUEST] %s %s - %d - Duration: %v",
			c.Method(),
			path,
			c.Response().StatusCode(),
			duration,
		)

		return err
	}
}
