package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/mentesana/cuestionarios-api/internal/config"
	"github.com/mentesana/cuestionarios-api/internal/infrastructure/database"
	"github.com/mentesana/cuestionarios-api/internal/interfaces/http/middleware"
	"github.com/mentesana/cuestionarios-api/internal/interfaces/http/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading configuration: %v", err)
	}

	// Initialize database
	db, err := database.SetupDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    5 * 1024 * 1024, // 5MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app, cfg)

	// Setup routes
	routes.SetupRoutes(app, db, cfg)

	// Start server
	log.Printf("🚀 Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
