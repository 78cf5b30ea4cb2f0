package config

import (
	"fmt"
	"os"
)

// Config contiene la configuración del proceso, resuelta una sola vez al
// arrancar y pasada explícitamente como valor inmutable. No hay estado de
// configuración mutable a nivel de módulo.
type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	AllowOrigins  string
	AdminNombre   string
	AdminEmail    string
	AdminPassword string
}

// Load lee la configuración desde las variables de entorno. DATABASE_URL es
// obligatoria; el resto tiene valores por defecto razonables para desarrollo.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "cuestionarios-dev-secret"),
		AllowOrigins:  getEnv("ALLOW_ORIGINS", "http://localhost:3000"),
		AdminNombre:   getEnv("ADMIN_NOMBRE", "Administrador"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL no está definida en el entorno")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
