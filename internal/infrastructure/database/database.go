package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mentesana/cuestionarios-api/internal/config"
	"github.com/mentesana/cuestionarios-api/internal/infrastructure/database/migrations"
)

// SetupDatabase abre la conexión a Postgres, configura el pool y aplica las
// migraciones y la cuenta admin inicial
func SetupDatabase(cfg config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		// Sin transacción implícita por operación
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		// Logger solo para errores
		Logger: logger.Default.LogMode(logger.Error),
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Configuración del pool de conexiones
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := migrations.AddIndexes(db); err != nil {
		return nil, fmt.Errorf("failed to add indexes: %w", err)
	}

	// La cuenta admin del sistema es propietaria de los envíos anónimos
	if err := migrations.SeedSystemUser(db, cfg.AdminNombre, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return nil, fmt.Errorf("failed to seed system user: %w", err)
	}

	return db, nil
}
