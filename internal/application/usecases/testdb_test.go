package usecases

import (
	"testing"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
	"github.com/mentesana/cuestionarios-api/internal/domain/repositories"
)

// setupTestDB abre una base SQLite en memoria con el esquema del dominio
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Una sola conexión para que la base en memoria sobreviva entre consultas
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Questionnaire{},
		&entities.ContactMessage{},
	))

	return db
}

// seedAdmin crea la cuenta admin del sistema
func seedAdmin(t *testing.T, db *gorm.DB) entities.User {
	t.Helper()

	admin := entities.User{
		UserID: uuid.NewString(),
		Nombre: "Admin",
		Email:  "admin@test.local",
		Role:   entities.RoleAdmin,
	}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func newQuestionnaireUseCase(db *gorm.DB) *QuestionnaireUseCase {
	return NewQuestionnaireUseCase(
		repositories.NewQuestionnaireRepository(db),
		repositories.NewUserRepository(db),
		gocache.New(30*time.Second, time.Minute),
	)
}

func newRepairUseCase(db *gorm.DB) *RepairUseCase {
	return NewRepairUseCase(
		repositories.NewQuestionnaireRepository(db),
		gocache.New(30*time.Second, time.Minute),
	)
}
