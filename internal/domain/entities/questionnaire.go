package entities

import (
	"time"
)

// Tipos de cuestionario conocidos
const (
	TipoPareja       = "pareja"
	TipoPersonalidad = "personalidad"
)

// Estados del cuestionario
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Questionnaire representa un cuestionario enviado en el sistema.
// Los campos personal_info y answers se guardan como JSON serializado
// en columnas de texto (compatibles con jsonb o text plano).
type Questionnaire struct {
	ID           uint      `json:"id" gorm:"primaryKey;column:id"`
	Tipo         string    `json:"tipo" gorm:"column:tipo;type:varchar(20);not null"`
	UserID       string    `json:"user_id" gorm:"column:user_id;type:uuid;not null"`
	PersonalInfo string    `json:"personal_info" gorm:"column:personal_info;type:text"`
	Answers      string    `json:"answers" gorm:"column:answers;type:text"`
	Status       string    `json:"status" gorm:"column:status;type:varchar(20);default:pending"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relaciones
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:UserID"`
}

// IsValidTipo indica si el tipo recibido es uno de los tipos conocidos
func IsValidTipo(tipo string) bool {
	return tipo == TipoPareja || tipo == TipoPersonalidad
}
