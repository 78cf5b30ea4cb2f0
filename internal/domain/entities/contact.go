package entities

import (
	"time"
)

// Estados de un mensaje de contacto
const (
	ContactUnread  = "unread"
	ContactRead    = "read"
	ContactReplied = "replied"
)

// ContactMessage representa un mensaje enviado desde el formulario público de contacto.
// No tiene relación con los cuestionarios.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey;column:id"`
	Nombre    string    `json:"nombre" gorm:"column:nombre;type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"column:email;type:varchar(255);not null"`
	Asunto    string    `json:"asunto" gorm:"column:asunto;type:varchar(255)"`
	Mensaje   string    `json:"mensaje" gorm:"column:mensaje;type:text;not null"`
	Status    string    `json:"status" gorm:"column:status;type:varchar(20);default:unread"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// IsValidContactStatus indica si el estado recibido es válido para un mensaje
func IsValidContactStatus(status string) bool {
	return status == ContactUnread || status == ContactRead || status == ContactReplied
}
