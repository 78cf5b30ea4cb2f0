package entities

import (
	"time"
)

// Roles de usuario
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa una cuenta del sistema. Los envíos anónimos de cuestionarios
// se atribuyen a la cuenta admin del sistema para mantener user_id no nulo.
type User struct {
	UserID       string    `json:"user_id" gorm:"primaryKey;column:user_id;type:uuid"`
	Nombre       string    `json:"nombre" gorm:"column:nombre;type:varchar(255)"`
	Email        string    `json:"email" gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;type:text"`
	Role         string    `json:"role" gorm:"column:role;type:varchar(20);default:user"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}
