// internal/domain/user.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User представляет модель пользователя в системе.
// Соответствует таблице 'users' в базе данных.
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"column:id;primaryKey"`
	Name         string    `json:"name" db:"name" gorm:"column:name"`
	Email        string    `json:"email" db:"email" gorm:"column:email"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"column:password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
