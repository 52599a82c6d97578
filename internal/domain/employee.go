package domain

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

type Employee struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" validate:"required"`
	DNI          string    `json:"dni" validate:"required" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
