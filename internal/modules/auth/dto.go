package auth

import "fenix/internal/domain"

type LoginRequest struct {
	DNI      string `json:"dni" binding:"required"`
	Password string `json:"password" binding:"required"`
	Admin    bool   `json:"admin"`
}

type LoginResponse struct {
	Token    string           `json:"token"`
	Role     string           `json:"role"`
	Employee *domain.Employee `json:"employee,omitempty"`
}
