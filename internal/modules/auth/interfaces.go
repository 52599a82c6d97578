package auth

import (
	"context"

	"fenix/internal/domain"
)

type EmployeeRepository interface {
	GetByDNI(ctx context.Context, dni string) (*domain.Employee, error)
}

type jwtService interface {
	GenerateToken(employeeID, role string) (string, error)
}
