package employee

import (
	"context"

	"fenix/internal/domain"
)

type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByDNI(ctx context.Context, dni string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
