package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fenix/internal/domain"
	"fenix/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	employees EmployeeRepository
}

func NewService(employees EmployeeRepository) *Service {
	return &Service{employees: employees}
}

// Create checks for a DNI duplicate before writing so the caller gets
// a specific reason instead of a constraint error. The unique index
// still backs this up against races.
func (s *Service) Create(ctx context.Context, req CreateEmployeeRequest) (*domain.Employee, error) {
	name := strings.TrimSpace(req.Name)
	dni := strings.TrimSpace(req.DNI)
	password := strings.TrimSpace(req.Password)
	if name == "" || dni == "" || password == "" {
		return nil, fmt.Errorf("%w: name, DNI and password are required", ErrValidation)
	}

	if _, err := s.employees.GetByDNI(ctx, dni); err == nil {
		return nil, ErrDuplicateDNI
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	e := &domain.Employee{
		Name:         name,
		DNI:          dni,
		PasswordHash: string(hash),
	}
	if err := s.employees.Create(ctx, e); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateDNI
		}
		return nil, err
	}

	e.PasswordHash = ""
	return e, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		employees[i].PasswordHash = ""
	}
	return employees, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
