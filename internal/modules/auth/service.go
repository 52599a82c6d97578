package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"fenix/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	employees     EmployeeRepository
	jwt           jwtService
	adminDNI      string
	adminPassword string
}

func NewService(employees EmployeeRepository, jwt jwtService, adminDNI, adminPassword string) *Service {
	return &Service{
		employees:     employees,
		jwt:           jwt,
		adminDNI:      adminDNI,
		adminPassword: adminPassword,
	}
}

type LoginResult struct {
	Token    string
	Role     domain.Role
	Employee *domain.Employee
}

// Login authenticates either the fixed admin identity or an employee
// row by DNI. Wrong DNI and wrong password collapse into the same
// error.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	dni := strings.TrimSpace(req.DNI)

	if req.Admin {
		if !constantTimeEqual(dni, s.adminDNI) || !constantTimeEqual(req.Password, s.adminPassword) {
			return nil, ErrInvalidCredentials
		}
		token, err := s.jwt.GenerateToken("", string(domain.RoleAdmin))
		if err != nil {
			return nil, err
		}
		return &LoginResult{Token: token, Role: domain.RoleAdmin}, nil
	}

	employee, err := s.employees.GetByDNI(ctx, dni)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(employee.ID, string(domain.RoleEmployee))
	if err != nil {
		return nil, err
	}

	employee.PasswordHash = ""
	return &LoginResult{Token: token, Role: domain.RoleEmployee, Employee: employee}, nil
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
