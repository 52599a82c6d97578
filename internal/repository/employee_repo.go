package repository

import (
	"context"
	"time"

	"fenix/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) DB() *gorm.DB { return r.db }

type employeeModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	DNI          string    `gorm:"column:dni;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (employeeModel) TableName() string { return "employees" }

func toDomainEmployee(m employeeModel) *domain.Employee {
	return &domain.Employee{
		ID:           m.ID,
		Name:         m.Name,
		DNI:          m.DNI,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toEmployeeModel(e *domain.Employee) employeeModel {
	return employeeModel{
		ID:           e.ID,
		Name:         e.Name,
		DNI:          e.DNI,
		PasswordHash: e.PasswordHash,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	m := toEmployeeModel(e)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEmployee(m)
	return nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	var m employeeModel
	if tx := r.db.WithContext(ctx).First(&m, "id = ?", id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEmployee(m), nil
}

func (r *EmployeeRepository) GetByDNI(ctx context.Context, dni string) (*domain.Employee, error) {
	var m employeeModel
	if tx := r.db.WithContext(ctx).First(&m, "dni = ?", dni); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEmployee(m), nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var models []employeeModel
	if tx := r.db.WithContext(ctx).Order("name asc").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Employee, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainEmployee(m))
	}
	return out, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&employeeModel{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
