package repository

import (
	"context"
	"time"

	"fenix/internal/domain"

	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

type expenseModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Description string    `gorm:"column:description"`
	Amount      float64   `gorm:"column:amount"`
	Date        string    `gorm:"column:date;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (expenseModel) TableName() string { return "expenses" }

func toDomainExpense(m expenseModel) *domain.Expense {
	return &domain.Expense{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	m := expenseModel{
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainExpense(m)
	return nil
}

// List returns expenses newest first, optionally bounded by inclusive
// from/to calendar dates. ISO dates compare correctly as strings, so
// the bounds are plain comparisons.
func (r *ExpenseRepository) List(ctx context.Context, from, to string) ([]domain.Expense, error) {
	q := r.db.WithContext(ctx).Model(&expenseModel{})
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}

	var models []expenseModel
	if tx := q.Order("date desc").Order("id desc").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Expense, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainExpense(m))
	}
	return out, nil
}

func (r *ExpenseRepository) SumAmounts(ctx context.Context) (float64, error) {
	var sum float64
	tx := r.db.WithContext(ctx).Model(&expenseModel{}).
		Select("COALESCE(SUM(amount), 0)").Scan(&sum)
	return sum, tx.Error
}
