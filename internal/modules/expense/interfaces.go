package expense

import (
	"context"

	"fenix/internal/domain"
)

type ExpenseRepository interface {
	Create(ctx context.Context, e *domain.Expense) error
	List(ctx context.Context, from, to string) ([]domain.Expense, error)
}
