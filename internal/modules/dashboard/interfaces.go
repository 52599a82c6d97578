package dashboard

import (
	"context"

	"fenix/internal/repository"
)

type IncomeSource interface {
	SumTotals(ctx context.Context) (float64, error)
}

type ExpenseSource interface {
	SumAmounts(ctx context.Context) (float64, error)
}

type WorkOrderStats interface {
	CountAll(ctx context.Context) (int64, error)
	CountByEmployee(ctx context.Context) ([]repository.EmployeeWorkOrderCount, error)
	CountByStatus(ctx context.Context) ([]repository.StatusCount, error)
}
