package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fenix/internal/domain"
	"fenix/internal/pkg/dates"
)

type Service struct {
	expenses ExpenseRepository

	now func() time.Time
}

func NewService(expenses ExpenseRepository) *Service {
	return &Service{expenses: expenses, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req CreateExpenseRequest) (*domain.Expense, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = dates.Format(s.now())
	} else if _, err := dates.ParseLocal(date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	e := &domain.Expense{
		Description: description,
		Amount:      req.Amount,
		Date:        date,
		CreatedAt:   s.now(),
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns expenses newest first, optionally bounded by inclusive
// calendar dates.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]domain.Expense, error) {
	for _, bound := range []string{filter.From, filter.To} {
		if bound == "" {
			continue
		}
		if _, err := dates.ParseLocal(bound); err != nil {
			return nil, fmt.Errorf("%w: filter dates must be YYYY-MM-DD", ErrValidation)
		}
	}
	return s.expenses.List(ctx, filter.From, filter.To)
}
