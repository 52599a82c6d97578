package dashboard

import (
	"context"

	"fenix/internal/domain"
)

type Service struct {
	income     IncomeSource
	expenses   ExpenseSource
	workOrders WorkOrderStats
}

func NewService(income IncomeSource, expenses ExpenseSource, workOrders WorkOrderStats) *Service {
	return &Service{income: income, expenses: expenses, workOrders: workOrders}
}

// Summary aggregates the admin landing-page figures in one call.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	income, err := s.income.SumTotals(ctx)
	if err != nil {
		return nil, err
	}
	spent, err := s.expenses.SumAmounts(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.workOrders.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	byEmployee, err := s.workOrders.CountByEmployee(ctx)
	if err != nil {
		return nil, err
	}
	perEmployee := make([]EmployeeCount, 0, len(byEmployee))
	for _, row := range byEmployee {
		if row.Count == 0 {
			continue
		}
		name := row.EmployeeName
		if name == "" {
			name = "Sin asignar"
		}
		perEmployee = append(perEmployee, EmployeeCount{
			EmployeeID:   row.EmployeeID,
			EmployeeName: name,
			Count:        row.Count,
		})
	}

	byStatus, err := s.workOrders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	statuses := make(map[string]int64, len(byStatus))
	for _, row := range byStatus {
		status := row.Status
		if status == "" || !domain.ValidWorkOrderStatus(domain.WorkOrderStatus(status)) {
			status = string(domain.WorkOrderUnset)
		}
		statuses[status] += row.Count
	}

	return &Summary{
		Income:         income,
		Expenses:       spent,
		Balance:        income - spent,
		WorkOrderCount: total,
		ByEmployee:     perEmployee,
		ByStatus:       statuses,
	}, nil
}
