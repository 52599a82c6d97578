package dashboard

import (
	"context"
	"testing"

	"fenix/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockIncomeSource struct {
	mock.Mock
}

func (m *MockIncomeSource) SumTotals(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type MockExpenseSource struct {
	mock.Mock
}

func (m *MockExpenseSource) SumAmounts(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type MockWorkOrderStats struct {
	mock.Mock
}

func (m *MockWorkOrderStats) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkOrderStats) CountByEmployee(ctx context.Context) ([]repository.EmployeeWorkOrderCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EmployeeWorkOrderCount), args.Error(1)
}

func (m *MockWorkOrderStats) CountByStatus(ctx context.Context) ([]repository.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StatusCount), args.Error(1)
}

func TestService_Summary(t *testing.T) {
	income := new(MockIncomeSource)
	income.On("SumTotals", mock.Anything).Return(185000.0, nil)

	expenses := new(MockExpenseSource)
	expenses.On("SumAmounts", mock.Anything).Return(60000.0, nil)

	stats := new(MockWorkOrderStats)
	stats.On("CountAll", mock.Anything).Return(int64(12), nil)
	stats.On("CountByEmployee", mock.Anything).Return([]repository.EmployeeWorkOrderCount{
		{EmployeeID: "emp-1", EmployeeName: "Juan", Count: 8},
		{EmployeeID: "", EmployeeName: "", Count: 4},
		{EmployeeID: "emp-2", EmployeeName: "Maria", Count: 0},
	}, nil)
	stats.On("CountByStatus", mock.Anything).Return([]repository.StatusCount{
		{Status: "pending", Count: 7},
		{Status: "completed", Count: 3},
		{Status: "", Count: 2},
	}, nil)

	svc := NewService(income, expenses, stats)
	summary, err := svc.Summary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 185000.0, summary.Income)
	assert.Equal(t, 60000.0, summary.Expenses)
	assert.Equal(t, 125000.0, summary.Balance)
	assert.Equal(t, int64(12), summary.WorkOrderCount)

	assert.Len(t, summary.ByEmployee, 2, "zero-count employees are dropped")
	assert.Equal(t, "Juan", summary.ByEmployee[0].EmployeeName)
	assert.Equal(t, "Sin asignar", summary.ByEmployee[1].EmployeeName)

	assert.Equal(t, int64(7), summary.ByStatus["pending"])
	assert.Equal(t, int64(3), summary.ByStatus["completed"])
	assert.Equal(t, int64(2), summary.ByStatus["unset"], "blank statuses collapse into the unset bucket")
}

func TestService_Summary_PropagatesErrors(t *testing.T) {
	income := new(MockIncomeSource)
	income.On("SumTotals", mock.Anything).Return(0.0, assert.AnError)

	svc := NewService(income, new(MockExpenseSource), new(MockWorkOrderStats))
	_, err := svc.Summary(context.Background())

	assert.Error(t, err)
}
