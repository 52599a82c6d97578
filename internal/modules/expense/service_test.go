package expense

import (
	"context"
	"testing"
	"time"

	"fenix/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	args := m.Called(ctx, e)
	if args.Error(0) == nil && e != nil {
		e.ID = 7
	}
	return args.Error(0)
}

func (m *MockExpenseRepository) List(ctx context.Context, from, to string) ([]domain.Expense, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func newTestService(repo *MockExpenseRepository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 18, 0, 0, 0, time.Local) }
	return svc
}

func TestService_Create_DefaultsDateToToday(t *testing.T) {
	repo := new(MockExpenseRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(repo)
	e, err := svc.Create(context.Background(), CreateExpenseRequest{
		Description: "Insumos",
		Amount:      4500,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), e.ID)
	assert.Equal(t, "2024-03-15", e.Date)
}

func TestService_Create_RejectsBadDate(t *testing.T) {
	repo := new(MockExpenseRepository)
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateExpenseRequest{
		Description: "Insumos",
		Amount:      4500,
		Date:        "15/03/2024",
	})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_RejectsNonPositiveAmount(t *testing.T) {
	svc := newTestService(new(MockExpenseRepository))

	_, err := svc.Create(context.Background(), CreateExpenseRequest{Description: "Insumos", Amount: 0})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_List_PassesBoundsThrough(t *testing.T) {
	repo := new(MockExpenseRepository)
	repo.On("List", mock.Anything, "2024-03-01", "2024-03-31").Return([]domain.Expense{
		{ID: 1, Description: "Insumos", Amount: 4500, Date: "2024-03-10"},
	}, nil)

	svc := newTestService(repo)
	out, err := svc.List(context.Background(), ListFilter{From: "2024-03-01", To: "2024-03-31"})

	assert.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestService_List_RejectsBadBound(t *testing.T) {
	repo := new(MockExpenseRepository)
	svc := newTestService(repo)

	_, err := svc.List(context.Background(), ListFilter{From: "ayer"})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}
