package workorder

import (
	"context"
	"time"

	"fenix/internal/domain"
)

// WorkOrderRepository defines the persistence operations of the intake
// and fulfillment workflow.
type WorkOrderRepository interface {
	Create(ctx context.Context, w *domain.WorkOrder, pointOfSale string) error
	NextCodeFromSequence(ctx context.Context, pointOfSale string) (string, error)
	LastCodeWithPrefix(ctx context.Context, prefix string) (string, error)
	GetByCode(ctx context.Context, code string) (*domain.WorkOrder, error)
	List(ctx context.Context) ([]domain.WorkOrder, error)
	ListOpenByEstimated(ctx context.Context) ([]domain.WorkOrder, error)
	UpdateStatus(ctx context.Context, code string, status domain.WorkOrderStatus, deliveredAt *time.Time) error
	MarkNotified(ctx context.Context, code string) error
}

// AllocatorRepository is the read-only slice of the repository the code
// allocator needs.
type AllocatorRepository interface {
	NextCodeFromSequence(ctx context.Context, pointOfSale string) (string, error)
	LastCodeWithPrefix(ctx context.Context, prefix string) (string, error)
}
