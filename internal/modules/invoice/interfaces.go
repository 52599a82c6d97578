package invoice

import (
	"context"

	"fenix/internal/domain"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	List(ctx context.Context) ([]domain.Invoice, error)
}
