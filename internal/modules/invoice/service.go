package invoice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"fenix/internal/domain"

	"gorm.io/gorm"
)

// Company identity printed on every document.
const (
	CompanyName    = "Rectificaciones Fenix"
	CompanyCUIT    = "20-99999999-9"
	CompanyAddress = "Banda de Rio Sali"
	CompanyIVA     = "Responsable Inscripto"
)

// Type B documents for final consumers carry no discriminated VAT.
const consumerTypeFinal = "final"

type Service struct {
	invoices    InvoiceRepository
	pointOfSale string

	newNumber func() string
	now       func() time.Time
}

func NewService(invoices InvoiceRepository, pointOfSale string) *Service {
	s := &Service{
		invoices:    invoices,
		pointOfSale: pointOfSale,
		now:         time.Now,
	}
	s.newNumber = s.randomNumber
	return s
}

// randomNumber builds a receipt number <pointOfSale>-<8 digits>.
// Uniqueness is not fiscal-grade here; numbers only identify the
// printable document.
func (s *Service) randomNumber() string {
	return fmt.Sprintf("%s-%08d", s.pointOfSale, rand.IntN(100000000))
}

func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (*domain.Invoice, error) {
	client := strings.TrimSpace(req.Client)
	if client == "" {
		return nil, fmt.Errorf("%w: client is required", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrValidation)
	}

	items := make([]domain.InvoiceItem, 0, len(req.Items))
	total := 0.0
	for _, it := range req.Items {
		desc := strings.TrimSpace(it.Description)
		if desc == "" {
			return nil, fmt.Errorf("%w: item description is required", ErrValidation)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", ErrValidation)
		}
		if it.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: item unit price cannot be negative", ErrValidation)
		}
		item := domain.InvoiceItem{
			Description: desc,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
		total += item.LineTotal()
		items = append(items, item)
	}

	consumerType := strings.TrimSpace(req.ConsumerType)
	if consumerType == "" {
		consumerType = consumerTypeFinal
	}

	inv := &domain.Invoice{
		Number:       s.newNumber(),
		Client:       client,
		ConsumerType: consumerType,
		Total:        math.Round(total*100) / 100,
		CreatedAt:    s.now(),
		Items:        items,
	}
	if err := s.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoices.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}
