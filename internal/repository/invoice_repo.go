package repository

import (
	"context"
	"time"

	"fenix/internal/domain"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

type invoiceModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Number       string    `gorm:"column:number"`
	Client       string    `gorm:"column:client"`
	ConsumerType string    `gorm:"column:consumer_type"`
	Total        float64   `gorm:"column:total"`
	CreatedAt    time.Time `gorm:"column:created_at"`

	Items []invoiceItemModel `gorm:"foreignKey:InvoiceID;references:ID"`
}

func (invoiceModel) TableName() string { return "invoices" }

type invoiceItemModel struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	InvoiceID   int64   `gorm:"column:invoice_id;index"`
	Description string  `gorm:"column:description"`
	Quantity    float64 `gorm:"column:quantity"`
	UnitPrice   float64 `gorm:"column:unit_price"`
}

func (invoiceItemModel) TableName() string { return "invoice_items" }

func toDomainInvoice(m invoiceModel) *domain.Invoice {
	inv := &domain.Invoice{
		ID:           m.ID,
		Number:       m.Number,
		Client:       m.Client,
		ConsumerType: m.ConsumerType,
		Total:        m.Total,
		CreatedAt:    m.CreatedAt,
	}
	for _, item := range m.Items {
		inv.Items = append(inv.Items, domain.InvoiceItem{
			ID:          item.ID,
			InvoiceID:   item.InvoiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return inv
}

// Create persists the invoice and its items atomically.
func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := invoiceModel{
			Number:       inv.Number,
			Client:       inv.Client,
			ConsumerType: inv.ConsumerType,
			Total:        inv.Total,
			CreatedAt:    inv.CreatedAt,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for i := range inv.Items {
			item := invoiceItemModel{
				InvoiceID:   m.ID,
				Description: inv.Items[i].Description,
				Quantity:    inv.Items[i].Quantity,
				UnitPrice:   inv.Items[i].UnitPrice,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			inv.Items[i].ID = item.ID
			inv.Items[i].InvoiceID = m.ID
		}
		inv.ID = m.ID
		inv.CreatedAt = m.CreatedAt
		return nil
	})
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	var m invoiceModel
	tx := r.db.WithContext(ctx).Preload("Items").First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainInvoice(m), nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	var models []invoiceModel
	tx := r.db.WithContext(ctx).Order("id desc").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Invoice, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainInvoice(m))
	}
	return out, nil
}

func (r *InvoiceRepository) SumTotals(ctx context.Context) (float64, error) {
	var sum float64
	tx := r.db.WithContext(ctx).Model(&invoiceModel{}).
		Select("COALESCE(SUM(total), 0)").Scan(&sum)
	return sum, tx.Error
}
