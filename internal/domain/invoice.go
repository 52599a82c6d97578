package domain

import "time"

type Invoice struct {
	ID           int64     `json:"id"`
	Number       string    `json:"number"`
	Client       string    `json:"client" validate:"required"`
	ConsumerType string    `json:"consumer_type"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"created_at"`

	Items []InvoiceItem `json:"items,omitempty" gorm:"foreignKey:InvoiceID"`
}

type InvoiceItem struct {
	ID          int64   `json:"id"`
	InvoiceID   int64   `json:"invoice_id"`
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

func (i InvoiceItem) LineTotal() float64 {
	return i.Quantity * i.UnitPrice
}
