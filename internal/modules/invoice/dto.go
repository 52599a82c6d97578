package invoice

type CreateItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
}

type CreateInvoiceRequest struct {
	Client       string              `json:"client" binding:"required"`
	ConsumerType string              `json:"consumer_type"`
	Items        []CreateItemRequest `json:"items" binding:"required,min=1,dive"`
}
