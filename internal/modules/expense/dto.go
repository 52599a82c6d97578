package expense

type CreateExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date"`
}

// ListFilter carries optional inclusive day bounds (YYYY-MM-DD).
type ListFilter struct {
	From string `form:"from"`
	To   string `form:"to"`
}
