package domain

import "time"

// Expense is a single outgoing payment. Date is a calendar date
// (YYYY-MM-DD) so range filters compare whole days.
type Expense struct {
	ID          int64     `json:"id"`
	Description string    `json:"description" validate:"required"`
	Amount      float64   `json:"amount" validate:"gt=0"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}
