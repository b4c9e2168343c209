package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipExpense represents a cash outflow not tied to a specific bet (e.g. paying for picks).
type TipExpense struct {
	ExpenseID string          `json:"id"`
	UserID    string          `json:"userID"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"` // Non-negative
	Provider  string          `json:"provider"`
	Notes     string          `json:"notes"`
	AuditFields
}
