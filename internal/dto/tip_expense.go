package dto

import (
	"time"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTipExpenseRequest defines the data needed to record a tip expense.
type CreateTipExpenseRequest struct {
	Date     time.Time        `json:"date" binding:"required"`
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	Provider string           `json:"provider" binding:"max=200"`
	Notes    string           `json:"notes" binding:"max=1000"`
}

// UpdateTipExpenseRequest replaces every editable field of a tip expense.
type UpdateTipExpenseRequest CreateTipExpenseRequest

// TipExpenseResponse defines the data returned for a tip expense.
type TipExpenseResponse struct {
	ExpenseID     string          `json:"id"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Provider      string          `json:"provider"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToTipExpenseResponse converts a domain.TipExpense to TipExpenseResponse DTO.
func ToTipExpenseResponse(x *domain.TipExpense) TipExpenseResponse {
	return TipExpenseResponse{
		ExpenseID:     x.ExpenseID,
		Date:          x.Date,
		Amount:        x.Amount,
		Provider:      x.Provider,
		Notes:         x.Notes,
		CreatedAt:     x.CreatedAt,
		LastUpdatedAt: x.LastUpdatedAt,
	}
}

// ToTipExpenseResponses converts a slice of domain.TipExpense to []TipExpenseResponse.
func ToTipExpenseResponses(expenses []domain.TipExpense) []TipExpenseResponse {
	res := make([]TipExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToTipExpenseResponse(&expenses[i])
	}
	return res
}
