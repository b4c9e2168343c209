package dto

import (
	"time"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankrollRequest defines the data needed to create a bankroll.
type CreateBankrollRequest struct {
	Name        string           `json:"name" binding:"required,max=100"`
	Color       string           `json:"color" binding:"omitempty,hexcolor"`
	Description string           `json:"description" binding:"max=500"`
	Baseline    *decimal.Decimal `json:"baseline" binding:"required"`
	IsDefault   bool             `json:"isDefault"`
}

// BankrollResponse defines the data returned for a bankroll.
type BankrollResponse struct {
	BankrollID  string          `json:"id"`
	Name        string          `json:"name"`
	Color       string          `json:"color,omitempty"`
	Description string          `json:"description,omitempty"`
	Baseline    decimal.Decimal `json:"baseline"`
	IsDefault   bool            `json:"isDefault"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToBankrollResponse converts a domain.Bankroll to BankrollResponse DTO.
func ToBankrollResponse(b *domain.Bankroll) BankrollResponse {
	return BankrollResponse{
		BankrollID:  b.BankrollID,
		Name:        b.Name,
		Color:       b.Color,
		Description: b.Description,
		Baseline:    b.Baseline,
		IsDefault:   b.IsDefault,
		CreatedAt:   b.CreatedAt,
	}
}

// ToBankrollResponses converts a slice of domain.Bankroll to []BankrollResponse.
func ToBankrollResponses(bankrolls []domain.Bankroll) []BankrollResponse {
	res := make([]BankrollResponse, len(bankrolls))
	for i := range bankrolls {
		res[i] = ToBankrollResponse(&bankrolls[i])
	}
	return res
}
