package domain

import "github.com/shopspring/decimal"

// Bankroll is an independent ledger partition. Entries reference it weakly through
// BetEntry.BankrollID; the ledger algorithms treat it as a filter key only.
type Bankroll struct {
	BankrollID  string          `json:"id"`
	UserID      string          `json:"userID"`
	Name        string          `json:"name"`
	Color       string          `json:"color"`
	Description string          `json:"description"`
	Baseline    decimal.Decimal `json:"baseline"`
	IsDefault   bool            `json:"isDefault"`
	AuditFields
}
