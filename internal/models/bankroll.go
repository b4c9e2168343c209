package models

import "github.com/shopspring/decimal"

// Bankroll is the bankrolls row.
type Bankroll struct {
	BankrollID  string          `db:"bankroll_id"`
	UserID      string          `db:"user_id"`
	Name        string          `db:"name"`
	Color       string          `db:"color"`
	Description string          `db:"description"`
	Baseline    decimal.Decimal `db:"baseline"`
	IsDefault   bool            `db:"is_default"`
	AuditFields
}
