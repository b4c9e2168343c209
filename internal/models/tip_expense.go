package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipExpense is the tip_expenses row.
type TipExpense struct {
	ExpenseID   string          `db:"expense_id"`
	UserID      string          `db:"user_id"`
	ExpenseDate time.Time       `db:"expense_date"`
	Amount      decimal.Decimal `db:"amount"`
	Provider    string          `db:"provider"`
	Notes       string          `db:"notes"`
	AuditFields
}
