package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BetEntry is the bet_entries row.
type BetEntry struct {
	EntryID       string          `db:"entry_id"`
	UserID        string          `db:"user_id"`
	BetDate       time.Time       `db:"bet_date"`
	BetAmount     decimal.Decimal `db:"bet_amount"`
	WinningAmount decimal.Decimal `db:"winning_amount"`
	Net           decimal.Decimal `db:"net"`
	Notes         string          `db:"notes"`
	Sport         string          `db:"sport"`
	League        string          `db:"league"`
	BetType       string          `db:"bet_type"`
	BankrollID    *string         `db:"bankroll_id"` // Nullable
	AuditFields
}
