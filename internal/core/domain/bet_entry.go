package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BetEntry represents one wagering event logged by a user.
type BetEntry struct {
	EntryID       string          `json:"id"`            // Primary Key (e.g., UUID)
	UserID        string          `json:"userID"`        // Owner of the ledger
	Date          time.Time       `json:"date"`          // When the bet was placed or settled
	BetAmount     decimal.Decimal `json:"betAmount"`     // Non-negative stake
	WinningAmount decimal.Decimal `json:"winningAmount"` // Non-negative return, zero when lost
	Net           decimal.Decimal `json:"net"`           // Always WinningAmount - BetAmount
	Notes         string          `json:"notes"`
	Sport         string          `json:"sport"`
	League        string          `json:"league"`
	BetType       string          `json:"betType"`
	BankrollID    *string         `json:"bankrollId"` // Weak reference, filtering only
	AuditFields
}

// ComputeNet returns the signed delta of a bet from its stake and return.
func ComputeNet(betAmount, winningAmount decimal.Decimal) decimal.Decimal {
	return winningAmount.Sub(betAmount)
}

// RecomputeNet overwrites Net from BetAmount and WinningAmount.
// Stored Net values are never trusted.
func (e *BetEntry) RecomputeNet() {
	e.Net = ComputeNet(e.BetAmount, e.WinningAmount)
}

// IsWin reports whether the bet returned more than it staked.
func (e BetEntry) IsWin() bool { return e.Net.IsPositive() }

// IsLoss reports whether the bet returned less than it staked.
func (e BetEntry) IsLoss() bool { return e.Net.IsNegative() }

// IsPush reports whether the bet returned exactly its stake.
func (e BetEntry) IsPush() bool { return e.Net.IsZero() }

// DedupKey is the composite key used to detect duplicate imports: (date, notes, net).
func (e BetEntry) DedupKey() string {
	return e.Date.UTC().Truncate(time.Second).Format(time.RFC3339) + "|" + e.Notes + "|" + e.Net.String()
}
