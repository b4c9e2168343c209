package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Baseline is the configured starting stake of a ledger. The UI stores it with a
// negative-magnitude convention (a stake of 600 is kept as -600); the ledger only
// ever uses its magnitude as the starting balance. A nil Amount means "not configured".
type Baseline struct {
	UserID        string           `json:"userID"`
	Amount        *decimal.Decimal `json:"amount"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// IsSet reports whether a baseline has been configured.
func (b Baseline) IsSet() bool { return b.Amount != nil }

// StartingBalance returns the magnitude of the baseline, or zero when unset.
func (b Baseline) StartingBalance() decimal.Decimal {
	if b.Amount == nil {
		return decimal.Zero
	}
	return b.Amount.Abs()
}
