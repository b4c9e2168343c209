package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerSettings is the ledger_settings row, one per user.
type LedgerSettings struct {
	UserID        string           `db:"user_id"`
	Baseline      *decimal.Decimal `db:"baseline"` // Nullable: not configured
	LastUpdatedAt time.Time        `db:"last_updated_at"`
}
