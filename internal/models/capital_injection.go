package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CapitalInjection is the capital_injections row, a stored projection.
type CapitalInjection struct {
	InjectionID    string          `db:"injection_id"`
	UserID         string          `db:"user_id"`
	InjectionDate  time.Time       `db:"injection_date"`
	Amount         decimal.Decimal `db:"amount"`
	Notes          string          `db:"notes"`
	TriggerEventID string          `db:"trigger_event_id"`
	Source         string          `db:"source"`
	CreatedAt      time.Time       `db:"created_at"`
}
