package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InjectionSource identifies which kind of event triggered a capital injection.
type InjectionSource string

const (
	InjectionFromBet     InjectionSource = "BET"
	InjectionFromExpense InjectionSource = "TIP_EXPENSE"
)

// AutoInjectionNote marks injections generated by the ledger rather than typed by a user.
const AutoInjectionNote = "Auto capital injection"

// CapitalInjection is a derived event: cash the user implicitly added to keep the
// balance from dropping below the baseline. It is a projection, never source data,
// and is regenerated wholesale whenever baseline, entries or expenses change.
type CapitalInjection struct {
	InjectionID    string          `json:"id"`
	UserID         string          `json:"userID,omitempty"`
	Date           time.Time       `json:"date"`   // Copied from the triggering event
	Amount         decimal.Decimal `json:"amount"` // Always positive
	Notes          string          `json:"notes"`
	TriggerEventID string          `json:"triggerEventId"`
	Source         InjectionSource `json:"source"`
}

// TotalInjected sums injection amounts.
func TotalInjected(injections []CapitalInjection) decimal.Decimal {
	total := decimal.Zero
	for _, inj := range injections {
		total = total.Add(inj.Amount)
	}
	return total
}
