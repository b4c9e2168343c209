package dto

import (
	"time"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBaselineRequest sets or clears the ledger baseline. A null amount clears it.
type SetBaselineRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// BaselineResponse defines the data returned for the baseline.
type BaselineResponse struct {
	Amount          *decimal.Decimal `json:"amount"`
	StartingBalance decimal.Decimal  `json:"startingBalance"`
	Configured      bool             `json:"configured"`
	LastUpdatedAt   *time.Time       `json:"lastUpdatedAt,omitempty"`
}

// LedgerQueryParams defines the query parameters of a ledger view.
type LedgerQueryParams struct {
	Window      string `form:"window" binding:"omitempty,oneof=all ytd last-n-days custom"`
	Days        int    `form:"days" binding:"omitempty,min=1,max=3650"`
	From        string `form:"from"` // YYYY-MM-DD, local day
	To          string `form:"to"`   // YYYY-MM-DD, local day, inclusive
	Granularity string `form:"granularity" binding:"omitempty,oneof=per-bet per-day"`
	BankrollID  string `form:"bankrollId" binding:"omitempty,uuid"`
}

// StreaksQueryParams defines the query parameters of a streak report.
type StreaksQueryParams struct {
	BankrollID string `form:"bankrollId" binding:"omitempty,uuid"`
}

// CapitalInjectionResponse defines the data returned for a derived injection.
type CapitalInjectionResponse struct {
	InjectionID    string          `json:"id"`
	Date           time.Time       `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Notes          string          `json:"notes"`
	TriggerEventID string          `json:"triggerEventId"`
	Source         string          `json:"source"`
}

// ListCapitalInjectionsResponse lists injections together with their total.
type ListCapitalInjectionsResponse struct {
	Injections []CapitalInjectionResponse `json:"injections"`
	Total      decimal.Decimal            `json:"total"`
}

// ToBaselineResponse converts a domain.Baseline to BaselineResponse DTO.
func ToBaselineResponse(b *domain.Baseline) BaselineResponse {
	res := BaselineResponse{
		Amount:          b.Amount,
		StartingBalance: b.StartingBalance(),
		Configured:      b.IsSet(),
	}
	if !b.LastUpdatedAt.IsZero() {
		ts := b.LastUpdatedAt
		res.LastUpdatedAt = &ts
	}
	return res
}

// ToListCapitalInjectionsResponse converts domain injections to their listing DTO.
func ToListCapitalInjectionsResponse(injections []domain.CapitalInjection) ListCapitalInjectionsResponse {
	res := make([]CapitalInjectionResponse, len(injections))
	for i, inj := range injections {
		res[i] = CapitalInjectionResponse{
			InjectionID:    inj.InjectionID,
			Date:           inj.Date,
			Amount:         inj.Amount,
			Notes:          inj.Notes,
			TriggerEventID: inj.TriggerEventID,
			Source:         string(inj.Source),
		}
	}
	return ListCapitalInjectionsResponse{Injections: res, Total: domain.TotalInjected(injections)}
}
