package dto

import (
	"time"

	"github.com/SscSPs/bet_tracker/internal/core/csvio"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBetEntryRequest defines the data needed to log a bet.
// Net is never accepted from clients, it is always recomputed.
type CreateBetEntryRequest struct {
	Date          time.Time        `json:"date" binding:"required"`
	BetAmount     *decimal.Decimal `json:"betAmount" binding:"required"`
	WinningAmount *decimal.Decimal `json:"winningAmount" binding:"required"`
	Notes         string           `json:"notes" binding:"max=1000"`
	Sport         string           `json:"sport" binding:"max=100"`
	League        string           `json:"league" binding:"max=100"`
	BetType       string           `json:"betType" binding:"max=100"`
	BankrollID    *string          `json:"bankrollId,omitempty" binding:"omitempty,uuid"`
}

// UpdateBetEntryRequest replaces every user-editable field of an entry.
type UpdateBetEntryRequest CreateBetEntryRequest

// ListBetEntriesParams defines the query parameters for listing entries.
type ListBetEntriesParams struct {
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken  string `form:"nextToken"`
	BankrollID string `form:"bankrollId" binding:"omitempty,uuid"`
}

// BetEntryResponse defines the data returned for a bet entry.
type BetEntryResponse struct {
	EntryID       string          `json:"id"`
	Date          time.Time       `json:"date"`
	BetAmount     decimal.Decimal `json:"betAmount"`
	WinningAmount decimal.Decimal `json:"winningAmount"`
	Net           decimal.Decimal `json:"net"`
	Notes         string          `json:"notes"`
	Sport         string          `json:"sport,omitempty"`
	League        string          `json:"league,omitempty"`
	BetType       string          `json:"betType,omitempty"`
	BankrollID    *string         `json:"bankrollId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListBetEntriesResponse is one page of entries.
type ListBetEntriesResponse struct {
	Entries   []BetEntryResponse `json:"entries"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ImportRowError describes one rejected CSV row.
type ImportRowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportResultResponse reports the outcome of a CSV import.
type ImportResultResponse struct {
	Imported    int              `json:"imported"`
	Duplicates  int              `json:"duplicates"`
	Invalid     int              `json:"invalid"`
	InvalidRows []ImportRowError `json:"invalidRows,omitempty"`
	Summary     string           `json:"summary"`
}

// ToBetEntryResponse converts a domain.BetEntry to BetEntryResponse DTO.
func ToBetEntryResponse(e *domain.BetEntry) BetEntryResponse {
	return BetEntryResponse{
		EntryID:       e.EntryID,
		Date:          e.Date,
		BetAmount:     e.BetAmount,
		WinningAmount: e.WinningAmount,
		Net:           e.Net,
		Notes:         e.Notes,
		Sport:         e.Sport,
		League:        e.League,
		BetType:       e.BetType,
		BankrollID:    e.BankrollID,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToBetEntryResponses converts a slice of domain.BetEntry to []BetEntryResponse.
func ToBetEntryResponses(entries []domain.BetEntry) []BetEntryResponse {
	res := make([]BetEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToBetEntryResponse(&entries[i])
	}
	return res
}

// ToImportResultResponse converts a csvio.ImportResult to ImportResultResponse DTO.
func ToImportResultResponse(r *csvio.ImportResult) ImportResultResponse {
	res := ImportResultResponse{
		Imported:   r.Imported,
		Duplicates: r.Duplicates,
		Invalid:    r.Invalid,
		Summary:    r.Summary(),
	}
	for _, row := range r.InvalidRows {
		res.InvalidRows = append(res.InvalidRows, ImportRowError{Line: row.Line, Reason: row.Reason})
	}
	return res
}
