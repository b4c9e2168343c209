package mapping

import (
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/SscSPs/bet_tracker/internal/models"
)

// ToModelBetEntry converts a domain BetEntry to a model BetEntry.
// Net is recomputed so the stored column can never drift from the amounts.
func ToModelBetEntry(d domain.BetEntry) models.BetEntry {
	return models.BetEntry{
		EntryID:       d.EntryID,
		UserID:        d.UserID,
		BetDate:       d.Date.UTC(),
		BetAmount:     d.BetAmount,
		WinningAmount: d.WinningAmount,
		Net:           domain.ComputeNet(d.BetAmount, d.WinningAmount),
		Notes:         d.Notes,
		Sport:         d.Sport,
		League:        d.League,
		BetType:       d.BetType,
		BankrollID:    d.BankrollID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBetEntry converts a model BetEntry to a domain BetEntry
func ToDomainBetEntry(m models.BetEntry) domain.BetEntry {
	e := domain.BetEntry{
		EntryID:       m.EntryID,
		UserID:        m.UserID,
		Date:          m.BetDate,
		BetAmount:     m.BetAmount,
		WinningAmount: m.WinningAmount,
		Notes:         m.Notes,
		Sport:         m.Sport,
		League:        m.League,
		BetType:       m.BetType,
		BankrollID:    m.BankrollID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	e.RecomputeNet()
	return e
}

// ToDomainBetEntrySlice converts a slice of model BetEntries to domain BetEntries
func ToDomainBetEntrySlice(ms []models.BetEntry) []domain.BetEntry {
	ds := make([]domain.BetEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBetEntry(m)
	}
	return ds
}
