package local

import (
	"time"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SchemaVersion is the version written by this build. Version 0 is the legacy
// flat key map.
const SchemaVersion = 1

// Section names as they appear in the document and in load reports.
const (
	SectionBaseline          = "baseline"
	SectionBaselineUpdatedAt = "baselineUpdatedAt"
	SectionEntries           = "entries"
	SectionInjections        = "injections"
	SectionTipExpenses       = "tipExpenses"
)

// Document is the on-disk shape of a local ledger.
type Document struct {
	SchemaVersion     int                `json:"schemaVersion"`
	Baseline          *decimal.Decimal   `json:"baseline"`
	BaselineUpdatedAt *time.Time         `json:"baselineUpdatedAt,omitempty"`
	Entries           []EntryRecord      `json:"entries"`
	Injections        []InjectionRecord  `json:"injections"`
	TipExpenses       []TipExpenseRecord `json:"tipExpenses"`
}

// EntryRecord is a stored bet. Net is written for readers of the file but
// always recomputed on load.
type EntryRecord struct {
	ID            string          `json:"id" validate:"required"`
	Date          time.Time       `json:"date" validate:"required"`
	BetAmount     decimal.Decimal `json:"betAmount" validate:"gte=0"`
	WinningAmount decimal.Decimal `json:"winningAmount" validate:"gte=0"`
	Net           decimal.Decimal `json:"net"`
	Notes         string          `json:"notes" validate:"max=1000"`
	Sport         string          `json:"sport,omitempty" validate:"max=100"`
	League        string          `json:"league,omitempty" validate:"max=100"`
	BetType       string          `json:"betType,omitempty" validate:"max=100"`
	BankrollID    *string         `json:"bankrollId,omitempty"`
	CreatedAt     *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}

// InjectionRecord is a stored derived injection.
type InjectionRecord struct {
	ID             string          `json:"id" validate:"required"`
	Date           time.Time       `json:"date" validate:"required"`
	Amount         decimal.Decimal `json:"amount" validate:"gt=0"`
	Notes          string          `json:"notes"`
	TriggerEventID string          `json:"triggerEventId"`
	Source         string          `json:"source" validate:"omitempty,oneof=BET TIP_EXPENSE"`
}

// TipExpenseRecord is a stored tip expense.
type TipExpenseRecord struct {
	ID        string          `json:"id" validate:"required"`
	Date      time.Time       `json:"date" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"gte=0"`
	Provider  string          `json:"provider,omitempty" validate:"max=200"`
	Notes     string          `json:"notes" validate:"max=1000"`
	CreatedAt *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

func (r EntryRecord) recordID() string { return r.ID }
func (r InjectionRecord) recordID() string { return r.ID }
func (r TipExpenseRecord) recordID() string { return r.ID }

func toEntryRecord(e domain.BetEntry) EntryRecord {
	rec := EntryRecord{
		ID:            e.EntryID,
		Date:          e.Date.UTC(),
		BetAmount:     e.BetAmount,
		WinningAmount: e.WinningAmount,
		Net:           domain.ComputeNet(e.BetAmount, e.WinningAmount),
		Notes:         e.Notes,
		Sport:         e.Sport,
		League:        e.League,
		BetType:       e.BetType,
		BankrollID:    e.BankrollID,
	}
	if !e.CreatedAt.IsZero() {
		created := e.CreatedAt.UTC()
		rec.CreatedAt = &created
	}
	if !e.LastUpdatedAt.IsZero() {
		updated := e.LastUpdatedAt.UTC()
		rec.UpdatedAt = &updated
	}
	return rec
}

func (r EntryRecord) toDomain(userID string) domain.BetEntry {
	e := domain.BetEntry{
		EntryID:       r.ID,
		UserID:        userID,
		Date:          r.Date,
		BetAmount:     r.BetAmount,
		WinningAmount: r.WinningAmount,
		Notes:         r.Notes,
		Sport:         r.Sport,
		League:        r.League,
		BetType:       r.BetType,
		BankrollID:    r.BankrollID,
	}
	e.RecomputeNet()
	if r.CreatedAt != nil {
		e.CreatedAt = *r.CreatedAt
		e.CreatedBy = userID
	}
	if r.UpdatedAt != nil {
		e.LastUpdatedAt = *r.UpdatedAt
		e.LastUpdatedBy = userID
	}
	return e
}

func toTipExpenseRecord(t domain.TipExpense) TipExpenseRecord {
	rec := TipExpenseRecord{
		ID:       t.ExpenseID,
		Date:     t.Date.UTC(),
		Amount:   t.Amount,
		Provider: t.Provider,
		Notes:    t.Notes,
	}
	if !t.CreatedAt.IsZero() {
		created := t.CreatedAt.UTC()
		rec.CreatedAt = &created
	}
	if !t.LastUpdatedAt.IsZero() {
		updated := t.LastUpdatedAt.UTC()
		rec.UpdatedAt = &updated
	}
	return rec
}

func (r TipExpenseRecord) toDomain(userID string) domain.TipExpense {
	t := domain.TipExpense{
		ExpenseID: r.ID,
		UserID:    userID,
		Date:      r.Date,
		Amount:    r.Amount,
		Provider:  r.Provider,
		Notes:     r.Notes,
	}
	if r.CreatedAt != nil {
		t.CreatedAt = *r.CreatedAt
		t.CreatedBy = userID
	}
	if r.UpdatedAt != nil {
		t.LastUpdatedAt = *r.UpdatedAt
		t.LastUpdatedBy = userID
	}
	return t
}

func toInjectionRecord(i domain.CapitalInjection) InjectionRecord {
	return InjectionRecord{
		ID:             i.InjectionID,
		Date:           i.Date.UTC(),
		Amount:         i.Amount,
		Notes:          i.Notes,
		TriggerEventID: i.TriggerEventID,
		Source:         string(i.Source),
	}
}

func (r InjectionRecord) toDomain(userID string) domain.CapitalInjection {
	return domain.CapitalInjection{
		InjectionID:    r.ID,
		UserID:         userID,
		Date:           r.Date,
		Amount:         r.Amount,
		Notes:          r.Notes,
		TriggerEventID: r.TriggerEventID,
		Source:         domain.InjectionSource(r.Source),
	}
}
