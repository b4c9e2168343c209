// Package ledger derives balances, capital injections and statistics from a
// set of bet entries and tip expenses. Everything here is pure: callers rerun
// DeriveLedger from scratch after every change to the inputs.
package ledger

import (
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Derivation bundles every artefact computed from one ledger snapshot.
type Derivation struct {
	Configured     bool // False when no baseline is set; balance-derived fields are then empty
	Stream         Stream
	Reconstruction Reconstruction
	View           domain.LedgerView
	Streaks        domain.StreakReport
}

// Injections returns the derived injections, empty when no baseline is set.
func (d Derivation) Injections() []domain.CapitalInjection {
	if !d.Configured || d.Reconstruction.Injections == nil {
		return []domain.CapitalInjection{}
	}
	return d.Reconstruction.Injections
}

// DeriveLedger normalizes, reconstructs and aggregates a ledger snapshot.
// A nil baseline is the "not configured" state: the reconstructor does not run.
func DeriveLedger(baseline *decimal.Decimal, entries []domain.BetEntry, expenses []domain.TipExpense, opts Options) Derivation {
	stream := Normalize(entries, expenses)
	d := Derivation{
		Stream:  stream,
		Streaks: AnalyzeStreaks(stream.Entries),
	}
	if baseline == nil {
		return d
	}

	d.Configured = true
	d.Reconstruction = Reconstruct(baseline.Abs(), stream)
	d.View = Aggregate(d.Reconstruction, opts)
	return d
}
