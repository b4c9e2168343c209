package ledger

import (
	"fmt"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// injectionNamespace seeds deterministic injection ids so that re-running the
// reconstructor on unchanged input yields identical injections.
var injectionNamespace = uuid.MustParse("6f1c2a8e-4b7d-4c55-9a0e-3d2f1b6c7e90")

// BalancePoint is the state of the ledger right after one event was applied.
// Delta is the event's own effect; Injection is the top-up emitted at the
// same instant, already included in Running.
type BalancePoint struct {
	Event     Event
	Delta     decimal.Decimal
	Injection decimal.Decimal
	Running   decimal.Decimal
}

// Reconstruction is the output of a single forward pass over a Stream.
type Reconstruction struct {
	Start      decimal.Decimal
	Points     []BalancePoint
	Balances   map[string]decimal.Decimal // EventKey -> balance after the event
	Injections []domain.CapitalInjection
	Final      decimal.Decimal
}

// Reconstruct walks the stream once, starting from baseline, and derives the
// running balance after every event together with the capital injections
// needed to keep the balance from dropping below baseline.
//
// The first entry of the stream, when it is not a loss, adds its stake back
// on top of its net. A loss, or any tip expense, that leaves the balance
// strictly below baseline emits an injection of the shortfall and the balance
// snaps back to exactly baseline. At most one injection exists per timestamp.
func Reconstruct(baseline decimal.Decimal, stream Stream) Reconstruction {
	rec := Reconstruction{
		Start:      baseline,
		Points:     make([]BalancePoint, 0, len(stream.Events)),
		Balances:   make(map[string]decimal.Decimal, len(stream.Events)),
		Injections: []domain.CapitalInjection{},
	}
	injectedAt := make(map[int64]struct{})
	running := baseline

	for _, ev := range stream.Events {
		var delta decimal.Decimal
		var triggers bool

		switch ev.Kind {
		case EventBet:
			e := ev.Entry
			if e.EntryID == stream.FirstEntryID && !e.Net.IsNegative() {
				delta = e.BetAmount.Add(e.Net)
			} else {
				delta = e.Net
			}
			running = running.Add(delta)
			triggers = e.Net.IsNegative() && running.LessThan(baseline)
		case EventTipExpense:
			delta = ev.Expense.Amount.Neg()
			running = running.Add(delta)
			triggers = running.LessThan(baseline)
		default:
			// Injections are produced here, never consumed.
			continue
		}

		injected := decimal.Zero
		ts := ev.Date.UnixNano()
		if _, seen := injectedAt[ts]; triggers && !seen {
			injected = baseline.Sub(running)
			running = baseline
			injectedAt[ts] = struct{}{}
			rec.Injections = append(rec.Injections, newInjection(ev, injected))
		}

		rec.Points = append(rec.Points, BalancePoint{
			Event:     ev,
			Delta:     delta,
			Injection: injected,
			Running:   running,
		})
		rec.Balances[ev.Key()] = running
	}

	rec.Final = running
	return rec
}

func newInjection(ev Event, amount decimal.Decimal) domain.CapitalInjection {
	inj := domain.CapitalInjection{
		InjectionID:    uuid.NewSHA1(injectionNamespace, []byte(ev.Key())).String(),
		Date:           ev.Date,
		Amount:         amount,
		TriggerEventID: ev.ID,
	}
	switch ev.Kind {
	case EventBet:
		inj.UserID = ev.Entry.UserID
		inj.Source = domain.InjectionFromBet
		inj.Notes = fmt.Sprintf("%s: covers %s shortfall after a losing bet", domain.AutoInjectionNote, amount.StringFixed(2))
	case EventTipExpense:
		inj.UserID = ev.Expense.UserID
		inj.Source = domain.InjectionFromExpense
		inj.Notes = fmt.Sprintf("%s: covers %s shortfall after a tip expense", domain.AutoInjectionNote, amount.StringFixed(2))
	}
	return inj
}

// Replay folds baseline over an event stream that already contains its
// injections, applying the same first-entry rule as Reconstruct. It returns the
// balance after each event and is used to check that a reconstruction is
// reproducible from (baseline, entries, expenses, injections) alone.
func Replay(baseline decimal.Decimal, firstEntryID string, events []Event) []decimal.Decimal {
	out := make([]decimal.Decimal, len(events))
	running := baseline
	for i, ev := range events {
		switch ev.Kind {
		case EventBet:
			if ev.Entry.EntryID == firstEntryID && !ev.Entry.Net.IsNegative() {
				running = running.Add(ev.Entry.BetAmount)
			}
			running = running.Add(ev.Entry.Net)
		case EventTipExpense:
			running = running.Sub(ev.Expense.Amount)
		case EventInjection:
			running = running.Add(ev.Injection.Amount)
		}
		out[i] = running
	}
	return out
}
