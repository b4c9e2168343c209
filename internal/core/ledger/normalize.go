package ledger

import (
	"sort"
	"time"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
)

// EventKind orders events that share a timestamp: bets, then tip expenses,
// then injections. Injection generation depends on this order.
type EventKind int

const (
	EventBet EventKind = iota
	EventTipExpense
	EventInjection
)

func (k EventKind) String() string {
	switch k {
	case EventBet:
		return "bet"
	case EventTipExpense:
		return "tip_expense"
	case EventInjection:
		return "injection"
	default:
		return "unknown"
	}
}

// Event is one element of the merged chronological stream. Exactly one of
// Entry, Expense and Injection is set, matching Kind.
type Event struct {
	Kind      EventKind
	ID        string
	Date      time.Time
	Entry     *domain.BetEntry
	Expense   *domain.TipExpense
	Injection *domain.CapitalInjection
}

// EventKey identifies an event across kinds; ids are only unique per kind.
func EventKey(kind EventKind, id string) string {
	return kind.String() + ":" + id
}

// Key returns EventKey(e.Kind, e.ID).
func (e Event) Key() string {
	return EventKey(e.Kind, e.ID)
}

// Stream is the normalized input of the reconstructor.
type Stream struct {
	Entries      []domain.BetEntry
	Expenses     []domain.TipExpense
	Events       []Event
	FirstEntryID string
}

// Normalize sorts entries and expenses ascending by timestamp and merges them
// into one event stream. Sorting is stable so equal timestamps keep their
// insertion order; FirstEntryID is the earliest entry under that rule.
// The input slices are not modified.
func Normalize(entries []domain.BetEntry, expenses []domain.TipExpense) Stream {
	sortedEntries := make([]domain.BetEntry, len(entries))
	copy(sortedEntries, entries)
	sort.SliceStable(sortedEntries, func(i, j int) bool {
		return sortedEntries[i].Date.Before(sortedEntries[j].Date)
	})

	sortedExpenses := make([]domain.TipExpense, len(expenses))
	copy(sortedExpenses, expenses)
	sort.SliceStable(sortedExpenses, func(i, j int) bool {
		return sortedExpenses[i].Date.Before(sortedExpenses[j].Date)
	})

	stream := Stream{
		Entries:  sortedEntries,
		Expenses: sortedExpenses,
		Events:   MergeEvents(sortedEntries, sortedExpenses, nil),
	}
	if len(sortedEntries) > 0 {
		stream.FirstEntryID = sortedEntries[0].EntryID
	}
	return stream
}

// MergeEvents merges already-sorted entries, expenses and injections into a
// single chronological stream with the bet < expense < injection tie-break.
func MergeEvents(entries []domain.BetEntry, expenses []domain.TipExpense, injections []domain.CapitalInjection) []Event {
	events := make([]Event, 0, len(entries)+len(expenses)+len(injections))
	for i := range entries {
		events = append(events, Event{Kind: EventBet, ID: entries[i].EntryID, Date: entries[i].Date, Entry: &entries[i]})
	}
	for i := range expenses {
		events = append(events, Event{Kind: EventTipExpense, ID: expenses[i].ExpenseID, Date: expenses[i].Date, Expense: &expenses[i]})
	}
	for i := range injections {
		events = append(events, Event{Kind: EventInjection, ID: injections[i].InjectionID, Date: injections[i].Date, Injection: &injections[i]})
	}
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].Kind < events[j].Kind
	})
	return events
}
