package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
)

// EntryCursor is the keyset position of the last entry on a page.
type EntryCursor struct {
	Date    time.Time
	EntryID string
}

// ListBetEntriesParams holds the filters and paging for listing entries.
// Entries are returned newest first.
type ListBetEntriesParams struct {
	BankrollID *string
	Limit      int
	After      *EntryCursor
}

// BetEntryReader defines read operations for bet entries
type BetEntryReader interface {
	// FindBetEntryByID retrieves a single entry owned by userID.
	FindBetEntryByID(ctx context.Context, userID, entryID string) (*domain.BetEntry, error)

	// ListBetEntries retrieves one page of entries.
	ListBetEntries(ctx context.Context, userID string, params ListBetEntriesParams) ([]domain.BetEntry, error)

	// ListAllBetEntries retrieves every entry of the user, optionally restricted to one bankroll.
	ListAllBetEntries(ctx context.Context, userID string, bankrollID *string) ([]domain.BetEntry, error)
}

// BetEntryWriter defines write operations for bet entries
type BetEntryWriter interface {
	SaveBetEntry(ctx context.Context, entry domain.BetEntry) error
	// SaveBetEntries persists a batch atomically.
	SaveBetEntries(ctx context.Context, entries []domain.BetEntry) error
	UpdateBetEntry(ctx context.Context, entry domain.BetEntry) error
	DeleteBetEntry(ctx context.Context, userID, entryID string) error
}

// BetEntryRepositoryFacade combines all bet entry repository interfaces
type BetEntryRepositoryFacade interface {
	BetEntryReader
	BetEntryWriter
}

// BetEntryRepositoryWithTx extends BetEntryRepositoryFacade with transaction capabilities
type BetEntryRepositoryWithTx interface {
	BetEntryRepositoryFacade
	TransactionManager
}
