package services

import (
	"context"
	"io"

	"github.com/SscSPs/bet_tracker/internal/core/csvio"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/SscSPs/bet_tracker/internal/dto"
)

// BetEntryReaderSvc defines read operations for bet entries
type BetEntryReaderSvc interface {
	// GetBetEntry retrieves a single entry of the user.
	GetBetEntry(ctx context.Context, userID, entryID string) (*domain.BetEntry, error)

	// ListBetEntries retrieves one page of entries, newest first.
	ListBetEntries(ctx context.Context, userID string, params dto.ListBetEntriesParams) (*dto.ListBetEntriesResponse, error)

	// ExportBetEntries writes every entry of the user (or of one bankroll) as CSV.
	ExportBetEntries(ctx context.Context, userID string, bankrollID *string, w io.Writer) error
}

// BetEntryWriterSvc defines write operations for bet entries.
// Every successful write recomputes the user's capital injections.
type BetEntryWriterSvc interface {
	CreateBetEntry(ctx context.Context, userID string, req dto.CreateBetEntryRequest) (*domain.BetEntry, error)
	UpdateBetEntry(ctx context.Context, userID, entryID string, req dto.UpdateBetEntryRequest) (*domain.BetEntry, error)
	DeleteBetEntry(ctx context.Context, userID, entryID string) error

	// ImportBetEntries reads CSV rows, skipping duplicates and invalid rows.
	ImportBetEntries(ctx context.Context, userID string, bankrollID *string, r io.Reader) (*csvio.ImportResult, error)
}

// BetEntrySvcFacade combines all bet entry service interfaces
type BetEntrySvcFacade interface {
	BetEntryReaderSvc
	BetEntryWriterSvc
}
