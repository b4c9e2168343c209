package services

import (
	"context"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/SscSPs/bet_tracker/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerRecomputer regenerates the derived capital injections of a user.
// Services that mutate ledger inputs depend only on this.
type LedgerRecomputer interface {
	Recompute(ctx context.Context, userID string) ([]domain.CapitalInjection, error)
}

// LedgerReaderSvc defines read operations on the derived ledger
type LedgerReaderSvc interface {
	GetBaseline(ctx context.Context, userID string) (*domain.Baseline, error)
	ListCapitalInjections(ctx context.Context, userID string) ([]domain.CapitalInjection, error)

	// GetLedgerView returns the windowed balance series and its summary.
	// It returns apperrors.ErrBaselineNotSet when no baseline is configured.
	GetLedgerView(ctx context.Context, userID string, params dto.LedgerQueryParams) (*domain.LedgerView, error)

	// GetStreaks analyses win and loss runs. It works without a baseline.
	GetStreaks(ctx context.Context, userID string, bankrollID *string) (*domain.StreakReport, error)
}

// LedgerWriterSvc defines write operations on the ledger configuration
type LedgerWriterSvc interface {
	LedgerRecomputer
	// SetBaseline sets the baseline, nil clears it, and recomputes.
	SetBaseline(ctx context.Context, userID string, amount *decimal.Decimal) (*domain.Baseline, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
