package repositories

import (
	"context"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
)

// BaselineRepositoryFacade persists the per-user ledger baseline.
type BaselineRepositoryFacade interface {
	// FindBaseline returns apperrors.ErrNotFound when the user never configured one.
	FindBaseline(ctx context.Context, userID string) (*domain.Baseline, error)

	// SaveBaseline upserts the baseline; a nil Amount clears it.
	SaveBaseline(ctx context.Context, baseline domain.Baseline) error
}
