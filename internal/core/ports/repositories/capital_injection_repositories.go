package repositories

import (
	"context"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
)

// CapitalInjectionReader defines read operations for derived injections
type CapitalInjectionReader interface {
	ListCapitalInjections(ctx context.Context, userID string) ([]domain.CapitalInjection, error)
}

// CapitalInjectionWriter defines write operations for derived injections.
// Injections are a projection so the only write is a whole-collection replace.
type CapitalInjectionWriter interface {
	ReplaceCapitalInjections(ctx context.Context, userID string, injections []domain.CapitalInjection) error
}

// CapitalInjectionRepositoryFacade combines all injection repository interfaces
type CapitalInjectionRepositoryFacade interface {
	CapitalInjectionReader
	CapitalInjectionWriter
}
