package repositories

import (
	"context"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
)

// BankrollReader defines read operations for bankrolls
type BankrollReader interface {
	FindBankrollByID(ctx context.Context, userID, bankrollID string) (*domain.Bankroll, error)
	ListBankrolls(ctx context.Context, userID string) ([]domain.Bankroll, error)
}

// BankrollWriter defines write operations for bankrolls
type BankrollWriter interface {
	SaveBankroll(ctx context.Context, bankroll domain.Bankroll) error
	// DeleteBankroll removes the bankroll; entries keep their dangling reference.
	DeleteBankroll(ctx context.Context, userID, bankrollID string) error
}

// BankrollRepositoryFacade combines all bankroll repository interfaces
type BankrollRepositoryFacade interface {
	BankrollReader
	BankrollWriter
}
