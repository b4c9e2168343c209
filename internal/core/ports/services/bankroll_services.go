package services

import (
	"context"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/SscSPs/bet_tracker/internal/dto"
)

// BankrollSvcFacade defines the operations on bankrolls
type BankrollSvcFacade interface {
	ListBankrolls(ctx context.Context, userID string) ([]domain.Bankroll, error)
	CreateBankroll(ctx context.Context, userID string, req dto.CreateBankrollRequest) (*domain.Bankroll, error)
	DeleteBankroll(ctx context.Context, userID, bankrollID string) error
}
