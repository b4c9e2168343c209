package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bet_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bet_tracker/internal/core/ports/services"
	"github.com/SscSPs/bet_tracker/internal/dto"
	"github.com/google/uuid"
)

type bankrollService struct {
	BaseService
	bankrollRepo portsrepo.BankrollRepositoryFacade
}

// NewBankrollService creates a new bankroll service.
func NewBankrollService(repo portsrepo.BankrollRepositoryFacade) portssvc.BankrollSvcFacade {
	return &bankrollService{bankrollRepo: repo}
}

var _ portssvc.BankrollSvcFacade = (*bankrollService)(nil)

func (s *bankrollService) ListBankrolls(ctx context.Context, userID string) ([]domain.Bankroll, error) {
	bankrolls, err := s.bankrollRepo.ListBankrolls(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bankrolls", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list bankrolls: %w", err)
	}
	if bankrolls == nil {
		return []domain.Bankroll{}, nil
	}
	return bankrolls, nil
}

func (s *bankrollService) CreateBankroll(ctx context.Context, userID string, req dto.CreateBankrollRequest) (*domain.Bankroll, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if req.Baseline == nil {
		return nil, fmt.Errorf("%w: baseline is required", apperrors.ErrValidation)
	}

	existing, err := s.ListBankrolls(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, b := range existing {
		if strings.EqualFold(b.Name, name) {
			return nil, fmt.Errorf("bankroll %q: %w", name, apperrors.ErrDuplicate)
		}
	}

	now := s.Now()
	bankroll := domain.Bankroll{
		BankrollID:  uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Color:       req.Color,
		Description: req.Description,
		Baseline:    *req.Baseline,
		IsDefault:   req.IsDefault || len(existing) == 0,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.bankrollRepo.SaveBankroll(ctx, bankroll); err != nil {
		s.LogError(ctx, err, "Failed to save bankroll", slog.String("bankroll_id", bankroll.BankrollID))
		return nil, fmt.Errorf("failed to save bankroll: %w", err)
	}
	s.LogInfo(ctx, "Bankroll created", slog.String("bankroll_id", bankroll.BankrollID))
	return &bankroll, nil
}

func (s *bankrollService) DeleteBankroll(ctx context.Context, userID, bankrollID string) error {
	if err := s.bankrollRepo.DeleteBankroll(ctx, userID, bankrollID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete bankroll", slog.String("bankroll_id", bankrollID))
		}
		return fmt.Errorf("failed to delete bankroll %s: %w", bankrollID, err)
	}
	s.LogInfo(ctx, "Bankroll deleted", slog.String("bankroll_id", bankrollID))
	return nil
}
