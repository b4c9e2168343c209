package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bet_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bet_tracker/internal/core/ports/services"
	"github.com/SscSPs/bet_tracker/internal/dto"
	"github.com/google/uuid"
)

type tipExpenseService struct {
	BaseService
	expenseRepo portsrepo.TipExpenseRepositoryFacade
	ledger      portssvc.LedgerRecomputer
}

// NewTipExpenseService creates a new tip expense service.
func NewTipExpenseService(repo portsrepo.TipExpenseRepositoryFacade, recomputer portssvc.LedgerRecomputer) portssvc.TipExpenseSvcFacade {
	return &tipExpenseService{expenseRepo: repo, ledger: recomputer}
}

var _ portssvc.TipExpenseSvcFacade = (*tipExpenseService)(nil)

func (s *tipExpenseService) ListTipExpenses(ctx context.Context, userID string) ([]domain.TipExpense, error) {
	expenses, err := s.expenseRepo.ListTipExpenses(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tip expenses", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list tip expenses: %w", err)
	}
	if expenses == nil {
		return []domain.TipExpense{}, nil
	}
	return expenses, nil
}

func (s *tipExpenseService) CreateTipExpense(ctx context.Context, userID string, req dto.CreateTipExpenseRequest) (*domain.TipExpense, error) {
	if err := validateTipExpense(req); err != nil {
		return nil, err
	}
	now := s.Now()
	expense := domain.TipExpense{
		ExpenseID: uuid.NewString(),
		UserID:    userID,
		Date:      req.Date.Truncate(time.Second),
		Amount:    *req.Amount,
		Provider:  req.Provider,
		Notes:     req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.expenseRepo.SaveTipExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save tip expense", slog.String("expense_id", expense.ExpenseID))
		return nil, fmt.Errorf("failed to save tip expense: %w", err)
	}
	if err := s.recompute(ctx, userID); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Tip expense created", slog.String("expense_id", expense.ExpenseID))
	return &expense, nil
}

func (s *tipExpenseService) UpdateTipExpense(ctx context.Context, userID, expenseID string, req dto.UpdateTipExpenseRequest) (*domain.TipExpense, error) {
	if err := validateTipExpense(dto.CreateTipExpenseRequest(req)); err != nil {
		return nil, err
	}
	existing, err := s.expenseRepo.FindTipExpenseByID(ctx, userID, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get tip expense", slog.String("expense_id", expenseID))
		}
		return nil, fmt.Errorf("failed to get tip expense %s: %w", expenseID, err)
	}

	updated := *existing
	updated.Date = req.Date.Truncate(time.Second)
	updated.Amount = *req.Amount
	updated.Provider = req.Provider
	updated.Notes = req.Notes
	updated.LastUpdatedAt = s.Now()
	updated.LastUpdatedBy = userID

	if err := s.expenseRepo.UpdateTipExpense(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update tip expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update tip expense %s: %w", expenseID, err)
	}
	if err := s.recompute(ctx, userID); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Tip expense updated", slog.String("expense_id", expenseID))
	return &updated, nil
}

func (s *tipExpenseService) DeleteTipExpense(ctx context.Context, userID, expenseID string) error {
	if err := s.expenseRepo.DeleteTipExpense(ctx, userID, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete tip expense", slog.String("expense_id", expenseID))
		}
		return fmt.Errorf("failed to delete tip expense %s: %w", expenseID, err)
	}
	if err := s.recompute(ctx, userID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Tip expense deleted", slog.String("expense_id", expenseID))
	return nil
}

func (s *tipExpenseService) recompute(ctx context.Context, userID string) error {
	if s.ledger == nil {
		return nil
	}
	if _, err := s.ledger.Recompute(ctx, userID); err != nil {
		return fmt.Errorf("failed to recompute ledger: %w", err)
	}
	return nil
}

func validateTipExpense(req dto.CreateTipExpenseRequest) error {
	if req.Amount == nil {
		return fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	return nil
}
