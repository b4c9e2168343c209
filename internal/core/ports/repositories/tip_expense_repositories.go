package repositories

import (
	"context"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
)

// TipExpenseReader defines read operations for tip expenses
type TipExpenseReader interface {
	FindTipExpenseByID(ctx context.Context, userID, expenseID string) (*domain.TipExpense, error)
	ListTipExpenses(ctx context.Context, userID string) ([]domain.TipExpense, error)
}

// TipExpenseWriter defines write operations for tip expenses
type TipExpenseWriter interface {
	SaveTipExpense(ctx context.Context, expense domain.TipExpense) error
	UpdateTipExpense(ctx context.Context, expense domain.TipExpense) error
	// DeleteTipExpense returns apperrors.ErrNotFound when nothing was deleted.
	DeleteTipExpense(ctx context.Context, userID, expenseID string) error
}

// TipExpenseRepositoryFacade combines all tip expense repository interfaces
type TipExpenseRepositoryFacade interface {
	TipExpenseReader
	TipExpenseWriter
}
