package services

import (
	"context"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/SscSPs/bet_tracker/internal/dto"
)

// TipExpenseReaderSvc defines read operations for tip expenses
type TipExpenseReaderSvc interface {
	ListTipExpenses(ctx context.Context, userID string) ([]domain.TipExpense, error)
}

// TipExpenseWriterSvc defines write operations for tip expenses.
// Every successful write recomputes the user's capital injections.
type TipExpenseWriterSvc interface {
	CreateTipExpense(ctx context.Context, userID string, req dto.CreateTipExpenseRequest) (*domain.TipExpense, error)
	UpdateTipExpense(ctx context.Context, userID, expenseID string, req dto.UpdateTipExpenseRequest) (*domain.TipExpense, error)
	DeleteTipExpense(ctx context.Context, userID, expenseID string) error
}

// TipExpenseSvcFacade combines all tip expense service interfaces
type TipExpenseSvcFacade interface {
	TipExpenseReaderSvc
	TipExpenseWriterSvc
}
