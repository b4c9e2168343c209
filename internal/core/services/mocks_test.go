package services_test

import (
	"context"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bet_tracker/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock BetEntryRepository ---
type MockBetEntryRepository struct {
	mock.Mock
}

func (m *MockBetEntryRepository) FindBetEntryByID(ctx context.Context, userID, entryID string) (*domain.BetEntry, error) {
	args := m.Called(ctx, userID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BetEntry), args.Error(1)
}

func (m *MockBetEntryRepository) ListBetEntries(ctx context.Context, userID string, params portsrepo.ListBetEntriesParams) ([]domain.BetEntry, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BetEntry), args.Error(1)
}

func (m *MockBetEntryRepository) ListAllBetEntries(ctx context.Context, userID string, bankrollID *string) ([]domain.BetEntry, error) {
	args := m.Called(ctx, userID, bankrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BetEntry), args.Error(1)
}

func (m *MockBetEntryRepository) SaveBetEntry(ctx context.Context, entry domain.BetEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockBetEntryRepository) SaveBetEntries(ctx context.Context, entries []domain.BetEntry) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *MockBetEntryRepository) UpdateBetEntry(ctx context.Context, entry domain.BetEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockBetEntryRepository) DeleteBetEntry(ctx context.Context, userID, entryID string) error {
	return m.Called(ctx, userID, entryID).Error(0)
}

// --- Mock TipExpenseRepository ---
type MockTipExpenseRepository struct {
	mock.Mock
}

func (m *MockTipExpenseRepository) FindTipExpenseByID(ctx context.Context, userID, expenseID string) (*domain.TipExpense, error) {
	args := m.Called(ctx, userID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TipExpense), args.Error(1)
}

func (m *MockTipExpenseRepository) ListTipExpenses(ctx context.Context, userID string) ([]domain.TipExpense, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TipExpense), args.Error(1)
}

func (m *MockTipExpenseRepository) SaveTipExpense(ctx context.Context, expense domain.TipExpense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockTipExpenseRepository) UpdateTipExpense(ctx context.Context, expense domain.TipExpense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockTipExpenseRepository) DeleteTipExpense(ctx context.Context, userID, expenseID string) error {
	return m.Called(ctx, userID, expenseID).Error(0)
}

// --- Mock CapitalInjectionRepository ---
type MockInjectionRepository struct {
	mock.Mock
}

func (m *MockInjectionRepository) ListCapitalInjections(ctx context.Context, userID string) ([]domain.CapitalInjection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CapitalInjection), args.Error(1)
}

func (m *MockInjectionRepository) ReplaceCapitalInjections(ctx context.Context, userID string, injections []domain.CapitalInjection) error {
	return m.Called(ctx, userID, injections).Error(0)
}

// --- Mock BaselineRepository ---
type MockBaselineRepository struct {
	mock.Mock
}

func (m *MockBaselineRepository) FindBaseline(ctx context.Context, userID string) (*domain.Baseline, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Baseline), args.Error(1)
}

func (m *MockBaselineRepository) SaveBaseline(ctx context.Context, baseline domain.Baseline) error {
	return m.Called(ctx, baseline).Error(0)
}

// --- Mock BankrollRepository ---
type MockBankrollRepository struct {
	mock.Mock
}

func (m *MockBankrollRepository) FindBankrollByID(ctx context.Context, userID, bankrollID string) (*domain.Bankroll, error) {
	args := m.Called(ctx, userID, bankrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bankroll), args.Error(1)
}

func (m *MockBankrollRepository) ListBankrolls(ctx context.Context, userID string) ([]domain.Bankroll, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bankroll), args.Error(1)
}

func (m *MockBankrollRepository) SaveBankroll(ctx context.Context, bankroll domain.Bankroll) error {
	return m.Called(ctx, bankroll).Error(0)
}

func (m *MockBankrollRepository) DeleteBankroll(ctx context.Context, userID, bankrollID string) error {
	return m.Called(ctx, userID, bankrollID).Error(0)
}

// --- Mock LedgerRecomputer ---
type MockLedgerRecomputer struct {
	mock.Mock
}

func (m *MockLedgerRecomputer) Recompute(ctx context.Context, userID string) ([]domain.CapitalInjection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CapitalInjection), args.Error(1)
}
