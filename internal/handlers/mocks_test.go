package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/bet_tracker/internal/core/csvio"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/bet_tracker/internal/core/ports/services"
	"github.com/SscSPs/bet_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock BetEntryService ---
type MockBetEntryService struct {
	mock.Mock
}

func (m *MockBetEntryService) GetBetEntry(ctx context.Context, userID, entryID string) (*domain.BetEntry, error) {
	args := m.Called(ctx, userID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BetEntry), args.Error(1)
}
func (m *MockBetEntryService) ListBetEntries(ctx context.Context, userID string, params dto.ListBetEntriesParams) (*dto.ListBetEntriesResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListBetEntriesResponse), args.Error(1)
}
func (m *MockBetEntryService) ExportBetEntries(ctx context.Context, userID string, bankrollID *string, w io.Writer) error {
	args := m.Called(ctx, userID, bankrollID, w)
	return args.Error(0)
}
func (m *MockBetEntryService) CreateBetEntry(ctx context.Context, userID string, req dto.CreateBetEntryRequest) (*domain.BetEntry, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BetEntry), args.Error(1)
}
func (m *MockBetEntryService) UpdateBetEntry(ctx context.Context, userID, entryID string, req dto.UpdateBetEntryRequest) (*domain.BetEntry, error) {
	args := m.Called(ctx, userID, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BetEntry), args.Error(1)
}
func (m *MockBetEntryService) DeleteBetEntry(ctx context.Context, userID, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}
func (m *MockBetEntryService) ImportBetEntries(ctx context.Context, userID string, bankrollID *string, r io.Reader) (*csvio.ImportResult, error) {
	args := m.Called(ctx, userID, bankrollID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*csvio.ImportResult), args.Error(1)
}

var _ portssvc.BetEntrySvcFacade = (*MockBetEntryService)(nil)

// --- Mock TipExpenseService ---
type MockTipExpenseService struct {
	mock.Mock
}

func (m *MockTipExpenseService) ListTipExpenses(ctx context.Context, userID string) ([]domain.TipExpense, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TipExpense), args.Error(1)
}
func (m *MockTipExpenseService) CreateTipExpense(ctx context.Context, userID string, req dto.CreateTipExpenseRequest) (*domain.TipExpense, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TipExpense), args.Error(1)
}
func (m *MockTipExpenseService) UpdateTipExpense(ctx context.Context, userID, expenseID string, req dto.UpdateTipExpenseRequest) (*domain.TipExpense, error) {
	args := m.Called(ctx, userID, expenseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TipExpense), args.Error(1)
}
func (m *MockTipExpenseService) DeleteTipExpense(ctx context.Context, userID, expenseID string) error {
	args := m.Called(ctx, userID, expenseID)
	return args.Error(0)
}

var _ portssvc.TipExpenseSvcFacade = (*MockTipExpenseService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetBaseline(ctx context.Context, userID string) (*domain.Baseline, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Baseline), args.Error(1)
}
func (m *MockLedgerService) ListCapitalInjections(ctx context.Context, userID string) ([]domain.CapitalInjection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CapitalInjection), args.Error(1)
}
func (m *MockLedgerService) GetLedgerView(ctx context.Context, userID string, params dto.LedgerQueryParams) (*domain.LedgerView, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerView), args.Error(1)
}
func (m *MockLedgerService) GetStreaks(ctx context.Context, userID string, bankrollID *string) (*domain.StreakReport, error) {
	args := m.Called(ctx, userID, bankrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StreakReport), args.Error(1)
}
func (m *MockLedgerService) Recompute(ctx context.Context, userID string) ([]domain.CapitalInjection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CapitalInjection), args.Error(1)
}
func (m *MockLedgerService) SetBaseline(ctx context.Context, userID string, amount *decimal.Decimal) (*domain.Baseline, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Baseline), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock BankrollService ---
type MockBankrollService struct {
	mock.Mock
}

func (m *MockBankrollService) ListBankrolls(ctx context.Context, userID string) ([]domain.Bankroll, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bankroll), args.Error(1)
}
func (m *MockBankrollService) CreateBankroll(ctx context.Context, userID string, req dto.CreateBankrollRequest) (*domain.Bankroll, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bankroll), args.Error(1)
}
func (m *MockBankrollService) DeleteBankroll(ctx context.Context, userID, bankrollID string) error {
	args := m.Called(ctx, userID, bankrollID)
	return args.Error(0)
}

var _ portssvc.BankrollSvcFacade = (*MockBankrollService)(nil)
