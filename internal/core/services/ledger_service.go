package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/SscSPs/bet_tracker/internal/core/ledger"
	portsrepo "github.com/SscSPs/bet_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bet_tracker/internal/core/ports/services"
	"github.com/SscSPs/bet_tracker/internal/dto"
	"github.com/shopspring/decimal"
)

// ledgerService owns the derived side of the ledger: baseline, injections and views.
type ledgerService struct {
	BaseService
	entryRepo     portsrepo.BetEntryReader
	expenseRepo   portsrepo.TipExpenseReader
	injectionRepo portsrepo.CapitalInjectionRepositoryFacade
	baselineRepo  portsrepo.BaselineRepositoryFacade
	bankrollRepo  portsrepo.BankrollReader
	calendar      ledger.Calendar
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerLocation sets the time zone that defines local calendar days.
func WithLedgerLocation(loc *time.Location) LedgerServiceOption {
	return func(s *ledgerService) {
		s.calendar = ledger.NewCalendar(loc)
	}
}

// WithLedgerClock overrides the time source used for ytd and last-n-days windows.
func WithLedgerClock(clock func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.Clock = clock
	}
}

// WithBankrollReader enables bankroll-scoped views.
func WithBankrollReader(repo portsrepo.BankrollReader) LedgerServiceOption {
	return func(s *ledgerService) {
		s.bankrollRepo = repo
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(
	entryRepo portsrepo.BetEntryReader,
	expenseRepo portsrepo.TipExpenseReader,
	injectionRepo portsrepo.CapitalInjectionRepositoryFacade,
	baselineRepo portsrepo.BaselineRepositoryFacade,
	options ...LedgerServiceOption,
) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		entryRepo:     entryRepo,
		expenseRepo:   expenseRepo,
		injectionRepo: injectionRepo,
		baselineRepo:  baselineRepo,
		calendar:      ledger.NewCalendar(time.UTC),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetBaseline(ctx context.Context, userID string) (*domain.Baseline, error) {
	baseline, err := s.baselineRepo.FindBaseline(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.Baseline{UserID: userID}, nil
		}
		s.LogError(ctx, err, "Failed to load baseline", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load baseline: %w", err)
	}
	return baseline, nil
}

func (s *ledgerService) SetBaseline(ctx context.Context, userID string, amount *decimal.Decimal) (*domain.Baseline, error) {
	baseline := domain.Baseline{
		UserID:        userID,
		Amount:        amount,
		LastUpdatedAt: s.Now(),
	}
	if err := s.baselineRepo.SaveBaseline(ctx, baseline); err != nil {
		s.LogError(ctx, err, "Failed to save baseline", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save baseline: %w", err)
	}
	if _, err := s.Recompute(ctx, userID); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Baseline updated", slog.String("user_id", userID), slog.Bool("configured", baseline.IsSet()))
	return &baseline, nil
}

// Recompute rederives the user's injections from scratch and replaces the stored set.
func (s *ledgerService) Recompute(ctx context.Context, userID string) ([]domain.CapitalInjection, error) {
	baseline, err := s.GetBaseline(ctx, userID)
	if err != nil {
		return nil, err
	}

	injections := []domain.CapitalInjection{}
	if baseline.IsSet() {
		entries, expenses, err := s.loadInputs(ctx, userID, nil)
		if err != nil {
			return nil, err
		}
		d := ledger.DeriveLedger(baseline.Amount, entries, expenses, s.options(domain.Window{Kind: domain.WindowAll}, domain.PerBet))
		injections = d.Injections()
		for i := range injections {
			injections[i].UserID = userID
		}
	}

	if err := s.injectionRepo.ReplaceCapitalInjections(ctx, userID, injections); err != nil {
		s.LogError(ctx, err, "Failed to replace capital injections", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to store capital injections: %w", err)
	}
	s.LogDebug(ctx, "Capital injections recomputed",
		slog.String("user_id", userID),
		slog.Int("count", len(injections)),
		slog.String("total", domain.TotalInjected(injections).String()))
	return injections, nil
}

func (s *ledgerService) ListCapitalInjections(ctx context.Context, userID string) ([]domain.CapitalInjection, error) {
	injections, err := s.injectionRepo.ListCapitalInjections(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list capital injections", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list capital injections: %w", err)
	}
	if injections == nil {
		return []domain.CapitalInjection{}, nil
	}
	return injections, nil
}

func (s *ledgerService) GetLedgerView(ctx context.Context, userID string, params dto.LedgerQueryParams) (*domain.LedgerView, error) {
	window, err := ledger.ParseWindow(params.Window, params.Days, params.From, params.To, s.calendar)
	if err != nil {
		return nil, err
	}
	granularity, err := ledger.ParseGranularity(params.Granularity)
	if err != nil {
		return nil, err
	}

	var bankrollID *string
	if params.BankrollID != "" {
		bankrollID = &params.BankrollID
	}
	baseline, err := s.scopeBaseline(ctx, userID, bankrollID)
	if err != nil {
		return nil, err
	}
	if baseline == nil {
		return nil, apperrors.ErrBaselineNotSet
	}

	entries, expenses, err := s.loadInputs(ctx, userID, bankrollID)
	if err != nil {
		return nil, err
	}
	d := ledger.DeriveLedger(baseline, entries, expenses, s.options(window, granularity))
	return &d.View, nil
}

func (s *ledgerService) GetStreaks(ctx context.Context, userID string, bankrollID *string) (*domain.StreakReport, error) {
	if bankrollID != nil {
		if _, err := s.findBankroll(ctx, userID, *bankrollID); err != nil {
			return nil, err
		}
	}
	entries, err := s.entryRepo.ListAllBetEntries(ctx, userID, bankrollID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bet entries", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list bet entries: %w", err)
	}
	report := ledger.AnalyzeStreaks(ledger.Normalize(entries, nil).Entries)
	return &report, nil
}

// scopeBaseline returns the baseline of the user's main ledger, or of one
// bankroll when bankrollID is set. nil means not configured.
func (s *ledgerService) scopeBaseline(ctx context.Context, userID string, bankrollID *string) (*decimal.Decimal, error) {
	if bankrollID != nil {
		bankroll, err := s.findBankroll(ctx, userID, *bankrollID)
		if err != nil {
			return nil, err
		}
		b := bankroll.Baseline
		return &b, nil
	}
	baseline, err := s.GetBaseline(ctx, userID)
	if err != nil {
		return nil, err
	}
	return baseline.Amount, nil
}

func (s *ledgerService) findBankroll(ctx context.Context, userID, bankrollID string) (*domain.Bankroll, error) {
	if s.bankrollRepo == nil {
		return nil, fmt.Errorf("%w: bankrolls are not enabled", apperrors.ErrValidation)
	}
	bankroll, err := s.bankrollRepo.FindBankrollByID(ctx, userID, bankrollID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load bankroll", slog.String("bankroll_id", bankrollID))
		}
		return nil, fmt.Errorf("failed to load bankroll %s: %w", bankrollID, err)
	}
	return bankroll, nil
}

// loadInputs fetches the ledger inputs. Tip expenses are not attributed to
// bankrolls, so a bankroll-scoped load carries entries only.
func (s *ledgerService) loadInputs(ctx context.Context, userID string, bankrollID *string) ([]domain.BetEntry, []domain.TipExpense, error) {
	entries, err := s.entryRepo.ListAllBetEntries(ctx, userID, bankrollID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bet entries", slog.String("user_id", userID))
		return nil, nil, fmt.Errorf("failed to list bet entries: %w", err)
	}
	if bankrollID != nil {
		return entries, nil, nil
	}
	expenses, err := s.expenseRepo.ListTipExpenses(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tip expenses", slog.String("user_id", userID))
		return nil, nil, fmt.Errorf("failed to list tip expenses: %w", err)
	}
	return entries, expenses, nil
}

func (s *ledgerService) options(window domain.Window, granularity domain.Granularity) ledger.Options {
	return ledger.Options{
		Window:      window,
		Granularity: granularity,
		Calendar:    s.calendar,
		Now:         s.Now(),
	}
}
