package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/SscSPs/bet_tracker/internal/core/csvio"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bet_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bet_tracker/internal/core/ports/services"
	"github.com/SscSPs/bet_tracker/internal/dto"
	"github.com/SscSPs/bet_tracker/internal/utils/pagination"
	"github.com/google/uuid"
)

// betEntryService implements the BetEntrySvcFacade interface
type betEntryService struct {
	BaseService
	entryRepo    portsrepo.BetEntryRepositoryFacade
	ledger       portssvc.LedgerRecomputer
	bankrollRepo portsrepo.BankrollReader
	location     *time.Location
}

// BetEntryServiceOption is a functional option for configuring the bet entry service
type BetEntryServiceOption func(*betEntryService)

// WithEntryLocation sets the time zone used for CSV dates without an offset and for export.
func WithEntryLocation(loc *time.Location) BetEntryServiceOption {
	return func(s *betEntryService) {
		s.location = loc
	}
}

// WithEntryBankrollReader makes the service reject entries pointing at unknown bankrolls.
func WithEntryBankrollReader(repo portsrepo.BankrollReader) BetEntryServiceOption {
	return func(s *betEntryService) {
		s.bankrollRepo = repo
	}
}

// WithEntryClock overrides the time source used for audit fields.
func WithEntryClock(clock func() time.Time) BetEntryServiceOption {
	return func(s *betEntryService) {
		s.Clock = clock
	}
}

// NewBetEntryService creates a new bet entry service with the provided options
func NewBetEntryService(repo portsrepo.BetEntryRepositoryFacade, recomputer portssvc.LedgerRecomputer, options ...BetEntryServiceOption) portssvc.BetEntrySvcFacade {
	svc := &betEntryService{
		entryRepo: repo,
		ledger:    recomputer,
		location:  time.UTC,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BetEntrySvcFacade = (*betEntryService)(nil)

func (s *betEntryService) CreateBetEntry(ctx context.Context, userID string, req dto.CreateBetEntryRequest) (*domain.BetEntry, error) {
	if err := s.validateRequest(ctx, userID, req); err != nil {
		return nil, err
	}

	now := s.Now()
	entry := domain.BetEntry{
		EntryID:       uuid.NewString(),
		UserID:        userID,
		Date:          req.Date.Truncate(time.Second),
		BetAmount:     *req.BetAmount,
		WinningAmount: *req.WinningAmount,
		Notes:         strings.TrimSpace(req.Notes),
		Sport:         req.Sport,
		League:        req.League,
		BetType:       req.BetType,
		BankrollID:    req.BankrollID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	entry.RecomputeNet()

	if err := s.entryRepo.SaveBetEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save bet entry", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to save bet entry: %w", err)
	}
	if err := s.recompute(ctx, userID); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Bet entry created", slog.String("entry_id", entry.EntryID), slog.String("net", entry.Net.String()))
	return &entry, nil
}

func (s *betEntryService) GetBetEntry(ctx context.Context, userID, entryID string) (*domain.BetEntry, error) {
	entry, err := s.entryRepo.FindBetEntryByID(ctx, userID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get bet entry", slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to get bet entry %s: %w", entryID, err)
	}
	return entry, nil
}

func (s *betEntryService) ListBetEntries(ctx context.Context, userID string, params dto.ListBetEntriesParams) (*dto.ListBetEntriesResponse, error) {
	limit := pagination.ClampLimit(params.Limit)
	repoParams := portsrepo.ListBetEntriesParams{Limit: limit + 1}
	if params.BankrollID != "" {
		repoParams.BankrollID = &params.BankrollID
	}
	if params.NextToken != "" {
		date, id, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		repoParams.After = &portsrepo.EntryCursor{Date: date, EntryID: id}
	}

	entries, err := s.entryRepo.ListBetEntries(ctx, userID, repoParams)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bet entries", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list bet entries: %w", err)
	}

	res := &dto.ListBetEntriesResponse{}
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeToken(last.Date, last.EntryID)
		res.NextToken = &token
	}
	res.Entries = dto.ToBetEntryResponses(entries)
	return res, nil
}

func (s *betEntryService) UpdateBetEntry(ctx context.Context, userID, entryID string, req dto.UpdateBetEntryRequest) (*domain.BetEntry, error) {
	createReq := dto.CreateBetEntryRequest(req)
	if err := s.validateRequest(ctx, userID, createReq); err != nil {
		return nil, err
	}
	existing, err := s.GetBetEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Date = req.Date.Truncate(time.Second)
	updated.BetAmount = *req.BetAmount
	updated.WinningAmount = *req.WinningAmount
	updated.Notes = strings.TrimSpace(req.Notes)
	updated.Sport = req.Sport
	updated.League = req.League
	updated.BetType = req.BetType
	updated.BankrollID = req.BankrollID
	updated.LastUpdatedAt = s.Now()
	updated.LastUpdatedBy = userID
	updated.RecomputeNet()

	if err := s.entryRepo.UpdateBetEntry(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update bet entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update bet entry %s: %w", entryID, err)
	}
	if err := s.recompute(ctx, userID); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Bet entry updated", slog.String("entry_id", entryID))
	return &updated, nil
}

func (s *betEntryService) DeleteBetEntry(ctx context.Context, userID, entryID string) error {
	if err := s.entryRepo.DeleteBetEntry(ctx, userID, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete bet entry", slog.String("entry_id", entryID))
		}
		return fmt.Errorf("failed to delete bet entry %s: %w", entryID, err)
	}
	if err := s.recompute(ctx, userID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Bet entry deleted", slog.String("entry_id", entryID))
	return nil
}

func (s *betEntryService) ImportBetEntries(ctx context.Context, userID string, bankrollID *string, r io.Reader) (*csvio.ImportResult, error) {
	if err := s.checkBankroll(ctx, userID, bankrollID); err != nil {
		return nil, err
	}
	existing, err := s.entryRepo.ListAllBetEntries(ctx, userID, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bet entries for import", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list existing bet entries: %w", err)
	}

	result, err := csvio.Import(r, existing, csvio.ImportOptions{
		UserID:     userID,
		BankrollID: bankrollID,
		Location:   s.location,
		Now:        s.Now,
	})
	if err != nil {
		s.LogError(ctx, err, "CSV import rejected", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to import csv: %w", err)
	}

	if len(result.Entries) > 0 {
		if err := s.entryRepo.SaveBetEntries(ctx, result.Entries); err != nil {
			s.LogError(ctx, err, "Failed to save imported bet entries", slog.Int("count", len(result.Entries)))
			return nil, fmt.Errorf("failed to save imported bet entries: %w", err)
		}
		if err := s.recompute(ctx, userID); err != nil {
			return nil, err
		}
	}

	s.LogInfo(ctx, "CSV import finished",
		slog.String("user_id", userID),
		slog.Int("imported", result.Imported),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("invalid", result.Invalid))
	return &result, nil
}

func (s *betEntryService) ExportBetEntries(ctx context.Context, userID string, bankrollID *string, w io.Writer) error {
	entries, err := s.entryRepo.ListAllBetEntries(ctx, userID, bankrollID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bet entries for export", slog.String("user_id", userID))
		return fmt.Errorf("failed to list bet entries: %w", err)
	}
	if err := csvio.Export(w, entries, s.location); err != nil {
		s.LogError(ctx, err, "Failed to write csv export", slog.String("user_id", userID))
		return err
	}
	return nil
}

func (s *betEntryService) validateRequest(ctx context.Context, userID string, req dto.CreateBetEntryRequest) error {
	if req.BetAmount == nil || req.WinningAmount == nil {
		return fmt.Errorf("%w: betAmount and winningAmount are required", apperrors.ErrValidation)
	}
	if req.BetAmount.IsNegative() || req.WinningAmount.IsNegative() {
		return fmt.Errorf("%w: amounts must not be negative", apperrors.ErrValidation)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	return s.checkBankroll(ctx, userID, req.BankrollID)
}

func (s *betEntryService) checkBankroll(ctx context.Context, userID string, bankrollID *string) error {
	if bankrollID == nil || s.bankrollRepo == nil {
		return nil
	}
	if _, err := s.bankrollRepo.FindBankrollByID(ctx, userID, *bankrollID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: unknown bankroll %s", apperrors.ErrValidation, *bankrollID)
		}
		return fmt.Errorf("failed to check bankroll %s: %w", *bankrollID, err)
	}
	return nil
}

func (s *betEntryService) recompute(ctx context.Context, userID string) error {
	if s.ledger == nil {
		return nil
	}
	if _, err := s.ledger.Recompute(ctx, userID); err != nil {
		return fmt.Errorf("failed to recompute ledger: %w", err)
	}
	return nil
}
