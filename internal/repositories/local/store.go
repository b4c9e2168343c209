package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bet_tracker/internal/core/ports/repositories"
)

// FileStore keeps a single-user ledger in one JSON document. Every write
// replaces the whole file. The userID arguments of the repository ports are
// stamped onto returned records but never stored.
type FileStore struct {
	mu       sync.RWMutex
	filePath string
	doc      *Document
	report   LoadReport
	nowFn    func() time.Time
}

var (
	_ portsrepo.BetEntryRepositoryFacade         = (*FileStore)(nil)
	_ portsrepo.TipExpenseRepositoryFacade       = (*FileStore)(nil)
	_ portsrepo.CapitalInjectionRepositoryFacade = (*FileStore)(nil)
	_ portsrepo.BaselineRepositoryFacade         = (*FileStore)(nil)
)

// Open loads path, creating an empty document when the file does not exist.
// Legacy documents are migrated and rewritten in the current schema.
func Open(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	doc, report, err := Migrate(data)
	if err != nil {
		return nil, err
	}

	s := &FileStore{filePath: path, doc: doc, report: report, nowFn: time.Now}
	if data == nil || report.NeedsRecompute() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.persistLocked(); err != nil {
			return nil, fmt.Errorf("initialize data file: %w", err)
		}
	}
	return s, nil
}

// Report returns what happened while the document was loaded.
func (s *FileStore) Report() LoadReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// Snapshot returns a copy of the current document.
func (s *FileStore) Snapshot() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneLocked()
}

func (s *FileStore) cloneLocked() Document {
	cp := *s.doc
	cp.Entries = slices.Clone(s.doc.Entries)
	cp.Injections = slices.Clone(s.doc.Injections)
	cp.TipExpenses = slices.Clone(s.doc.TipExpenses)
	return cp
}

// mutate applies fn to a copy of the document and swaps it in only once the
// file has been written.
func (s *FileStore) mutate(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cloneLocked()
	if err := fn(&next); err != nil {
		return err
	}
	prev := s.doc
	s.doc = &next
	if err := s.persistLocked(); err != nil {
		s.doc = prev
		return err
	}
	return nil
}

func (s *FileStore) persistLocked() error {
	s.doc.SchemaVersion = SchemaVersion
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal data: %w", err)
	}
	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp data file: %w", err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// Bet entries

func (s *FileStore) FindBetEntryByID(_ context.Context, userID, entryID string) (*domain.BetEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.doc.Entries {
		if rec.ID == entryID {
			e := rec.toDomain(userID)
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *FileStore) ListBetEntries(_ context.Context, userID string, params portsrepo.ListBetEntriesParams) ([]domain.BetEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.entriesLocked(userID, params.BankrollID)
	slices.SortStableFunc(entries, func(a, b domain.BetEntry) int {
		return -compareEntryKey(a.Date, a.EntryID, b.Date, b.EntryID)
	})
	out := make([]domain.BetEntry, 0, len(entries))
	for _, e := range entries {
		if params.After != nil && compareEntryKey(e.Date, e.EntryID, params.After.Date, params.After.EntryID) >= 0 {
			continue
		}
		out = append(out, e)
		if params.Limit > 0 && len(out) == params.Limit {
			break
		}
	}
	return out, nil
}

func (s *FileStore) ListAllBetEntries(_ context.Context, userID string, bankrollID *string) ([]domain.BetEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Same-timestamp entries keep document (insertion) order.
	entries := s.entriesLocked(userID, bankrollID)
	slices.SortStableFunc(entries, func(a, b domain.BetEntry) int {
		return a.Date.Compare(b.Date)
	})
	return entries, nil
}

func (s *FileStore) entriesLocked(userID string, bankrollID *string) []domain.BetEntry {
	entries := make([]domain.BetEntry, 0, len(s.doc.Entries))
	for _, rec := range s.doc.Entries {
		if bankrollID != nil && (rec.BankrollID == nil || *rec.BankrollID != *bankrollID) {
			continue
		}
		entries = append(entries, rec.toDomain(userID))
	}
	return entries
}

func compareEntryKey(aDate time.Time, aID string, bDate time.Time, bID string) int {
	if c := aDate.Compare(bDate); c != 0 {
		return c
	}
	return strings.Compare(aID, bID)
}

func (s *FileStore) SaveBetEntry(ctx context.Context, entry domain.BetEntry) error {
	return s.SaveBetEntries(ctx, []domain.BetEntry{entry})
}

func (s *FileStore) SaveBetEntries(_ context.Context, entries []domain.BetEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return s.mutate(func(doc *Document) error {
		ids := make(map[string]struct{}, len(doc.Entries)+len(entries))
		for _, rec := range doc.Entries {
			ids[rec.ID] = struct{}{}
		}
		for _, e := range entries {
			if _, dup := ids[e.EntryID]; dup {
				return fmt.Errorf("bet entry %s: %w", e.EntryID, apperrors.ErrDuplicate)
			}
			ids[e.EntryID] = struct{}{}
			doc.Entries = append(doc.Entries, toEntryRecord(e))
		}
		return nil
	})
}

func (s *FileStore) UpdateBetEntry(_ context.Context, entry domain.BetEntry) error {
	return s.mutate(func(doc *Document) error {
		for i, rec := range doc.Entries {
			if rec.ID == entry.EntryID {
				doc.Entries[i] = toEntryRecord(entry)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}

func (s *FileStore) DeleteBetEntry(_ context.Context, _, entryID string) error {
	return s.mutate(func(doc *Document) error {
		for i, rec := range doc.Entries {
			if rec.ID == entryID {
				doc.Entries = slices.Delete(doc.Entries, i, i+1)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}

// Tip expenses

func (s *FileStore) FindTipExpenseByID(_ context.Context, userID, expenseID string) (*domain.TipExpense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.doc.TipExpenses {
		if rec.ID == expenseID {
			t := rec.toDomain(userID)
			return &t, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *FileStore) ListTipExpenses(_ context.Context, userID string) ([]domain.TipExpense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	expenses := make([]domain.TipExpense, 0, len(s.doc.TipExpenses))
	for _, rec := range s.doc.TipExpenses {
		expenses = append(expenses, rec.toDomain(userID))
	}
	slices.SortStableFunc(expenses, func(a, b domain.TipExpense) int {
		return a.Date.Compare(b.Date)
	})
	return expenses, nil
}

func (s *FileStore) SaveTipExpense(_ context.Context, expense domain.TipExpense) error {
	return s.mutate(func(doc *Document) error {
		for _, rec := range doc.TipExpenses {
			if rec.ID == expense.ExpenseID {
				return fmt.Errorf("tip expense %s: %w", expense.ExpenseID, apperrors.ErrDuplicate)
			}
		}
		doc.TipExpenses = append(doc.TipExpenses, toTipExpenseRecord(expense))
		return nil
	})
}

func (s *FileStore) UpdateTipExpense(_ context.Context, expense domain.TipExpense) error {
	return s.mutate(func(doc *Document) error {
		for i, rec := range doc.TipExpenses {
			if rec.ID == expense.ExpenseID {
				doc.TipExpenses[i] = toTipExpenseRecord(expense)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}

func (s *FileStore) DeleteTipExpense(_ context.Context, _, expenseID string) error {
	return s.mutate(func(doc *Document) error {
		for i, rec := range doc.TipExpenses {
			if rec.ID == expenseID {
				doc.TipExpenses = slices.Delete(doc.TipExpenses, i, i+1)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}

// Capital injections

func (s *FileStore) ListCapitalInjections(_ context.Context, userID string) ([]domain.CapitalInjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	injections := make([]domain.CapitalInjection, 0, len(s.doc.Injections))
	for _, rec := range s.doc.Injections {
		injections = append(injections, rec.toDomain(userID))
	}
	return injections, nil
}

func (s *FileStore) ReplaceCapitalInjections(_ context.Context, _ string, injections []domain.CapitalInjection) error {
	return s.mutate(func(doc *Document) error {
		doc.Injections = make([]InjectionRecord, 0, len(injections))
		for _, inj := range injections {
			doc.Injections = append(doc.Injections, toInjectionRecord(inj))
		}
		return nil
	})
}

// Baseline

func (s *FileStore) FindBaseline(_ context.Context, userID string) (*domain.Baseline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc.Baseline == nil && s.doc.BaselineUpdatedAt == nil {
		return nil, apperrors.ErrNotFound
	}
	baseline := domain.Baseline{UserID: userID}
	if s.doc.Baseline != nil {
		amount := *s.doc.Baseline
		baseline.Amount = &amount
	}
	if s.doc.BaselineUpdatedAt != nil {
		baseline.LastUpdatedAt = *s.doc.BaselineUpdatedAt
	}
	return &baseline, nil
}

func (s *FileStore) SaveBaseline(_ context.Context, baseline domain.Baseline) error {
	return s.mutate(func(doc *Document) error {
		doc.Baseline = nil
		if baseline.Amount != nil {
			amount := *baseline.Amount
			doc.Baseline = &amount
		}
		updated := baseline.LastUpdatedAt
		if updated.IsZero() {
			updated = s.nowFn()
		}
		updated = updated.UTC()
		doc.BaselineUpdatedAt = &updated
		return nil
	})
}
