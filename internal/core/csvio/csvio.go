// Package csvio reads and writes bet entries in the ledger's CSV format:
// date, betAmount, winningAmount, net, notes.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Columns is the header written on export and expected on import.
var Columns = []string{"date", "betAmount", "winningAmount", "net", "notes"}

var requiredColumns = []string{"date", "betAmount", "winningAmount", "net"}

// Accepted date layouts, tried in order. Layouts without an offset are read in
// the importer's location.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
}

// ErrMissingHeader is returned when the file has no usable header row.
var ErrMissingHeader = fmt.Errorf("%w: csv header row with date, betAmount, winningAmount, net is required", apperrors.ErrValidation)

// RowError describes why a row was skipped.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportResult reports what an import accepted and skipped.
type ImportResult struct {
	Entries     []domain.BetEntry `json:"-"`
	Imported    int               `json:"imported"`
	Duplicates  int               `json:"duplicates"`
	Invalid     int               `json:"invalid"`
	InvalidRows []RowError        `json:"invalidRows,omitempty"`
}

// Summary phrases the result for users, e.g. "2 imported, 3 duplicates skipped, 1 invalid row skipped".
func (r ImportResult) Summary() string {
	parts := []string{fmt.Sprintf("%d imported", r.Imported)}
	if r.Duplicates > 0 {
		parts = append(parts, fmt.Sprintf("%d %s skipped", r.Duplicates, plural(r.Duplicates, "duplicate", "duplicates")))
	}
	if r.Invalid > 0 {
		parts = append(parts, fmt.Sprintf("%d %s skipped", r.Invalid, plural(r.Invalid, "invalid row", "invalid rows")))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// ImportOptions configures an import.
type ImportOptions struct {
	UserID     string
	BankrollID *string
	Location   *time.Location   // Used for dates without an offset; UTC when nil
	NewID      func() string    // Entry id generator; uuid.NewString when nil
	Now        func() time.Time // Audit timestamp source; time.Now when nil
}

// Import parses CSV rows into bet entries. Rows missing a date or carrying a
// non-numeric or negative amount are counted as invalid; rows whose
// (date, notes, net) key matches an existing entry or an earlier row are
// counted as duplicates. Net is always recomputed from the amounts. Only a
// missing header or an unreadable stream fails the whole import.
func Import(r io.Reader, existing []domain.BetEntry, opts ImportOptions) (ImportResult, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ImportResult{}, ErrMissingHeader
		}
		return ImportResult{}, fmt.Errorf("failed to read csv header: %w", err)
	}
	index, err := headerIndex(header)
	if err != nil {
		return ImportResult{}, err
	}

	seen := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		seen[e.DedupKey()] = struct{}{}
	}

	result := ImportResult{Entries: []domain.BetEntry{}}
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				result.Invalid++
				result.InvalidRows = append(result.InvalidRows, RowError{Line: line, Reason: parseErr.Err.Error()})
				continue
			}
			return result, fmt.Errorf("failed to read csv row %d: %w", line, err)
		}
		if isBlank(record) {
			continue
		}

		entry, reason := parseRow(record, index, loc)
		if reason != "" {
			result.Invalid++
			result.InvalidRows = append(result.InvalidRows, RowError{Line: line, Reason: reason})
			continue
		}
		key := entry.DedupKey()
		if _, dup := seen[key]; dup {
			result.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		ts := now()
		entry.EntryID = newID()
		entry.UserID = opts.UserID
		entry.BankrollID = opts.BankrollID
		entry.AuditFields = domain.AuditFields{
			CreatedAt:     ts,
			CreatedBy:     opts.UserID,
			LastUpdatedAt: ts,
			LastUpdatedBy: opts.UserID,
		}
		result.Entries = append(result.Entries, entry)
		result.Imported++
	}
	return result, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		index[name] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[strings.ToLower(col)]; !ok {
			return nil, ErrMissingHeader
		}
	}
	return index, nil
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[strings.ToLower(name)]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func parseRow(record []string, index map[string]int, loc *time.Location) (domain.BetEntry, string) {
	rawDate := field(record, index, "date")
	if rawDate == "" {
		return domain.BetEntry{}, "missing date"
	}
	date, err := ParseDate(rawDate, loc)
	if err != nil {
		return domain.BetEntry{}, fmt.Sprintf("unparseable date %q", rawDate)
	}

	amounts := make(map[string]decimal.Decimal, 3)
	for _, col := range []string{"betAmount", "winningAmount", "net"} {
		raw := field(record, index, col)
		v, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			return domain.BetEntry{}, fmt.Sprintf("non-numeric %s %q", col, raw)
		}
		amounts[col] = v
	}
	if amounts["betAmount"].IsNegative() || amounts["winningAmount"].IsNegative() {
		return domain.BetEntry{}, "amounts must not be negative"
	}

	entry := domain.BetEntry{
		Date:          date,
		BetAmount:     amounts["betAmount"],
		WinningAmount: amounts["winningAmount"],
		Notes:         field(record, index, "notes"),
	}
	entry.RecomputeNet()
	return entry, ""
}

// ParseDate parses a CSV date cell, truncated to whole seconds.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.Truncate(time.Second), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable date %q", apperrors.ErrValidation, raw)
}

// Export writes entries as CSV, one row per entry, in ascending date order.
// Dates are written as RFC3339 in loc.
func Export(w io.Writer, entries []domain.BetEntry, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	sorted := make([]domain.BetEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, e := range sorted {
		row := []string{
			e.Date.In(loc).Format(time.RFC3339),
			e.BetAmount.String(),
			e.WinningAmount.String(),
			domain.ComputeNet(e.BetAmount, e.WinningAmount).String(),
			e.Notes,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for entry %s: %w", e.EntryID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
