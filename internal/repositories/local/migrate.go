package local

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Legacy version 0 keys. Injections went through several abandoned keys;
// the highest suffix present wins.
const (
	legacyEntriesKey     = "bt.entries"
	legacyBaselineKey    = "bt.baseline"
	legacyInjectionsKey  = "bt.injections"
	legacyTipExpensesKey = "bt.tipExpenses"
)

// ErrUnsupportedVersion is returned for documents written by a newer build.
var ErrUnsupportedVersion = errors.New("unsupported schema version")

// SectionError reports a section that failed to decode or validate and was cleared.
type SectionError struct {
	Section string
	Err     error
}

func (e SectionError) Error() string {
	return e.Section + ": " + e.Err.Error()
}

// LoadReport describes what happened while bringing a stored document up to date.
type LoadReport struct {
	FromVersion int
	Migrated    bool
	Cleared     []SectionError
}

// NeedsRecompute reports whether derived data may be stale after the load.
func (r LoadReport) NeedsRecompute() bool {
	return r.Migrated || len(r.Cleared) > 0
}

// sections holds the raw JSON of each section before validation.
type sections struct {
	version     int
	baseline    json.RawMessage
	baselineAt  json.RawMessage
	entries     json.RawMessage
	injections  json.RawMessage
	tipExpenses json.RawMessage
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Validate decimals numerically so gte/gt tags apply to them.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Migrate parses a stored document of any known version and returns it at
// SchemaVersion. Each section is validated on its own: a section that fails is
// cleared and reported while its siblings are kept. Only a document that is
// not JSON at all, or is from a newer schema, is an error.
func Migrate(data []byte) (*Document, LoadReport, error) {
	report := LoadReport{}
	doc := &Document{
		SchemaVersion: SchemaVersion,
		Entries:       []EntryRecord{},
		Injections:    []InjectionRecord{},
		TipExpenses:   []TipExpenseRecord{},
	}
	if len(bytes.TrimSpace(data)) == 0 {
		report.FromVersion = SchemaVersion
		return doc, report, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, report, fmt.Errorf("parse document: %w", err)
	}

	secs, err := splitSections(top)
	if err != nil {
		return nil, report, err
	}
	report.FromVersion = secs.version
	report.Migrated = secs.version != SchemaVersion

	if err := decodeBaseline(secs.baseline, doc); err != nil {
		report.Cleared = append(report.Cleared, SectionError{Section: SectionBaseline, Err: err})
	}
	if len(secs.baselineAt) > 0 {
		if err := json.Unmarshal(secs.baselineAt, &doc.BaselineUpdatedAt); err != nil {
			doc.BaselineUpdatedAt = nil
			report.Cleared = append(report.Cleared, SectionError{Section: SectionBaselineUpdatedAt, Err: fmt.Errorf("decode: %w", err)})
		}
	}
	if err := decodeSection(secs.entries, &doc.Entries); err != nil {
		doc.Entries = []EntryRecord{}
		report.Cleared = append(report.Cleared, SectionError{Section: SectionEntries, Err: err})
	}
	if err := decodeSection(secs.injections, &doc.Injections); err != nil {
		doc.Injections = []InjectionRecord{}
		report.Cleared = append(report.Cleared, SectionError{Section: SectionInjections, Err: err})
	}
	if err := decodeSection(secs.tipExpenses, &doc.TipExpenses); err != nil {
		doc.TipExpenses = []TipExpenseRecord{}
		report.Cleared = append(report.Cleared, SectionError{Section: SectionTipExpenses, Err: err})
	}
	return doc, report, nil
}

func splitSections(top map[string]json.RawMessage) (sections, error) {
	rawVersion, versioned := top["schemaVersion"]
	if !versioned {
		return legacySections(top), nil
	}
	var version int
	if err := json.Unmarshal(rawVersion, &version); err != nil {
		return sections{}, fmt.Errorf("parse schemaVersion: %w", err)
	}
	if version > SchemaVersion || version < 1 {
		return sections{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	return sections{
		version:     version,
		baseline:    top[SectionBaseline],
		baselineAt:  top[SectionBaselineUpdatedAt],
		entries:     top[SectionEntries],
		injections:  top[SectionInjections],
		tipExpenses: top[SectionTipExpenses],
	}, nil
}

// legacySections reads version 0 documents. Values may hold the payload
// directly or as a JSON-encoded string.
func legacySections(top map[string]json.RawMessage) sections {
	secs := sections{
		version:     0,
		baseline:    unwrapString(top[legacyBaselineKey]),
		entries:     unwrapString(top[legacyEntriesKey]),
		tipExpenses: unwrapString(top[legacyTipExpensesKey]),
	}
	latest := -1
	for key, raw := range top {
		n, ok := injectionsKeyVersion(key)
		if !ok || n <= latest {
			continue
		}
		latest = n
		secs.injections = unwrapString(raw)
	}
	return secs
}

// injectionsKeyVersion returns N for "bt.injections.vN" and 0 for the bare key.
func injectionsKeyVersion(key string) (int, bool) {
	if key == legacyInjectionsKey {
		return 0, true
	}
	suffix, ok := strings.CutPrefix(key, legacyInjectionsKey+".v")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func unwrapString(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return trimmed
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return trimmed
	}
	return json.RawMessage(s)
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func decodeBaseline(raw json.RawMessage, doc *Document) error {
	if isNull(raw) {
		return nil
	}
	var amount decimal.Decimal
	if err := json.Unmarshal(raw, &amount); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	doc.Baseline = &amount
	return nil
}

type record interface {
	recordID() string
}

// decodeSection unmarshals a list section and validates each record.
func decodeSection[T record](raw json.RawMessage, out *[]T) error {
	if isNull(raw) {
		*out = []T{}
		return nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	seen := make(map[string]struct{}, len(records))
	for i := range records {
		if err := validate.Struct(&records[i]); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		id := records[i].recordID()
		if _, dup := seen[id]; dup {
			return fmt.Errorf("record %d: duplicate id %q", i, id)
		}
		seen[id] = struct{}{}
	}
	*out = records
	return nil
}
