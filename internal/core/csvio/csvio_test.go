package csvio_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/SscSPs/bet_tracker/internal/core/csvio"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func fixedNow() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }

func importOpts() csvio.ImportOptions {
	return csvio.ImportOptions{UserID: "user-1", NewID: sequentialIDs(), Now: fixedNow}
}

func TestImport_RecomputesNet(t *testing.T) {
	data := "date,betAmount,winningAmount,net,notes\n" +
		"2024-03-01T12:00:00Z,100,250,999,parlay\n" +
		"2024-03-02T12:00:00Z,40,0,-40,\n"

	res, err := csvio.Import(strings.NewReader(data), nil, importOpts())
	require.NoError(t, err)
	require.Len(t, res.Entries, 2)

	assert.Equal(t, 2, res.Imported)
	assert.True(t, res.Entries[0].Net.Equal(decimal.NewFromInt(150)), "net must be recomputed, got %s", res.Entries[0].Net)
	assert.True(t, res.Entries[1].Net.Equal(decimal.NewFromInt(-40)))
	assert.Equal(t, "parlay", res.Entries[0].Notes)
	assert.Equal(t, "id-1", res.Entries[0].EntryID)
	assert.Equal(t, "user-1", res.Entries[0].UserID)
	assert.Equal(t, fixedNow(), res.Entries[0].CreatedAt)
}

func TestImport_CountsDuplicatesAndInvalidRows(t *testing.T) {
	existing := []domain.BetEntry{{
		EntryID:       "existing",
		Date:          time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		BetAmount:     decimal.NewFromInt(100),
		WinningAmount: decimal.NewFromInt(250),
		Net:           decimal.NewFromInt(150),
		Notes:         "parlay",
	}}
	data := "date,betAmount,winningAmount,net,notes\n" +
		"2024-03-01T12:00:00Z,100,250,150,parlay\n" + // duplicate of existing
		"2024-03-03T12:00:00Z,10,0,-10,single\n" +
		"2024-03-03T12:00:00Z,10,0,-10,single\n" + // duplicate within the file
		",10,0,-10,no date\n" +
		"2024-03-04T12:00:00Z,ten,0,-10,bad amount\n" +
		"2024-03-05T12:00:00Z,-5,0,-5,negative\n" +
		"not a date,5,0,-5,bad date\n"

	res, err := csvio.Import(strings.NewReader(data), existing, importOpts())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 2, res.Duplicates)
	assert.Equal(t, 4, res.Invalid)
	require.Len(t, res.InvalidRows, 4)
	assert.Equal(t, 5, res.InvalidRows[0].Line)
	assert.Equal(t, "missing date", res.InvalidRows[0].Reason)
	assert.Equal(t, "1 imported, 2 duplicates skipped, 4 invalid rows skipped", res.Summary())
}

func TestImport_HeaderIsCaseInsensitiveAndOrderIndependent(t *testing.T) {
	data := "Notes,NET,WinningAmount,BetAmount,Date\n" +
		"late game,0,20,20,2024-03-01 21:30\n"
	est := time.FixedZone("EST", -5*3600)
	opts := importOpts()
	opts.Location = est

	res, err := csvio.Import(strings.NewReader(data), nil, opts)
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)

	e := res.Entries[0]
	assert.True(t, e.Date.Equal(time.Date(2024, 3, 2, 2, 30, 0, 0, time.UTC)))
	assert.True(t, e.IsPush())
	assert.Equal(t, "late game", e.Notes)
}

func TestImport_MissingHeader(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty input", data: ""},
		{name: "missing net column", data: "date,betAmount,winningAmount\n2024-03-01,1,2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := csvio.Import(strings.NewReader(tt.data), nil, importOpts())
			require.Error(t, err)
			assert.ErrorIs(t, err, csvio.ErrMissingHeader)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestImport_SkipsBlankLines(t *testing.T) {
	data := "date,betAmount,winningAmount,net,notes\n\n2024-03-01,5,10,5,x\n,,,,\n"
	res, err := csvio.Import(strings.NewReader(data), nil, importOpts())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Zero(t, res.Invalid)
	assert.Equal(t, "1 imported", res.Summary())
}

func TestExport_ChronologicalRoundTrip(t *testing.T) {
	entries := []domain.BetEntry{
		{EntryID: "b", Date: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC), BetAmount: decimal.NewFromInt(30), WinningAmount: decimal.Zero, Notes: "second"},
		{EntryID: "a", Date: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), BetAmount: decimal.RequireFromString("12.50"), WinningAmount: decimal.NewFromInt(25), Notes: "first, with comma"},
	}
	for i := range entries {
		entries[i].RecomputeNet()
	}

	var buf bytes.Buffer
	require.NoError(t, csvio.Export(&buf, entries, time.UTC))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,betAmount,winningAmount,net,notes", lines[0])
	assert.Equal(t, `2024-03-01T09:00:00Z,12.5,25,12.5,"first, with comma"`, lines[1])
	assert.Equal(t, "2024-03-02T09:00:00Z,30,0,-30,second", lines[2])

	res, err := csvio.Import(bytes.NewReader(buf.Bytes()), nil, importOpts())
	require.NoError(t, err)
	require.Len(t, res.Entries, 2)
	assert.True(t, res.Entries[0].Date.Equal(entries[1].Date))
	assert.True(t, res.Entries[0].Net.Equal(entries[1].Net))
	assert.Equal(t, entries[1].Notes, res.Entries[0].Notes)
	assert.True(t, res.Entries[1].Net.Equal(entries[0].Net))

	again, err := csvio.Import(bytes.NewReader(buf.Bytes()), entries, importOpts())
	require.NoError(t, err)
	assert.Zero(t, again.Imported)
	assert.Equal(t, 2, again.Duplicates)
}
