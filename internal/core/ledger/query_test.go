package ledger_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/SscSPs/bet_tracker/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	cal := ledger.NewCalendar(time.UTC)

	tests := []struct {
		name    string
		kind    string
		days    int
		from    string
		to      string
		want    domain.Window
		wantErr bool
	}{
		{name: "empty defaults to all", want: domain.Window{Kind: domain.WindowAll}},
		{name: "ytd", kind: "ytd", want: domain.Window{Kind: domain.WindowYTD}},
		{name: "last days", kind: "last-n-days", days: 7, want: domain.Window{Kind: domain.WindowLastDays, Days: 7}},
		{name: "last days without days", kind: "last-n-days", wantErr: true},
		{
			name: "custom", kind: "custom", from: "2024-03-01", to: "2024-03-05",
			want: domain.Window{Kind: domain.WindowCustom, From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		},
		{name: "custom reversed", kind: "custom", from: "2024-03-05", to: "2024-03-01", wantErr: true},
		{name: "custom missing to", kind: "custom", from: "2024-03-05", wantErr: true},
		{name: "custom bad day", kind: "custom", from: "03/05/2024", to: "2024-03-06", wantErr: true},
		{name: "unknown", kind: "forever", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ledger.ParseWindow(tt.kind, tt.days, tt.from, tt.to, cal)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Kind, got.Kind)
			assert.Equal(t, tt.want.Days, got.Days)
			assert.True(t, tt.want.From.Equal(got.From))
			assert.True(t, tt.want.To.Equal(got.To))
		})
	}
}

func TestParseGranularity(t *testing.T) {
	g, err := ledger.ParseGranularity("")
	require.NoError(t, err)
	assert.Equal(t, domain.PerBet, g)

	g, err = ledger.ParseGranularity("per-day")
	require.NoError(t, err)
	assert.Equal(t, domain.PerDay, g)

	_, err = ledger.ParseGranularity("hourly")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
