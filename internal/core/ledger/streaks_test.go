package ledger_test

import (
	"testing"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/SscSPs/bet_tracker/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entriesWithNets builds one entry per hour with the given signs: 1 win, 0 push, -1 loss.
func entriesWithNets(signs ...int) []domain.BetEntry {
	out := make([]domain.BetEntry, len(signs))
	for i, s := range signs {
		switch s {
		case 1:
			out[i] = bet("", i, "1", "2")
		case 0:
			out[i] = bet("", i, "1", "1")
		default:
			out[i] = bet("", i, "1", "0")
		}
	}
	return out
}

func TestAnalyzeStreaks_PushesAreAbsorbed(t *testing.T) {
	report := ledger.AnalyzeStreaks(entriesWithNets(1, 0, 1, -1, -1, 0, -1))

	require.Len(t, report.Streaks, 3)
	assert.Equal(t, domain.WinStreak, report.Streaks[0].Kind)
	assert.Equal(t, 2, report.Streaks[0].Length)
	assert.Equal(t, 1, report.Streaks[0].Pushes)
	assert.Equal(t, domain.LossStreak, report.Streaks[1].Kind)
	assert.Equal(t, 2, report.Streaks[1].Length)
	assert.Equal(t, domain.LossStreak, report.Streaks[2].Kind)
	assert.Equal(t, 1, report.Streaks[2].Length)

	assert.Equal(t, 2, report.LongestWin)
	assert.Equal(t, 2, report.LongestLoss)
	require.NotNil(t, report.Current)
	assert.Equal(t, domain.LossStreak, report.Current.Kind)
	assert.Equal(t, 1, report.Current.Length)

	require.Len(t, report.Distribution, 10)
	assert.Equal(t, domain.StreakBucket{Length: 1, Losses: 1}, report.Distribution[0])
	assert.Equal(t, domain.StreakBucket{Length: 2, Wins: 1, Losses: 1}, report.Distribution[1])
}

func TestAnalyzeStreaks_LeadingPushesNeverStartAStreak(t *testing.T) {
	report := ledger.AnalyzeStreaks(entriesWithNets(0, 0, -1, 1))

	require.Len(t, report.Streaks, 2)
	assert.Equal(t, domain.LossStreak, report.Streaks[0].Kind)
	assert.Equal(t, 1, report.Streaks[0].Length)
	assert.Equal(t, 0, report.Streaks[0].Pushes)
}

func TestAnalyzeStreaks_HistogramCapsAtTenBuckets(t *testing.T) {
	signs := make([]int, 0, 14)
	for i := 0; i < 12; i++ {
		signs = append(signs, 1)
	}
	signs = append(signs, -1, -1)

	report := ledger.AnalyzeStreaks(entriesWithNets(signs...))

	assert.Equal(t, 12, report.LongestWin)
	last := report.Distribution[9]
	assert.Equal(t, 10, last.Length)
	assert.True(t, last.OrMore)
	assert.Equal(t, 1, last.Wins)
	assert.Equal(t, 1, report.Distribution[1].Losses)
}

func TestAnalyzeStreaks_Empty(t *testing.T) {
	report := ledger.AnalyzeStreaks(nil)

	assert.Empty(t, report.Streaks)
	assert.Nil(t, report.Current)
	assert.Len(t, report.Distribution, 10)
	assert.Zero(t, report.LongestWin)
}

func TestAnalyzeStreaks_TrailingPushEndsLossRun(t *testing.T) {
	report := ledger.AnalyzeStreaks(entriesWithNets(-1, -1, 0))

	require.Len(t, report.Streaks, 1)
	assert.Nil(t, report.Current)
}
