package ledger

import "github.com/SscSPs/bet_tracker/internal/core/domain"

// streakBuckets caps the length histogram; the last bucket holds every longer streak.
const streakBuckets = 10

// AnalyzeStreaks partitions chronologically sorted entries into maximal runs of
// same-sign net. A push never opens a streak and never adds to a length: it
// extends a winning run (counted in Pushes) and closes a losing one. The
// asymmetry is intentional: [+1,0,+1,-1,-1,0,-1] yields win:2, loss:2, loss:1.
func AnalyzeStreaks(entries []domain.BetEntry) domain.StreakReport {
	report := domain.StreakReport{Streaks: []domain.Streak{}}
	var cur *domain.Streak

	closeCurrent := func() {
		if cur != nil && cur.Length > 0 {
			report.Streaks = append(report.Streaks, *cur)
		}
		cur = nil
	}

	for _, e := range entries {
		switch {
		case e.IsWin(), e.IsLoss():
			kind := domain.LossStreak
			if e.IsWin() {
				kind = domain.WinStreak
			}
			if cur == nil || cur.Kind != kind {
				closeCurrent()
				cur = &domain.Streak{Kind: kind, StartDate: e.Date}
			}
			cur.Length++
			cur.EndDate = e.Date
		default:
			if cur == nil {
				continue
			}
			if cur.Kind == domain.WinStreak {
				cur.Pushes++
				cur.EndDate = e.Date
				continue
			}
			closeCurrent()
		}
	}
	if cur != nil {
		last := *cur
		report.Current = &last
	}
	closeCurrent()

	report.Distribution = make([]domain.StreakBucket, streakBuckets)
	for i := range report.Distribution {
		report.Distribution[i].Length = i + 1
	}
	report.Distribution[streakBuckets-1].OrMore = true

	for _, s := range report.Streaks {
		idx := s.Length - 1
		if idx >= streakBuckets {
			idx = streakBuckets - 1
		}
		if s.Kind == domain.WinStreak {
			report.Distribution[idx].Wins++
			if s.Length > report.LongestWin {
				report.LongestWin = s.Length
			}
		} else {
			report.Distribution[idx].Losses++
			if s.Length > report.LongestLoss {
				report.LongestLoss = s.Length
			}
		}
	}
	return report
}
