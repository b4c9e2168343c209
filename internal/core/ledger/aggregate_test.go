package ledger_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/SscSPs/bet_tracker/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario: baseline 100
//
//	e1 Mar 1  +50 (first win)  -> 200
//	e2 Mar 2 -150              -> 50, inject 50 -> 100
//	x1 Mar 2 tip 20            -> 80, inject 20 -> 100
//	e3 Mar 3  +40              -> 140
//	e4 Mar 4  -30              -> 110
func scenario() ([]domain.BetEntry, []domain.TipExpense) {
	return []domain.BetEntry{
			bet("e1", 0, "50", "100"),
			bet("e2", 24, "150", "0"),
			bet("e3", 48, "20", "60"),
			bet("e4", 72, "30", "0"),
		}, []domain.TipExpense{
			tip("x1", 30, "20"),
		}
}

func utcDay(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregate_AllWindowSummary(t *testing.T) {
	entries, expenses := scenario()
	d := ledger.DeriveLedger(decPtr("-100"), entries, expenses, ledger.Options{
		Window:   domain.Window{Kind: domain.WindowAll},
		Calendar: ledger.NewCalendar(time.UTC),
	})

	v := d.View
	require.Len(t, v.Points, 6)
	assert.Equal(t, domain.PointStart, v.Points[0].Kind)
	assert.Equal(t, entries[0].Date, v.Points[0].Date)
	assertDecimal(t, "100", v.Points[0].Running)
	assert.Equal(t, domain.PointTip, v.Points[3].Kind)
	assertDecimal(t, "20", v.Points[3].Tip)
	assertDecimal(t, "20", v.Points[3].Injection)

	s := v.Summary
	assertDecimal(t, "100", s.StartingBalance)
	assertDecimal(t, "110", s.CurrentBalance)
	assertDecimal(t, "200", s.PeakBalance)
	assertDecimal(t, "-100", s.MaxDrawdown)
	assertDecimal(t, "70", s.TotalInjected)
	assertDecimal(t, "170", s.TotalCapitalInvested)
	assertDecimal(t, "20", s.TotalTips)
	assertDecimal(t, "-10", s.NetProfitAfterTips)
	assertDecimal(t, "-5.88", s.ROI)
	assertDecimal(t, "250", s.TotalWagered)
	assertDecimal(t, "-90", s.TotalNet)
	assert.Equal(t, 4, s.BetCount)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 2, s.Losses)
	assert.Equal(t, 0, s.Pushes)
	assertDecimal(t, "50", s.WinRate)
	assert.Equal(t, 2, s.InjectionCount)
}

func TestAggregate_WindowStartsFromFoldedBalance(t *testing.T) {
	entries, expenses := scenario()
	stream := ledger.Normalize(entries, expenses)
	rec := ledger.Reconstruct(dec("100"), stream)

	v := ledger.Aggregate(rec, ledger.Options{
		Window:   domain.Window{Kind: domain.WindowCustom, From: utcDay(time.March, 3), To: utcDay(time.March, 4)},
		Calendar: ledger.NewCalendar(time.UTC),
	})

	// The last event before Mar 3 is the tip x1; its post-injection balance is
	// the window's starting balance, not the global baseline.
	assertDecimal(t, rec.Balances[ledger.EventKey(ledger.EventTipExpense, "x1")].String(), v.Summary.StartingBalance)
	require.Len(t, v.Points, 3)
	assert.Equal(t, utcDay(time.March, 3), v.Points[0].Date)
	assertDecimal(t, "100", v.Points[0].Running)
	assert.Equal(t, []string{"e3"}, v.Points[1].EventIDs)
	assertDecimal(t, "110", v.Summary.CurrentBalance)
	assertDecimal(t, "10", v.Summary.NetProfitAfterTips)
	assertDecimal(t, "170", v.Summary.TotalCapitalInvested)
	assertDecimal(t, "0", v.Summary.TotalInjected)
	assertDecimal(t, "5.88", v.Summary.ROI)
}

func TestAggregate_WindowCarriesPriorPeak(t *testing.T) {
	entries, expenses := scenario()
	rec := ledger.Reconstruct(dec("100"), ledger.Normalize(entries, expenses))

	v := ledger.Aggregate(rec, ledger.Options{
		Window:   domain.Window{Kind: domain.WindowCustom, From: utcDay(time.March, 2), To: utcDay(time.March, 2)},
		Calendar: ledger.NewCalendar(time.UTC),
	})

	require.Len(t, v.Points, 3)
	assertDecimal(t, "200", v.Summary.StartingBalance)
	assertDecimal(t, "100", v.Summary.CurrentBalance)
	assertDecimal(t, "20", v.Summary.TotalTips)
	assertDecimal(t, "-120", v.Summary.NetProfitAfterTips)
	assertDecimal(t, "70", v.Summary.TotalInjected)
	assertDecimal(t, "200", v.Summary.PeakBalance)
	assertDecimal(t, "-100", v.Summary.MaxDrawdown)
	assert.Equal(t, 2, v.Summary.InjectionCount)
}

func TestAggregate_LastNDays(t *testing.T) {
	entries, expenses := scenario()
	d := ledger.DeriveLedger(decPtr("100"), entries, expenses, ledger.Options{
		Window:   domain.Window{Kind: domain.WindowLastDays, Days: 2},
		Calendar: ledger.NewCalendar(time.UTC),
		Now:      time.Date(2024, time.March, 4, 18, 0, 0, 0, time.UTC),
	})

	require.NotNil(t, d.View.WindowStart)
	assert.Equal(t, utcDay(time.March, 3), *d.View.WindowStart)
	assert.Nil(t, d.View.WindowEnd)
	assert.Len(t, d.View.Points, 3)
	assertDecimal(t, "100", d.View.Summary.StartingBalance)
	assert.Equal(t, 2, d.View.Summary.BetCount)
}

func TestAggregate_YearToDate(t *testing.T) {
	entries, expenses := scenario()
	d := ledger.DeriveLedger(decPtr("100"), entries, expenses, ledger.Options{
		Window:   domain.Window{Kind: domain.WindowYTD},
		Calendar: ledger.NewCalendar(time.UTC),
		Now:      time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, utcDay(time.January, 1), d.View.Points[0].Date)
	assertDecimal(t, "100", d.View.Summary.StartingBalance)
	assert.Equal(t, 4, d.View.Summary.BetCount)
}

func TestAggregate_EmptyWindow(t *testing.T) {
	entries, expenses := scenario()
	d := ledger.DeriveLedger(decPtr("100"), entries, expenses, ledger.Options{
		Window:   domain.Window{Kind: domain.WindowCustom, From: utcDay(time.April, 1)},
		Calendar: ledger.NewCalendar(time.UTC),
	})

	require.Len(t, d.View.Points, 1)
	assertDecimal(t, "110", d.View.Summary.StartingBalance)
	assertDecimal(t, "110", d.View.Summary.CurrentBalance)
	assertDecimal(t, "0", d.View.Summary.NetProfitAfterTips)
}

func TestAggregate_PerDayUsesLocalCalendar(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	late := domain.BetEntry{EntryID: "late", Date: time.Date(2024, 3, 2, 3, 0, 0, 0, time.UTC), BetAmount: dec("10"), WinningAmount: dec("20")}
	morning := domain.BetEntry{EntryID: "morning", Date: time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC), BetAmount: dec("10"), WinningAmount: dec("0")}
	late.RecomputeNet()
	morning.RecomputeNet()
	entries := []domain.BetEntry{late, morning}

	local := ledger.DeriveLedger(decPtr("100"), entries, nil, ledger.Options{Granularity: domain.PerDay, Calendar: ledger.NewCalendar(est)})
	utc := ledger.DeriveLedger(decPtr("100"), entries, nil, ledger.Options{Granularity: domain.PerDay, Calendar: ledger.NewCalendar(time.UTC)})

	require.Len(t, local.View.Points, 3, "start + two local days")
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, est), local.View.Points[1].Date)
	require.Len(t, utc.View.Points, 2, "start + one UTC day")
	assert.Equal(t, []string{"late", "morning"}, utc.View.Points[1].EventIDs)
}

func TestAggregate_PerDayFirstEntryBonus(t *testing.T) {
	d := ledger.DeriveLedger(decPtr("100"), []domain.BetEntry{
		bet("f", 0, "10", "30"), // first win: 100 + 10 + 20
		bet("g", 1, "5", "0"),   // -5
		bet("h", 24, "10", "0"), // next day: -10
	}, []domain.TipExpense{tip("x", 2, "1")}, ledger.Options{Granularity: domain.PerDay, Calendar: ledger.NewCalendar(time.UTC)})

	require.Len(t, d.View.Points, 3)
	day1 := d.View.Points[1]
	assert.Equal(t, domain.PointDay, day1.Kind)
	assertDecimal(t, "15", day1.Net)
	assertDecimal(t, "15", day1.BetAmount)
	assertDecimal(t, "30", day1.WinningAmount)
	assertDecimal(t, "1", day1.Tip)
	assertDecimal(t, "124", day1.Running)
	assertDecimal(t, "114", d.View.Points[2].Running)
}

func TestMaxDrawdownAndPeak(t *testing.T) {
	series := []decimal.Decimal{dec("0"), dec("100"), dec("100"), dec("-50"), dec("200")}

	assertDecimal(t, "-150", ledger.MaxDrawdown(series))
	assertDecimal(t, "200", ledger.Peak(series))
	assertDecimal(t, "0", ledger.MaxDrawdown(nil))
	assertDecimal(t, "0", ledger.MaxDrawdown([]decimal.Decimal{dec("1"), dec("2")}))
}

func TestBounds(t *testing.T) {
	cal := ledger.NewCalendar(time.UTC)
	now := time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)

	start, end := ledger.Bounds(domain.Window{Kind: domain.WindowAll}, cal, now)
	assert.Nil(t, start)
	assert.Nil(t, end)

	start, _ = ledger.Bounds(domain.Window{Kind: domain.WindowLastDays, Days: 30}, cal, now)
	require.NotNil(t, start)
	assert.Equal(t, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), *start)

	start, end = ledger.Bounds(domain.Window{Kind: domain.WindowCustom, To: utcDay(time.March, 5)}, cal, now)
	assert.Nil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, utcDay(time.March, 6), *end)
}
