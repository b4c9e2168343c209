package ledger

import (
	"time"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Options controls how a reconstruction is windowed and aggregated.
type Options struct {
	Window      domain.Window
	Granularity domain.Granularity
	Calendar    Calendar
	Now         time.Time // Reference instant for ytd and last-n-days; zero means time.Now()
}

// Bounds resolves a window into a half-open [start, end) range of local
// midnights. A nil bound is unbounded on that side.
func Bounds(w domain.Window, cal Calendar, now time.Time) (start, end *time.Time) {
	if now.IsZero() {
		now = time.Now()
	}
	switch w.Kind {
	case domain.WindowYTD:
		s := cal.StartOfYear(now)
		return &s, nil
	case domain.WindowLastDays:
		s := cal.DaysBack(now, w.Days)
		return &s, nil
	case domain.WindowCustom:
		if !w.From.IsZero() {
			s := cal.StartOfDay(w.From)
			start = &s
		}
		if !w.To.IsZero() {
			e := cal.NextDay(w.To)
			end = &e
		}
		return start, end
	default:
		return nil, nil
	}
}

// Aggregate slices a full-history reconstruction to the requested window and
// rolls it up at the requested granularity. The window's starting balance is
// the balance folded over every event strictly before the window start, not
// the global baseline; it is emitted as a synthetic first point.
func Aggregate(rec Reconstruction, opts Options) domain.LedgerView {
	start, end := Bounds(opts.Window, opts.Calendar, opts.Now)
	granularity := opts.Granularity
	if granularity != domain.PerDay {
		granularity = domain.PerBet
	}

	startingBalance := rec.Start
	injectedUpToEnd := decimal.Zero
	var inWindow []BalancePoint
	for _, p := range rec.Points {
		if end != nil && !p.Event.Date.Before(*end) {
			break
		}
		injectedUpToEnd = injectedUpToEnd.Add(p.Injection)
		if start != nil && p.Event.Date.Before(*start) {
			startingBalance = p.Running
			continue
		}
		inWindow = append(inWindow, p)
	}

	startDate := time.Time{}
	if start != nil {
		startDate = *start
	} else if len(inWindow) > 0 {
		startDate = inWindow[0].Event.Date
	}
	points := []domain.DataPoint{{
		Kind:    domain.PointStart,
		Date:    startDate,
		Running: startingBalance,
	}}
	if granularity == domain.PerDay {
		points = append(points, rollUpDays(inWindow, opts.Calendar)...)
	} else {
		points = append(points, perEvent(inWindow)...)
	}

	view := domain.LedgerView{
		Window:      opts.Window,
		Granularity: granularity,
		WindowStart: start,
		WindowEnd:   end,
		Points:      points,
		Summary:     summarize(rec.Start, startingBalance, injectedUpToEnd, inWindow, points),
	}
	return view
}

func perEvent(in []BalancePoint) []domain.DataPoint {
	out := make([]domain.DataPoint, 0, len(in))
	for _, p := range in {
		dp := domain.DataPoint{
			Date:      p.Event.Date,
			Injection: p.Injection,
			Running:   p.Running,
			EventIDs:  []string{p.Event.ID},
		}
		switch p.Event.Kind {
		case EventBet:
			dp.Kind = domain.PointBet
			dp.Net = p.Event.Entry.Net
			dp.BetAmount = p.Event.Entry.BetAmount
			dp.WinningAmount = p.Event.Entry.WinningAmount
		case EventTipExpense:
			dp.Kind = domain.PointTip
			dp.Tip = p.Event.Expense.Amount
		}
		out = append(out, dp)
	}
	return out
}

// rollUpDays groups events by local calendar day. Sums are raw bet figures;
// Running is the fold-through balance after the day's last event, so the
// first-entry bonus lands on whichever day holds the original first entry.
func rollUpDays(in []BalancePoint, cal Calendar) []domain.DataPoint {
	var out []domain.DataPoint
	currentKey := ""
	for _, p := range in {
		key := cal.DayKey(p.Event.Date)
		if len(out) == 0 || key != currentKey {
			out = append(out, domain.DataPoint{Kind: domain.PointDay, Date: cal.StartOfDay(p.Event.Date)})
			currentKey = key
		}
		day := &out[len(out)-1]
		switch p.Event.Kind {
		case EventBet:
			day.Net = day.Net.Add(p.Event.Entry.Net)
			day.BetAmount = day.BetAmount.Add(p.Event.Entry.BetAmount)
			day.WinningAmount = day.WinningAmount.Add(p.Event.Entry.WinningAmount)
		case EventTipExpense:
			day.Tip = day.Tip.Add(p.Event.Expense.Amount)
		}
		day.Injection = day.Injection.Add(p.Injection)
		day.Running = p.Running
		day.EventIDs = append(day.EventIDs, p.Event.ID)
	}
	return out
}

func summarize(baseline, startingBalance, injectedUpToEnd decimal.Decimal, in []BalancePoint, points []domain.DataPoint) domain.LedgerSummary {
	s := domain.LedgerSummary{
		StartingBalance: startingBalance,
		CurrentBalance:  startingBalance,
	}
	if len(in) > 0 {
		s.CurrentBalance = in[len(in)-1].Running
	}

	runnings := make([]decimal.Decimal, len(points))
	for i, p := range points {
		runnings[i] = p.Running
	}
	s.PeakBalance = Peak(runnings)
	s.MaxDrawdown = MaxDrawdown(runnings)

	for _, p := range in {
		if p.Injection.IsPositive() {
			s.InjectionCount++
			s.TotalInjected = s.TotalInjected.Add(p.Injection)
		}
		switch p.Event.Kind {
		case EventBet:
			e := p.Event.Entry
			s.BetCount++
			s.TotalWagered = s.TotalWagered.Add(e.BetAmount)
			s.TotalNet = s.TotalNet.Add(e.Net)
			switch {
			case e.IsWin():
				s.Wins++
			case e.IsLoss():
				s.Losses++
			default:
				s.Pushes++
			}
		case EventTipExpense:
			s.TotalTips = s.TotalTips.Add(p.Event.Expense.Amount)
		}
	}
	if decided := s.Wins + s.Losses; decided > 0 {
		s.WinRate = decimal.NewFromInt(int64(s.Wins)).Div(decimal.NewFromInt(int64(decided))).Mul(hundred).Round(2)
	}

	s.TotalCapitalInvested = baseline.Abs().Add(injectedUpToEnd)
	s.NetProfitAfterTips = s.CurrentBalance.Sub(startingBalance).Sub(s.TotalTips)
	if !s.TotalCapitalInvested.IsZero() {
		s.ROI = s.NetProfitAfterTips.Div(s.TotalCapitalInvested).Mul(hundred).Round(2)
	}
	return s
}

// Peak returns the largest value of a running-balance series, zero when empty.
func Peak(series []decimal.Decimal) decimal.Decimal {
	if len(series) == 0 {
		return decimal.Zero
	}
	peak := series[0]
	for _, v := range series[1:] {
		if v.GreaterThan(peak) {
			peak = v
		}
	}
	return peak
}

// MaxDrawdown returns the most negative value of running minus the running
// maximum so far, i.e. the largest peak-to-trough decline as a non-positive number.
func MaxDrawdown(series []decimal.Decimal) decimal.Decimal {
	dd := decimal.Zero
	if len(series) == 0 {
		return dd
	}
	peak := series[0]
	for _, v := range series {
		if v.GreaterThan(peak) {
			peak = v
		}
		if d := v.Sub(peak); d.LessThan(dd) {
			dd = d
		}
	}
	return dd
}
