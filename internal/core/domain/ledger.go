package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WindowKind selects which slice of history a ledger view covers.
type WindowKind string

const (
	WindowAll      WindowKind = "all"
	WindowYTD      WindowKind = "ytd"
	WindowLastDays WindowKind = "last-n-days"
	WindowCustom   WindowKind = "custom"
)

// Granularity selects whether points are emitted per bet or per local calendar day.
type Granularity string

const (
	PerBet Granularity = "per-bet"
	PerDay Granularity = "per-day"
)

// Window describes a requested time range. Days is used by WindowLastDays,
// From/To (inclusive local days) by WindowCustom.
type Window struct {
	Kind WindowKind `json:"kind"`
	Days int        `json:"days,omitempty"`
	From time.Time  `json:"from,omitempty"`
	To   time.Time  `json:"to,omitempty"`
}

// PointKind tells what produced a DataPoint.
type PointKind string

const (
	PointStart PointKind = "start" // Synthetic point carrying the window's starting balance
	PointBet   PointKind = "bet"
	PointTip   PointKind = "tip"
	PointDay   PointKind = "day"
)

// DataPoint is one point of a windowed balance series.
type DataPoint struct {
	Kind          PointKind       `json:"kind"`
	Date          time.Time       `json:"date"`
	Net           decimal.Decimal `json:"net"`
	BetAmount     decimal.Decimal `json:"betAmount"`
	WinningAmount decimal.Decimal `json:"winningAmount"`
	Tip           decimal.Decimal `json:"tip"`
	Injection     decimal.Decimal `json:"injection"` // Injected at this point, zero when none
	Running       decimal.Decimal `json:"running"`
	EventIDs      []string        `json:"eventIds,omitempty"`
}

// LedgerSummary carries the scalar statistics of a ledger view.
type LedgerSummary struct {
	StartingBalance      decimal.Decimal `json:"startingBalance"`
	CurrentBalance       decimal.Decimal `json:"currentBalance"`
	PeakBalance          decimal.Decimal `json:"peakBalance"`
	MaxDrawdown          decimal.Decimal `json:"maxDrawdown"` // Non-positive
	TotalCapitalInvested decimal.Decimal `json:"totalCapitalInvested"`
	TotalInjected        decimal.Decimal `json:"totalInjected"`
	TotalTips            decimal.Decimal `json:"totalTips"`
	NetProfitAfterTips   decimal.Decimal `json:"netProfitAfterTips"`
	ROI                  decimal.Decimal `json:"roi"` // Percent
	TotalWagered         decimal.Decimal `json:"totalWagered"`
	TotalNet             decimal.Decimal `json:"totalNet"`
	BetCount             int             `json:"betCount"`
	Wins                 int             `json:"wins"`
	Losses               int             `json:"losses"`
	Pushes               int             `json:"pushes"`
	WinRate              decimal.Decimal `json:"winRate"` // Percent of decided bets
	InjectionCount       int             `json:"injectionCount"`
}

// LedgerView is a windowed, aggregated rendition of the reconstructed balance series.
type LedgerView struct {
	Window      Window        `json:"window"`
	Granularity Granularity   `json:"granularity"`
	WindowStart *time.Time    `json:"windowStart,omitempty"`
	WindowEnd   *time.Time    `json:"windowEnd,omitempty"`
	Points      []DataPoint   `json:"points"`
	Summary     LedgerSummary `json:"summary"`
}

// StreakKind classifies a run of bets.
type StreakKind string

const (
	WinStreak  StreakKind = "win"
	LossStreak StreakKind = "loss"
)

// Streak is a maximal run of same-sign bets. Pushes inside the run are counted
// separately and never contribute to Length.
type Streak struct {
	Kind      StreakKind `json:"kind"`
	Length    int        `json:"length"`
	Pushes    int        `json:"pushes"`
	StartDate time.Time  `json:"startDate"`
	EndDate   time.Time  `json:"endDate"`
}

// StreakBucket counts streaks by length. The last bucket aggregates every
// streak at least as long as its Length.
type StreakBucket struct {
	Length int  `json:"length"`
	OrMore bool `json:"orMore,omitempty"`
	Wins   int  `json:"wins"`
	Losses int  `json:"losses"`
}

// StreakReport is the streak analysis of a chronologically sorted bet list.
type StreakReport struct {
	Streaks      []Streak       `json:"streaks"`
	Current      *Streak        `json:"current"`
	LongestWin   int            `json:"longestWin"`
	LongestLoss  int            `json:"longestLoss"`
	Distribution []StreakBucket `json:"distribution"`
}
