package ledger_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var day0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// bet builds an entry placed hoursAfter hours after day0.
func bet(id string, hoursAfter int, betAmount, winningAmount string) domain.BetEntry {
	e := domain.BetEntry{
		EntryID:       id,
		UserID:        "user-1",
		Date:          day0.Add(time.Duration(hoursAfter) * time.Hour),
		BetAmount:     dec(betAmount),
		WinningAmount: dec(winningAmount),
	}
	e.RecomputeNet()
	return e
}

func tip(id string, hoursAfter int, amount string) domain.TipExpense {
	return domain.TipExpense{
		ExpenseID: id,
		UserID:    "user-1",
		Date:      day0.Add(time.Duration(hoursAfter) * time.Hour),
		Amount:    dec(amount),
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}
