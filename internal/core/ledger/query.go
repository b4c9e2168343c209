package ledger

import (
	"fmt"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
)

// ParseWindow builds a Window from its textual form. An empty kind means all
// history. from and to are YYYY-MM-DD local days, both inclusive.
func ParseWindow(kind string, days int, from, to string, cal Calendar) (domain.Window, error) {
	switch domain.WindowKind(kind) {
	case "", domain.WindowAll:
		return domain.Window{Kind: domain.WindowAll}, nil
	case domain.WindowYTD:
		return domain.Window{Kind: domain.WindowYTD}, nil
	case domain.WindowLastDays:
		if days < 1 {
			return domain.Window{}, fmt.Errorf("%w: window %s needs days >= 1", apperrors.ErrValidation, kind)
		}
		return domain.Window{Kind: domain.WindowLastDays, Days: days}, nil
	case domain.WindowCustom:
		if from == "" || to == "" {
			return domain.Window{}, fmt.Errorf("%w: custom window needs both from and to", apperrors.ErrValidation)
		}
		f, err := cal.ParseDay(from)
		if err != nil {
			return domain.Window{}, fmt.Errorf("%w: invalid from day %q", apperrors.ErrValidation, from)
		}
		t, err := cal.ParseDay(to)
		if err != nil {
			return domain.Window{}, fmt.Errorf("%w: invalid to day %q", apperrors.ErrValidation, to)
		}
		if t.Before(f) {
			return domain.Window{}, fmt.Errorf("%w: from %s is after to %s", apperrors.ErrValidation, from, to)
		}
		return domain.Window{Kind: domain.WindowCustom, From: f, To: t}, nil
	default:
		return domain.Window{}, fmt.Errorf("%w: unknown window %q", apperrors.ErrValidation, kind)
	}
}

// ParseGranularity resolves a granularity name, per-bet when empty.
func ParseGranularity(s string) (domain.Granularity, error) {
	switch domain.Granularity(s) {
	case "", domain.PerBet:
		return domain.PerBet, nil
	case domain.PerDay:
		return domain.PerDay, nil
	default:
		return "", fmt.Errorf("%w: unknown granularity %q", apperrors.ErrValidation, s)
	}
}
