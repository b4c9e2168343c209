package mapping

import (
	"time"

	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/SscSPs/bet_tracker/internal/models"
)

// ToModelCapitalInjection converts a domain CapitalInjection to its row, stamped with createdAt.
func ToModelCapitalInjection(d domain.CapitalInjection, createdAt time.Time) models.CapitalInjection {
	return models.CapitalInjection{
		InjectionID:    d.InjectionID,
		UserID:         d.UserID,
		InjectionDate:  d.Date.UTC(),
		Amount:         d.Amount,
		Notes:          d.Notes,
		TriggerEventID: d.TriggerEventID,
		Source:         string(d.Source),
		CreatedAt:      createdAt,
	}
}

// ToDomainCapitalInjection converts a model CapitalInjection to a domain CapitalInjection
func ToDomainCapitalInjection(m models.CapitalInjection) domain.CapitalInjection {
	return domain.CapitalInjection{
		InjectionID:    m.InjectionID,
		UserID:         m.UserID,
		Date:           m.InjectionDate,
		Amount:         m.Amount,
		Notes:          m.Notes,
		TriggerEventID: m.TriggerEventID,
		Source:         domain.InjectionSource(m.Source),
	}
}

// ToDomainCapitalInjectionSlice converts a slice of model injections to domain injections
func ToDomainCapitalInjectionSlice(ms []models.CapitalInjection) []domain.CapitalInjection {
	ds := make([]domain.CapitalInjection, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCapitalInjection(m)
	}
	return ds
}

// ToModelLedgerSettings converts a domain Baseline to the ledger_settings row
func ToModelLedgerSettings(d domain.Baseline) models.LedgerSettings {
	return models.LedgerSettings{
		UserID:        d.UserID,
		Baseline:      d.Amount,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainBaseline converts a ledger_settings row to a domain Baseline
func ToDomainBaseline(m models.LedgerSettings) domain.Baseline {
	return domain.Baseline{
		UserID:        m.UserID,
		Amount:        m.Baseline,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}
