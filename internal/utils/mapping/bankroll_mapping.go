package mapping

import (
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/SscSPs/bet_tracker/internal/models"
)

// ToModelBankroll converts a domain Bankroll to a model Bankroll
func ToModelBankroll(d domain.Bankroll) models.Bankroll {
	return models.Bankroll{
		BankrollID:  d.BankrollID,
		UserID:      d.UserID,
		Name:        d.Name,
		Color:       d.Color,
		Description: d.Description,
		Baseline:    d.Baseline,
		IsDefault:   d.IsDefault,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankroll converts a model Bankroll to a domain Bankroll
func ToDomainBankroll(m models.Bankroll) domain.Bankroll {
	return domain.Bankroll{
		BankrollID:  m.BankrollID,
		UserID:      m.UserID,
		Name:        m.Name,
		Color:       m.Color,
		Description: m.Description,
		Baseline:    m.Baseline,
		IsDefault:   m.IsDefault,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankrollSlice converts a slice of model Bankrolls to domain Bankrolls
func ToDomainBankrollSlice(ms []models.Bankroll) []domain.Bankroll {
	ds := make([]domain.Bankroll, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankroll(m)
	}
	return ds
}
