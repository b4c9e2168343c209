package mapping

import (
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	"github.com/SscSPs/bet_tracker/internal/models"
)

// ToModelTipExpense converts a domain TipExpense to a model TipExpense
func ToModelTipExpense(d domain.TipExpense) models.TipExpense {
	return models.TipExpense{
		ExpenseID:   d.ExpenseID,
		UserID:      d.UserID,
		ExpenseDate: d.Date.UTC(),
		Amount:      d.Amount,
		Provider:    d.Provider,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTipExpense converts a model TipExpense to a domain TipExpense
func ToDomainTipExpense(m models.TipExpense) domain.TipExpense {
	return domain.TipExpense{
		ExpenseID:   m.ExpenseID,
		UserID:      m.UserID,
		Date:        m.ExpenseDate,
		Amount:      m.Amount,
		Provider:    m.Provider,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTipExpenseSlice converts a slice of model TipExpenses to domain TipExpenses
func ToDomainTipExpenseSlice(ms []models.TipExpense) []domain.TipExpense {
	ds := make([]domain.TipExpense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTipExpense(m)
	}
	return ds
}
