package pgsql

import (
	portsrepo "github.com/SscSPs/bet_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BetEntryRepo:   newPgxBetEntryRepository(dbPool),
		TipExpenseRepo: newPgxTipExpenseRepository(dbPool),
		InjectionRepo:  newPgxCapitalInjectionRepository(dbPool),
		BaselineRepo:   newPgxBaselineRepository(dbPool),
		BankrollRepo:   newPgxBankrollRepository(dbPool),
	}
}
