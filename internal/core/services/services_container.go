package services

import (
	portsrepo "github.com/SscSPs/bet_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bet_tracker/internal/core/ports/services"
	"github.com/SscSPs/bet_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger service goes first since every writer recomputes through it
	container.Ledger = NewLedgerService(
		repos.BetEntryRepo,
		repos.TipExpenseRepo,
		repos.InjectionRepo,
		repos.BaselineRepo,
		WithLedgerLocation(cfg.LedgerLocation),
		WithBankrollReader(repos.BankrollRepo),
	)

	container.BetEntry = NewBetEntryService(
		repos.BetEntryRepo,
		container.Ledger,
		WithEntryLocation(cfg.LedgerLocation),
		WithEntryBankrollReader(repos.BankrollRepo),
	)
	container.TipExpense = NewTipExpenseService(repos.TipExpenseRepo, container.Ledger)
	container.Bankroll = NewBankrollService(repos.BankrollRepo)

	return container
}
