package services

import (
	portsrepo "github.com/moneta-svc/moneta/internal/core/ports/repositories"
	portssvc "github.com/moneta-svc/moneta/internal/core/ports/services"
	"github.com/moneta-svc/moneta/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The registry comes first since the money services resolve against it.
	container.Currency = NewCurrencyRegistryService(repos.CurrencyRepo)
	container.Money = NewMoneyTextService(container.Currency)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade = (*currencyRegistryService)(nil)
	_ portssvc.MoneySvcFacade    = (*moneyTextService)(nil)
)
