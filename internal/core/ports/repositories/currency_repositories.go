package repositories

import (
	"context"

	"github.com/moneta-svc/moneta/internal/core/domain"
)

// CurrencyReader defines read operations for persisted currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyInfo, error)

	// ListCurrencies retrieves all persisted currencies.
	ListCurrencies(ctx context.Context) ([]domain.CurrencyInfo, error)
}

// CurrencyWriter defines write operations for persisted currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.CurrencyInfo, creatorUserID string) error

	// DeleteCurrency removes a persisted currency.
	DeleteCurrency(ctx context.Context, currencyCode string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
