package services

import (
	"context"

	"golang.org/x/text/language"

	"github.com/moneta-svc/moneta/internal/core/domain"
	"github.com/moneta-svc/moneta/internal/dto"
)

// CurrencyReaderSvc defines read operations over the currency registry
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyInfo, error)

	// ListCurrencies retrieves all registered currencies sorted by code.
	ListCurrencies(ctx context.Context) ([]domain.CurrencyInfo, error)

	// FindCurrenciesByToken retrieves the currencies whose symbol,
	// international symbol, alternative symbol or code equals token.
	FindCurrenciesByToken(ctx context.Context, token string) ([]domain.CurrencyInfo, error)

	// CurrencyForLocale resolves the currency circulating in the region of
	// the given locale, falling back to the no-currency sentinel.
	CurrencyForLocale(ctx context.Context, tag language.Tag) (*domain.CurrencyInfo, error)
}

// CurrencyWriterSvc defines write operations over the currency registry
type CurrencyWriterSvc interface {
	// RegisterCurrency adds a currency to the registry.
	RegisterCurrency(ctx context.Context, req dto.RegisterCurrencyRequest, creatorUserID string) (*domain.CurrencyInfo, error)

	// UnregisterCurrency removes a currency and returns the removed entry.
	UnregisterCurrency(ctx context.Context, currencyCode string, removerUserID string) (*domain.CurrencyInfo, error)

	// LoadPersisted overlays currencies from the repository onto the
	// registry. Called once at startup; a no-op without persistence.
	LoadPersisted(ctx context.Context) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
