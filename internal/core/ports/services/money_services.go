package services

import (
	"context"

	"golang.org/x/text/language"

	"github.com/moneta-svc/moneta/internal/core/domain"
)

// MoneyParserSvc defines operations that recover monetary values from text
type MoneyParserSvc interface {
	// ParseMoney parses text into a monetary amount. hint optionally pins
	// the expected currency code; tag selects the numeric conventions and
	// the fallback currency.
	ParseMoney(ctx context.Context, text string, hint string, tag language.Tag) (*domain.Money, error)

	// TryParseMoney parses text, reporting malformed input as ok=false
	// instead of an error. Failures outside the parse family still error.
	TryParseMoney(ctx context.Context, text string, hint string, tag language.Tag) (*domain.Money, bool, error)
}

// MoneyFormatterSvc defines operations that render monetary values as text
type MoneyFormatterSvc interface {
	// FormatMoney renders m in both the canonical "CODE amount" form and
	// the locale display form for tag.
	FormatMoney(ctx context.Context, m domain.Money, tag language.Tag) (canonical string, display string, err error)
}

// MoneySvcFacade combines all money text service interfaces
type MoneySvcFacade interface {
	MoneyParserSvc
	MoneyFormatterSvc
}
