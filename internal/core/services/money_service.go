package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/language"

	"github.com/moneta-svc/moneta/internal/apperrors"
	"github.com/moneta-svc/moneta/internal/core/domain"
	portssvc "github.com/moneta-svc/moneta/internal/core/ports/services"
	"github.com/moneta-svc/moneta/internal/platform/locale"
	"github.com/moneta-svc/moneta/internal/utils/moneyfmt"
	"github.com/moneta-svc/moneta/internal/utils/moneyscan"
)

// moneyTextService implements MoneySvcFacade on top of the currency registry.
// Parsing splits the input into a currency token and a numeric remainder,
// resolves the token against the registry, and reads the remainder with the
// locale's numeric conventions.
type moneyTextService struct {
	BaseService
	registry portssvc.CurrencySvcFacade
}

// NewMoneyTextService creates a money parser/formatter backed by the registry.
func NewMoneyTextService(registry portssvc.CurrencySvcFacade) portssvc.MoneySvcFacade {
	return &moneyTextService{registry: registry}
}

// Ensure moneyTextService implements the MoneySvcFacade interface
var _ portssvc.MoneySvcFacade = (*moneyTextService)(nil)

// ParseMoney parses text into a monetary amount. hint optionally pins the
// expected currency and always wins over what the text names, failing with
// ErrCurrencyMismatch when the two disagree. tag selects the numeric
// conventions and the fallback currency for symbol-less input.
func (s *moneyTextService) ParseMoney(ctx context.Context, text string, hint string, tag language.Tag) (*domain.Money, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: nothing to parse", apperrors.ErrEmptyInput)
	}

	if hint != "" {
		hint = domain.NormalizeCurrencyCode(hint)
		if _, err := s.registry.GetCurrencyByCode(ctx, hint); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: hint currency %q is not registered", apperrors.ErrUnknownCurrency, hint)
			}
			return nil, err
		}
	}

	extraction := moneyscan.ExtractSymbol(text)
	code, err := s.resolveCurrency(ctx, extraction.Token, hint, tag)
	if err != nil {
		return nil, err
	}

	amount, err := moneyscan.ParseAmount(extraction.Remainder, locale.ForTag(tag))
	if err != nil {
		return nil, err
	}

	m := domain.NewMoney(amount, code)
	s.LogDebug(ctx, "Parsed monetary text",
		slog.String("currency_code", m.CurrencyCode),
		slog.String("amount", m.Amount.String()))
	return &m, nil
}

// TryParseMoney parses text, reporting parse-family failures as ok=false with
// the no-money sentinel instead of an error. Anything outside that family,
// such as a cancelled context or repository failure, still errors.
func (s *moneyTextService) TryParseMoney(ctx context.Context, text string, hint string, tag language.Tag) (*domain.Money, bool, error) {
	m, err := s.ParseMoney(ctx, text, hint, tag)
	if err != nil {
		if apperrors.IsParseFailure(err) {
			sentinel := domain.NoMoney()
			return &sentinel, false, nil
		}
		return nil, false, err
	}
	return m, true, nil
}

// FormatMoney renders m canonically ("CODE amount" with the currency's minor
// unit, banker's rounded) and in the display form of tag's locale.
func (s *moneyTextService) FormatMoney(ctx context.Context, m domain.Money, tag language.Tag) (string, string, error) {
	info, err := s.registry.GetCurrencyByCode(ctx, m.CurrencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", "", fmt.Errorf("%w: currency %q is not registered", apperrors.ErrUnknownCurrency, m.CurrencyCode)
		}
		return "", "", err
	}

	canonical := moneyfmt.Canonical(m, info.MinorUnit)
	display := moneyfmt.Display(m, *info, locale.ForTag(tag))
	return canonical, display, nil
}

// resolveCurrency decides which currency a parsed token denotes. An empty
// token falls back to the hint, then to the locale's tender currency. A
// non-empty token must resolve to exactly one registered currency; the hint
// and then the locale currency disambiguate multi-currency symbols like "$".
func (s *moneyTextService) resolveCurrency(ctx context.Context, token, hint string, tag language.Tag) (string, error) {
	if token == "" {
		if hint != "" {
			return hint, nil
		}
		current, err := s.registry.CurrencyForLocale(ctx, tag)
		if err != nil {
			return "", err
		}
		return current.Code, nil
	}

	candidates, err := s.registry.FindCurrenciesByToken(ctx, token)
	if err != nil {
		return "", err
	}

	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%w: no registered currency matches %q", apperrors.ErrUnknownCurrency, token)
	case 1:
		code := candidates[0].Code
		if hint != "" && hint != code {
			return "", fmt.Errorf("%w: text denotes %s but %s was expected", apperrors.ErrCurrencyMismatch, code, hint)
		}
		return code, nil
	}

	if hint != "" {
		for _, c := range candidates {
			if c.Code == hint {
				return hint, nil
			}
		}
		return "", fmt.Errorf("%w: %q does not denote %s", apperrors.ErrCurrencyMismatch, token, hint)
	}

	current, err := s.registry.CurrencyForLocale(ctx, tag)
	if err != nil {
		return "", err
	}
	if !current.IsNoCurrency() {
		for _, c := range candidates {
			if c.Code == current.Code {
				return current.Code, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q matches %s", apperrors.ErrAmbiguousCurrency, token, joinCandidateCodes(candidates))
}

func joinCandidateCodes(candidates []domain.CurrencyInfo) string {
	codes := make([]string, len(candidates))
	for i, c := range candidates {
		codes[i] = c.Code
	}
	return strings.Join(codes, ", ")
}
