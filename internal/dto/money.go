package dto

import (
	"github.com/moneta-svc/moneta/internal/core/domain"
)

// ParseMoneyRequest defines the data needed to parse a monetary string.
// CurrencyCode is an optional hint that pins the expected currency; Locale
// selects the numeric conventions and the fallback currency.
type ParseMoneyRequest struct {
	Text         string `json:"text" binding:"required"`
	CurrencyCode string `json:"currencyCode" binding:"omitempty,len=3,alpha"`
	Locale       string `json:"locale"`
}

// MoneyResponse defines the data returned for a parsed or computed amount.
// Amount carries the exact decimal value as a string so precision survives
// JSON transport.
type MoneyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Amount       string `json:"amount"`
	Canonical    string `json:"canonical"`
	Display      string `json:"display"`
}

// TryParseMoneyResponse reports whether a string was parseable without
// treating failure as an error. Money is absent when OK is false.
type TryParseMoneyResponse struct {
	OK    bool           `json:"ok"`
	Money *MoneyResponse `json:"money,omitempty"`
}

// FormatMoneyRequest defines the data needed to format an amount. Amount is
// a decimal string so callers are not forced through float64.
type FormatMoneyRequest struct {
	Amount       string `json:"amount" binding:"required"`
	CurrencyCode string `json:"currencyCode" binding:"required,len=3,alpha"`
	Locale       string `json:"locale"`
}

// FormatMoneyResponse defines the data returned by the formatter. Canonical
// is the round-trippable "CODE amount" rendering, Display the locale one.
type FormatMoneyResponse struct {
	Canonical string `json:"canonical"`
	Display   string `json:"display"`
}

// ToMoneyResponse converts a domain.Money plus its renderings to a MoneyResponse DTO
func ToMoneyResponse(m *domain.Money, canonical, display string) MoneyResponse {
	return MoneyResponse{
		CurrencyCode: m.CurrencyCode,
		Amount:       m.Amount.String(),
		Canonical:    canonical,
		Display:      display,
	}
}
