// Package moneyfmt renders Money values: the canonical interchange form that
// the parser round-trips, and a localized display form for humans.
package moneyfmt

import (
	"strings"

	"github.com/moneta-svc/moneta/internal/core/domain"
	"github.com/moneta-svc/moneta/internal/platform/locale"
)

// Canonical renders "<CODE> <AMOUNT>" with the amount banker's-rounded to
// exactly the minor unit's digit count, invariant digits and decimal point.
// Example: 234.25 EUR -> "EUR 234.25"; 1200 JPY -> "JPY 1200". A currency
// without an applicable minor unit keeps the amount's exact precision.
func Canonical(m domain.Money, mu domain.MinorUnit) string {
	return m.CurrencyCode + " " + CanonicalAmount(m, mu)
}

// CanonicalAmount is Canonical without the code prefix.
func CanonicalAmount(m domain.Money, mu domain.MinorUnit) string {
	if !mu.IsApplicable() {
		return m.Amount.String()
	}
	return m.Amount.StringFixedBank(mu.Digits())
}

// Display renders an amount for humans under the given conventions: grouped
// digits, the locale's decimal separator, and the currency's display symbol
// in the locale's position. Example: 1234.56 EUR under German conventions ->
// "1.234,56 €"; under invariant conventions -> "€1,234.56".
func Display(m domain.Money, info domain.CurrencyInfo, conv locale.Conventions) string {
	amount := CanonicalAmount(m, info.MinorUnit)

	neg := strings.HasPrefix(amount, "-")
	if neg {
		amount = amount[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(amount, ".")
	grouped := groupDigits(intPart, conv.GroupSep)
	if hasFrac {
		grouped += string(conv.DecimalSep) + fracPart
	}

	sign := ""
	if neg {
		sign = "-"
	}
	symbol := info.Symbol
	if symbol == "" {
		symbol = domain.GenericCurrencySign
	}
	if conv.SymbolSuffix {
		return sign + grouped + " " + symbol
	}
	return sign + symbol + grouped
}

// groupDigits inserts the group separator every three digits from the right.
func groupDigits(digits string, sep rune) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteRune(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
