package domain

import (
	"strings"
	"time"
)

// GenericCurrencySign is the placeholder symbol assigned to currencies that
// declare no symbol of their own, per the Unicode "currency sign" code point.
const GenericCurrencySign = "¤"

// NoCurrencyCode is the ISO 4217 code reserved for "no currency involved".
// It doubles as the sentinel currency for contexts that cannot imply one.
const NoCurrencyCode = "XXX"

// CurrencyInfo describes one currency known to the registry: the ISO 4217
// set plus any user defined entries. Values are immutable once built; mutate
// by building a modified copy and re-registering it.
type CurrencyInfo struct {
	Code                string     `json:"code"`                // 3 letters, upper case (e.g., "USD")
	NumericCode         string     `json:"numericCode"`         // 3 digits, "000" when not applicable
	Name                string     `json:"name"`                // English name
	Symbol              string     `json:"symbol"`              // e.g., "$"; GenericCurrencySign when unknown
	InternationalSymbol string     `json:"internationalSymbol"` // e.g., "US$"; disambiguates shared symbols
	AlternativeSymbols  []string   `json:"alternativeSymbols"`  // extra tokens seen in the wild
	MinorUnit           MinorUnit  `json:"minorUnit"`
	IsISO               bool       `json:"isISO"`        // true for the ISO 4217 namespace
	ReferenceTag        string     `json:"referenceTag"` // BCP-47 tag for localized display
	IntroducedOn        *time.Time `json:"introducedOn,omitempty"`
	ExpiredOn           *time.Time `json:"expiredOn,omitempty"`
}

// NoCurrency returns the sentinel entry used when a locale or a parse result
// carries no currency at all.
func NoCurrency() CurrencyInfo {
	return CurrencyInfo{
		Code:                NoCurrencyCode,
		NumericCode:         "999",
		Name:                "No currency",
		Symbol:              GenericCurrencySign,
		InternationalSymbol: GenericCurrencySign,
		MinorUnit:           MinorUnitNone,
		IsISO:               true,
	}
}

// NormalizeCurrencyCode upper-cases a code for comparison and storage.
// Shape validation lives in the builder; this only canonicalizes case.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Equal reports identity, which for currencies is the code alone.
func (c CurrencyInfo) Equal(other CurrencyInfo) bool {
	return c.Code == other.Code
}

// IsNoCurrency reports whether c is the XXX sentinel.
func (c CurrencyInfo) IsNoCurrency() bool {
	return c.Code == NoCurrencyCode
}

// IsExpired reports whether c was withdrawn on or before the given instant.
// Expired currencies stay registered and resolvable; expiry is data.
func (c CurrencyInfo) IsExpired(at time.Time) bool {
	return c.ExpiredOn != nil && !c.ExpiredOn.After(at)
}

// Tokens returns every distinct string that identifies this currency in
// text: the display symbol, the international symbol, all alternative
// symbols, and the code itself. The generic sign is excluded; it identifies
// nothing.
func (c CurrencyInfo) Tokens() []string {
	candidates := make([]string, 0, 3+len(c.AlternativeSymbols))
	candidates = append(candidates, c.Symbol, c.InternationalSymbol)
	candidates = append(candidates, c.AlternativeSymbols...)
	candidates = append(candidates, c.Code)

	seen := make(map[string]struct{}, len(candidates))
	tokens := make([]string, 0, len(candidates))
	for _, t := range candidates {
		if t == "" || t == GenericCurrencySign {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tokens = append(tokens, t)
	}
	return tokens
}

// Clone returns a deep copy; the slice field must never be shared across the
// registry boundary.
func (c CurrencyInfo) Clone() CurrencyInfo {
	out := c
	if c.AlternativeSymbols != nil {
		out.AlternativeSymbols = append([]string(nil), c.AlternativeSymbols...)
	}
	if c.IntroducedOn != nil {
		t := *c.IntroducedOn
		out.IntroducedOn = &t
	}
	if c.ExpiredOn != nil {
		t := *c.ExpiredOn
		out.ExpiredOn = &t
	}
	return out
}
