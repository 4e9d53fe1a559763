package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/moneta-svc/moneta/internal/apperrors"
)

var (
	codePattern        = regexp.MustCompile(`^[A-Za-z]{3}$`)
	numericCodePattern = regexp.MustCompile(`^[0-9]{3}$`)
)

// CurrencyBuilder assembles a CurrencyInfo step by step. CurrencyInfo values
// are immutable, so "editing" a currency means building a modified copy from
// the existing one and re-registering it.
type CurrencyBuilder struct {
	info CurrencyInfo
}

// NewCurrencyBuilder starts a builder for the given code. The code is
// validated and normalized at Build time.
func NewCurrencyBuilder(code string) *CurrencyBuilder {
	return &CurrencyBuilder{info: CurrencyInfo{Code: code}}
}

// BuilderFromCurrency starts a builder pre-populated with a full copy of an
// existing entry.
func BuilderFromCurrency(info CurrencyInfo) *CurrencyBuilder {
	return &CurrencyBuilder{info: info.Clone()}
}

func (b *CurrencyBuilder) WithName(name string) *CurrencyBuilder {
	b.info.Name = name
	return b
}

func (b *CurrencyBuilder) WithNumericCode(numericCode string) *CurrencyBuilder {
	b.info.NumericCode = numericCode
	return b
}

func (b *CurrencyBuilder) WithSymbol(symbol string) *CurrencyBuilder {
	b.info.Symbol = symbol
	return b
}

func (b *CurrencyBuilder) WithInternationalSymbol(symbol string) *CurrencyBuilder {
	b.info.InternationalSymbol = symbol
	return b
}

func (b *CurrencyBuilder) WithAlternativeSymbols(symbols ...string) *CurrencyBuilder {
	b.info.AlternativeSymbols = append([]string(nil), symbols...)
	return b
}

func (b *CurrencyBuilder) WithMinorUnit(mu MinorUnit) *CurrencyBuilder {
	b.info.MinorUnit = mu
	return b
}

func (b *CurrencyBuilder) WithReferenceTag(tag string) *CurrencyBuilder {
	b.info.ReferenceTag = tag
	return b
}

func (b *CurrencyBuilder) WithIntroducedOn(t time.Time) *CurrencyBuilder {
	b.info.IntroducedOn = &t
	return b
}

func (b *CurrencyBuilder) WithExpiredOn(t time.Time) *CurrencyBuilder {
	b.info.ExpiredOn = &t
	return b
}

// AsISO marks the entry as belonging to the ISO 4217 namespace. Only the
// compiled-in dataset uses this; user defined currencies stay non-ISO.
func (b *CurrencyBuilder) AsISO() *CurrencyBuilder {
	b.info.IsISO = true
	return b
}

// Build validates and normalizes the accumulated fields and returns the
// finished value. Validation failures wrap apperrors.ErrValidation.
func (b *CurrencyBuilder) Build() (CurrencyInfo, error) {
	info := b.info.Clone()

	code := NormalizeCurrencyCode(info.Code)
	if !codePattern.MatchString(code) {
		return CurrencyInfo{}, fmt.Errorf("%w: currency code %q must be exactly 3 letters", apperrors.ErrValidation, info.Code)
	}
	info.Code = code

	if info.NumericCode == "" {
		info.NumericCode = "000"
	} else if !numericCodePattern.MatchString(info.NumericCode) {
		return CurrencyInfo{}, fmt.Errorf("%w: numeric code %q must be exactly 3 digits", apperrors.ErrValidation, info.NumericCode)
	}

	if info.Symbol == "" {
		info.Symbol = GenericCurrencySign
	}
	if info.InternationalSymbol == "" {
		info.InternationalSymbol = GenericCurrencySign
	}

	if !info.MinorUnit.IsValid() {
		return CurrencyInfo{}, fmt.Errorf("%w: minor unit %d out of range", apperrors.ErrValidation, info.MinorUnit)
	}

	if info.IntroducedOn != nil && info.ExpiredOn != nil && info.ExpiredOn.Before(*info.IntroducedOn) {
		return CurrencyInfo{}, fmt.Errorf("%w: currency %s expires before it is introduced", apperrors.ErrValidation, info.Code)
	}

	info.AlternativeSymbols = dedupeSymbols(info.AlternativeSymbols)
	return info, nil
}

// dedupeSymbols trims entries, drops blanks, and keeps first occurrences in order.
func dedupeSymbols(symbols []string) []string {
	if len(symbols) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
