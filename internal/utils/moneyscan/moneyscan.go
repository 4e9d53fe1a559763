// Package moneyscan splits monetary text into a currency token and a numeric
// remainder, and scans locale-formatted decimal amounts exactly. Extraction
// is deliberately generous (it only decides what is symbol and what is
// number); the amount scanner is strict, so ambiguous input fails loudly
// instead of being misread.
package moneyscan

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/moneta-svc/moneta/internal/apperrors"
	"github.com/moneta-svc/moneta/internal/platform/locale"
)

// symbolPattern anchors the whole trimmed input: an optional parenthesis or
// leading-minus wrapper around either numeric-run-then-symbol-run or
// symbol-run-then-numeric-run. A numeric run is a signed digit sequence with
// any interior separator characters; a symbol run is anything without
// digits, whitespace, sign characters or parentheses (signs belong to the
// numeric run, parentheses are wrapper syntax). Exactly one of the two
// groups captures.
var symbolPattern = regexp.MustCompile(
	`^\(?-?(?:[-+]?\d+(?:[.,'\s\x{00A0}\x{202F}]+\d+)*[\s\x{00A0}\x{202F}]*([^-+\s\d()]+)|([^-+\s\d()]+)[\s\x{00A0}\x{202F}]*[-+]?\d+(?:[.,'\s\x{00A0}\x{202F}]+\d+)*)\)?$`)

// Extraction is the result of splitting monetary text.
type Extraction struct {
	Token     string // currency symbol or code token; empty when none was found
	Remainder string // the original text with the token and adjacent whitespace excised
}

// ExtractSymbol finds the currency token in text, if any. The suffix position
// (amount then symbol) is preferred over the prefix position when the pattern
// matched. Excision locates the token by its first literal occurrence in the
// original text, not by the match span, and consumes whitespace on both sides.
func ExtractSymbol(text string) Extraction {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Extraction{Remainder: text}
	}

	m := symbolPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Extraction{Remainder: text}
	}

	token := m[1] // suffix group first
	if token == "" {
		token = m[2]
	}
	if token == "" {
		return Extraction{Remainder: text}
	}

	return Extraction{Token: token, Remainder: excise(text, token)}
}

// excise removes the first literal occurrence of token from text together
// with the whitespace touching it on either side.
func excise(text, token string) string {
	idx := strings.Index(text, token)
	if idx < 0 {
		return text
	}
	start, end := idx, idx+len(token)

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if !unicode.IsSpace(r) {
			break
		}
		start -= size
	}
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if !unicode.IsSpace(r) {
			break
		}
		end += size
	}
	return text[:start] + text[end:]
}

// spaceGroupSeps are the space flavors that act as group separators in
// space-grouping locales. A space is never a decimal separator anywhere, so
// the scanner accepts these as grouping under every convention.
const spaceGroupSeps = "   "

func isSpaceGroup(r rune) bool {
	return strings.ContainsRune(spaceGroupSeps, r)
}

// ParseAmount scans a locale-formatted decimal exactly. The grammar: an
// optional parenthesis wrapper meaning negative, or an optional leading
// sign; digit groups separated by the convention's group separator (each
// separator must be followed by exactly three digits); at most one decimal
// separator with any number of fractional digits. Violations fail with
// ErrInvalidAmount; empty input fails with ErrEmptyInput.
func ParseAmount(text string, conv locale.Conventions) (decimal.Decimal, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return decimal.Decimal{}, fmt.Errorf("%w", apperrors.ErrEmptyInput)
	}

	neg := false
	if strings.HasPrefix(t, "(") {
		if !strings.HasSuffix(t, ")") {
			return decimal.Decimal{}, fmt.Errorf("%w: unbalanced parentheses in %q", apperrors.ErrInvalidAmount, text)
		}
		neg = true
		t = strings.TrimSpace(t[1 : len(t)-1])
		if strings.HasPrefix(t, "-") || strings.HasPrefix(t, "+") {
			return decimal.Decimal{}, fmt.Errorf("%w: sign inside parentheses in %q", apperrors.ErrInvalidAmount, text)
		}
	} else if strings.HasPrefix(t, "-") {
		neg = true
		t = strings.TrimSpace(t[1:])
	} else if strings.HasPrefix(t, "+") {
		t = strings.TrimSpace(t[1:])
	}

	var intPart, fracPart strings.Builder
	seenDecimal := false
	seenGroup := false
	sinceGroup := 0

	for _, r := range t {
		switch {
		case r >= '0' && r <= '9':
			if seenDecimal {
				fracPart.WriteRune(r)
			} else {
				intPart.WriteRune(r)
				sinceGroup++
			}
		case r == conv.DecimalSep:
			if seenDecimal {
				return decimal.Decimal{}, fmt.Errorf("%w: second decimal separator in %q", apperrors.ErrInvalidAmount, text)
			}
			if intPart.Len() == 0 {
				return decimal.Decimal{}, fmt.Errorf("%w: no digits before decimal separator in %q", apperrors.ErrInvalidAmount, text)
			}
			if seenGroup && sinceGroup != 3 {
				return decimal.Decimal{}, fmt.Errorf("%w: group of %d digits in %q", apperrors.ErrInvalidAmount, sinceGroup, text)
			}
			seenDecimal = true
		case r == conv.GroupSep || isSpaceGroup(r):
			if seenDecimal {
				return decimal.Decimal{}, fmt.Errorf("%w: group separator after decimal separator in %q", apperrors.ErrInvalidAmount, text)
			}
			if sinceGroup == 0 {
				return decimal.Decimal{}, fmt.Errorf("%w: misplaced group separator in %q", apperrors.ErrInvalidAmount, text)
			}
			if seenGroup && sinceGroup != 3 {
				return decimal.Decimal{}, fmt.Errorf("%w: group of %d digits in %q", apperrors.ErrInvalidAmount, sinceGroup, text)
			}
			seenGroup = true
			sinceGroup = 0
		default:
			return decimal.Decimal{}, fmt.Errorf("%w: unexpected character %q in %q", apperrors.ErrInvalidAmount, r, text)
		}
	}

	if intPart.Len() == 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: no digits in %q", apperrors.ErrInvalidAmount, text)
	}
	if seenGroup && sinceGroup != 3 {
		return decimal.Decimal{}, fmt.Errorf("%w: group of %d digits in %q", apperrors.ErrInvalidAmount, sinceGroup, text)
	}
	if seenDecimal && fracPart.Len() == 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: trailing decimal separator in %q", apperrors.ErrInvalidAmount, text)
	}

	normalized := intPart.String()
	if fracPart.Len() > 0 {
		normalized += "." + fracPart.String()
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q: %v", apperrors.ErrInvalidAmount, text, err)
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}
