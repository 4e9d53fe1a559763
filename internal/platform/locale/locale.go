// Package locale maps BCP-47 tags to the two things the money engine needs
// from a locale: how the locale writes decimal numbers, and which currency
// the locale implies. Everything else about internationalization is out of
// scope here.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/moneta-svc/moneta/internal/apperrors"
)

// Conventions describe how a locale writes decimal numbers and where it puts
// the currency symbol in display output.
type Conventions struct {
	DecimalSep   rune
	GroupSep     rune
	SymbolSuffix bool // "1.234,56 €" rather than "€1,234.56"
}

// Invariant is the culture-neutral convention: dot decimal, comma grouping,
// symbol before the amount. It is what the canonical interchange format uses.
func Invariant() Conventions {
	return Conventions{DecimalSep: '.', GroupSep: ',', SymbolSuffix: false}
}

// localeTable lists the tags the matcher distinguishes with their
// conventions. The first entry is the fallback; regional variants with their
// own habits (Swiss apostrophe grouping) come before their plain language
// entries so the matcher can prefer them.
var localeTable = []struct {
	tag  string
	conv Conventions
}{
	{"en", Conventions{DecimalSep: '.', GroupSep: ','}},
	{"de-CH", Conventions{DecimalSep: '.', GroupSep: '\''}},
	{"fr-CH", Conventions{DecimalSep: '.', GroupSep: '\''}},
	{"de", Conventions{DecimalSep: ',', GroupSep: '.', SymbolSuffix: true}},
	{"fr", Conventions{DecimalSep: ',', GroupSep: ' ', SymbolSuffix: true}},
	{"es", Conventions{DecimalSep: ',', GroupSep: '.', SymbolSuffix: true}},
	{"it", Conventions{DecimalSep: ',', GroupSep: '.', SymbolSuffix: true}},
	{"nl", Conventions{DecimalSep: ',', GroupSep: '.', SymbolSuffix: true}},
	{"pt", Conventions{DecimalSep: ',', GroupSep: '.', SymbolSuffix: true}},
	{"pl", Conventions{DecimalSep: ',', GroupSep: ' ', SymbolSuffix: true}},
	{"cs", Conventions{DecimalSep: ',', GroupSep: ' ', SymbolSuffix: true}},
	{"hu", Conventions{DecimalSep: ',', GroupSep: ' ', SymbolSuffix: true}},
	{"ro", Conventions{DecimalSep: ',', GroupSep: '.', SymbolSuffix: true}},
	{"tr", Conventions{DecimalSep: ',', GroupSep: '.', SymbolSuffix: true}},
	{"ru", Conventions{DecimalSep: ',', GroupSep: ' ', SymbolSuffix: true}},
	{"uk", Conventions{DecimalSep: ',', GroupSep: ' ', SymbolSuffix: true}},
	{"sv", Conventions{DecimalSep: ',', GroupSep: ' ', SymbolSuffix: true}},
	{"nb", Conventions{DecimalSep: ',', GroupSep: ' ', SymbolSuffix: true}},
	{"da", Conventions{DecimalSep: ',', GroupSep: '.', SymbolSuffix: true}},
	{"fi", Conventions{DecimalSep: ',', GroupSep: ' ', SymbolSuffix: true}},
	{"is", Conventions{DecimalSep: ',', GroupSep: '.', SymbolSuffix: true}},
	{"el", Conventions{DecimalSep: ',', GroupSep: '.', SymbolSuffix: true}},
	{"hr", Conventions{DecimalSep: ',', GroupSep: '.', SymbolSuffix: true}},
	{"ja", Conventions{DecimalSep: '.', GroupSep: ','}},
	{"ko", Conventions{DecimalSep: '.', GroupSep: ','}},
	{"zh", Conventions{DecimalSep: '.', GroupSep: ','}},
	{"th", Conventions{DecimalSep: '.', GroupSep: ','}},
	{"hi", Conventions{DecimalSep: '.', GroupSep: ','}},
	{"he", Conventions{DecimalSep: '.', GroupSep: ',', SymbolSuffix: true}},
	{"ar", Conventions{DecimalSep: '.', GroupSep: ','}},
	{"vi", Conventions{DecimalSep: ',', GroupSep: '.', SymbolSuffix: true}},
	{"id", Conventions{DecimalSep: ',', GroupSep: '.', SymbolSuffix: true}},
}

var (
	matcher        language.Matcher
	conventionsFor []Conventions
)

func init() {
	tags := make([]language.Tag, len(localeTable))
	conventionsFor = make([]Conventions, len(localeTable))
	for i, e := range localeTable {
		tags[i] = language.MustParse(e.tag)
		conventionsFor[i] = e.conv
	}
	matcher = language.NewMatcher(tags)
}

// ForTag returns the separator conventions for a tag, falling back to the
// invariant convention when the language is not distinguished.
func ForTag(tag language.Tag) Conventions {
	if tag == language.Und {
		return Invariant()
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Invariant()
	}
	return conventionsFor[idx]
}

// Parse validates and canonicalizes a BCP-47 tag string.
func Parse(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return language.Und, fmt.Errorf("%w: empty locale", apperrors.ErrValidation)
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%w: locale %q: %v", apperrors.ErrValidation, s, err)
	}
	return tag, nil
}

// CurrencyCode returns the ISO code of the currency a locale implies, if any.
// The second return is false when the tag carries no usable region (und) or
// the region has no tender currency.
func CurrencyCode(tag language.Tag) (string, bool) {
	if tag == language.Und {
		return "", false
	}
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		return "", false
	}
	code := unit.String()
	if code == "" || code == "XXX" {
		return "", false
	}
	return code, true
}

// ParseAcceptLanguage picks the best tag from an Accept-Language header,
// falling back to def when the header is absent or unparseable.
func ParseAcceptLanguage(header string, def language.Tag) language.Tag {
	if strings.TrimSpace(header) == "" {
		return def
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return def
	}
	return tags[0]
}
