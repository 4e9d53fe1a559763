package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/moneta-svc/moneta/internal/apperrors"
	"github.com/moneta-svc/moneta/internal/platform/locale"
)

func TestForTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		decimal rune
		group   rune
		suffix  bool
	}{
		{name: "american english", tag: "en-US", decimal: '.', group: ','},
		{name: "british english", tag: "en-GB", decimal: '.', group: ','},
		{name: "german", tag: "de-DE", decimal: ',', group: '.', suffix: true},
		{name: "austrian german matches german", tag: "de-AT", decimal: ',', group: '.', suffix: true},
		{name: "swiss german keeps apostrophe grouping", tag: "de-CH", decimal: '.', group: '\''},
		{name: "french uses narrow space grouping", tag: "fr-FR", decimal: ',', group: ' ', suffix: true},
		{name: "japanese", tag: "ja-JP", decimal: '.', group: ','},
		{name: "unknown language falls back to invariant", tag: "xh", decimal: '.', group: ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := locale.Parse(tt.tag)
			require.NoError(t, err)
			conv := locale.ForTag(tag)
			assert.Equal(t, tt.decimal, conv.DecimalSep)
			assert.Equal(t, tt.group, conv.GroupSep)
			assert.Equal(t, tt.suffix, conv.SymbolSuffix)
		})
	}
}

func TestForTag_Und(t *testing.T) {
	assert.Equal(t, locale.Invariant(), locale.ForTag(language.Und))
}

func TestParse(t *testing.T) {
	tag, err := locale.Parse(" fr-FR ")
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", tag.String())

	_, err = locale.Parse("")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = locale.Parse("not a locale!!")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCurrencyCode(t *testing.T) {
	tests := []struct {
		tag      string
		wantCode string
		wantOK   bool
	}{
		{tag: "en-US", wantCode: "USD", wantOK: true},
		{tag: "fr-FR", wantCode: "EUR", wantOK: true},
		{tag: "de-DE", wantCode: "EUR", wantOK: true},
		{tag: "ja-JP", wantCode: "JPY", wantOK: true},
		{tag: "en-CA", wantCode: "CAD", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			tag := language.MustParse(tt.tag)
			code, ok := locale.CurrencyCode(tag)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}

	_, ok := locale.CurrencyCode(language.Und)
	assert.False(t, ok, "und implies no currency")
}

func TestParseAcceptLanguage(t *testing.T) {
	def := language.MustParse("en-US")

	got := locale.ParseAcceptLanguage("fr-FR,fr;q=0.9,en;q=0.5", def)
	assert.Equal(t, "fr-FR", got.String())

	assert.Equal(t, def, locale.ParseAcceptLanguage("", def))
	assert.Equal(t, def, locale.ParseAcceptLanguage(";;;", def))
}
