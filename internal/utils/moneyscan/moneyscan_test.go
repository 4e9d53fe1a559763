package moneyscan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneta-svc/moneta/internal/apperrors"
	"github.com/moneta-svc/moneta/internal/platform/locale"
	"github.com/moneta-svc/moneta/internal/utils/moneyscan"
)

func TestExtractSymbol(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantToken     string
		wantRemainder string
	}{
		{name: "prefix symbol", text: "€ 1.234,56", wantToken: "€", wantRemainder: "1.234,56"},
		{name: "prefix symbol no space", text: "$12.50", wantToken: "$", wantRemainder: "12.50"},
		{name: "suffix symbol", text: "1234.5 BTC", wantToken: "BTC", wantRemainder: "1234.5"},
		{name: "suffix symbol no space", text: "99kr", wantToken: "kr", wantRemainder: "99"},
		{name: "code as prefix token", text: "USD 99.99", wantToken: "USD", wantRemainder: "99.99"},
		{name: "multi character symbol", text: "US$ 5", wantToken: "US$", wantRemainder: "5"},
		{name: "symbol with dots", text: "Fr. 5.00", wantToken: "Fr.", wantRemainder: "5.00"},
		{name: "parenthesized negative", text: "(1.234,56 €)", wantToken: "€", wantRemainder: "(1.234,56)"},
		{name: "leading minus", text: "-€5.00", wantToken: "€", wantRemainder: "-5.00"},
		{name: "sign inside numeric run", text: "€ -5.00", wantToken: "€", wantRemainder: "-5.00"},
		{name: "sign between symbol and digits", text: "€-5.00", wantToken: "€", wantRemainder: "-5.00"},
		{name: "surrounding whitespace consumed", text: "  12  zł  ", wantToken: "zł", wantRemainder: "  12"},
		{name: "no token in plain number", text: "1234.56", wantToken: "", wantRemainder: "1234.56"},
		{name: "empty input", text: "", wantToken: "", wantRemainder: ""},
		{name: "whitespace only", text: "   ", wantToken: "", wantRemainder: "   "},
		{name: "no match keeps text", text: "twelve dollars", wantToken: "", wantRemainder: "twelve dollars"},
		{name: "symbol alone is no match", text: "€", wantToken: "", wantRemainder: "€"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := moneyscan.ExtractSymbol(tt.text)
			assert.Equal(t, tt.wantToken, got.Token)
			assert.Equal(t, tt.wantRemainder, got.Remainder)
		})
	}
}

func TestExtractSymbol_SuffixWinsOverPrefix(t *testing.T) {
	// Both positions cannot capture in one match; the suffix group is
	// consulted first when reading the result.
	got := moneyscan.ExtractSymbol("5 CHF")
	assert.Equal(t, "CHF", got.Token)
	assert.Equal(t, "5", got.Remainder)
}

func TestExtractSymbol_ExcisionUsesFirstLiteralOccurrence(t *testing.T) {
	// The token "$" first occurs at the front even though the regex engine
	// may have seen it elsewhere; excision is literal.
	got := moneyscan.ExtractSymbol("$5")
	assert.Equal(t, "$", got.Token)
	assert.Equal(t, "5", got.Remainder)
}

func TestExtractSymbol_ParenthesesNeverJoinTheToken(t *testing.T) {
	got := moneyscan.ExtractSymbol("(5 US$)")
	assert.Equal(t, "US$", got.Token)
	assert.Equal(t, "(5)", got.Remainder)
}

func TestParseAmount_Invariant(t *testing.T) {
	inv := locale.Invariant()

	tests := []struct {
		name    string
		text    string
		want    string
		wantErr error
	}{
		{name: "plain", text: "234.25", want: "234.25"},
		{name: "integer", text: "1200", want: "1200"},
		{name: "grouped", text: "1,234.56", want: "1234.56"},
		{name: "two groups", text: "1,234,567.89", want: "1234567.89"},
		{name: "space grouping accepted everywhere", text: "1 234.56", want: "1234.56"},
		{name: "long fraction", text: "1234.56789", want: "1234.56789"},
		{name: "short fraction", text: "1234.5", want: "1234.5"},
		{name: "leading plus", text: "+5.00", want: "5"},
		{name: "leading minus", text: "-5.25", want: "-5.25"},
		{name: "parenthesized negative", text: "(5.25)", want: "-5.25"},
		{name: "parens with inner spaces", text: "( 5.25 )", want: "-5.25"},
		{name: "empty", text: "", wantErr: apperrors.ErrEmptyInput},
		{name: "blank", text: "   ", wantErr: apperrors.ErrEmptyInput},
		{name: "letters", text: "12abc", wantErr: apperrors.ErrInvalidAmount},
		{name: "two decimal separators", text: "1.2.3", wantErr: apperrors.ErrInvalidAmount},
		{name: "group after decimal", text: "1.234,56", wantErr: apperrors.ErrInvalidAmount},
		{name: "group of two digits", text: "1234,56", wantErr: apperrors.ErrInvalidAmount},
		{name: "trailing decimal separator", text: "5.", wantErr: apperrors.ErrInvalidAmount},
		{name: "leading decimal separator", text: ".5", wantErr: apperrors.ErrInvalidAmount},
		{name: "leading group separator", text: ",5", wantErr: apperrors.ErrInvalidAmount},
		{name: "sign inside parens", text: "(-5)", wantErr: apperrors.ErrInvalidAmount},
		{name: "unbalanced parens", text: "(5", wantErr: apperrors.ErrInvalidAmount},
		{name: "sign only", text: "-", wantErr: apperrors.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := moneyscan.ParseAmount(tt.text, inv)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseAmount_GermanConventions(t *testing.T) {
	de := locale.Conventions{DecimalSep: ',', GroupSep: '.', SymbolSuffix: true}

	tests := []struct {
		name    string
		text    string
		want    string
		wantErr error
	}{
		{name: "grouped with comma decimal", text: "1.234,56", want: "1234.56"},
		{name: "comma decimal only", text: "1234,56", want: "1234.56"},
		{name: "dot is grouping", text: "1.234", want: "1234"},
		{name: "invariant form fails loudly", text: "234.25", wantErr: apperrors.ErrInvalidAmount},
		{name: "mixed separators wrong order", text: "1,234.56", wantErr: apperrors.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := moneyscan.ParseAmount(tt.text, de)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseAmount_FrenchConventions(t *testing.T) {
	fr := locale.Conventions{DecimalSep: ',', GroupSep: ' ', SymbolSuffix: true}

	got, err := moneyscan.ParseAmount("1 234,56", fr)
	require.NoError(t, err)
	assert.Equal(t, "1234.56", got.String())

	got, err = moneyscan.ParseAmount("1 234,56", fr)
	require.NoError(t, err)
	assert.Equal(t, "1234.56", got.String())
}

func TestParseAmount_SwissConventions(t *testing.T) {
	ch := locale.Conventions{DecimalSep: '.', GroupSep: '\''}

	got, err := moneyscan.ParseAmount("1'234.56", ch)
	require.NoError(t, err)
	assert.Equal(t, "1234.56", got.String())
}

func TestParseAmount_ExactDecimal(t *testing.T) {
	inv := locale.Invariant()

	// No binary floating point: 0.1 stays exactly 0.1.
	got, err := moneyscan.ParseAmount("0.1", inv)
	require.NoError(t, err)
	assert.Equal(t, "0.1", got.String())

	got, err = moneyscan.ParseAmount("123456789012345678901234567890.123456789", inv)
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890.123456789", got.String())
}
