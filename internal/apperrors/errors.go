package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidArgument indicates that a caller supplied an unusable argument,
// such as a nil request or a zero divisor.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrEmptyInput indicates that text to be parsed was empty or whitespace only.
var ErrEmptyInput = errors.New("input text is empty")

// ErrInvalidAmount indicates that the numeric portion of a monetary string
// violated the separator grammar in effect.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrUnknownCurrency indicates that a symbol or code token matched no
// registered currency.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrAmbiguousCurrency indicates that a symbol token matched more than one
// registered currency and nothing in context could break the tie.
var ErrAmbiguousCurrency = errors.New("ambiguous currency symbol")

// ErrCurrencyMismatch indicates that two currencies that had to agree did not:
// either an arithmetic operand pair, or an explicit hint contradicting the
// currency found in parsed text.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrOverflow indicates that a value could not be represented in the
// requested fixed-size integer form.
var ErrOverflow = errors.New("value overflows target representation")

// ErrPrecision indicates that a currency's minor unit cannot be represented
// in the requested fixed-precision form.
var ErrPrecision = errors.New("precision not representable")

// IsParseFailure reports whether err belongs to the class of failures that
// TryParse-style callers swallow: the text (or its currency token) could not
// be understood. Argument misuse and overflow are deliberately outside this
// class and always propagate.
func IsParseFailure(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrUnknownCurrency) ||
		errors.Is(err, ErrAmbiguousCurrency) ||
		errors.Is(err, ErrCurrencyMismatch) ||
		errors.Is(err, ErrNotFound)
}
