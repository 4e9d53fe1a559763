package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/moneta-svc/moneta/internal/apperrors"
)

var (
	maxInt64Dec = decimal.NewFromInt(math.MaxInt64)
	minInt64Dec = decimal.NewFromInt(math.MinInt64)
)

// Money is an exact decimal amount tagged with a currency code. Amounts keep
// whatever precision arithmetic produces; rounding to the currency's minor
// unit happens only at explicit boundaries (RoundToMinorUnit, MinorUnits,
// FixedPoint and formatting), never implicitly.
type Money struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"` // e.g., "USD"
}

// NewMoney builds a Money value; the code is case-normalized.
func NewMoney(amount decimal.Decimal, currencyCode string) Money {
	return Money{Amount: amount, CurrencyCode: NormalizeCurrencyCode(currencyCode)}
}

// NewMoneyFromString parses an invariant decimal literal (as produced by
// decimal.String) into a Money value.
func NewMoneyFromString(amount string, currencyCode string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a decimal amount", apperrors.ErrInvalidAmount, amount)
	}
	return NewMoney(d, currencyCode), nil
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currencyCode string) Money {
	return NewMoney(decimal.Zero, currencyCode)
}

// NoMoney is the sentinel returned by try-parse style operations on failure:
// zero amount in the XXX no-currency sentinel.
func NoMoney() Money {
	return ZeroMoney(NoCurrencyCode)
}

func (m Money) assertSameCurrency(other Money) error {
	if m.CurrencyCode != other.CurrencyCode {
		return fmt.Errorf("%w: %s vs %s", apperrors.ErrCurrencyMismatch, m.CurrencyCode, other.CurrencyCode)
	}
	return nil
}

// Add returns m+other; both operands must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount.Add(other.Amount), CurrencyCode: m.CurrencyCode}, nil
}

// Subtract returns m-other; both operands must share a currency.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount.Sub(other.Amount), CurrencyCode: m.CurrencyCode}, nil
}

// AddAmount adds a bare decimal to the amount; the currency carries over.
func (m Money) AddAmount(d decimal.Decimal) Money {
	return Money{Amount: m.Amount.Add(d), CurrencyCode: m.CurrencyCode}
}

// SubtractAmount subtracts a bare decimal from the amount; the currency
// carries over.
func (m Money) SubtractAmount(d decimal.Decimal) Money {
	return Money{Amount: m.Amount.Sub(d), CurrencyCode: m.CurrencyCode}
}

// MultiplyBy scales the amount by a dimensionless factor, keeping exact precision.
func (m Money) MultiplyBy(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor), CurrencyCode: m.CurrencyCode}
}

// DivideBy divides the amount by a dimensionless divisor, keeping exact
// precision (shopspring's default division precision applies to non-terminating
// quotients). A zero divisor is an argument error, not a panic.
func (m Money) DivideBy(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, fmt.Errorf("%w: division by zero", apperrors.ErrInvalidArgument)
	}
	return Money{Amount: m.Amount.Div(divisor), CurrencyCode: m.CurrencyCode}, nil
}

// Negate flips the sign.
func (m Money) Negate() Money {
	return Money{Amount: m.Amount.Neg(), CurrencyCode: m.CurrencyCode}
}

// Abs returns the magnitude.
func (m Money) Abs() Money {
	return Money{Amount: m.Amount.Abs(), CurrencyCode: m.CurrencyCode}
}

// Cmp compares amounts (-1, 0, +1); both operands must share a currency.
func (m Money) Cmp(other Money) (int, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return 0, err
	}
	return m.Amount.Cmp(other.Amount), nil
}

// GreaterThan reports m > other for same-currency operands.
func (m Money) GreaterThan(other Money) (bool, error) {
	c, err := m.Cmp(other)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// LessThan reports m < other for same-currency operands.
func (m Money) LessThan(other Money) (bool, error) {
	c, err := m.Cmp(other)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// Equal reports value equality: same currency and numerically equal amounts
// (2.5 equals 2.50).
func (m Money) Equal(other Money) bool {
	return m.CurrencyCode == other.CurrencyCode && m.Amount.Equal(other.Amount)
}

func (m Money) IsZero() bool     { return m.Amount.IsZero() }
func (m Money) IsNegative() bool { return m.Amount.IsNegative() }
func (m Money) IsPositive() bool { return m.Amount.IsPositive() }

// RoundToMinorUnit rounds to the currency's fractional digit count using
// banker's rounding (round half to even). A non-applicable minor unit leaves
// the amount untouched.
func (m Money) RoundToMinorUnit(mu MinorUnit) Money {
	if !mu.IsApplicable() {
		return m
	}
	return Money{Amount: m.Amount.RoundBank(mu.Digits()), CurrencyCode: m.CurrencyCode}
}

// MinorUnits returns the banker's-rounded amount as an integer count of minor
// units (e.g. 12.34 USD -> 1234). Currencies without an applicable minor unit
// have no such representation.
func (m Money) MinorUnits(mu MinorUnit) (int64, error) {
	if !mu.IsApplicable() {
		return 0, fmt.Errorf("%w: %s has no applicable minor unit", apperrors.ErrPrecision, m.CurrencyCode)
	}
	return m.FixedPoint(mu, mu.Digits())
}

// FixedPoint exports the amount scaled to a fixed number of fractional digits,
// for interchange with fixed-width numeric formats. It fails with ErrPrecision
// when the currency's minor unit needs more digits than the target offers, and
// with ErrOverflow when the scaled value does not fit in an int64.
func (m Money) FixedPoint(mu MinorUnit, scale int32) (int64, error) {
	if !mu.IsApplicable() {
		return 0, fmt.Errorf("%w: %s has no applicable minor unit", apperrors.ErrPrecision, m.CurrencyCode)
	}
	if mu.Digits() > scale {
		return 0, fmt.Errorf("%w: %s needs %d fractional digits, target allows %d", apperrors.ErrPrecision, m.CurrencyCode, mu.Digits(), scale)
	}
	scaled := m.Amount.RoundBank(mu.Digits()).Shift(scale)
	if scaled.Cmp(maxInt64Dec) > 0 || scaled.Cmp(minInt64Dec) < 0 {
		return 0, fmt.Errorf("%w: %s does not fit in 64 bits at scale %d", apperrors.ErrOverflow, m.Amount.String(), scale)
	}
	return scaled.IntPart(), nil
}

// String renders "CODE amount" with the amount's exact precision. Canonical
// minor-unit formatting lives in the money service, which knows the registry.
func (m Money) String() string {
	return m.CurrencyCode + " " + m.Amount.String()
}
