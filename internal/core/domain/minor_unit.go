package domain

import (
	"fmt"

	"github.com/moneta-svc/moneta/internal/apperrors"
)

// MinorUnit is the number of fractional digits a currency is quoted in.
// Most currencies use two (cents), some use zero (yen) or three (dinar fils);
// user defined currencies may declare more. MinorUnitNone marks currencies
// that have no meaningful minor unit, such as the precious metal codes.
type MinorUnit int8

const (
	MinorUnitNone  MinorUnit = -1
	MinorUnitZero  MinorUnit = 0
	MinorUnitOne   MinorUnit = 1
	MinorUnitTwo   MinorUnit = 2
	MinorUnitThree MinorUnit = 3
	MinorUnitFour  MinorUnit = 4

	// maxMinorUnit bounds user supplied values; shopspring decimals handle
	// far more, but nothing monetary is quoted beyond 18 fractional digits.
	maxMinorUnit MinorUnit = 18
)

// NewMinorUnit validates n and returns it as a MinorUnit.
func NewMinorUnit(n int8) (MinorUnit, error) {
	mu := MinorUnit(n)
	if !mu.IsValid() {
		return MinorUnitNone, fmt.Errorf("%w: minor unit %d out of range [-1, %d]", apperrors.ErrValidation, n, maxMinorUnit)
	}
	return mu, nil
}

// IsValid reports whether m is MinorUnitNone or within the supported digit range.
func (m MinorUnit) IsValid() bool {
	return m >= MinorUnitNone && m <= maxMinorUnit
}

// IsApplicable reports whether m denotes an actual digit count.
func (m MinorUnit) IsApplicable() bool {
	return m >= MinorUnitZero
}

// Digits returns the fractional digit count for rounding and formatting.
// MinorUnitNone contributes zero digits; callers decide whether that means
// "no rounding" (it does, everywhere in this codebase).
func (m MinorUnit) Digits() int32 {
	if !m.IsApplicable() {
		return 0
	}
	return int32(m)
}

func (m MinorUnit) String() string {
	if m == MinorUnitNone {
		return "n/a"
	}
	return fmt.Sprintf("%d", int8(m))
}
