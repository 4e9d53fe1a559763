package models

import "time"

// Currency is the persisted registry row. Registered entries survive
// restarts through this table; the seeded ISO set is compiled in and never
// written here.
type Currency struct {
	CurrencyCode        string     `db:"currency_code"` // Primary Key (e.g., "USD")
	NumericCode         string     `db:"numeric_code"`
	Name                string     `db:"name"`
	Symbol              string     `db:"symbol"`
	InternationalSymbol string     `db:"international_symbol"`
	AlternativeSymbols  []string   `db:"alternative_symbols"`
	MinorUnit           int16      `db:"minor_unit"` // -1 when not applicable
	IsISO               bool       `db:"is_iso"`
	ReferenceTag        string     `db:"reference_tag"`
	IntroducedOn        *time.Time `db:"introduced_on"`
	ExpiredOn           *time.Time `db:"expired_on"`
	AuditFields
}
