package mapping

import (
	"github.com/moneta-svc/moneta/internal/core/domain"
	"github.com/moneta-svc/moneta/internal/models"
)

// ToModelCurrency converts a domain CurrencyInfo to a model Currency.
// Audit columns are stamped by the repository, not copied from the domain
// value, since CurrencyInfo is an immutable value type without audit state.
func ToModelCurrency(d domain.CurrencyInfo) models.Currency {
	return models.Currency{
		CurrencyCode:        d.Code,
		NumericCode:         d.NumericCode,
		Name:                d.Name,
		Symbol:              d.Symbol,
		InternationalSymbol: d.InternationalSymbol,
		AlternativeSymbols:  d.AlternativeSymbols,
		MinorUnit:           int16(d.MinorUnit),
		IsISO:               d.IsISO,
		ReferenceTag:        d.ReferenceTag,
		IntroducedOn:        d.IntroducedOn,
		ExpiredOn:           d.ExpiredOn,
	}
}

// ToDomainCurrency converts a model Currency to a domain CurrencyInfo
func ToDomainCurrency(m models.Currency) domain.CurrencyInfo {
	return domain.CurrencyInfo{
		Code:                m.CurrencyCode,
		NumericCode:         m.NumericCode,
		Name:                m.Name,
		Symbol:              m.Symbol,
		InternationalSymbol: m.InternationalSymbol,
		AlternativeSymbols:  m.AlternativeSymbols,
		MinorUnit:           domain.MinorUnit(m.MinorUnit),
		IsISO:               m.IsISO,
		ReferenceTag:        m.ReferenceTag,
		IntroducedOn:        m.IntroducedOn,
		ExpiredOn:           m.ExpiredOn,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain CurrencyInfos
func ToDomainCurrencySlice(ms []models.Currency) []domain.CurrencyInfo {
	ds := make([]domain.CurrencyInfo, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
