package dto

import (
	"time"

	"github.com/moneta-svc/moneta/internal/core/domain"
)

// RegisterCurrencyRequest defines the data needed to register a currency.
// The code is case-insensitive on input and stored upper case. A nil minor
// unit defaults to two fractional digits; -1 declares no applicable minor
// unit.
type RegisterCurrencyRequest struct {
	Code                string   `json:"code" binding:"required,len=3,alpha"`
	NumericCode         string   `json:"numericCode" binding:"omitempty,len=3,numeric"`
	Name                string   `json:"name" binding:"required"`
	Symbol              string   `json:"symbol"`              // empty becomes the generic sign
	InternationalSymbol string   `json:"internationalSymbol"` // empty becomes the generic sign
	AlternativeSymbols  []string `json:"alternativeSymbols"`
	MinorUnit           *int8    `json:"minorUnit" binding:"omitempty,min=-1,max=18"`
	ReferenceTag        string   `json:"referenceTag"` // BCP 47 tag, validated on registration
	IntroducedOn        string   `json:"introducedOn" binding:"omitempty,datetime=2006-01-02"`
	ExpiredOn           string   `json:"expiredOn" binding:"omitempty,datetime=2006-01-02"`
}

// CurrencyResponse defines the data returned for a registry entry.
type CurrencyResponse struct {
	Code                string     `json:"code"`
	NumericCode         string     `json:"numericCode"`
	Name                string     `json:"name"`
	Symbol              string     `json:"symbol"`
	InternationalSymbol string     `json:"internationalSymbol"`
	AlternativeSymbols  []string   `json:"alternativeSymbols,omitempty"`
	MinorUnit           int8       `json:"minorUnit"` // -1 when not applicable
	IsISO               bool       `json:"isISO"`
	ReferenceTag        string     `json:"referenceTag,omitempty"`
	IntroducedOn        *time.Time `json:"introducedOn,omitempty"`
	ExpiredOn           *time.Time `json:"expiredOn,omitempty"`
}

// ToCurrencyResponse converts a domain.CurrencyInfo to CurrencyResponse DTO
func ToCurrencyResponse(info *domain.CurrencyInfo) CurrencyResponse {
	return CurrencyResponse{
		Code:                info.Code,
		NumericCode:         info.NumericCode,
		Name:                info.Name,
		Symbol:              info.Symbol,
		InternationalSymbol: info.InternationalSymbol,
		AlternativeSymbols:  info.AlternativeSymbols,
		MinorUnit:           int8(info.MinorUnit),
		IsISO:               info.IsISO,
		ReferenceTag:        info.ReferenceTag,
		IntroducedOn:        info.IntroducedOn,
		ExpiredOn:           info.ExpiredOn,
	}
}

// ToListCurrencyResponse converts a slice of domain.CurrencyInfo to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.CurrencyInfo) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}

// ListCurrenciesParams defines query parameters for listing the registry.
type ListCurrenciesParams struct {
	Token string `form:"token"` // filter to candidates matching a symbol or code
}

// CurrentCurrencyParams defines query parameters for the current-currency lookup.
type CurrentCurrencyParams struct {
	Locale string `form:"locale"` // BCP 47 tag, parsed by the locale middleware
}
