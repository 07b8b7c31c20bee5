// Package tax maps countries to the VAT/GST rate applied to carts shipped
// there. Rates are resolved before the cart calculation runs.
package tax

import (
	"errors"
	"fmt"
	"strings"

	"github.com/noah-isme/cart-api/internal/money"
)

// ErrUnknownCountry is returned for country codes without a configured rate.
var ErrUnknownCountry = errors.New("unknown country code")

// CountryCode is an ISO 3166-1 alpha-2 country identifier.
type CountryCode string

const (
	France        CountryCode = "FR"
	Germany       CountryCode = "DE"
	UnitedStates  CountryCode = "US"
	Canada        CountryCode = "CA"
	UnitedKingdom CountryCode = "GB"
)

// rates holds the tax rate per supported country. US carts carry no federal
// tax; Canada uses the 5% GST.
var rates = map[CountryCode]money.Percentage{
	France:        money.MustPercentage(20),
	Germany:       money.MustPercentage(19),
	UnitedStates:  money.MustPercentage(0),
	Canada:        money.MustPercentage(5),
	UnitedKingdom: money.MustPercentage(20),
}

// ParseCountryCode resolves a country code, case-insensitively.
func ParseCountryCode(code string) (CountryCode, error) {
	normalized := CountryCode(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := rates[normalized]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCountry, code)
	}
	return normalized, nil
}

// TaxRate returns the rate for the country.
func (c CountryCode) TaxRate() money.Percentage {
	return rates[c]
}

// String returns the alpha-2 code.
func (c CountryCode) String() string {
	return string(c)
}
