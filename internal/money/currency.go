package money

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCurrency is returned when a currency code is not supported.
var ErrUnknownCurrency = errors.New("unknown currency")

// Currency identifies a supported ISO 4217 currency.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	CAD Currency = "CAD"
	GBP Currency = "GBP"
	ISK Currency = "ISK"
	BHD Currency = "BHD"
)

// minorUnitDigits maps each supported currency to its number of decimal
// places: 0 for the Icelandic krona, 3 for the Bahraini dinar, 2 otherwise.
var minorUnitDigits = map[Currency]int{
	EUR: 2,
	USD: 2,
	CAD: 2,
	GBP: 2,
	ISK: 0,
	BHD: 3,
}

// ParseCurrency resolves a currency code, case-insensitively.
func ParseCurrency(code string) (Currency, error) {
	normalized := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := minorUnitDigits[normalized]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
	}
	return normalized, nil
}

// MinorUnitDigits returns the number of decimal places for the currency.
func (c Currency) MinorUnitDigits() int {
	return minorUnitDigits[c]
}

// String returns the ISO code.
func (c Currency) String() string {
	return string(c)
}
