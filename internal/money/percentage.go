package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrNegativeRate is returned when constructing a percentage below zero.
var ErrNegativeRate = errors.New("percentage cannot be negative")

// Percentage is a non-negative rate in percent units: 20.0 means 20%.
// Rates above 100% are valid. The zero value is a 0% rate.
type Percentage struct {
	value float64
}

// NewPercentage builds a percentage, rejecting negative rates.
func NewPercentage(value float64) (Percentage, error) {
	if value < 0 {
		return Percentage{}, fmt.Errorf("%w: %v", ErrNegativeRate, value)
	}
	return Percentage{value: value}, nil
}

// MustPercentage builds a percentage and panics on a negative rate. Intended
// for static tables and tests.
func MustPercentage(value float64) Percentage {
	p, err := NewPercentage(value)
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns the rate in percent units (20.0 for 20%).
func (p Percentage) Value() float64 {
	return p.value
}

// AsDecimal returns the rate as a fraction (0.20 for 20%).
func (p Percentage) AsDecimal() float64 {
	return p.value / 100
}

// AsMultiplier returns 1 + AsDecimal, the factor a tax-exclusive price is
// multiplied by to obtain the tax-inclusive price.
func (p Percentage) AsMultiplier() float64 {
	return 1 + p.AsDecimal()
}

// IsZero reports whether the rate is 0%.
func (p Percentage) IsZero() bool {
	return p.value == 0
}

// Apply computes the rate's share of the amount, rounding half up.
func (p Percentage) Apply(amount Money) Money {
	return amount.PercentageOf(p)
}

// ExtractTaxFrom decomposes a tax-inclusive price. The pre-tax amount is
// floored (price / multiplier), so pre-tax + tax always equals the inclusive
// price exactly. This deliberately differs from AddTaxTo's rounding.
func (p Percentage) ExtractTaxFrom(priceIncludingTax Money) Money {
	if p.IsZero() {
		return Zero(priceIncludingTax.Currency)
	}
	priceExcludingTax := int64(math.Floor(float64(priceIncludingTax.Amount) / p.AsMultiplier()))
	return Money{
		Amount:   priceIncludingTax.Amount - priceExcludingTax,
		Currency: priceIncludingTax.Currency,
	}
}

// AddTaxTo computes the tax owed on a tax-exclusive price, rounding up: the
// tax authority never loses a fraction of a minor unit.
func (p Percentage) AddTaxTo(priceExcludingTax Money) Money {
	if p.IsZero() {
		return Zero(priceExcludingTax.Currency)
	}
	tax := int64(math.Ceil(float64(priceExcludingTax.Amount) * p.value / 100))
	return Money{Amount: tax, Currency: priceExcludingTax.Currency}
}

// String renders the rate, e.g. "20%" or "19.5%".
func (p Percentage) String() string {
	return strconv.FormatFloat(p.value, 'f', -1, 64) + "%"
}
