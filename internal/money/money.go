package money

import (
	"errors"
	"fmt"
	"math"
)

// ErrCurrencyMismatch is returned when two amounts of different currencies
// are combined or compared.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Money is an exact amount expressed in a currency's minor units (cents for
// EUR). The amount may be negative; call sites that require non-negative
// values (item prices, final totals) enforce that at construction time.
// All operations return new values and never mutate their operands.
type Money struct {
	Amount   int64
	Currency Currency
}

// New builds a Money value from an amount in minor units.
func New(amount int64, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// Zero returns the zero amount for the given currency.
func Zero(currency Currency) Money {
	return Money{Currency: currency}
}

// FromMajorUnit converts a decimal major-unit amount (e.g. 29.99 EUR) to
// minor units, rounding half up.
func FromMajorUnit(amount float64, currency Currency) Money {
	scale := math.Pow10(currency.MinorUnitDigits())
	return Money{Amount: int64(math.Floor(amount*scale + 0.5)), Currency: currency}
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Subtract returns the difference. The result may be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount - other.Amount, Currency: m.Currency}, nil
}

// Multiply scales the amount by an integer factor. Exact, no rounding.
func (m Money) Multiply(factor int64) Money {
	return Money{Amount: m.Amount * factor, Currency: m.Currency}
}

// PercentageOf computes rate% of the amount, rounding half up on the minor
// unit: 10997 at 10% is 1099.7 and rounds to 1100.
func (m Money) PercentageOf(rate Percentage) Money {
	raw := float64(m.Amount) * rate.Value() / 100
	return Money{Amount: int64(math.Floor(raw + 0.5)), Currency: m.Currency}
}

// IsGreater reports whether m is strictly greater than other.
func (m Money) IsGreater(other Money) (bool, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return false, err
	}
	return m.Amount > other.Amount, nil
}

// IsLess reports whether m is strictly less than other.
func (m Money) IsLess(other Money) (bool, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return false, err
	}
	return m.Amount < other.Amount, nil
}

// IsEqual reports whether both amounts are identical.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return false, err
	}
	return m.Amount == other.Amount, nil
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount == 0
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Amount < 0
}

// MinZero clamps a negative amount to zero.
func (m Money) MinZero() Money {
	if m.Amount < 0 {
		return Zero(m.Currency)
	}
	return m
}

// ToMajorUnit converts the amount to its decimal major-unit representation.
func (m Money) ToMajorUnit() float64 {
	return float64(m.Amount) / math.Pow10(m.Currency.MinorUnitDigits())
}

// Max returns the largest of the provided amounts.
func Max(first Money, rest ...Money) (Money, error) {
	result := first
	for _, candidate := range rest {
		greater, err := candidate.IsGreater(result)
		if err != nil {
			return Money{}, err
		}
		if greater {
			result = candidate
		}
	}
	return result, nil
}

// Min returns the smallest of the provided amounts.
func Min(first Money, rest ...Money) (Money, error) {
	result := first
	for _, candidate := range rest {
		less, err := candidate.IsLess(result)
		if err != nil {
			return Money{}, err
		}
		if less {
			result = candidate
		}
	}
	return result, nil
}

// String renders the amount with its currency code, e.g. "2999 EUR".
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}

func (m Money) assertSameCurrency(other Money) error {
	if m.Currency != other.Currency {
		return fmt.Errorf("%w: %s != %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return nil
}
