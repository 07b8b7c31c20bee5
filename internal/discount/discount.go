// Package discount models cart discounts and the catalog they are looked
// up from. A discount is either a percentage of the subtotal, optionally
// capped, or a fixed amount.
package discount

import (
	"github.com/noah-isme/cart-api/internal/money"
)

// Type discriminates the two discount kinds on the wire.
type Type string

const (
	TypePercentage Type = "percentage"
	TypeFixed      Type = "fixed"
)

// Discount is an immutable discount definition. Exactly one of percent or
// fixed is set; maxCap only applies to percentage discounts.
type Discount struct {
	code    string
	percent *money.Percentage
	fixed   *money.Money
	maxCap  *money.Money
}

// NewPercentage builds a percentage discount with an optional cap.
func NewPercentage(code string, percent money.Percentage, maxCap *money.Money) Discount {
	return Discount{code: code, percent: &percent, maxCap: maxCap}
}

// NewFixed builds a fixed-amount discount.
func NewFixed(code string, amount money.Money) Discount {
	return Discount{code: code, fixed: &amount}
}

// Code returns the discount code, e.g. "SAVE10".
func (d Discount) Code() string {
	return d.code
}

// Type returns the discount kind based on which value is set.
func (d Discount) Type() Type {
	if d.percent != nil {
		return TypePercentage
	}
	return TypeFixed
}

// RawValue returns the configured value for serialization: the percent rate
// as a float for percentage discounts, the amount in minor units for fixed
// ones.
func (d Discount) RawValue() any {
	if d.percent != nil {
		return d.percent.Value()
	}
	return d.fixed.Amount
}

// CalculateAmount computes the discount for a subtotal. The result never
// exceeds the subtotal, and never exceeds the cap when one is configured.
func (d Discount) CalculateAmount(subtotal money.Money) (money.Money, error) {
	if d.percent != nil {
		amount := d.percent.Apply(subtotal)
		if d.maxCap != nil {
			exceedsCap, err := amount.IsGreater(*d.maxCap)
			if err != nil {
				return money.Money{}, err
			}
			if exceedsCap {
				return *d.maxCap, nil
			}
		}
		return amount, nil
	}

	exceedsSubtotal, err := d.fixed.IsGreater(subtotal)
	if err != nil {
		return money.Money{}, err
	}
	if exceedsSubtotal {
		return subtotal, nil
	}
	return *d.fixed, nil
}
