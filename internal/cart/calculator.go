package cart

import (
	"fmt"

	"github.com/noah-isme/cart-api/internal/discount"
	"github.com/noah-isme/cart-api/internal/money"
)

// Result is the complete computed breakdown of a cart. It is assembled once
// by Calculate and never modified afterwards.
type Result struct {
	Items                 []Item
	Subtotal              money.Money
	Discount              *discount.Discount
	DiscountAmount        money.Money
	SubtotalAfterDiscount money.Money
	TaxRate               money.Percentage
	TaxAmount             money.Money
	TaxesIncluded         bool
	Total                 money.Money
}

// Calculate validates the cart and computes its totals. It is a pure
// function: no I/O, no shared state, and any failure aborts the whole
// calculation without a partial result.
//
// The first item's currency is authoritative; a mismatch among items
// surfaces as money.ErrCurrencyMismatch.
func Calculate(items []Item, taxRate money.Percentage, taxesIncluded bool, disc *discount.Discount) (Result, error) {
	if len(items) == 0 {
		return Result{}, fmt.Errorf("%w: cart cannot be empty", ErrInvalidCart)
	}

	subtotal, err := calculateSubtotal(items)
	if err != nil {
		return Result{}, err
	}

	discountAmount := money.Zero(subtotal.Currency)
	if disc != nil {
		discountAmount, err = disc.CalculateAmount(subtotal)
		if err != nil {
			return Result{}, err
		}
	}

	// Discount clamping guarantees this never goes negative.
	subtotalAfterDiscount, err := subtotal.Subtract(discountAmount)
	if err != nil {
		return Result{}, err
	}

	var taxAmount, total money.Money
	if taxesIncluded {
		taxAmount = taxRate.ExtractTaxFrom(subtotalAfterDiscount)
		total = subtotalAfterDiscount
	} else {
		taxAmount = taxRate.AddTaxTo(subtotalAfterDiscount)
		total, err = subtotalAfterDiscount.Add(taxAmount)
		if err != nil {
			return Result{}, err
		}
	}

	return Result{
		Items:                 items,
		Subtotal:              subtotal,
		Discount:              disc,
		DiscountAmount:        discountAmount,
		SubtotalAfterDiscount: subtotalAfterDiscount,
		TaxRate:               taxRate,
		TaxAmount:             taxAmount,
		TaxesIncluded:         taxesIncluded,
		Total:                 total,
	}, nil
}

func calculateSubtotal(items []Item) (money.Money, error) {
	subtotal := money.Zero(items[0].UnitPrice.Currency)
	for _, item := range items {
		sum, err := subtotal.Add(item.LineTotal())
		if err != nil {
			return money.Money{}, err
		}
		subtotal = sum
	}
	return subtotal, nil
}
