package cart

import (
	"errors"
	"fmt"

	"github.com/noah-isme/cart-api/internal/money"
)

// ErrInvalidCart indicates cart-level validation failed: empty cart,
// non-positive quantity, empty name or negative price.
var ErrInvalidCart = errors.New("invalid cart")

// Item is one validated cart line. Construction enforces the invariants;
// a built Item is immutable.
type Item struct {
	Sku       Sku
	Name      string
	Quantity  int64
	UnitPrice money.Money
}

// NewItem validates and builds a cart line.
func NewItem(sku Sku, name string, quantity int64, unitPrice money.Money) (Item, error) {
	if quantity <= 0 {
		return Item{}, fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidCart, quantity)
	}
	if name == "" {
		return Item{}, fmt.Errorf("%w: item name cannot be empty", ErrInvalidCart)
	}
	if unitPrice.IsNegative() {
		return Item{}, fmt.Errorf("%w: unit price cannot be negative", ErrInvalidCart)
	}
	return Item{Sku: sku, Name: name, Quantity: quantity, UnitPrice: unitPrice}, nil
}

// LineTotal returns unit price times quantity. Exact, no rounding.
func (i Item) LineTotal() money.Money {
	return i.UnitPrice.Multiply(i.Quantity)
}
