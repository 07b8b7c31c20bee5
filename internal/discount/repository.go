package discount

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/noah-isme/cart-api/internal/money"
)

// ErrUnknownCode indicates the requested discount code does not exist.
var ErrUnknownCode = errors.New("unknown discount code")

// Repository resolves discount codes. Lookups happen before any cart
// calculation runs; the calculator itself never touches the repository.
type Repository interface {
	GetByCode(ctx context.Context, code string) (Discount, error)
}

// InMemoryRepository holds a fixed discount catalog keyed by upper-cased
// code. The map is never mutated after construction, so lookups are safe
// from concurrent requests without locking.
type InMemoryRepository struct {
	discounts map[string]Discount
}

// NewInMemoryRepository builds a repository from the provided catalog.
func NewInMemoryRepository(catalog []Discount) *InMemoryRepository {
	discounts := make(map[string]Discount, len(catalog))
	for _, d := range catalog {
		discounts[strings.ToUpper(d.Code())] = d
	}
	return &InMemoryRepository{discounts: discounts}
}

// GetByCode resolves a discount, case-insensitively.
func (r *InMemoryRepository) GetByCode(_ context.Context, code string) (Discount, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	d, ok := r.discounts[normalized]
	if !ok {
		return Discount{}, fmt.Errorf("%w: the discount code '%s' is not valid", ErrUnknownCode, normalized)
	}
	return d, nil
}

// Size returns the number of configured discounts.
func (r *InMemoryRepository) Size() int {
	return len(r.discounts)
}

// DefaultCatalog returns the built-in discount codes in the given currency.
func DefaultCatalog(currency money.Currency) []Discount {
	cap := money.New(1000, currency)
	return []Discount{
		NewPercentage("SAVE10", money.MustPercentage(10), nil),
		NewFixed("FLAT500", money.New(500, currency)),
		NewPercentage("WELCOME20", money.MustPercentage(20), &cap),
	}
}
