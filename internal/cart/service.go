package cart

import (
	"context"
	"errors"

	"github.com/noah-isme/cart-api/internal/discount"
	"github.com/noah-isme/cart-api/internal/tax"
)

// Service resolves the external collaborators a cart validation needs (the
// country tax rate and the optional discount lookup) and then runs the pure
// calculation. Lookups happen up front; Calculate itself never performs any.
type Service struct {
	Discounts discount.Repository
}

// ValidateInput carries one already-parsed validation request.
type ValidateInput struct {
	Items         []Item
	Country       tax.CountryCode
	TaxesIncluded bool
	DiscountCode  string
}

// Validate computes the full breakdown for the given cart.
func (s *Service) Validate(ctx context.Context, in ValidateInput) (Result, error) {
	if s == nil || s.Discounts == nil {
		return Result{}, errors.New("cart service not configured")
	}

	var disc *discount.Discount
	if in.DiscountCode != "" {
		d, err := s.Discounts.GetByCode(ctx, in.DiscountCode)
		if err != nil {
			return Result{}, err
		}
		disc = &d
	}

	return Calculate(in.Items, in.Country.TaxRate(), in.TaxesIncluded, disc)
}
