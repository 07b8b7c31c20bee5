package cart

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidSku indicates a malformed stock keeping unit.
var ErrInvalidSku = errors.New("invalid sku")

var skuPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Sku is a validated stock keeping unit. Surrounding whitespace is trimmed;
// the remainder must be non-empty and limited to letters, digits, hyphen
// and underscore.
type Sku struct {
	value string
}

// NewSku validates and builds a Sku.
func NewSku(value string) (Sku, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Sku{}, fmt.Errorf("%w: sku cannot be empty", ErrInvalidSku)
	}
	if !skuPattern.MatchString(trimmed) {
		return Sku{}, fmt.Errorf("%w: sku contains invalid characters: %q", ErrInvalidSku, trimmed)
	}
	return Sku{value: trimmed}, nil
}

// String returns the SKU value.
func (s Sku) String() string {
	return s.value
}
