package cart_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/cart-api/internal/cart"
	"github.com/noah-isme/cart-api/internal/money"
)

type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type successEnvelope struct {
	Success  bool           `json:"success"`
	Currency string         `json:"currency"`
	Cart     map[string]any `json:"cart"`
}

func newHandler() *cart.Handler {
	return &cart.Handler{
		Svc:             newService(),
		Validate:        validator.New(),
		DefaultCurrency: money.EUR,
	}
}

func postValidate(t *testing.T, h *cart.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ValidateCart(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.False(t, env.Success)
	return env
}

func TestValidateCartSuccess(t *testing.T) {
	rr := postValidate(t, newHandler(), `{
		"items": [
			{"sku": "TSHIRT-M", "name": "T-Shirt M", "quantity": 2, "unit_price": 2999},
			{"sku": "HOODIE-L", "name": "Hoodie L", "quantity": 1, "unit_price": 4999}
		],
		"country_code": "FR",
		"taxes_included": true
	}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var env successEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.True(t, env.Success)
	require.Equal(t, "EUR", env.Currency)
	require.Equal(t, float64(10997), env.Cart["subtotal"])
	require.Equal(t, float64(10997), env.Cart["total"])

	taxBlock, ok := env.Cart["tax"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(20), taxBlock["rate"])
	require.Equal(t, float64(1833), taxBlock["amount"])
	require.Equal(t, true, taxBlock["included"])

	items, ok := env.Cart["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "TSHIRT-M", first["sku"])
	require.Equal(t, float64(5998), first["line_total"])

	_, hasDiscount := env.Cart["discount"]
	require.False(t, hasDiscount)
}

func TestValidateCartWithDiscount(t *testing.T) {
	rr := postValidate(t, newHandler(), `{
		"items": [{"sku": "KEYBOARD", "name": "Keyboard", "quantity": 1, "unit_price": 10000}],
		"country_code": "DE",
		"taxes_included": false,
		"discount_code": "SAVE10"
	}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var env successEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.True(t, env.Success)

	discountBlock, ok := env.Cart["discount"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "SAVE10", discountBlock["code"])
	require.Equal(t, "percentage", discountBlock["type"])
	require.Equal(t, float64(1000), discountBlock["amount"])

	require.Equal(t, float64(9000), env.Cart["subtotal_after_discount"])
	require.Equal(t, float64(10710), env.Cart["total"])
}

func TestValidateCartExplicitCurrency(t *testing.T) {
	rr := postValidate(t, newHandler(), `{
		"items": [{"sku": "MOUSE", "name": "Mouse", "quantity": 1, "unit_price": 4500}],
		"country_code": "US",
		"taxes_included": false,
		"currency": "usd"
	}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var env successEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Equal(t, "USD", env.Currency)
	require.Equal(t, float64(4500), env.Cart["total"])
}

func TestValidateCartForeignCurrencyWithFixedDiscount(t *testing.T) {
	// The catalog is minted in the service currency (EUR), so a fixed
	// discount cannot apply to a USD cart.
	rr := postValidate(t, newHandler(), `{
		"items": [{"sku": "MOUSE", "name": "Mouse", "quantity": 1, "unit_price": 10000}],
		"country_code": "US",
		"taxes_included": false,
		"currency": "USD",
		"discount_code": "FLAT500"
	}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeError(t, rr)
	require.Equal(t, "CURRENCY_MISMATCH", env.Error.Code)
}

func TestValidateCartUnknownDiscountCode(t *testing.T) {
	rr := postValidate(t, newHandler(), `{
		"items": [{"sku": "MOUSE", "name": "Mouse", "quantity": 1, "unit_price": 4500}],
		"country_code": "FR",
		"taxes_included": true,
		"discount_code": "NOPE"
	}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeError(t, rr)
	require.Equal(t, "INVALID_DISCOUNT_CODE", env.Error.Code)
	require.Contains(t, env.Error.Message, "the discount code 'NOPE' is not valid")
}

func TestValidateCartMalformedSku(t *testing.T) {
	rr := postValidate(t, newHandler(), `{
		"items": [{"sku": "BAD SKU!", "name": "Mouse", "quantity": 1, "unit_price": 4500}],
		"country_code": "FR",
		"taxes_included": true
	}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeError(t, rr)
	require.Equal(t, "INVALID_SKU", env.Error.Code)
}

func TestValidateCartEmptyItems(t *testing.T) {
	rr := postValidate(t, newHandler(), `{
		"items": [],
		"country_code": "FR",
		"taxes_included": true
	}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeError(t, rr)
	require.Equal(t, "INVALID_CART", env.Error.Code)
}

func TestValidateCartUnknownCountry(t *testing.T) {
	rr := postValidate(t, newHandler(), `{
		"items": [{"sku": "MOUSE", "name": "Mouse", "quantity": 1, "unit_price": 4500}],
		"country_code": "XX",
		"taxes_included": true
	}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeError(t, rr)
	require.Equal(t, "INVALID_CART", env.Error.Code)
	require.Contains(t, env.Error.Message, "invalid country code")
}

func TestValidateCartUnknownCurrency(t *testing.T) {
	rr := postValidate(t, newHandler(), `{
		"items": [{"sku": "MOUSE", "name": "Mouse", "quantity": 1, "unit_price": 4500}],
		"country_code": "FR",
		"taxes_included": true,
		"currency": "XYZ"
	}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeError(t, rr)
	require.Equal(t, "INVALID_CART", env.Error.Code)
}

func TestValidateCartMalformedJSON(t *testing.T) {
	rr := postValidate(t, newHandler(), `{"items": [`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeError(t, rr)
	require.Equal(t, "INVALID_CART", env.Error.Code)
	require.Contains(t, env.Error.Message, "valid JSON")
}

func TestValidateCartMissingTaxesIncluded(t *testing.T) {
	rr := postValidate(t, newHandler(), `{
		"items": [{"sku": "MOUSE", "name": "Mouse", "quantity": 1, "unit_price": 4500}],
		"country_code": "FR"
	}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeError(t, rr)
	require.Equal(t, "INVALID_CART", env.Error.Code)
}
