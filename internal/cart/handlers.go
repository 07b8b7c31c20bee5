package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/cart-api/internal/common"
	"github.com/noah-isme/cart-api/internal/discount"
	"github.com/noah-isme/cart-api/internal/money"
	"github.com/noah-isme/cart-api/internal/obs"
	"github.com/noah-isme/cart-api/internal/tax"
)

// Handler wires cart validation to HTTP.
type Handler struct {
	Svc             *Service
	Validate        *validator.Validate
	DefaultCurrency money.Currency
}

type validatePayload struct {
	Items         []itemPayload `json:"items" validate:"required,min=1,dive"`
	CountryCode   string        `json:"country_code" validate:"required"`
	TaxesIncluded *bool         `json:"taxes_included" validate:"required"`
	DiscountCode  string        `json:"discount_code"`
	Currency      string        `json:"currency"`
}

type itemPayload struct {
	Sku       string `json:"sku" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	UnitPrice *int64 `json:"unit_price" validate:"required,gte=0"`
}

// ValidateCart validates a cart payload and returns the computed totals.
//
// POST /api/v1/cart/validate
func (h *Handler) ValidateCart(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "cart service not configured", nil)
		return
	}

	var payload validatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, fmt.Errorf("%w: request body must be valid JSON", ErrInvalidCart))
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(payload); err != nil {
			h.writeError(w, fmt.Errorf("%w: %s", ErrInvalidCart, validationMessage(err)))
			return
		}
	}

	currency := h.DefaultCurrency
	if strings.TrimSpace(payload.Currency) != "" {
		parsed, err := money.ParseCurrency(payload.Currency)
		if err != nil {
			h.writeError(w, fmt.Errorf("%w: invalid currency: %s", ErrInvalidCart, payload.Currency))
			return
		}
		currency = parsed
	}

	country, err := tax.ParseCountryCode(payload.CountryCode)
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: invalid country code: %s", ErrInvalidCart, payload.CountryCode))
		return
	}

	items := make([]Item, 0, len(payload.Items))
	for _, it := range payload.Items {
		sku, err := NewSku(it.Sku)
		if err != nil {
			h.writeError(w, err)
			return
		}
		item, err := NewItem(sku, it.Name, it.Quantity, money.New(*it.UnitPrice, currency))
		if err != nil {
			h.writeError(w, err)
			return
		}
		items = append(items, item)
	}

	result, err := h.Svc.Validate(r.Context(), ValidateInput{
		Items:         items,
		Country:       country,
		TaxesIncluded: payload.TaxesIncluded != nil && *payload.TaxesIncluded,
		DiscountCode:  strings.TrimSpace(payload.DiscountCode),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	recordValidation("ok")
	if result.Discount != nil {
		recordDiscount(string(result.Discount.Type()))
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"cart":     resultPayload(result),
		"currency": currency.String(),
	})
}

// resultPayload serializes a calculation breakdown. Monetary fields are bare
// integers in minor units; the tax rate is a decimal number.
func resultPayload(result Result) map[string]any {
	items := make([]map[string]any, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, map[string]any{
			"sku":        item.Sku.String(),
			"name":       item.Name,
			"quantity":   item.Quantity,
			"unit_price": item.UnitPrice.Amount,
			"line_total": item.LineTotal().Amount,
		})
	}
	payload := map[string]any{
		"items":    items,
		"subtotal": result.Subtotal.Amount,
		"subtotal_after_discount": result.SubtotalAfterDiscount.Amount,
		"tax": map[string]any{
			"rate":     result.TaxRate.Value(),
			"amount":   result.TaxAmount.Amount,
			"included": result.TaxesIncluded,
		},
		"total": result.Total.Amount,
	}
	if result.Discount != nil {
		payload["discount"] = map[string]any{
			"code":   result.Discount.Code(),
			"type":   string(result.Discount.Type()),
			"value":  result.Discount.RawValue(),
			"amount": result.DiscountAmount.Amount,
		}
	}
	return payload
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	appErr := toAppError(err)
	recordValidation(strings.ToLower(appErr.Code))
	common.JSONError(w, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
}

// toAppError maps domain failures to wire codes. Every domain error is a
// non-retryable validation failure and renders as 400.
func toAppError(err error) *common.AppError {
	switch {
	case errors.Is(err, ErrInvalidSku):
		return common.NewAppError("INVALID_SKU", err.Error(), http.StatusBadRequest, err)
	case errors.Is(err, ErrInvalidCart):
		return common.NewAppError("INVALID_CART", err.Error(), http.StatusBadRequest, err)
	case errors.Is(err, discount.ErrUnknownCode):
		return common.NewAppError("INVALID_DISCOUNT_CODE", err.Error(), http.StatusBadRequest, err)
	case errors.Is(err, money.ErrCurrencyMismatch):
		return common.NewAppError("CURRENCY_MISMATCH", err.Error(), http.StatusBadRequest, err)
	case errors.Is(err, money.ErrNegativeRate):
		return common.NewAppError("INVALID_CART", err.Error(), http.StatusBadRequest, err)
	default:
		return common.NewAppError("INTERNAL", "unexpected error", http.StatusInternalServerError, err)
	}
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("field %s failed on the '%s' rule", fe.Namespace(), fe.Tag())
	}
	return "invalid request payload"
}

func recordValidation(result string) {
	if obs.CartValidationsTotal != nil {
		obs.CartValidationsTotal.WithLabelValues(result).Inc()
	}
}

func recordDiscount(kind string) {
	if obs.DiscountsAppliedTotal != nil {
		obs.DiscountsAppliedTotal.WithLabelValues(kind).Inc()
	}
}
