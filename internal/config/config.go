package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/noah-isme/cart-api/internal/money"
)

// DiscountSpec is a discount catalog entry loadable from the environment.
// Value is the percent rate for percentage discounts and the amount in minor
// units for fixed ones.
type DiscountSpec struct {
	Code   string  `json:"code"`
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
	MaxCap *int64  `json:"max_cap,omitempty"`
}

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv             string
	Port               string
	CORSAllowedOrigins []string
	Currency           money.Currency
	RateLimitMax       int
	RateLimitWindow    time.Duration
	DiscountCatalog    []DiscountSpec
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	currency, err := money.ParseCurrency(valueOrDefault(k.String("CURRENCY_CODE"), "EUR"))
	if err != nil {
		return nil, fmt.Errorf("CURRENCY_CODE: %w", err)
	}

	cfg := &Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),
		Currency:           currency,
		RateLimitMax:       int(k.Int64("RATE_LIMIT_MAX")),
		RateLimitWindow:    parseDuration(k.String("RATE_LIMIT_WINDOW"), "1m"),
	}
	if cfg.RateLimitMax <= 0 {
		cfg.RateLimitMax = 60
	}

	if catalog := strings.TrimSpace(k.String("DISCOUNT_CATALOG")); catalog != "" {
		var specs []DiscountSpec
		if err := json.Unmarshal([]byte(catalog), &specs); err != nil {
			return nil, fmt.Errorf("parse DISCOUNT_CATALOG: %w", err)
		}
		for _, spec := range specs {
			if spec.Code == "" {
				return nil, fmt.Errorf("DISCOUNT_CATALOG entry without code")
			}
			if spec.Type != "percentage" && spec.Type != "fixed" {
				return nil, fmt.Errorf("DISCOUNT_CATALOG entry %s: unknown type %q", spec.Code, spec.Type)
			}
		}
		cfg.DiscountCatalog = specs
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
