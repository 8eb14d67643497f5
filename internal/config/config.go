package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port            string
	UpstreamTimeout time.Duration

	// Upstream base URLs. Both default to the same backend.
	CatalogURL string
	OrderURL   string

	CORSAllowOrigins []string

	ProductsPageSize      int
	ToastLifetime         time.Duration
	CheckoutRedirectDelay time.Duration
	SessionIdleTimeout    time.Duration

	// Empty disables order event publishing.
	RabbitURL string

	Tracing bool
}

func Load() Config {
	return Config{
		Port:            getenv("PORT", "8080"),
		UpstreamTimeout: parseDuration(getenv("UPSTREAM_TIMEOUT", "10s"), 10*time.Second),

		CatalogURL: getenv("CATALOG_API_URL", "http://localhost:8000"),
		OrderURL:   getenv("ORDER_API_URL", "http://localhost:8000"),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),

		ProductsPageSize:      parsePositiveInt(getenv("PRODUCTS_PAGE_SIZE", "9"), 9),
		ToastLifetime:         parseDuration(getenv("TOAST_LIFETIME", "5s"), 5*time.Second),
		CheckoutRedirectDelay: parseDuration(getenv("CHECKOUT_REDIRECT_DELAY", "2s"), 2*time.Second),
		SessionIdleTimeout:    parseDuration(getenv("SESSION_IDLE_TIMEOUT", "30m"), 30*time.Minute),

		RabbitURL: strings.TrimSpace(os.Getenv("RABBITMQ_URL")),

		Tracing: parseBool(getenv("OTEL_TRACING", "true"), true),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func parsePositiveInt(v string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func parseBool(v string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}
