package config

import (
	"os"
	"strings"
)

// DefaultPaymentLink is the restaurant's Revolut page, opened after a
// successful order paid with the online redirect method.
const DefaultPaymentLink = "https://revolut.me/kishor571t"

// Config holds all configuration for the ordering client
type Config struct {
	BackendURL     string
	PaymentLinkURL string
	ServiceName    string
}

// Load reads configuration from the environment, falling back to
// development defaults.
func Load() *Config {
	return &Config{
		BackendURL:     strings.TrimRight(getenv("BACKEND_URL", "http://localhost:8001"), "/"),
		PaymentLinkURL: getenv("PAYMENT_LINK_URL", DefaultPaymentLink),
		ServiceName:    getenv("SERVICE_NAME", "ordering-client"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
