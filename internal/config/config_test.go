package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BACKEND_URL", "")
	t.Setenv("PAYMENT_LINK_URL", "")
	t.Setenv("SERVICE_NAME", "")

	cfg := Load()
	if cfg.BackendURL != "http://localhost:8001" {
		t.Errorf("BackendURL = %q, want default", cfg.BackendURL)
	}
	if cfg.PaymentLinkURL != DefaultPaymentLink {
		t.Errorf("PaymentLinkURL = %q, want default", cfg.PaymentLinkURL)
	}
	if cfg.ServiceName != "ordering-client" {
		t.Errorf("ServiceName = %q, want ordering-client", cfg.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://orders.kansha.ie/")
	t.Setenv("PAYMENT_LINK_URL", "https://revolut.me/other")
	t.Setenv("SERVICE_NAME", "kiosk")

	cfg := Load()
	if cfg.BackendURL != "https://orders.kansha.ie" {
		t.Errorf("BackendURL = %q, want trailing slash trimmed", cfg.BackendURL)
	}
	if cfg.PaymentLinkURL != "https://revolut.me/other" {
		t.Errorf("PaymentLinkURL = %q", cfg.PaymentLinkURL)
	}
	if cfg.ServiceName != "kiosk" {
		t.Errorf("ServiceName = %q", cfg.ServiceName)
	}
}
