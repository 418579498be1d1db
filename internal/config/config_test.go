package config

import (
	"reflect"
	"strings"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Fatalf("port=%q want 5000", cfg.Server.Port)
	}
	if cfg.Primary.Env != "development" {
		t.Fatalf("env=%q want development", cfg.Primary.Env)
	}
	if !reflect.DeepEqual(cfg.Server.CORSAllowedOrigins, []string{"*"}) {
		t.Fatalf("cors=%v want [*]", cfg.Server.CORSAllowedOrigins)
	}
	if cfg.Observability.ServiceName != ServiceName {
		t.Fatalf("service=%q want %q", cfg.Observability.ServiceName, ServiceName)
	}
	if cfg.Server.TrustProxyHeaders {
		t.Fatalf("proxy headers must not be trusted by default")
	}
	if cfg.Observability.NewRelicEnabled() {
		t.Fatalf("new relic should be disabled without a license key")
	}
	if got := cfg.Observability.GetLogLevel(); got != "debug" {
		t.Fatalf("log level=%q want debug", got)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ITEMECHO_PRIMARY__ENV", "production")
	t.Setenv("ITEMECHO_PRIMARY__DEBUG", "true")
	t.Setenv("ITEMECHO_SERVER__PORT", "8081")
	t.Setenv("ITEMECHO_SERVER__READ_TIMEOUT", "7")
	t.Setenv("ITEMECHO_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ITEMECHO_SERVER__RATE_LIMIT", "2.5")
	t.Setenv("ITEMECHO_SERVER__TRUST_PROXY_HEADERS", "true")
	t.Setenv("ITEMECHO_OBSERVABILITY__LOGGING__FORMAT", "console")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "8081" {
		t.Fatalf("port=%q want 8081", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 7 {
		t.Fatalf("read timeout=%d want 7", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 30 {
		t.Fatalf("write timeout=%d want default 30", cfg.Server.WriteTimeout)
	}
	if !cfg.Primary.Debug {
		t.Fatalf("debug should be true")
	}
	if cfg.Server.RateLimit != 2.5 {
		t.Fatalf("rate limit=%v want 2.5", cfg.Server.RateLimit)
	}
	if !cfg.Server.TrustProxyHeaders {
		t.Fatalf("trust proxy headers should be true")
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Server.CORSAllowedOrigins, want) {
		t.Fatalf("cors=%v want %v", cfg.Server.CORSAllowedOrigins, want)
	}
	if cfg.Observability.Environment != "production" {
		t.Fatalf("observability env=%q want production", cfg.Observability.Environment)
	}
	if got := cfg.Observability.GetLogLevel(); got != "info" {
		t.Fatalf("log level=%q want info", got)
	}
	if cfg.Observability.Logging.Format != "console" {
		t.Fatalf("format=%q want console", cfg.Observability.Logging.Format)
	}
}

func TestLoadConfig_RejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("ITEMECHO_OBSERVABILITY__LOGGING__LEVEL", "verbose")

	_, err := LoadConfig()
	if err == nil {
		t.Fatalf("expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "invalid logging level") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadConfig_RejectsNegativeRateLimit(t *testing.T) {
	t.Setenv("ITEMECHO_SERVER__RATE_LIMIT", "-1")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected validation error for negative rate limit")
	}
}
