package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/items-echo/internal/config"
)

func TestNewLogger_JSONFields(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "info"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("k", "v").Msg("visible")

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("expected exactly one JSON line, got %q: %v", buf.String(), err)
	}
	if line["message"] != "visible" {
		t.Fatalf("message=%v", line["message"])
	}
	if line["service"] != config.ServiceName {
		t.Fatalf("service=%v", line["service"])
	}
	if line["k"] != "v" {
		t.Fatalf("k=%v", line["k"])
	}
}

func TestLoggerService_DisabledWithoutLicense(t *testing.T) {
	svc := NewLoggerService(config.DefaultObservabilityConfig())
	if svc.GetApplication() != nil {
		t.Fatalf("expected nil New Relic application")
	}
	// Must be safe on a disabled service.
	svc.Shutdown()

	var nilSvc *LoggerService
	if nilSvc.GetApplication() != nil {
		t.Fatalf("nil service should report no application")
	}
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	var buf bytes.Buffer
	base := newLogger(config.DefaultObservabilityConfig(), nil, &buf)

	log := WithTraceContext(base, nil)
	log.Info().Msg("x")

	if bytes.Contains(buf.Bytes(), []byte("trace.id")) {
		t.Fatalf("unexpected trace id in %s", buf.String())
	}
}
