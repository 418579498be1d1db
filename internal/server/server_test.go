package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/deppfellow/items-echo/internal/config"
)

func TestStart_RequiresSetup(t *testing.T) {
	log := zerolog.Nop()
	s := New(config.DefaultConfig(), &log, nil)

	if err := s.Start(); err == nil {
		t.Fatalf("expected error when HTTP server is not set up")
	}
}

func TestSetupHTTPServer_AppliesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.Port = "9090"
	cfg.Server.ReadTimeout = 3

	log := zerolog.Nop()
	s := New(cfg, &log, nil)
	s.SetupHTTPServer(http.NotFoundHandler())

	if s.httpServer.Addr != ":9090" {
		t.Fatalf("addr=%q", s.httpServer.Addr)
	}
	if s.httpServer.ReadTimeout.Seconds() != 3 {
		t.Fatalf("read timeout=%v", s.httpServer.ReadTimeout)
	}

	// Never started: Shutdown must still succeed.
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}
