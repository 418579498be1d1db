package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/deppfellow/items-echo/internal/config"
	"github.com/deppfellow/items-echo/internal/server"
)

func newTestService(t *testing.T) (*ItemsService, *bytes.Buffer) {
	t.Helper()

	log := zerolog.Nop()
	s := server.New(config.DefaultConfig(), &log, nil)

	var out bytes.Buffer
	s.Out = &out

	return NewServices(s).Items, &out
}

func TestProcess_ReturnsItemsAndPrints(t *testing.T) {
	svc, out := newTestService(t)

	got, err := svc.Process(context.Background(), json.RawMessage(`[1, "a", {"x": true}]`))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if string(got) != `[1, "a", {"x": true}]` {
		t.Fatalf("got %s", got)
	}
	if out.String() != "[1,\"a\",{\"x\":true}]\n" {
		t.Fatalf("printed %q", out.String())
	}
}

func TestProcess_MissingItemsBecomeEmptyList(t *testing.T) {
	svc, out := newTestService(t)

	got, err := svc.Process(context.Background(), nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("got %s", got)
	}
	if out.String() != "[]\n" {
		t.Fatalf("printed %q", out.String())
	}
}

func TestProcess_NonArrayPassesThrough(t *testing.T) {
	svc, _ := newTestService(t)

	for _, in := range []string{`"text"`, `42`, `{"k":[1,2]}`, `true`} {
		got, err := svc.Process(context.Background(), json.RawMessage(in))
		if err != nil {
			t.Fatalf("Process(%s): %v", in, err)
		}
		if string(got) != in {
			t.Fatalf("Process(%s) = %s", in, got)
		}
	}
}
