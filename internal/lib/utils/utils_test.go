package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestPrintJSON_CompactLine(t *testing.T) {
	var buf bytes.Buffer

	raw := json.RawMessage("[ 1,\n \"a\" , {\"x\": true} ]")
	if err := PrintJSON(&buf, raw); err != nil {
		t.Fatalf("PrintJSON: %v", err)
	}

	if got, want := buf.String(), "[1,\"a\",{\"x\":true}]\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestPrintJSON_UnsupportedValue(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, make(chan int)); err == nil {
		t.Fatalf("expected marshal error for channel")
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should be written on error, got %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrintJSON_WriteError(t *testing.T) {
	if err := PrintJSON(failingWriter{}, []int{1}); err == nil {
		t.Fatalf("expected write error")
	}
}
