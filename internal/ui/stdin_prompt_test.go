package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestStdinPrompt_TrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	p := NewStdinPrompt(strings.NewReader("  http://example.com/?id=1 \n"), &out)

	got, err := p.Ask("Enter target URL: ")
	if err != nil {
		t.Fatalf("expected nil, got: %v", err)
	}
	if got != "http://example.com/?id=1" {
		t.Errorf("Ask() = %q, want trimmed URL", got)
	}
	if out.String() != "Enter target URL: " {
		t.Errorf("expected label written, got %q", out.String())
	}
}

func TestStdinPrompt_EmptyLine(t *testing.T) {
	p := NewStdinPrompt(strings.NewReader("\n"), &bytes.Buffer{})

	got, err := p.Ask("> ")
	if err != nil {
		t.Fatalf("expected nil, got: %v", err)
	}
	if got != "" {
		t.Errorf("Ask() = %q, want empty", got)
	}
}

func TestStdinPrompt_EOFWithoutNewline(t *testing.T) {
	p := NewStdinPrompt(strings.NewReader("http://example.com"), &bytes.Buffer{})

	got, err := p.Ask("> ")
	if err != nil {
		t.Fatalf("expected nil on EOF with partial line, got: %v", err)
	}
	if got != "http://example.com" {
		t.Errorf("Ask() = %q, want partial line", got)
	}
}

func TestStdinPrompt_ImmediateEOF(t *testing.T) {
	p := NewStdinPrompt(strings.NewReader(""), &bytes.Buffer{})

	got, err := p.Ask("> ")
	if err != nil {
		t.Fatalf("expected nil on immediate EOF, got: %v", err)
	}
	if got != "" {
		t.Errorf("Ask() = %q, want empty", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestStdinPrompt_ReadError(t *testing.T) {
	p := NewStdinPrompt(failingReader{}, &bytes.Buffer{})

	_, err := p.Ask("> ")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read input") {
		t.Errorf("unexpected error: %v", err)
	}
}
