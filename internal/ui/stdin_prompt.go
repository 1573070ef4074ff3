// Package ui provides plain console prompts for non-interactive terminals.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// StdinPrompt reads a single line from a reader, for piped input and
// terminals where the full-screen prompt is unavailable.
type StdinPrompt struct {
	in  io.Reader
	out io.Writer
}

// NewStdinPrompt creates a StdinPrompt reading from in and writing the
// prompt label to out.
func NewStdinPrompt(in io.Reader, out io.Writer) *StdinPrompt {
	return &StdinPrompt{in: in, out: out}
}

// Ask prints the label and reads one line, trimmed of surrounding
// whitespace. EOF before any input yields an empty string, not an error;
// the caller treats it like any other empty target.
func (p *StdinPrompt) Ask(label string) (string, error) {
	fmt.Fprint(p.out, label)

	reader := bufio.NewReader(p.in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
