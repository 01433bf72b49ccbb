// Package translate runs the external translation step. The pipeline only
// sees the [Translator] interface; [Command] shells out to an llm-style CLI
// and [Static] / [Func] are deterministic doubles.
//
// Every implementation returns the input text unchanged when translation is
// impossible, so callers always get something usable back.
package translate

import (
	"context"
	"strings"
)

// Options are forwarded to the translation tool.
type Options struct {
	Model    string
	Template string
}

// Translator turns text into its translation. Implementations never fail:
// on any error they return text as given.
type Translator interface {
	Translate(ctx context.Context, text string, opts Options) string
}

// Func adapts a plain function to [Translator].
type Func func(ctx context.Context, text string, opts Options) string

// Translate calls f.
func (f Func) Translate(ctx context.Context, text string, opts Options) string {
	return f(ctx, text, opts)
}

// Static always answers with Text, or echoes the input when Text is empty.
type Static struct {
	Text string
}

// Translate returns s.Text.
func (s Static) Translate(_ context.Context, text string, _ Options) string {
	if s.Text == "" {
		return text
	}
	return s.Text
}

// cleanOutput returns the first non-empty line of a tool's output with
// surrounding whitespace and quotes removed.
func cleanOutput(out string) string {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, "\"'`“”")
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
