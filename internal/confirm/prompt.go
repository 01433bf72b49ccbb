// Package confirm asks the user to approve a group's renames before they run.
package confirm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/backmassage/transname/internal/display"
	"github.com/backmassage/transname/internal/planner"
)

// Prompter shows each preview and reads a yes/no answer. Input is read by a
// single background goroutine started on the first prompt, so a pending
// read can be abandoned when the prompt is interrupted or cancelled.
type Prompter struct {
	in         io.Reader
	out        io.Writer
	autoAccept bool

	start     sync.Once
	lines     chan string
	interrupt chan struct{}
	waiting   atomic.Bool
}

// NewPrompter returns a Prompter reading answers from in and writing
// previews to out. With autoAccept set the preview is still shown but no
// answer is read.
func NewPrompter(in io.Reader, out io.Writer, autoAccept bool) *Prompter {
	return &Prompter{
		in:         in,
		out:        out,
		autoAccept: autoAccept,
		lines:      make(chan string),
		interrupt:  make(chan struct{}, 1),
	}
}

// Confirm previews ops and reports whether they may be applied. Only "y" or
// "yes" (any case) accept. End of input, an interrupt and a cancelled ctx
// all decline, and a cancelled ctx declines even with auto-accept.
func (p *Prompter) Confirm(ctx context.Context, ops []planner.Operation) bool {
	if len(ops) == 0 || ctx.Err() != nil {
		return false
	}
	fmt.Fprint(p.out, display.FormatOperations(ops))
	if p.autoAccept {
		return true
	}

	p.start.Do(func() { go p.readLoop() })

	// Drop an interrupt that arrived while no prompt was open.
	select {
	case <-p.interrupt:
	default:
	}
	p.waiting.Store(true)
	defer p.waiting.Store(false)

	fmt.Fprint(p.out, "Apply these renames? [y/N] ")
	select {
	case line, ok := <-p.lines:
		if !ok {
			fmt.Fprintln(p.out)
			return false
		}
		return accepted(line)
	case <-p.interrupt:
		fmt.Fprintln(p.out)
		return false
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return false
	}
}

// Interrupt declines the prompt currently waiting for an answer. It reports
// false when no prompt is open, letting the caller treat the interrupt as a
// request to stop the run instead.
func (p *Prompter) Interrupt() bool {
	if !p.waiting.Load() {
		return false
	}
	select {
	case p.interrupt <- struct{}{}:
	default:
	}
	return true
}

func (p *Prompter) readLoop() {
	defer close(p.lines)
	sc := bufio.NewScanner(p.in)
	for sc.Scan() {
		p.lines <- sc.Text()
	}
}

func accepted(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
