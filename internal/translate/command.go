package translate

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/backmassage/transname/internal/config"
)

// Logger is the minimal logging interface used by this package.
type Logger interface {
	Debug(string, ...interface{})
	Warn(string, ...interface{})
}

// Command translates by running an external CLI:
//
//	<command> [-m model] (-t template | -s systemPrompt) <text>
//
// The first non-empty line of stdout is the translation.
type Command struct {
	name         string
	timeout      time.Duration
	systemPrompt string
	log          Logger
}

// NewCommand builds a Command from the translator settings.
func NewCommand(cfg config.TranslatorConfig, log Logger) *Command {
	return &Command{
		name:         cfg.Command,
		timeout:      cfg.Timeout,
		systemPrompt: cfg.SystemPrompt,
		log:          log,
	}
}

// execResult holds the outcome of a single invocation.
type execResult struct {
	Stdout string
	Stderr string
	Err    error
}

// Translate runs the command with a bounded timeout. Timeouts, non-zero
// exits, a missing binary and empty output are logged and answered with text.
func (c *Command) Translate(ctx context.Context, text string, opts Options) string {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res := c.run(ctx, c.args(text, opts))
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		c.log.Warn("Translation timed out after %s, keeping original text", c.timeout)
		return text
	case res.Err != nil:
		c.log.Warn("Translation failed: %v%s", res.Err, stderrSuffix(res.Stderr))
		return text
	}

	out := cleanOutput(res.Stdout)
	if out == "" {
		c.log.Warn("Translator returned nothing, keeping original text")
		return text
	}
	c.log.Debug("Translated %q -> %q", text, out)
	return out
}

func (c *Command) args(text string, opts Options) []string {
	var args []string
	if opts.Model != "" {
		args = append(args, "-m", opts.Model)
	}
	if opts.Template != "" {
		args = append(args, "-t", opts.Template)
	} else if c.systemPrompt != "" {
		args = append(args, "-s", c.systemPrompt)
	}
	return append(args, text)
}

func (c *Command) run(ctx context.Context, args []string) execResult {
	cmd := exec.CommandContext(ctx, c.name, args...)
	// Children that inherit stdout must not keep Wait blocked past a kill.
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return execResult{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// stderrSuffix returns ": <last stderr line>" or "".
func stderrSuffix(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return ""
	}
	return ": " + last
}
