// Package check provides system diagnostics (--check mode) and the
// pre-run dependency check (CheckDeps) for the translator command and the
// identifier matchers.
package check

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/backmassage/transname/internal/config"
	"github.com/backmassage/transname/internal/naming"
)

// Sentinel errors returned by CheckDeps.
var (
	ErrTranslatorNotFound = errors.New("translator command not found on PATH")
	ErrInvalidPattern     = errors.New("custom identifier pattern does not compile")
)

// versionTimeout bounds the "<translator> --version" probe.
const versionTimeout = 10 * time.Second

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// RunCheck runs the --check flow: reports the translator command, its
// version, and which identifier matchers are active. Informational only; it
// does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkTranslator(cfg.Translator.Command, log)
	checkIdentifiers(cfg.Identifiers, log)
}

// checkTranslator verifies the translator is on PATH and logs its version.
func checkTranslator(name string, log Logger) {
	path, err := exec.LookPath(name)
	if err != nil {
		log.Error("%s not found", name)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), versionTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		log.Warn("%s found at %s but --version failed: %v", name, path, err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", name, firstLine)
}

// checkIdentifiers lists the matchers that will run and validates the
// custom pattern.
func checkIdentifiers(cfg config.IdentifierConfig, log Logger) {
	if cfg.CustomPattern != "" {
		if _, err := regexp.Compile(cfg.CustomPattern); err != nil {
			log.Error("Custom pattern %q is invalid: %v", cfg.CustomPattern, err)
		} else {
			log.Success("Custom pattern %q compiles", cfg.CustomPattern)
		}
	}

	kinds := naming.NewExtractor(cfg, quiet{}).Kinds()
	if len(kinds) == 0 {
		log.Warn("No identifier matchers enabled; names keep no identifiers")
		return
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	log.Info("Identifier matchers: %s", strings.Join(names, ", "))
}

// CheckDeps is the pre-run validation: the translator must be on PATH and
// the custom identifier pattern, if any, must compile.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.Translator.Command); err != nil {
		return fmt.Errorf("%w: %s", ErrTranslatorNotFound, cfg.Translator.Command)
	}
	if p := cfg.Identifiers.CustomPattern; p != "" {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
	}
	return nil
}

// quiet discards the extractor's own compile errors; checkIdentifiers
// reports them itself.
type quiet struct{}

func (quiet) Debug(string, ...interface{}) {}
func (quiet) Warn(string, ...interface{})  {}
func (quiet) Error(string, ...interface{}) {}
