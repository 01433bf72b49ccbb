package config

// This file binds CLI flags onto a Config. Flags are grouped into
// processing, identifier, translator, and display/utility sets.
// Negated flags (e.g. --no-youtube) are applied after parsing so Config
// defaults hold unless the user passes them.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds flag values that are not stored directly in Config. They are
// applied by [Finalize].
type Flags struct {
	noYouTube   bool
	noUUID      bool
	noBracketed bool
	forceColor  bool
	noColor     bool
}

// BindFlags registers every transname flag on fs, bound to cfg. The
// returned Flags must be passed to [Finalize] after fs has been parsed.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	n := &Flags{}
	fs.SortFlags = false

	defineProcessingFlags(fs, cfg)
	defineIdentifierFlags(fs, cfg, n)
	defineTranslatorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, n)
	return n
}

// defineProcessingFlags registers length limits, delay, confirmation and
// translation options.
func defineProcessingFlags(fs *pflag.FlagSet, cfg *Config) {
	p := &cfg.Processing
	fs.IntVarP(&p.MaxLength, "max-length", "l", p.MaxLength, "Maximum length of the new stem (extensions excluded)")
	fs.IntVarP(&p.MaxExtensions, "max-extensions", "e", p.MaxExtensions, "Maximum number of trailing extensions kept (e.g. 2 for .tar.gz)")
	fs.Float64VarP(&p.DelaySeconds, "delay", "d", p.DelaySeconds, "Seconds to wait between groups (rate limiting)")
	fs.BoolVarP(&p.AutoAccept, "yes", "y", p.AutoAccept, "Apply renames without asking")
	fs.BoolVarP(&p.DryRun, "dry-run", "n", p.DryRun, "Preview only; do not rename anything")
	fs.BoolVar(&p.FoldDiacritics, "fold-diacritics", p.FoldDiacritics, "Keep accented letters as their ASCII base (é -> e) instead of dropping them")
	fs.BoolVar(&p.Debug, "debug", p.Debug, "Debug logging")
	fs.StringVarP(&p.Model, "model", "m", p.Model, "Model passed to the translator command")
	fs.StringVarP(&p.Template, "template", "t", p.Template, "Template passed to the translator command")
}

// defineIdentifierFlags registers one enable flag and one minimum length per
// identifier kind, plus the custom pattern.
func defineIdentifierFlags(fs *pflag.FlagSet, cfg *Config, n *Flags) {
	id := &cfg.Identifiers
	fs.BoolVar(&id.YouTube, "youtube", id.YouTube, "Detect 11-character YouTube video IDs")
	fs.BoolVar(&n.noYouTube, "no-youtube", false, "Disable YouTube ID detection")
	fs.BoolVar(&id.UUID, "uuid", id.UUID, "Detect UUIDs")
	fs.BoolVar(&n.noUUID, "no-uuid", false, "Disable UUID detection")
	fs.BoolVar(&id.Numeric, "numeric", id.Numeric, "Detect numeric IDs")
	fs.IntVar(&id.NumericMinLength, "numeric-min", id.NumericMinLength, "Minimum length of numeric IDs")
	fs.BoolVar(&id.Mixed, "mixed", id.Mixed, "Detect mixed letter/digit IDs")
	fs.IntVar(&id.MixedMinLength, "mixed-min", id.MixedMinLength, "Minimum length of mixed IDs")
	fs.BoolVar(&id.Bracketed, "bracketed", id.Bracketed, "Detect IDs in [brackets] or (parentheses)")
	fs.BoolVar(&n.noBracketed, "no-bracketed", false, "Disable bracketed ID detection")
	fs.IntVar(&id.BracketedMinLength, "bracketed-min", id.BracketedMinLength, "Minimum length of bracketed IDs")
	fs.BoolVar(&id.Hash, "hash", id.Hash, "Detect #hash IDs")
	fs.IntVar(&id.HashMinLength, "hash-min", id.HashMinLength, "Minimum length of #hash IDs")
	fs.StringVar(&id.CustomPattern, "custom-pattern", id.CustomPattern, "Custom ID regexp (first capture group, or whole match)")
}

// defineTranslatorFlags registers the external command settings.
func defineTranslatorFlags(fs *pflag.FlagSet, cfg *Config) {
	tr := &cfg.Translator
	fs.StringVar(&tr.Command, "translator-cmd", tr.Command, "Translation command to run")
	fs.DurationVar(&tr.Timeout, "timeout", tr.Timeout, "Timeout per translation")
}

// defineDisplayFlags registers color, log file, config file and --check.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *Flags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored output")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored output")
	fs.StringVar(&cfg.Output.LogFile, "log-file", cfg.Output.LogFile, "Also write JSON logs to this file (rotated)")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML config file")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run diagnostics and exit")
}

// Finalize completes configuration after fs.Parse: it overlays the config
// file (if any), re-applies explicitly set flags on top of it, applies
// negated flags, records the positional files and validates the result.
func Finalize(fs *pflag.FlagSet, cfg *Config, n *Flags, args []string) error {
	if cfg.ConfigFile != "" {
		changed := make(map[string]string)
		fs.Visit(func(f *pflag.Flag) {
			changed[f.Name] = f.Value.String()
		})
		if err := LoadFile(cfg.ConfigFile, cfg); err != nil {
			return err
		}
		for name, val := range changed {
			if err := fs.Set(name, val); err != nil {
				return fmt.Errorf("re-apply --%s: %w", name, err)
			}
		}
	}

	applyNegatedFlags(cfg, n)
	cfg.Output.ColorMode = ColorMode(strings.ToLower(string(cfg.Output.ColorMode)))
	cfg.Files = args
	return cfg.Validate()
}

// applyNegatedFlags copies negated flag values into cfg. A negation always
// wins over its positive flag.
func applyNegatedFlags(cfg *Config, n *Flags) {
	if n.noYouTube {
		cfg.Identifiers.YouTube = false
	}
	if n.noUUID {
		cfg.Identifiers.UUID = false
	}
	if n.noBracketed {
		cfg.Identifiers.Bracketed = false
	}
	if n.noColor {
		cfg.Output.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.Output.ColorMode = ColorAlways
	}
}
