// Package config holds runtime configuration: defaults, YAML file loading,
// CLI flag binding, and validation. Precedence is defaults < config file <
// explicitly set flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// IdentifierConfig selects which identifier matchers run and their minimum
// token lengths. It is read-only once the run starts.
type IdentifierConfig struct {
	YouTube bool `yaml:"youtube"`
	UUID    bool `yaml:"uuid"`

	Numeric          bool `yaml:"numeric"`
	NumericMinLength int  `yaml:"numeric_min_length"` // Default: 6.

	Mixed          bool `yaml:"mixed"`
	MixedMinLength int  `yaml:"mixed_min_length"` // Default: 8.

	Bracketed          bool `yaml:"bracketed"`
	BracketedMinLength int  `yaml:"bracketed_min_length"` // Default: 6.

	Hash          bool `yaml:"hash"`
	HashMinLength int  `yaml:"hash_min_length"` // Default: 4.

	CustomPattern string `yaml:"custom_pattern"` // Go regexp; empty disables.
}

// ProcessingConfig controls how new names are built and applied.
type ProcessingConfig struct {
	MaxLength     int     `yaml:"max_length"`     // Default: 100 (stem only).
	MaxExtensions int     `yaml:"max_extensions"` // Default: 2.
	DelaySeconds  float64 `yaml:"delay_seconds"`  // Pause before every group after the first.
	AutoAccept    bool    `yaml:"auto_accept"`
	Model         string  `yaml:"model"`
	Template      string  `yaml:"template"`
	Debug         bool    `yaml:"debug"`
	DryRun        bool    `yaml:"dry_run"`

	// FoldDiacritics maps accented letters to ASCII (é → e) before
	// sanitizing instead of dropping them. Off by default.
	FoldDiacritics bool `yaml:"fold_diacritics"`
}

// Delay returns DelaySeconds as a duration.
func (p ProcessingConfig) Delay() time.Duration {
	return time.Duration(p.DelaySeconds * float64(time.Second))
}

// TranslatorConfig describes the external translation command.
type TranslatorConfig struct {
	Command      string        `yaml:"command"`       // Default: "llm".
	Timeout      time.Duration `yaml:"timeout"`       // Default: 30s.
	SystemPrompt string        `yaml:"system_prompt"` // Used when no template is set.
}

// OutputConfig holds display and logging settings.
type OutputConfig struct {
	ColorMode ColorMode `yaml:"color"`
	LogFile   string    `yaml:"log_file"`
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], then by flags (see [BindFlags]).
type Config struct {
	Identifiers IdentifierConfig `yaml:"identifiers"`
	Processing  ProcessingConfig `yaml:"processing"`
	Translator  TranslatorConfig `yaml:"translator"`
	Output      OutputConfig     `yaml:"output"`

	// Set from the command line only.
	Files      []string `yaml:"-"`
	ConfigFile string   `yaml:"-"`
	CheckOnly  bool     `yaml:"-"`
}

// DefaultSystemPrompt is passed to the translator when no template is set.
const DefaultSystemPrompt = "Translate the following file name to English. " +
	"Reply with the translation only, on a single line, without quotes or explanations."

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		Identifiers: IdentifierConfig{
			YouTube:            true,
			UUID:               true,
			NumericMinLength:   6,
			MixedMinLength:     8,
			Bracketed:          true,
			BracketedMinLength: 6,
			HashMinLength:      4,
		},
		Processing: ProcessingConfig{
			MaxLength:     100,
			MaxExtensions: 2,
		},
		Translator: TranslatorConfig{
			Command:      "llm",
			Timeout:      30 * time.Second,
			SystemPrompt: DefaultSystemPrompt,
		},
		Output: OutputConfig{
			ColorMode: ColorAuto,
		},
	}
}

// LoadFile overlays the YAML file at path onto cfg. Keys missing from the
// file keep their current values.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks numeric ranges and enum fields. When not in CheckOnly mode
// it also requires at least one input file.
func (c *Config) Validate() error {
	p := c.Processing
	if p.MaxLength < 1 {
		return errors.New("max length must be at least 1")
	}
	if p.MaxExtensions < 0 {
		return errors.New("max extensions must not be negative")
	}
	if p.DelaySeconds < 0 {
		return errors.New("delay must not be negative")
	}

	id := c.Identifiers
	for name, n := range map[string]int{
		"numeric":   id.NumericMinLength,
		"mixed":     id.MixedMinLength,
		"bracketed": id.BracketedMinLength,
		"hash":      id.HashMinLength,
	} {
		if n < 1 {
			return fmt.Errorf("%s minimum length must be at least 1 (got %d)", name, n)
		}
	}

	if c.Translator.Command == "" {
		return errors.New("translator command must not be empty")
	}
	if c.Translator.Timeout <= 0 {
		return errors.New("translator timeout must be positive")
	}

	switch c.Output.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.Output.ColorMode)
	}

	if c.CheckOnly {
		return nil
	}
	if len(c.Files) == 0 {
		return errors.New("need at least one file")
	}
	return nil
}
