package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	require.True(t, cfg.Identifiers.YouTube)
	require.True(t, cfg.Identifiers.UUID)
	require.True(t, cfg.Identifiers.Bracketed)
	require.False(t, cfg.Identifiers.Numeric)
	require.False(t, cfg.Identifiers.Mixed)
	require.False(t, cfg.Identifiers.Hash)
	require.Equal(t, 100, cfg.Processing.MaxLength)
	require.Equal(t, 2, cfg.Processing.MaxExtensions)
	require.Equal(t, "llm", cfg.Translator.Command)
	require.Equal(t, 30*time.Second, cfg.Translator.Timeout)
	require.Equal(t, ColorAuto, cfg.Output.ColorMode)
	require.False(t, cfg.Processing.DryRun)
	require.False(t, cfg.Processing.FoldDiacritics)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults with a file", func(c *Config) {}, false},
		{"no files", func(c *Config) { c.Files = nil }, true},
		{"no files in check mode", func(c *Config) { c.Files = nil; c.CheckOnly = true }, false},
		{"zero max length", func(c *Config) { c.Processing.MaxLength = 0 }, true},
		{"negative max extensions", func(c *Config) { c.Processing.MaxExtensions = -1 }, true},
		{"zero max extensions", func(c *Config) { c.Processing.MaxExtensions = 0 }, false},
		{"negative delay", func(c *Config) { c.Processing.DelaySeconds = -0.5 }, true},
		{"zero numeric min", func(c *Config) { c.Identifiers.NumericMinLength = 0 }, true},
		{"zero hash min", func(c *Config) { c.Identifiers.HashMinLength = 0 }, true},
		{"empty translator", func(c *Config) { c.Translator.Command = "" }, true},
		{"zero timeout", func(c *Config) { c.Translator.Timeout = 0 }, true},
		{"bad color mode", func(c *Config) { c.Output.ColorMode = "sometimes" }, true},
		{"never color mode", func(c *Config) { c.Output.ColorMode = ColorNever }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Files = []string{"a.mp4"}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDelay(t *testing.T) {
	p := ProcessingConfig{DelaySeconds: 1.5}
	require.Equal(t, 1500*time.Millisecond, p.Delay())
	require.Zero(t, ProcessingConfig{}.Delay())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
identifiers:
  numeric: true
  numeric_min_length: 8
  youtube: false
processing:
  max_length: 60
  model: gpt-4o-mini
translator:
  timeout: 5s
output:
  color: never
`)
	cfg := DefaultConfig()
	require.NoError(t, LoadFile(path, &cfg))

	require.True(t, cfg.Identifiers.Numeric)
	require.Equal(t, 8, cfg.Identifiers.NumericMinLength)
	require.False(t, cfg.Identifiers.YouTube)
	require.True(t, cfg.Identifiers.UUID, "keys absent from the file keep defaults")
	require.Equal(t, 60, cfg.Processing.MaxLength)
	require.Equal(t, "gpt-4o-mini", cfg.Processing.Model)
	require.Equal(t, 5*time.Second, cfg.Translator.Timeout)
	require.Equal(t, ColorNever, cfg.Output.ColorMode)
}

func TestLoadFile_Errors(t *testing.T) {
	cfg := DefaultConfig()
	require.Error(t, LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), &cfg))
	require.Error(t, LoadFile(writeConfig(t, "processing: [unclosed"), &cfg))
}

func TestFinalize_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
processing:
  max_length: 60
  max_extensions: 3
identifiers:
  hash: true
`)
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("transname", pflag.ContinueOnError)
	n := BindFlags(fs, &cfg)
	require.NoError(t, fs.Parse([]string{"--config", path, "-l", "40", "--no-youtube", "a.mp4", "b.mp4"}))

	require.NoError(t, Finalize(fs, &cfg, n, fs.Args()))
	require.Equal(t, 40, cfg.Processing.MaxLength, "explicit flag wins over file")
	require.Equal(t, 3, cfg.Processing.MaxExtensions, "file wins over default")
	require.True(t, cfg.Identifiers.Hash)
	require.False(t, cfg.Identifiers.YouTube)
	require.Equal(t, []string{"a.mp4", "b.mp4"}, cfg.Files)
}

func TestFinalize_NegatedFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, c *Config)
	}{
		{"no-uuid", []string{"--no-uuid"}, func(t *testing.T, c *Config) { require.False(t, c.Identifiers.UUID) }},
		{"no-bracketed", []string{"--no-bracketed"}, func(t *testing.T, c *Config) { require.False(t, c.Identifiers.Bracketed) }},
		{"negation beats enable", []string{"--youtube", "--no-youtube"}, func(t *testing.T, c *Config) { require.False(t, c.Identifiers.YouTube) }},
		{"color", []string{"--color"}, func(t *testing.T, c *Config) { require.Equal(t, ColorAlways, c.Output.ColorMode) }},
		{"no-color beats color", []string{"--color", "--no-color"}, func(t *testing.T, c *Config) { require.Equal(t, ColorNever, c.Output.ColorMode) }},
		{"numeric with min", []string{"--numeric", "--numeric-min", "4"}, func(t *testing.T, c *Config) {
			require.True(t, c.Identifiers.Numeric)
			require.Equal(t, 4, c.Identifiers.NumericMinLength)
		}},
		{"fold diacritics", []string{"--fold-diacritics"}, func(t *testing.T, c *Config) { require.True(t, c.Processing.FoldDiacritics) }},
		{"delay", []string{"-d", "2.5"}, func(t *testing.T, c *Config) { require.Equal(t, 2500*time.Millisecond, c.Processing.Delay()) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			fs := pflag.NewFlagSet("transname", pflag.ContinueOnError)
			n := BindFlags(fs, &cfg)
			require.NoError(t, fs.Parse(append(tt.args, "file.txt")))
			require.NoError(t, Finalize(fs, &cfg, n, fs.Args()))
			tt.check(t, &cfg)
		})
	}
}

func TestFinalize_RequiresFiles(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("transname", pflag.ContinueOnError)
	n := BindFlags(fs, &cfg)
	require.NoError(t, fs.Parse(nil))
	require.Error(t, Finalize(fs, &cfg, n, fs.Args()))
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transname.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
