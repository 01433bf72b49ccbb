// Package logging provides the leveled logger shared by every package. It
// writes human-readable console output to stderr and, optionally, JSON lines
// to a rotated log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/backmassage/transname/internal/config"
	"github.com/backmassage/transname/internal/term"
)

const timeFormat = "2006-01-02 15:04:05"

// Logger provides leveled printf-style logging on top of zerolog.
type Logger struct {
	zl   zerolog.Logger
	file *lumberjack.Logger
}

// NewLogger decides console colors for stderr from cfg, builds the console writer
// and, when cfg.Output.LogFile is set, a rotating file sink. Call Close when
// done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	color := term.Resolve(cfg.Output.ColorMode, os.Stderr)

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        colorable.NewColorable(os.Stderr),
		NoColor:    !color,
		TimeFormat: timeFormat,
	}}

	l := &Logger{}
	if cfg.Output.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Output.LogFile), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		l.file = &lumberjack.Logger{
			Filename:   cfg.Output.LogFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		writers = append(writers, l.file)
	}

	l.zl = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(levelFor(cfg.Processing.Debug)).
		With().Timestamp().Logger()
	return l, nil
}

// New returns a Logger writing uncolored console output to w. Used by tests
// and embedders that manage their own output.
func New(w io.Writer, debug bool) *Logger {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: timeFormat}
	return &Logger{zl: zerolog.New(cw).Level(levelFor(debug)).With().Timestamp().Logger()}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func levelFor(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

// Success logs a completed action at INFO level, tagged result=success.
func (l *Logger) Success(format string, args ...interface{}) {
	l.zl.Info().Str("result", "success").Msgf(format, args...)
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.zl.Warn().Msgf(format, args...)
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}

// Debug logs at DEBUG level; it is a no-op unless the logger was built with
// debug enabled.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.zl.Debug().Msgf(format, args...)
}
