// Package term provides ANSI color state and terminal detection.
//
// Colors are package-level variables used by the display package, which
// writes to stdout. [Configure] sets them once during startup; when colors
// are disabled the variables are empty strings, making string concatenation
// a no-op. The logger decides its own colors for stderr with [Resolve].
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/backmassage/transname/internal/config"
)

// ANSI color codes. Empty when colors are disabled.
var (
	Red    = ""
	Green  = ""
	Yellow = ""
	Cyan   = ""
	Dim    = ""
	NC     = "" // Reset sequence.
)

// Configure resolves the color mode against f, the stream the colored text
// is written to, and sets the package-level ANSI variables. It reports
// whether colors are enabled.
func Configure(mode config.ColorMode, f *os.File) bool {
	if Resolve(mode, f) {
		Red = "\033[1;91m"
		Green = "\033[1;92m"
		Yellow = "\033[1;93m"
		Cyan = "\033[1;96m"
		Dim = "\033[2m"
		NC = "\033[0m"
		return true
	}
	Red, Green, Yellow, Cyan, Dim, NC = "", "", "", "", "", ""
	return false
}

// Resolve reports whether output written to f should be colored, based on
// the configured mode, TTY detection, and the NO_COLOR env var
// (https://no-color.org).
func Resolve(mode config.ColorMode, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(f) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a terminal, including Cygwin
// and MSYS pseudo terminals on Windows.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
