// Package display renders rename previews and run summaries for the
// terminal. Colors come from the term package and vanish when disabled.
package display

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/backmassage/transname/internal/planner"
	"github.com/backmassage/transname/internal/term"
)

// FormatOperations renders a preview of ops, one source/destination pair per
// file, with the source size when it can be read. Paths are shown by base
// name since a group never changes directory. A missing source is marked in
// red and a destination already taken by another file in yellow; the
// executor will skip both.
func FormatOperations(ops []planner.Operation) string {
	var b strings.Builder
	for _, op := range ops {
		src := filepath.Base(op.Source)
		if size, ok := fileSize(op.Source); ok {
			fmt.Fprintf(&b, "  %s %s(%s)%s", src, term.Dim, humanize.IBytes(size), term.NC)
		} else {
			fmt.Fprintf(&b, "  %s%s (missing)%s", term.Red, src, term.NC)
		}

		dst := filepath.Base(op.Destination)
		if taken(op) {
			fmt.Fprintf(&b, "\n    %s->%s %s%s (exists)%s\n", term.Dim, term.NC, term.Yellow, dst, term.NC)
		} else {
			fmt.Fprintf(&b, "\n    %s->%s %s%s%s\n", term.Dim, term.NC, term.Green, dst, term.NC)
		}
	}
	return b.String()
}

// FormatCount returns "1 file", "2 files", "1,024 files".
func FormatCount(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return humanize.Comma(int64(n)) + " " + plural
}

// PrintHeader writes the program name and version in bold cyan.
func PrintHeader(w io.Writer, version string) {
	fmt.Fprintf(w, "%stransname%s %s\n", term.Cyan, term.NC, version)
}

// taken reports whether the destination is occupied by a file other than
// the source.
func taken(op planner.Operation) bool {
	dst, err := os.Lstat(op.Destination)
	if err != nil {
		return false
	}
	src, err := os.Lstat(op.Source)
	return err != nil || !os.SameFile(src, dst)
}

func fileSize(path string) (uint64, bool) {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return 0, false
	}
	return uint64(fi.Size()), true
}
