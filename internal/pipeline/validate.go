package pipeline

import (
	"os"
	"path/filepath"
)

// ValidateInputs keeps the paths that name existing regular files, in input
// order and without repeats. Every rejected path is logged.
func ValidateInputs(paths []string, log Logger) []string {
	seen := make(map[string]bool, len(paths))
	var valid []string
	for _, p := range paths {
		fi, err := os.Stat(p)
		switch {
		case err != nil:
			log.Error("File not found: %s", p)
			continue
		case !fi.Mode().IsRegular():
			log.Error("Not a regular file: %s", p)
			continue
		}
		key := filepath.Clean(p)
		if seen[key] {
			log.Debug("Duplicate input ignored: %s", p)
			continue
		}
		seen[key] = true
		valid = append(valid, p)
	}
	return valid
}
