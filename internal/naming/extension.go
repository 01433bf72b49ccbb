package naming

import (
	"strings"
	"unicode/utf8"
)

// maxExtensionLen is the longest dot-segment still treated as an extension.
const maxExtensionLen = 7

// SplitExtensions splits filename into a stem and a chain of at most
// maxExtensions trailing extensions (".tar.gz", ".en.srt"). Segments are
// taken from the end while they are 1–7 characters long; the first segment is
// never an extension and the stem is never left empty, so ".bashrc" is
// returned whole. stem+chain always equals filename.
func SplitExtensions(filename string, maxExtensions int) (stem, chain string) {
	parts := strings.Split(filename, ".")
	if len(parts) == 1 {
		return filename, ""
	}

	count := 0
	chainLen := 0
	for i := len(parts) - 1; i >= 1 && count < maxExtensions; i-- {
		n := utf8.RuneCountInString(parts[i])
		if n < 1 || n > maxExtensionLen {
			break
		}
		if i == 1 && parts[0] == "" {
			break
		}
		chainLen += len(parts[i]) + 1
		count++
	}

	cut := len(filename) - chainLen
	return filename[:cut], filename[cut:]
}
