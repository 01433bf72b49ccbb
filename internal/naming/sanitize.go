package naming

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reHashRun      = regexp.MustCompile(`#+`)
	reWhitespace   = regexp.MustCompile(`\s+`)
	rePunctNoise   = regexp.MustCompile(`[|\[\]()#]+`)
	reIllegalChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	reUnsafeChars  = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	reUnderscores  = regexp.MustCompile(`_+`)
)

// textSeparators are trimmed from both ends of translation input.
const textSeparators = " \t-_."

// StripIdentifiers removes every identifier from text so that only the
// human-readable part is sent for translation. Each identifier is removed in
// all of its guises: [id], (id), #id and the bare id bounded by
// non-alphanumerics. Leftover bracket and pipe noise is collapsed and
// separators are trimmed.
func StripIdentifiers(text string, ids []string) string {
	if len(ids) == 0 {
		text = reHashRun.ReplaceAllString(text, " ")
		text = reWhitespace.ReplaceAllString(text, " ")
		return strings.TrimSpace(text)
	}

	for _, id := range ids {
		if id == "" {
			continue
		}
		q := regexp.QuoteMeta(id)
		text = strings.ReplaceAll(text, "["+id+"]", " ")
		text = strings.ReplaceAll(text, "("+id+")", " ")
		text = removeBounded(text, regexp.MustCompile(`(^|[^A-Za-z0-9])#`+q+`([^A-Za-z0-9]|$)`))
		text = removeBounded(text, regexp.MustCompile(`(^|[^A-Za-z0-9])`+q+`([^A-Za-z0-9]|$)`))
	}

	text = reWhitespace.ReplaceAllString(text, " ")
	text = rePunctNoise.ReplaceAllString(text, " ")
	text = reWhitespace.ReplaceAllString(text, " ")
	return strings.Trim(text, textSeparators)
}

// removeBounded deletes matches of re, keeping the boundary characters held
// in groups 1 and 2. Adjacent occurrences share a boundary character, so the
// replacement repeats until nothing changes.
func removeBounded(text string, re *regexp.Regexp) string {
	for {
		next := re.ReplaceAllString(text, "${1} ${2}")
		if next == text {
			return text
		}
		text = next
	}
}

var diacritics = runes.Remove(runes.In(unicode.Mn))

// FoldDiacritics maps accented letters to their base letters (é → e, Ñ → N).
// Letters without a decomposition are left alone.
func FoldDiacritics(text string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, diacritics, norm.NFC), text)
	if err != nil {
		return text
	}
	return folded
}

// SanitizeForFilesystem turns translated text into a portable filename
// fragment: characters illegal on common filesystems are dropped, whitespace
// becomes "_", anything outside [A-Za-z0-9_.-] is dropped (accented letters
// included; see [FoldDiacritics]), "_" runs collapse, and "_", "-", "." are trimmed from both ends.
// It is idempotent.
func SanitizeForFilesystem(text string) string {
	text = reIllegalChars.ReplaceAllString(text, "")
	text = reWhitespace.ReplaceAllString(text, "_")
	text = reUnsafeChars.ReplaceAllString(text, "")
	text = reUnderscores.ReplaceAllString(text, "_")
	return strings.Trim(text, "_-.")
}
