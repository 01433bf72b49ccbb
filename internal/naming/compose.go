package naming

import "strings"

// MainIdentifier returns the longest identifier, preferring the earliest on
// ties, or "" when ids is empty.
func MainIdentifier(ids []string) string {
	main := ""
	for _, id := range ids {
		if len(id) > len(main) {
			main = id
		}
	}
	return main
}

// Compose builds the new stem from sanitized text and the main identifier:
// "<text>_<id>", or the identifier alone when text is empty. When the result
// exceeds maxLength the text is cut, never the identifier; without an identifier the text itself is cut to maxLength.
// Only the longest identifier is kept, shorter co-occurring ones are dropped.
// If the identifier alone does not fit, the text budget clamps to zero and
// the identifier is returned on its own, which may exceed maxLength.
func Compose(text string, ids []string, maxLength int) string {
	main := MainIdentifier(ids)
	if main == "" {
		if len(text) > maxLength {
			text = cutText(text, maxLength)
		}
		return text
	}

	if len(join(text, main)) > maxLength {
		budget := maxLength - len(main) - 1
		if budget < 0 {
			budget = 0
		}
		text = cutText(text, budget)
	}
	return join(text, main)
}

func join(text, id string) string {
	if text == "" {
		return id
	}
	return text + "_" + id
}

// cutText keeps the first n bytes of text and drops separators left dangling
// by the cut. Sanitized text is ASCII, so a byte cut is a character cut.
func cutText(text string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(text) > n {
		text = text[:n]
	}
	return strings.TrimRight(text, "_-.")
}
