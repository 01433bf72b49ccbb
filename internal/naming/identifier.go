package naming

import (
	"fmt"
	"regexp"

	"github.com/backmassage/transname/internal/config"
)

// Kind names the matcher that produced an identifier.
type Kind string

const (
	KindYouTube   Kind = "youtube"
	KindUUID      Kind = "uuid"
	KindNumeric   Kind = "numeric"
	KindMixed     Kind = "mixed"
	KindBracketed Kind = "bracketed"
	KindHash      Kind = "hash"
	KindCustom    Kind = "custom"
)

// Identifier is a token found in a stem that must survive translation
// verbatim.
type Identifier struct {
	Value string
	Kind  Kind
}

// Logger is the minimal logging interface used by this package.
type Logger interface {
	Debug(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// matcher pairs a compiled pattern with an optional acceptance check.
// The token is the first participating capture group, or the whole match
// when the pattern has none (or none took part).
type matcher struct {
	kind    Kind
	pattern *regexp.Regexp
	accept  func(text string, start, end int) bool
}

// Extractor runs the enabled matchers over a text. Build one per run with
// [NewExtractor]; it is safe for concurrent use.
type Extractor struct {
	matchers []matcher
}

// NewExtractor compiles the matchers enabled in cfg, in declaration order:
// youtube, uuid, numeric, mixed, bracketed, hash, custom. A pattern that
// fails to compile is logged and left out; it never aborts the run.
func NewExtractor(cfg config.IdentifierConfig, log Logger) *Extractor {
	e := &Extractor{}
	add := func(kind Kind, expr string, accept func(string, int, int) bool) {
		re, err := regexp.Compile(expr)
		if err != nil {
			log.Error("Invalid %s identifier pattern %q: %v", kind, expr, err)
			return
		}
		e.matchers = append(e.matchers, matcher{kind: kind, pattern: re, accept: accept})
	}

	if cfg.YouTube {
		add(KindYouTube, `\b[A-Za-z0-9_-]{11}\b`, nil)
	}
	if cfg.UUID {
		add(KindUUID, `\b[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\b`, nil)
	}
	if cfg.Numeric {
		add(KindNumeric, fmt.Sprintf(`[0-9]{%d,}`, cfg.NumericMinLength), alnumBounded)
	}
	if cfg.Mixed {
		add(KindMixed, fmt.Sprintf(`[A-Za-z0-9_-]{%d,}`, cfg.MixedMinLength), hasLetterAndDigit)
	}
	if cfg.Bracketed {
		n := cfg.BracketedMinLength
		add(KindBracketed, fmt.Sprintf(`\[([A-Za-z0-9_-]{%d,})\]|\(([A-Za-z0-9_-]{%d,})\)`, n, n), nil)
	}
	if cfg.Hash {
		add(KindHash, fmt.Sprintf(`#([A-Za-z0-9_-]{%d,})`, cfg.HashMinLength), nil)
	}
	if cfg.CustomPattern != "" {
		add(KindCustom, cfg.CustomPattern, nil)
	}
	return e
}

// Kinds returns the kinds of the matchers that compiled, in run order.
func (e *Extractor) Kinds() []Kind {
	kinds := make([]Kind, len(e.matchers))
	for i, m := range e.matchers {
		kinds[i] = m.kind
	}
	return kinds
}

// Extract returns every identifier found in text. Matchers run
// independently over the full text; their results are concatenated in
// matcher order and deduplicated by value, keeping the first occurrence.
func (e *Extractor) Extract(text string) []Identifier {
	var found []Identifier
	for _, m := range e.matchers {
		for _, loc := range m.pattern.FindAllStringSubmatchIndex(text, -1) {
			start, end := tokenBounds(loc)
			if start == end {
				continue
			}
			if m.accept != nil && !m.accept(text, start, end) {
				continue
			}
			found = append(found, Identifier{Value: text[start:end], Kind: m.kind})
		}
	}
	return dedupe(found)
}

// tokenBounds picks the first participating capture group from a submatch
// index slice, falling back to the whole match.
func tokenBounds(loc []int) (int, int) {
	for g := 1; 2*g+1 < len(loc); g++ {
		if loc[2*g] >= 0 {
			return loc[2*g], loc[2*g+1]
		}
	}
	return loc[0], loc[1]
}

func dedupe(ids []Identifier) []Identifier {
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id.Value] {
			continue
		}
		seen[id.Value] = true
		out = append(out, id)
	}
	return out
}

// Values returns the identifier strings in order.
func Values(ids []Identifier) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Value
	}
	return out
}

// alnumBounded accepts a token whose neighbours are not ASCII letters or
// digits. Underscores, hyphens, dots, spaces and brackets all count as edges.
func alnumBounded(text string, start, end int) bool {
	if start > 0 && isASCIIAlnum(text[start-1]) {
		return false
	}
	if end < len(text) && isASCIIAlnum(text[end]) {
		return false
	}
	return true
}

func hasLetterAndDigit(text string, start, end int) bool {
	var letter, digit bool
	for i := start; i < end; i++ {
		c := text[i]
		switch {
		case c >= '0' && c <= '9':
			digit = true
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
			letter = true
		}
	}
	return letter && digit
}

func isASCIIAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}
