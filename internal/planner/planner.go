package planner

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/backmassage/transname/internal/config"
	"github.com/backmassage/transname/internal/naming"
	"github.com/backmassage/transname/internal/translate"
)

// Logger is the minimal logging interface used by this package.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Debug(string, ...interface{})
}

// Planner builds rename operations for file groups.
type Planner struct {
	extractor  *naming.Extractor
	translator translate.Translator
	proc       config.ProcessingConfig
	log        Logger
}

// New returns a Planner. The extractor and translator are shared across all
// groups of a run.
func New(extractor *naming.Extractor, translator translate.Translator, proc config.ProcessingConfig, log Logger) *Planner {
	return &Planner{extractor: extractor, translator: translator, proc: proc, log: log}
}

// Plan returns one operation per path in group, in group order, except for
// files whose name would not change: those get no operation, so the result
// can be shorter than group.Paths. It returns
// nil, without calling the translator, when nothing but identifiers is left
// in the stem, nil when ctx ended during translation (the translator's
// fallback text is never used as a name then), and nil when the translated
// name sanitizes to nothing.
func (p *Planner) Plan(ctx context.Context, group naming.FileGroup) []Operation {
	ids := naming.Values(p.extractor.Extract(group.Stem))
	if len(ids) > 0 {
		p.log.Debug("Identifiers: %s", strings.Join(ids, ", "))
	}

	input := naming.StripIdentifiers(group.Stem, ids)
	if strings.TrimSpace(input) == "" {
		p.log.Warn("Nothing to translate in %q, skipping", group.Stem)
		return nil
	}
	p.log.Debug("Translation input: %q", input)

	translated := p.translator.Translate(ctx, input, translate.Options{
		Model:    p.proc.Model,
		Template: p.proc.Template,
	})

	if ctx.Err() != nil {
		p.log.Warn("Interrupted while translating %q, skipping", group.Stem)
		return nil
	}

	if p.proc.FoldDiacritics {
		translated = naming.FoldDiacritics(translated)
	}
	text := naming.SanitizeForFilesystem(translated)
	stem := naming.Compose(text, ids, p.proc.MaxLength)
	if stem == "" {
		p.log.Warn("Translation of %q left no usable characters, skipping", group.Stem)
		return nil
	}
	p.log.Debug("New stem: %s", stem)

	ops := make([]Operation, 0, len(group.Paths))
	for _, path := range group.Paths {
		_, chain := naming.SplitExtensions(filepath.Base(path), p.proc.MaxExtensions)
		op := Operation{
			Source:      path,
			Destination: filepath.Join(filepath.Dir(path), stem+chain),
		}
		if op.Unchanged() {
			p.log.Info("Already named: %s", filepath.Base(path))
			continue
		}
		ops = append(ops, op)
	}
	return ops
}
