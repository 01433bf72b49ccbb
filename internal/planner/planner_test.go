package planner

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/transname/internal/config"
	"github.com/backmassage/transname/internal/logging"
	"github.com/backmassage/transname/internal/naming"
	"github.com/backmassage/transname/internal/translate"
)

// --- Helper builders ---

func idConfig(mutate func(*config.IdentifierConfig)) config.IdentifierConfig {
	cfg := config.DefaultConfig().Identifiers
	if mutate != nil {
		mutate(&cfg)
	}
	return cfg
}

// countingTranslator answers with reply and records every input.
func countingTranslator(reply string, inputs *[]string) translate.Translator {
	return translate.Func(func(_ context.Context, text string, _ translate.Options) string {
		*inputs = append(*inputs, text)
		return reply
	})
}

func newPlanner(ids config.IdentifierConfig, tr translate.Translator) *Planner {
	log := logging.Nop()
	proc := config.DefaultConfig().Processing
	return New(naming.NewExtractor(ids, log), tr, proc, log)
}

func destinations(ops []Operation) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.Destination
	}
	return out
}

// --- Scenarios ---

func TestPlan_BracketedYouTubeID(t *testing.T) {
	var inputs []string
	p := newPlanner(idConfig(nil), countingTranslator("How to make Italian pasta", &inputs))

	dir := filepath.Join("videos", "cooking")
	src := filepath.Join(dir, "Como hacer pasta italiana [dQw4w9WgXcQ].mp4")
	ops := p.Plan(context.Background(), naming.FileGroup{
		Stem:  "Como hacer pasta italiana [dQw4w9WgXcQ]",
		Paths: []string{src},
	})

	require.Len(t, ops, 1)
	assert.Equal(t, src, ops[0].Source)
	assert.Equal(t, filepath.Join(dir, "How_to_make_Italian_pasta_dQw4w9WgXcQ.mp4"), ops[0].Destination)
	assert.Equal(t, []string{"Como hacer pasta italiana"}, inputs)
}

func TestPlan_NumericIDSharedByGroup(t *testing.T) {
	var inputs []string
	ids := idConfig(func(c *config.IdentifierConfig) {
		c.Numeric = true
		c.NumericMinLength = 6
	})
	p := newPlanner(ids, countingTranslator("Report", &inputs))

	groups := naming.GroupFiles([]string{"report_20230101.txt", "report_20230101.pdf"}, 2)
	require.Len(t, groups, 1)

	ops := p.Plan(context.Background(), groups[0])
	assert.Equal(t, []string{"Report_20230101.txt", "Report_20230101.pdf"}, destinations(ops))
	assert.Len(t, inputs, 1, "one translation per group")
}

func TestPlan_StemIsOnlyIdentifier(t *testing.T) {
	var inputs []string
	p := newPlanner(idConfig(nil), countingTranslator("unused", &inputs))

	ops := p.Plan(context.Background(), naming.FileGroup{
		Stem:  "[dQw4w9WgXcQ]",
		Paths: []string{"[dQw4w9WgXcQ].mp4"},
	})

	assert.Empty(t, ops)
	assert.Empty(t, inputs, "translator must not be called")
}

func TestPlan_ForwardsModelAndTemplate(t *testing.T) {
	var got translate.Options
	tr := translate.Func(func(_ context.Context, text string, opts translate.Options) string {
		got = opts
		return text
	})
	log := logging.Nop()
	proc := config.DefaultConfig().Processing
	proc.Model = "gpt-4o-mini"
	proc.Template = "to-english"
	p := New(naming.NewExtractor(idConfig(nil), log), tr, proc, log)

	p.Plan(context.Background(), naming.FileGroup{Stem: "hola", Paths: []string{"hola.txt"}})
	assert.Equal(t, translate.Options{Model: "gpt-4o-mini", Template: "to-english"}, got)
}

func TestPlan_PreservesPerFileChains(t *testing.T) {
	p := newPlanner(idConfig(nil), translate.Static{Text: "Holiday photos"})

	ops := p.Plan(context.Background(), naming.FileGroup{
		Stem:  "fotos de vacaciones",
		Paths: []string{"a/fotos de vacaciones.tar.gz", "b/fotos de vacaciones.zip"},
	})

	assert.Equal(t, []string{
		filepath.Join("a", "Holiday_photos.tar.gz"),
		filepath.Join("b", "Holiday_photos.zip"),
	}, destinations(ops))
}

func TestPlan_LengthCapKeepsIdentifier(t *testing.T) {
	log := logging.Nop()
	proc := config.DefaultConfig().Processing
	proc.MaxLength = 20
	p := New(naming.NewExtractor(idConfig(nil), log),
		translate.Static{Text: "A very long translated title indeed"}, proc, log)

	ops := p.Plan(context.Background(), naming.FileGroup{
		Stem:  "titulo [dQw4w9WgXcQ]",
		Paths: []string{"titulo [dQw4w9WgXcQ].mkv"},
	})

	require.Len(t, ops, 1)
	assert.Equal(t, "A_very_l_dQw4w9WgXcQ.mkv", ops[0].Destination)
}

func TestPlan_SkipsWhenTranslationSanitizesToNothing(t *testing.T) {
	p := newPlanner(idConfig(nil), translate.Static{Text: "日本語"})

	ops := p.Plan(context.Background(), naming.FileGroup{Stem: "nihongo", Paths: []string{"nihongo.txt"}})
	assert.Empty(t, ops)
}

func TestPlan_DropsUnchangedNames(t *testing.T) {
	p := newPlanner(idConfig(nil), translate.Static{Text: "Report"})

	ops := p.Plan(context.Background(), naming.FileGroup{Stem: "Report", Paths: []string{"Report.txt"}})
	assert.Empty(t, ops)
}

func TestOperation_Unchanged(t *testing.T) {
	assert.True(t, Operation{Source: "a/b.txt", Destination: "a/./b.txt"}.Unchanged())
	assert.False(t, Operation{Source: "a/b.txt", Destination: "a/c.txt"}.Unchanged())
}

func TestPlan_CancelledDuringTranslation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	// The translator gives up on cancellation and hands back its input,
	// which must not become the new name.
	tr := translate.Func(func(_ context.Context, text string, _ translate.Options) string {
		cancel()
		return text
	})
	p := newPlanner(idConfig(nil), tr)

	ops := p.Plan(ctx, naming.FileGroup{Stem: "informe anual", Paths: []string{"informe anual.pdf"}})
	assert.Empty(t, ops)
}

func TestPlan_Diacritics(t *testing.T) {
	group := naming.FileGroup{Stem: "receta", Paths: []string{"receta.txt"}}
	tr := translate.Static{Text: "Cómo hacer pasta"}
	log := logging.Nop()

	proc := config.DefaultConfig().Processing
	ops := New(naming.NewExtractor(idConfig(nil), log), tr, proc, log).Plan(context.Background(), group)
	require.Len(t, ops, 1)
	assert.Equal(t, "Cmo_hacer_pasta.txt", ops[0].Destination, "accented letters dropped by default")

	proc.FoldDiacritics = true
	ops = New(naming.NewExtractor(idConfig(nil), log), tr, proc, log).Plan(context.Background(), group)
	require.Len(t, ops, 1)
	assert.Equal(t, "Como_hacer_pasta.txt", ops[0].Destination)
}
