package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/backmassage/transname/internal/config"
	"github.com/backmassage/transname/internal/naming"
	"github.com/backmassage/transname/internal/planner"
	"github.com/backmassage/transname/internal/rename"
	"github.com/backmassage/transname/internal/translate"
)

// ErrNoValidInput is returned by Run when none of the given paths is an
// existing regular file.
var ErrNoValidInput = errors.New("no valid input files")

// Logger is the logging interface the pipeline and its collaborators need.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Confirmer approves a group's operations before they are applied.
type Confirmer interface {
	Confirm(ctx context.Context, ops []planner.Operation) bool
}

// Run is the batch entry point. Groups are processed one at a time in input
// order; a skipped, declined or partly failed group never stops the batch.
// The configured delay is waited before every group after the first. When
// ctx is cancelled the current group finishes and the rest are left alone.
func Run(ctx context.Context, cfg *config.Config, log Logger, tr translate.Translator, confirmer Confirmer) (RunStats, error) {
	start := time.Now()
	var stats RunStats

	files := ValidateInputs(cfg.Files, log)
	if len(files) == 0 {
		return stats, ErrNoValidInput
	}
	stats.Files = len(files)

	proc := cfg.Processing
	extractor := naming.NewExtractor(cfg.Identifiers, log)
	plan := planner.New(extractor, tr, proc, log)
	executor := rename.New(proc.DryRun, log)

	groups := naming.GroupFiles(files, proc.MaxExtensions)
	log.Info("Found %d files in %d groups", stats.Files, len(groups))
	if proc.DryRun {
		log.Info("Dry run: nothing will be renamed")
	}

	for i, group := range groups {
		if i > 0 && !sleep(ctx, proc.Delay()) {
			log.Warn("Interrupted")
			break
		}
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		stats.Groups++
		log.Info("[%d/%d] %s", i+1, len(groups), group.Stem)

		ops := plan.Plan(ctx, group)
		if len(ops) == 0 {
			stats.Skipped++
			continue
		}
		if !confirmer.Confirm(ctx, ops) {
			log.Info("Declined")
			stats.Declined++
			continue
		}

		n := executor.Execute(ops)
		stats.Renamed += n
		stats.Failed += len(ops) - n
	}

	stats.Elapsed = time.Since(start)
	logSummary(log, &stats, proc.DryRun)
	return stats, nil
}

// sleep waits for d and reports false if ctx ends first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
