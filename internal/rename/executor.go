// Package rename applies planned rename operations. It never overwrites an
// existing file and never aborts a batch on a single failure.
package rename

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/backmassage/transname/internal/planner"
)

// Logger is the minimal logging interface used by this package.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// Executor performs renames, or only reports them when dryRun is set. One
// Executor should serve a whole run so dry-run conflicts between groups are
// caught too.
type Executor struct {
	dryRun bool
	log    Logger
	claims *claims
}

// New returns an Executor.
func New(dryRun bool, log Logger) *Executor {
	return &Executor{dryRun: dryRun, log: log, claims: newClaims()}
}

// Execute applies ops in order and returns how many succeeded. A destination
// that already exists is skipped with a warning; an OS error is logged and
// the next operation still runs.
func (e *Executor) Execute(ops []planner.Operation) int {
	ok := 0
	for _, op := range ops {
		if e.apply(op) {
			ok++
		}
	}
	return ok
}

func (e *Executor) apply(op planner.Operation) bool {
	src, dst := filepath.Base(op.Source), filepath.Base(op.Destination)

	if op.Unchanged() {
		e.log.Info("Already named: %s", src)
		return true
	}

	if owner, taken := e.claims.owner(op.Destination); taken {
		e.log.Warn("Skip (already claimed by %s): %s", filepath.Base(owner), dst)
		return false
	}
	exists, err := e.occupied(op)
	if err != nil {
		e.log.Error("Cannot check %s: %v", dst, err)
		return false
	}
	if exists {
		e.log.Warn("Skip (exists): %s", dst)
		return false
	}

	if e.dryRun {
		e.claims.record(op.Source, op.Destination)
		e.log.Info("Would rename: %s -> %s", src, dst)
		return true
	}

	if err := os.Rename(op.Source, op.Destination); err != nil {
		e.log.Error("Rename failed: %s: %v", src, err)
		return false
	}
	e.claims.record(op.Source, op.Destination)
	e.log.Success("Renamed: %s -> %s", src, dst)
	return true
}

// occupied reports whether the destination holds a different file than the
// source. A case-only rename on a case-insensitive filesystem sees the
// source itself and is allowed. Only dry runs trust the claims table for
// vacated paths; a real run always asks the disk, since the same file can
// be reached through another path spelling or recreated after the move.
func (e *Executor) occupied(op planner.Operation) (bool, error) {
	if e.dryRun && e.claims.vacated(op.Destination) {
		return false, nil
	}
	dstInfo, err := os.Lstat(op.Destination)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	srcInfo, err := os.Lstat(op.Source)
	if err == nil && os.SameFile(srcInfo, dstInfo) {
		return false, nil
	}
	return true, nil
}
