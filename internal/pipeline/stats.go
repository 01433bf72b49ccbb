package pipeline

import (
	"time"

	"github.com/backmassage/transname/internal/display"
)

// RunStats counts what happened during a batch. Groups, Skipped and Declined
// count groups; Files, Renamed and Failed count files.
type RunStats struct {
	Files    int
	Groups   int
	Renamed  int
	Skipped  int
	Declined int
	Failed   int
	Elapsed  time.Duration
}

func logSummary(log Logger, stats *RunStats, dryRun bool) {
	verb := "Renamed"
	if dryRun {
		verb = "Would rename"
	}
	log.Info("=== Summary ===")
	log.Info("%s %s across %s",
		verb,
		display.FormatCount(stats.Renamed, "file", "files"),
		display.FormatCount(stats.Groups, "group", "groups"))
	if stats.Skipped > 0 {
		log.Info("Skipped: %s", display.FormatCount(stats.Skipped, "group", "groups"))
	}
	if stats.Declined > 0 {
		log.Info("Declined: %s", display.FormatCount(stats.Declined, "group", "groups"))
	}
	if stats.Failed > 0 {
		log.Warn("Failed: %s", display.FormatCount(stats.Failed, "file", "files"))
	}
	log.Info("Elapsed: %s", stats.Elapsed.Round(time.Millisecond))
}
