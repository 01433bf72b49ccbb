// Command transname renames files by translating the human-readable part of
// their names while keeping embedded identifiers intact.
//
// It parses flags (and an optional YAML config), then either runs system
// diagnostics (--check) or the rename pipeline over the given files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/transname/internal/check"
	"github.com/backmassage/transname/internal/config"
	"github.com/backmassage/transname/internal/confirm"
	"github.com/backmassage/transname/internal/display"
	"github.com/backmassage/transname/internal/logging"
	"github.com/backmassage/transname/internal/pipeline"
	"github.com/backmassage/transname/internal/term"
	"github.com/backmassage/transname/internal/translate"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

// exitError carries an exit code out of cobra without printing twice.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func run() int {
	cfg := config.DefaultConfig()
	err := newRootCmd(&cfg).Execute()

	var exit exitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exit):
		return exit.code
	default:
		fmt.Fprintf(os.Stderr, "transname: %v\n", err)
		return 1
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transname [flags] FILE...",
		Short: "Translate file names, keeping embedded identifiers",
		Long: `Translate the human-readable part of file names with an external
translation command (llm by default) and rename the files.

Identifiers such as YouTube video IDs, UUIDs and bracketed tags are detected,
kept out of the translation and appended to the new name. Files sharing a
stem (video.mp4, video.en.srt) are renamed together from one translation.

Example:
  transname "Como hacer pasta [dQw4w9WgXcQ].mp4"
  transname -y --numeric -m gpt-4o-mini *.pdf
  transname --dry-run --config transname.yaml downloads/*`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := config.BindFlags(cmd.Flags(), cfg)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := config.Finalize(cmd.Flags(), cfg, flags, args); err != nil {
			return err
		}
		return runRename(cmd.Context(), cfg)
	}
	return cmd
}

// runRename is everything after flag parsing. Errors that have already been
// logged come back as exitError.
func runRename(parent context.Context, cfg *config.Config) error {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	// Previews and the header go to stdout; color them only when stdout
	// itself is a terminal.
	term.Configure(cfg.Output.ColorMode, os.Stdout)

	if cfg.CheckOnly {
		display.PrintHeader(os.Stdout, version)
		check.RunCheck(cfg, log)
		return nil
	}

	log.Debug("transname %s (%s)", version, commit)
	if err := check.CheckDeps(cfg); err != nil {
		if errors.Is(err, check.ErrTranslatorNotFound) {
			log.Warn("%v; names will not be translated", err)
		} else {
			log.Error("%v", err)
		}
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	prompter := confirm.NewPrompter(os.Stdin, os.Stdout, cfg.Processing.AutoAccept)
	watchSignals(ctx, cancel, prompter, log)

	translator := translate.NewCommand(cfg.Translator, log)
	if _, err := pipeline.Run(ctx, cfg, log, translator, prompter); err != nil {
		log.Error("%v", err)
		return exitError{code: 1}
	}
	return nil
}

// watchSignals routes SIGINT to an open confirmation prompt, which declines
// it. Outside a prompt, SIGINT and SIGTERM cancel the run so it stops after
// the current group; a second signal falls through to the default handler.
func watchSignals(ctx context.Context, cancel context.CancelFunc, prompter *confirm.Prompter, log *logging.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigCh)
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-sigCh:
				if sig == os.Interrupt && prompter.Interrupt() {
					continue
				}
				log.Warn("Received %s, finishing current group", sig)
				cancel()
				return
			}
		}
	}()
}
