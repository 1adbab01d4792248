package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/codec-tools/codec-validator/internal/report"
	"github.com/codec-tools/codec-validator/internal/watch"
)

// RunWatch validates a codec file and re-validates it on every save until
// interrupted.
func RunWatch(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runWatch(ctx, args, stdout, stderr)
}

func runWatch(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	configPath := fs.String("config", "", "Config file")
	verbose := fs.Bool("v", false, "Show warnings of passing files")
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stdout, "Usage: codec-validate watch [--config <file>] [-v] [file]")
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	e, err := setup(*configPath, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	file, err := e.codecFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	validate := func(path string) {
		run := report.NewRun(e.cfg.FailOnWarning)
		run.Add(report.NewFileResult(file, e.validator.ValidateFile(path)))
		run.Finish()
		report.WriteText(stdout, run, *verbose)
	}

	w, err := watch.New(file, e.logger, func(path string) {
		e.logger.Info().Str("path", path).Msg("codec file saved, re-validating")
		validate(path)
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	validate(w.Path())
	if err := w.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	return exitSuccess
}
