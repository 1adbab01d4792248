package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/codec-tools/codec-validator/internal/config"
	"github.com/codec-tools/codec-validator/internal/report"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	JSON          bool
	FailOnWarning bool
	GitHub        bool
	Verbose       bool
	ConfigPath    string
	MetricsFile   string
	Files         []string
}

// RunValidate runs the validate command.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseValidateArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		printValidateUsage(stdout)
		return exitSuccess
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printValidateUsage(stderr)
		return exitCommandError
	}

	e, err := setup(opts.ConfigPath, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	failOnWarning := opts.FailOnWarning || e.cfg.FailOnWarning
	metricsFile := opts.MetricsFile
	if metricsFile == "" {
		metricsFile = e.cfg.MetricsFile
	}

	files := opts.Files
	if len(files) == 0 {
		file, err := e.codecFile("")
		if err != nil {
			if errors.Is(err, config.ErrNoCodecFile) {
				fmt.Fprintln(stderr, "Error: 未找到 codec.json 文件")
			} else {
				fmt.Fprintf(stderr, "Error: %v\n", err)
			}
			if opts.GitHub {
				writeGitHubOutputs(report.NewRun(failOnWarning), true, stderr)
			}
			return exitCommandError
		}
		files = []string{file}
	}

	run := report.NewRun(failOnWarning)
	for _, file := range files {
		e.logger.Debug().Str("file", file).Msg("validating codec file")
		run.Add(report.NewFileResult(file, e.validator.ValidateFile(file)))
	}
	run.Finish()

	e.logger.Info().
		Str("run_id", run.RunID).
		Int("files", len(run.Files)).
		Int("errors", run.ErrorCount()).
		Int("warnings", run.WarningCount()).
		Dur("duration", run.Duration).
		Msg("validation finished")

	if opts.JSON {
		if err := report.WriteJSON(stdout, run); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
	} else {
		report.WriteText(stdout, run, opts.Verbose)
	}

	if opts.GitHub {
		report.WriteAnnotations(stdout, run)
		writeGitHubOutputs(run, false, stderr)
	}

	if metricsFile != "" {
		if err := report.WriteMetrics(metricsFile, run); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
	}

	if run.Failed() {
		return exitValidation
	}
	return exitSuccess
}

// writeGitHubOutputs writes step outputs when running inside GitHub Actions.
// A run that never validated anything reports failure with zero counts.
func writeGitHubOutputs(run *report.Run, aborted bool, stderr io.Writer) {
	path := os.Getenv(report.EnvGitHubOutput)
	if path == "" {
		return
	}
	outputs := report.GitHubOutputs(run)
	if aborted {
		outputs["result"] = report.ResultFailed
	}
	if err := report.WriteGitHubOutputs(path, outputs); err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}
}

func parseValidateArgs(args []string) (ValidateOptions, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	opts := ValidateOptions{}

	fs.BoolVar(&opts.JSON, "json", false, "Output results as JSON")
	fs.BoolVar(&opts.FailOnWarning, "fail-on-warning", false, "Treat warnings as failures")
	fs.BoolVar(&opts.GitHub, "github", false, "Emit GitHub Actions annotations and step outputs")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Show warnings of passing files")
	fs.BoolVar(&opts.Verbose, "v", false, "Show warnings of passing files (shorthand)")
	fs.StringVar(&opts.ConfigPath, "config", "", "Config file")
	fs.StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus textfile metrics")

	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.Files = fs.Args()
	return opts, nil
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: codec-validate validate [options] [files...]

Without files, the configured codec_path or the first file in the working
directory whose name contains "codec.json" is validated.

Options:
  --json              Output results as JSON
  --fail-on-warning   Treat warnings as failures
  --github            Emit GitHub Actions annotations and step outputs
  --config <file>     Config file (default: .codec-validate.yaml|.toml)
  --metrics-file <f>  Write Prometheus textfile metrics
  -v, --verbose       Show warnings of passing files

Exit codes:
  0  all files valid
  1  command error
  2  validation failed

Examples:
  codec-validate validate device_codec.json
  codec-validate validate --json --metrics-file codec.prom *_codec.json`)
}
