package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/codec-tools/codec-validator/internal/report"
	"github.com/codec-tools/codec-validator/pkg/codec"
)

// CheckSampleOptions configures the check-sample command.
type CheckSampleOptions struct {
	Codec      string
	JSON       bool
	ConfigPath string
	Samples    []string
}

// RunCheckSample runs the check-sample command.
func RunCheckSample(args []string, stdout, stderr io.Writer) int {
	opts, err := parseCheckSampleArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		printCheckSampleUsage(stdout)
		return exitSuccess
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	if len(opts.Samples) == 0 {
		fmt.Fprintln(stderr, "Error: no sample files specified")
		printCheckSampleUsage(stderr)
		return exitCommandError
	}

	e, err := setup(opts.ConfigPath, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	codecPath, err := e.codecFile(opts.Codec)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	var results []*report.SampleResult
	failed := false
	for _, path := range opts.Samples {
		res := &report.SampleResult{Sample: path, Codec: codecPath}

		sample, err := codec.ReadSample(nil, path)
		if err != nil {
			res.Errors = []string{"验证测试数据失败: " + err.Error()}
		} else {
			r := e.validator.CheckSample(sample, codecPath)
			res.Valid = r.Valid
			res.Keys = r.Checked
			res.Errors = r.Errors
		}

		if !res.Valid {
			failed = true
		}
		e.logger.Debug().Str("sample", path).Bool("valid", res.Valid).Msg("sample checked")
		results = append(results, res)
	}

	if opts.JSON {
		if err := report.WriteSampleJSON(stdout, results); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
	} else {
		report.WriteSampleText(stdout, results)
	}

	if failed {
		return exitValidation
	}
	return exitSuccess
}

func parseCheckSampleArgs(args []string) (CheckSampleOptions, error) {
	fs := flag.NewFlagSet("check-sample", flag.ContinueOnError)
	opts := CheckSampleOptions{}

	fs.StringVar(&opts.Codec, "codec", "", "Codec file the samples are checked against")
	fs.BoolVar(&opts.JSON, "json", false, "Output results as JSON")
	fs.StringVar(&opts.ConfigPath, "config", "", "Config file")

	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.Samples = fs.Args()
	return opts, nil
}

func printCheckSampleUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: codec-validate check-sample [options] <samples...>

Every leaf key of each sample must be declared as an id in the codec file.
Files ending in .cbor or .cbr are decoded as CBOR, everything else as JSON.

Options:
  --codec <file>   Codec file (default: configured or auto-detected)
  --json           Output results as JSON
  --config <file>  Config file

Examples:
  codec-validate check-sample --codec device_codec.json uplink.json
  codec-validate check-sample --codec device_codec.json capture.cbor`)
}
