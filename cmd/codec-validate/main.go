// codec-validate checks codec definition files and runtime samples.
package main

import (
	"fmt"
	"os"

	"github.com/codec-tools/codec-validator/cmd/codec-validate/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		// Without a command, behave like the CI action: validate the codec
		// file found in the working directory.
		os.Exit(commands.RunValidate(nil, os.Stdout, os.Stderr))
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "check-sample":
		exitCode = commands.RunCheckSample(args, os.Stdout, os.Stderr)
	case "units":
		exitCode = commands.RunUnits(args, os.Stdout, os.Stderr)
	case "rules":
		exitCode = commands.RunRules(args, os.Stdout, os.Stderr)
	case "watch":
		exitCode = commands.RunWatch(args, os.Stdout, os.Stderr)
	case "shell":
		exitCode = commands.RunShell(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("codec-validate version " + commands.Version)
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`codec-validate - codec definition validator

Usage:
  codec-validate <command> [options] [files...]

Commands:
  validate       Validate codec.json files (default command)
  check-sample   Check that runtime samples only use declared fields
  units          Print the BACnet unit table
  rules          List validation rules and their severity
  watch          Re-validate a codec file whenever it is saved
  shell          Interactive shell

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Configuration:
  .codec-validate.yaml or .codec-validate.toml in the working directory,
  or --config <file>. CODEC_VALIDATE_* environment variables override it.

Examples:
  codec-validate validate device_codec.json
  codec-validate validate --github --fail-on-warning
  codec-validate check-sample --codec device_codec.json uplink.json uplink.cbor
  codec-validate units 62 95

For command-specific help, run:
  codec-validate <command> --help`)
}
