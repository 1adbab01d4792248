package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"github.com/codec-tools/codec-validator/pkg/units"
)

// RunUnits prints the unit table, or the definitions of the given ids.
func RunUnits(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("units", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "Output as JSON")
	category := fs.String("category", "", "Only list units of this unit type")
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUnitsUsage(stdout)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	var defs []units.Definition
	if fs.NArg() == 0 {
		for _, d := range units.All() {
			if *category == "" || d.UnitType == *category {
				defs = append(defs, d)
			}
		}
	} else {
		for _, arg := range fs.Args() {
			id, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(stderr, "Error: invalid unit id %q\n", arg)
				return exitCommandError
			}
			d, ok := units.Lookup(id)
			if !ok {
				fmt.Fprintf(stderr, "Error: unknown unit id %d\n", id)
				return exitCommandError
			}
			defs = append(defs, d)
		}
	}

	if *asJSON {
		out, err := json.MarshalIndent(defs, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintln(stdout, string(out))
		return exitSuccess
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUNIT\tUNIT TYPE")
	for _, d := range defs {
		unit := d.Unit
		if d.IsCustom() {
			unit = "(custom)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", d.UnitTypeID, unit, d.UnitType)
	}
	tw.Flush()
	return exitSuccess
}

func printUnitsUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: codec-validate units [options] [ids...]

Options:
  --json             Output as JSON
  --category <type>  Only list units of this unit type

Examples:
  codec-validate units
  codec-validate units --category temperature
  codec-validate units 62 95`)
}
