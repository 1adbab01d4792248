package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"github.com/codec-tools/codec-validator/pkg/codec"
)

// RuleOutput describes a registered rule.
type RuleOutput struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Severity codec.Severity `json:"severity"`
	Enabled  bool           `json:"enabled"`
}

// RunRules lists the rules with the effective configuration.
func RunRules(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "Output as JSON")
	configPath := fs.String("config", "", "Config file")
	category := fs.String("category", "", "Only list rules of this category")
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stdout, "Usage: codec-validate rules [--json] [--category <name>] [--config <file>]")
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

	registry := e.validator.Registry()
	rules, err := describeRules(registry, *category)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if *asJSON {
		out, err := json.MarshalIndent(rules, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintln(stdout, string(out))
		return exitSuccess
	}

	writeRulesTable(stdout, rules)
	writeRulesSummary(stdout, registry)
	return exitSuccess
}

// describeRules lists the rules of category, or all rules when category is
// empty.
func describeRules(registry *codec.RuleRegistry, category string) ([]RuleOutput, error) {
	list := registry.AllRules()
	if category != "" {
		list = registry.RulesByCategory(category)
		if len(list) == 0 {
			return nil, fmt.Errorf("unknown rule category %q (known: %s)",
				category, strings.Join(registry.Categories(), ", "))
		}
	}

	var out []RuleOutput
	for _, rule := range list {
		out = append(out, RuleOutput{
			ID:       rule.ID(),
			Name:     rule.Name(),
			Category: rule.Category(),
			Severity: registry.GetSeverity(rule.ID()),
			Enabled:  registry.IsEnabled(rule.ID()),
		})
	}
	return out, nil
}

func writeRulesTable(w io.Writer, rules []RuleOutput) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tSEVERITY\tSTATUS\tNAME")
	for _, r := range rules {
		status := "enabled"
		if !r.Enabled {
			status = "disabled"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Category, r.Severity, status, r.Name)
	}
	tw.Flush()
}

func writeRulesSummary(w io.Writer, registry *codec.RuleRegistry) {
	fmt.Fprintf(w, "\n%d of %d rules enabled\n", registry.EnabledCount(), registry.Count())
}
