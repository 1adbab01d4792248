package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/codec-tools/codec-validator/internal/report"
	"github.com/codec-tools/codec-validator/pkg/codec"
	"github.com/codec-tools/codec-validator/pkg/units"
)

// RunShell starts the interactive shell.
func RunShell(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	configPath := fs.String("config", "", "Config file")
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stdout, "Usage: codec-validate shell [--config <file>] [file]")
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

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "codec> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create readline: %v\n", err)
		return exitCommandError
	}
	defer rl.Close()

	sh := NewShell(e.validator, rl.Stdout())
	if fs.NArg() > 0 {
		sh.Execute("load " + fs.Arg(0))
	}
	sh.printHelp()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return exitSuccess
		}
		if !sh.Execute(line) {
			return exitSuccess
		}
	}
}

// Shell holds the state of an interactive session: the loaded document and
// where output goes.
type Shell struct {
	validator *codec.Validator
	out       io.Writer

	path string
	doc  *codec.Document
}

// NewShell creates a shell session.
func NewShell(validator *codec.Validator, out io.Writer) *Shell {
	return &Shell{validator: validator, out: out}
}

// Execute runs one command line. It returns false when the session should end.
func (s *Shell) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "load", "l":
		s.cmdLoad(args)
	case "validate", "v":
		s.cmdValidate()
	case "entry", "e":
		s.cmdEntry(args)
	case "unit", "u":
		s.cmdUnit(args)
	case "sample", "s":
		s.cmdSample(args)
	case "rules":
		s.cmdRules(args)
	case "enable", "disable":
		s.cmdToggle(cmd, args)
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help')\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `Commands:
  load <file>         Load a codec file
  validate            Validate the loaded file
  entry <id>          Show an entry and its rule failures
  unit <id>           Look up a BACnet unit id
  sample <file>       Check a JSON or CBOR sample against the loaded file
  rules [category]    List rules
  enable|disable <id|category>
                      Toggle a rule or a rule category
  help                Show this help
  quit                Leave the shell`)
}

func (s *Shell) requireDoc() bool {
	if s.doc == nil {
		fmt.Fprintln(s.out, "No codec file loaded (use 'load <file>')")
		return false
	}
	return true
}

func (s *Shell) cmdLoad(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: load <file>")
		return
	}
	doc, err := s.validator.Load(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Load failed: %v\n", err)
		return
	}
	s.path, s.doc = args[0], doc
	fmt.Fprintf(s.out, "Loaded %s (version %q, %d entries)\n", s.path, doc.Version, len(doc.Entries))
}

func (s *Shell) cmdValidate() {
	if !s.requireDoc() {
		return
	}
	run := report.NewRun(false)
	res := report.NewFileResult(s.path, s.validator.ValidateDocument(s.doc))
	run.Add(res)
	run.Finish()
	report.WriteText(s.out, run, true)
}

func (s *Shell) cmdEntry(args []string) {
	if !s.requireDoc() {
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: entry <id>")
		return
	}
	entry := s.doc.Entry(args[0])
	if entry == nil {
		fmt.Fprintf(s.out, "No entry with id %s\n", args[0])
		return
	}

	data, err := entry.MarshalJSON()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "#%d %s\n", entry.Index, data)

	failures := s.validator.ValidateEntry(entry, s.doc)
	if len(failures) == 0 {
		fmt.Fprintln(s.out, "  OK")
		return
	}
	for _, f := range failures {
		fmt.Fprintf(s.out, "  %s %s: %s\n", strings.ToUpper(f.Severity.String()), f.RuleID, f.Message)
	}
}

func (s *Shell) cmdUnit(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: unit <id>")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid unit id: %s\n", args[0])
		return
	}
	d, ok := units.Lookup(id)
	if !ok {
		fmt.Fprintf(s.out, "Unknown unit id: %d\n", id)
		return
	}
	if d.IsCustom() {
		fmt.Fprintf(s.out, "%d: custom unit (%s)\n", d.UnitTypeID, d.UnitType)
		return
	}
	fmt.Fprintf(s.out, "%d: %s (%s)\n", d.UnitTypeID, d.Unit, d.UnitType)
}

func (s *Shell) cmdSample(args []string) {
	if !s.requireDoc() {
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: sample <file>")
		return
	}
	sample, err := s.validator.ReadSample(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "验证测试数据失败: %v\n", err)
		return
	}
	r := codec.CheckSampleDocument(sample, s.doc, s.validator.SampleOptions())
	report.WriteSampleText(s.out, []*report.SampleResult{{
		Sample: args[0],
		Codec:  s.path,
		Valid:  r.Valid,
		Keys:   r.Checked,
		Errors: r.Errors,
	}})
}

func (s *Shell) cmdRules(args []string) {
	category := ""
	if len(args) > 0 {
		category = args[0]
	}
	registry := s.validator.Registry()
	list, err := describeRules(registry, category)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	writeRulesTable(s.out, list)
	writeRulesSummary(s.out, registry)
}

// cmdToggle enables or disables a single rule or a whole rule category.
func (s *Shell) cmdToggle(cmd string, args []string) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "Usage: %s <rule id|category>\n", cmd)
		return
	}
	registry := s.validator.Registry()
	target, enabled := args[0], cmd == "enable"

	if registry.GetRule(target) != nil {
		if enabled {
			registry.Enable(target)
		} else {
			registry.Disable(target)
		}
		fmt.Fprintf(s.out, "%s %sd\n", target, cmd)
		return
	}

	if n := registry.SetCategoryEnabled(target, enabled); n > 0 {
		fmt.Fprintf(s.out, "%d %s rules %sd (%d of %d enabled)\n",
			n, target, cmd, registry.EnabledCount(), registry.Count())
		return
	}
	fmt.Fprintf(s.out, "Unknown rule or category: %s (categories: %s)\n",
		target, strings.Join(registry.Categories(), ", "))
}
