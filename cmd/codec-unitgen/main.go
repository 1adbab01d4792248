package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

func main() {
	inputPath := flag.String("input", "", "Path to the unit table YAML (docs/units.yaml)")
	outputPath := flag.String("output", "", "Output path for the generated Go file")
	pkg := flag.String("package", "units", "Package name of the generated file")
	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: codec-unitgen -input <path> -output <path> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*inputPath, *outputPath, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath, pkg string) error {
	table, err := LoadUnitTable(inputPath)
	if err != nil {
		return fmt.Errorf("loading unit table: %w", err)
	}

	code, err := GenerateUnits(table, pkg, sourceName(inputPath))
	if err != nil {
		return fmt.Errorf("generating units: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := writeFormatted(outputPath, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(outputPath), err)
	}
	fmt.Printf("  generated %s (%d units)\n", outputPath, len(table.Units))
	return nil
}

// sourceName strips leading relative segments so the header reads the same
// whether the generator runs from the repo root or via go:generate.
func sourceName(path string) string {
	p := filepath.ToSlash(filepath.Clean(path))
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	return p
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Keep the raw output around for debugging the template.
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
