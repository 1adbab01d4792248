// Package report renders validation results for terminals, JSON consumers and
// CI systems.
package report

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/codec-tools/codec-validator/pkg/codec"
)

// Result values written to CI outputs.
const (
	ResultSuccess = "success"
	ResultFailed  = "failed"
)

// FileResult is the validation outcome for one codec file.
type FileResult struct {
	File string `json:"file"`
	// Digest is the hex BLAKE2b-256 of the file content, empty if unreadable.
	Digest   string   `json:"digest,omitempty"`
	Valid    bool     `json:"valid"`
	Entries  int      `json:"entries"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// NewFileResult converts a codec report for file.
func NewFileResult(file string, r *codec.Report) *FileResult {
	res := &FileResult{
		File:     file,
		Valid:    r.Valid,
		Entries:  r.Entries,
		Errors:   r.Errors,
		Warnings: r.Warnings,
	}
	if digest, err := Digest(file); err == nil {
		res.Digest = digest
	}
	return res
}

// Run groups the results of one invocation.
type Run struct {
	RunID         string        `json:"run_id"`
	StartedAt     time.Time     `json:"started_at"`
	Duration      time.Duration `json:"duration_ns"`
	FailOnWarning bool          `json:"fail_on_warning"`
	Files         []*FileResult `json:"files"`
}

// NewRun starts a run with a fresh id.
func NewRun(failOnWarning bool) *Run {
	return &Run{
		RunID:         uuid.New().String(),
		StartedAt:     time.Now(),
		FailOnWarning: failOnWarning,
		Files:         []*FileResult{},
	}
}

// Add appends a file result.
func (r *Run) Add(res *FileResult) {
	r.Files = append(r.Files, res)
}

// Finish records the run duration.
func (r *Run) Finish() {
	r.Duration = time.Since(r.StartedAt)
}

// ErrorCount returns the number of errors over all files.
func (r *Run) ErrorCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Errors)
	}
	return n
}

// WarningCount returns the number of warnings over all files.
func (r *Run) WarningCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Warnings)
	}
	return n
}

// Failed reports whether the run should fail the build. Warnings only count
// when FailOnWarning is set.
func (r *Run) Failed() bool {
	for _, f := range r.Files {
		if !f.Valid || (r.FailOnWarning && len(f.Warnings) > 0) {
			return true
		}
	}
	return false
}

// Result returns ResultSuccess or ResultFailed.
func (r *Run) Result() string {
	if r.Failed() {
		return ResultFailed
	}
	return ResultSuccess
}

// Digest returns the hex BLAKE2b-256 digest of a file.
func Digest(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// WriteText prints one summary line per file followed by its messages.
func WriteText(w io.Writer, run *Run, verbose bool) {
	for _, f := range run.Files {
		writeFileText(w, f, run.FailOnWarning, verbose)
	}
}

func writeFileText(w io.Writer, f *FileResult, failOnWarning, verbose bool) {
	switch {
	case f.Valid && len(f.Warnings) == 0:
		fmt.Fprintf(w, "%s: OK (%d entries)\n", f.File, f.Entries)
		return
	case f.Valid && !failOnWarning:
		fmt.Fprintf(w, "%s: OK (with %d warnings)\n", f.File, len(f.Warnings))
	default:
		fmt.Fprintf(w, "%s: FAILED (%d errors, %d warnings)\n", f.File, len(f.Errors), len(f.Warnings))
	}

	for i, e := range f.Errors {
		fmt.Fprintf(w, "  ERROR %d. %s\n", i+1, e)
	}
	if verbose || !f.Valid || failOnWarning {
		for i, warn := range f.Warnings {
			fmt.Fprintf(w, "  WARNING %d. %s\n", i+1, warn)
		}
	}
}

// WriteJSON prints the run as indented JSON.
func WriteJSON(w io.Writer, run *Run) error {
	out, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// SampleResult is the outcome of one check-sample invocation.
type SampleResult struct {
	Sample string   `json:"sample"`
	Codec  string   `json:"codec"`
	Valid  bool     `json:"valid"`
	Keys   int      `json:"keys_checked"`
	Errors []string `json:"errors"`
}

// WriteSampleText prints sample results.
func WriteSampleText(w io.Writer, results []*SampleResult) {
	for _, r := range results {
		if r.Valid {
			fmt.Fprintf(w, "%s: OK (%d keys)\n", r.Sample, r.Keys)
			continue
		}
		fmt.Fprintf(w, "%s: FAILED (%d undefined)\n", r.Sample, len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}
}

// WriteSampleJSON prints sample results as indented JSON.
func WriteSampleJSON(w io.Writer, results []*SampleResult) error {
	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
