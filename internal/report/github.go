package report

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// EnvGitHubOutput names the file GitHub Actions reads step outputs from.
const EnvGitHubOutput = "GITHUB_OUTPUT"

// GitHubOutputs returns the step outputs of a run.
func GitHubOutputs(run *Run) map[string]string {
	return map[string]string{
		"result":         run.Result(),
		"errors-count":   fmt.Sprint(run.ErrorCount()),
		"warnings-count": fmt.Sprint(run.WarningCount()),
	}
}

// WriteGitHubOutputs appends the step outputs to path in name=value form.
func WriteGitHubOutputs(path string, outputs map[string]string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open github output: %w", err)
	}
	defer f.Close()

	for _, key := range []string{"result", "errors-count", "warnings-count"} {
		if _, err := fmt.Fprintf(f, "%s=%s\n", key, outputs[key]); err != nil {
			return fmt.Errorf("write github output: %w", err)
		}
	}
	return nil
}

// WriteAnnotations prints workflow commands so that errors and warnings show
// up on the file in the GitHub UI.
func WriteAnnotations(w io.Writer, run *Run) {
	for _, f := range run.Files {
		for _, e := range f.Errors {
			fmt.Fprintf(w, "::error file=%s::%s\n", escapeProperty(f.File), escapeData(e))
		}
		for _, warn := range f.Warnings {
			fmt.Fprintf(w, "::warning file=%s::%s\n", escapeProperty(f.File), escapeData(warn))
		}
	}
	if run.Failed() {
		if n := run.ErrorCount(); n > 0 {
			fmt.Fprintf(w, "::error::验证失败: 发现 %d 个错误\n", n)
		} else {
			fmt.Fprintln(w, "::error::验证失败: 发现警告且 fail-on-warning 已启用")
		}
	}
}

func escapeData(s string) string {
	r := strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	return r.Replace(s)
}

func escapeProperty(s string) string {
	r := strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C")
	return r.Replace(s)
}
