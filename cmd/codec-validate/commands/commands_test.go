package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codec-tools/codec-validator/pkg/codec"
	"github.com/codec-tools/codec-validator/pkg/codec/rules"
)

const (
	validCodec   = "testdata/device_codec.json"
	invalidCodec = "testdata/invalid_codec.json"
)

func TestRunValidate_ValidFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunValidate([]string{validCodec}, stdout, stderr)

	assert.Equal(t, exitSuccess, exitCode, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), validCodec+": OK")
}

func TestRunValidate_InvalidFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunValidate([]string{invalidCodec}, stdout, stderr)

	assert.Equal(t, exitValidation, exitCode)
	assert.Contains(t, stdout.String(), "FAILED (6 errors, 0 warnings)")
	assert.Contains(t, stdout.String(), "dup: 引用的字段不存在: nowhere")
}

func TestRunValidate_MissingFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunValidate([]string{"testdata/nonexistent_codec.json"}, stdout, stderr)

	assert.Equal(t, exitValidation, exitCode)
	assert.Contains(t, stdout.String(), "codec.json 文件不存在: testdata/nonexistent_codec.json")
}

func TestRunValidate_NoCodecFileFound(t *testing.T) {
	chdir(t, t.TempDir())
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunValidate(nil, stdout, stderr)

	assert.Equal(t, exitCommandError, exitCode)
	assert.Contains(t, stderr.String(), "未找到 codec.json 文件")
}

func TestRunValidate_AutoDetect(t *testing.T) {
	data, err := os.ReadFile(validCodec)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "thermostat_codec.json"), data, 0o644))
	chdir(t, dir)

	stdout := &bytes.Buffer{}
	exitCode := RunValidate(nil, stdout, &bytes.Buffer{})

	assert.Equal(t, exitSuccess, exitCode)
	assert.Contains(t, stdout.String(), "thermostat_codec.json: OK")
}

func TestRunValidate_JSONOutput(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunValidate([]string{"--json", validCodec, invalidCodec}, stdout, stderr)
	assert.Equal(t, exitValidation, exitCode)

	var run struct {
		RunID string `json:"run_id"`
		Files []struct {
			File   string   `json:"file"`
			Valid  bool     `json:"valid"`
			Digest string   `json:"digest"`
			Errors []string `json:"errors"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &run))
	assert.NotEmpty(t, run.RunID)
	require.Len(t, run.Files, 2)
	assert.True(t, run.Files[0].Valid)
	assert.Len(t, run.Files[0].Digest, 64)
	assert.False(t, run.Files[1].Valid)
	assert.Len(t, run.Files[1].Errors, 6)
}

func TestRunValidate_GitHub(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "github_output")
	t.Setenv("GITHUB_OUTPUT", outputPath)

	stdout := &bytes.Buffer{}
	exitCode := RunValidate([]string{"--github", invalidCodec}, stdout, &bytes.Buffer{})
	assert.Equal(t, exitValidation, exitCode)

	assert.Contains(t, stdout.String(), "::error file=testdata/invalid_codec.json::dup: id 重复出现 2 次")
	assert.Contains(t, stdout.String(), "::error::验证失败: 发现 6 个错误")

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "result=failed\nerrors-count=6\nwarnings-count=0\n", string(data))
}

func TestRunValidate_FailOnWarning(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
rules:
  disabled: [FLD-002, REL-001, REL-002]
  severity:
    FLD-001: warning
    REL-005: warning
`), 0o644))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := RunValidate([]string{"--config", configPath, invalidCodec}, stdout, stderr)
	assert.Equal(t, exitSuccess, exitCode, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "OK (with 2 warnings)")

	stdout.Reset()
	exitCode = RunValidate([]string{"--config", configPath, "--fail-on-warning", invalidCodec}, stdout, stderr)
	assert.Equal(t, exitValidation, exitCode)
	assert.Contains(t, stdout.String(), "WARNING 1. Sensor.Temp: id 必须是小写格式: Sensor.Temp")
}

func TestRunValidate_MetricsFile(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "codec.prom")

	exitCode := RunValidate([]string{"--metrics-file", metricsPath, validCodec}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, exitSuccess, exitCode)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `codec_validate_entries{file="testdata/device_codec.json"} 6`)
}

func TestRunValidate_BadFlag(t *testing.T) {
	stderr := &bytes.Buffer{}
	exitCode := RunValidate([]string{"--nope"}, &bytes.Buffer{}, stderr)

	assert.Equal(t, exitCommandError, exitCode)
	assert.Contains(t, stderr.String(), "Error:")
}

func TestRunValidate_Help(t *testing.T) {
	stdout := &bytes.Buffer{}
	assert.Equal(t, exitSuccess, RunValidate([]string{"--help"}, stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "Usage: codec-validate validate")
}

func TestRunCheckSample(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunCheckSample([]string{"--codec", validCodec, "testdata/uplink.json"}, stdout, stderr)

	assert.Equal(t, exitValidation, exitCode)
	assert.Contains(t, stdout.String(), "testdata/uplink.json: FAILED (1 undefined)")
	assert.Contains(t, stdout.String(), `字段 "unknown_field" 在 codec.json 中未定义`)
}

func TestRunCheckSample_CBOR(t *testing.T) {
	data, err := cbor.Marshal(map[string]any{
		"sensor": map[string]any{"temperature": 21.5, "humidity": 40},
		"fan":    map[string]any{"mode": 1},
		"frame":  7,
	})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "capture.cbor")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	stdout := &bytes.Buffer{}
	exitCode := RunCheckSample([]string{"--json", "--codec", validCodec, path}, stdout, &bytes.Buffer{})
	assert.Equal(t, exitSuccess, exitCode)

	var results []struct {
		Valid bool `json:"valid"`
		Keys  int  `json:"keys_checked"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &results))
	require.Len(t, results, 1)
	assert.True(t, results[0].Valid)
	assert.Equal(t, 3, results[0].Keys)
}

func TestRunCheckSample_NoSamples(t *testing.T) {
	stderr := &bytes.Buffer{}
	assert.Equal(t, exitCommandError, RunCheckSample([]string{"--codec", validCodec}, &bytes.Buffer{}, stderr))
	assert.Contains(t, stderr.String(), "no sample files specified")
}

func TestRunCheckSample_MissingCodec(t *testing.T) {
	stdout := &bytes.Buffer{}
	exitCode := RunCheckSample([]string{"--codec", "testdata/none.json", "testdata/uplink.json"}, stdout, &bytes.Buffer{})

	assert.Equal(t, exitValidation, exitCode)
	assert.Contains(t, stdout.String(), "codec.json 文件不存在: testdata/none.json")
}

func TestRunUnits(t *testing.T) {
	stdout := &bytes.Buffer{}
	assert.Equal(t, exitSuccess, RunUnits([]string{"62", "95"}, stdout, &bytes.Buffer{}))

	out := stdout.String()
	assert.Contains(t, out, "°C")
	assert.Contains(t, out, "temperature")
	assert.Contains(t, out, "(custom)")

	stdout.Reset()
	assert.Equal(t, exitSuccess, RunUnits([]string{"--json", "--category", "temperature"}, stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), `"unit_type_id": 62`)
	assert.NotContains(t, stdout.String(), `"unit_type": "area"`)

	stderr := &bytes.Buffer{}
	assert.Equal(t, exitCommandError, RunUnits([]string{"9999"}, &bytes.Buffer{}, stderr))
	assert.Contains(t, stderr.String(), "unknown unit id 9999")
}

func TestRunRules(t *testing.T) {
	stdout := &bytes.Buffer{}
	assert.Equal(t, exitSuccess, RunRules([]string{"--json"}, stdout, &bytes.Buffer{}))

	var out []RuleOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Len(t, out, rules.NewDefaultRegistry().Count())
	assert.Equal(t, "FLD-001", out[0].ID)
	assert.True(t, out[0].Enabled)

	stdout.Reset()
	assert.Equal(t, exitSuccess, RunRules(nil, stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "REL-005")
	assert.Contains(t, stdout.String(), "relationship")
}

func TestRunRules_Category(t *testing.T) {
	stdout := &bytes.Buffer{}
	assert.Equal(t, exitSuccess, RunRules([]string{"--json", "--category", "relationship"}, stdout, &bytes.Buffer{}))

	var out []RuleOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out, 5)
	for _, r := range out {
		assert.Equal(t, codec.CategoryRelationship, r.Category)
	}

	stdout.Reset()
	assert.Equal(t, exitSuccess, RunRules(nil, stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "21 of 21 rules enabled")

	stderr := &bytes.Buffer{}
	assert.Equal(t, exitCommandError, RunRules([]string{"--category", "layout"}, &bytes.Buffer{}, stderr))
	assert.Contains(t, stderr.String(), `unknown rule category "layout" (known: field, relationship)`)
}

func TestRunRules_ConfigDisabledCategory(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), ".codec-validate.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("rules:\n  disabled_categories: [relationship]\n"), 0o644))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	assert.Equal(t, exitSuccess, RunRules([]string{"--config", cfgPath}, stdout, stderr), "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "16 of 21 rules enabled")
}

func TestRunWatch_ValidatesOnStart(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	stdout := &bytes.Buffer{}
	exitCode := runWatch(ctx, []string{validCodec}, stdout, &bytes.Buffer{})

	assert.Equal(t, exitSuccess, exitCode)
	assert.Contains(t, stdout.String(), validCodec+": OK")
}

func TestShell(t *testing.T) {
	out := &bytes.Buffer{}
	sh := NewShell(codec.NewValidator(rules.NewDefaultRegistry()), out)

	assert.True(t, sh.Execute("validate"))
	assert.Contains(t, out.String(), "No codec file loaded")

	out.Reset()
	assert.True(t, sh.Execute("load "+invalidCodec))
	assert.Contains(t, out.String(), "3 entries")

	out.Reset()
	sh.Execute("validate")
	assert.Contains(t, out.String(), "FAILED (6 errors, 0 warnings)")

	out.Reset()
	sh.Execute("entry dup")
	assert.Contains(t, out.String(), "ERROR FLD-002: id 重复出现 2 次")

	out.Reset()
	sh.Execute("disable FLD-002")
	sh.Execute("entry dup")
	assert.NotContains(t, out.String(), "FLD-002: id")

	out.Reset()
	sh.Execute("unit 62")
	assert.Equal(t, "62: °C (temperature)\n", out.String())

	out.Reset()
	sh.Execute("bogus")
	assert.True(t, strings.HasPrefix(out.String(), "Unknown command: bogus"))

	assert.False(t, sh.Execute("quit"))
}

func TestShell_CategoryToggle(t *testing.T) {
	out := &bytes.Buffer{}
	sh := NewShell(codec.NewValidator(rules.NewDefaultRegistry()), out)
	sh.Execute("load " + invalidCodec)

	out.Reset()
	sh.Execute("disable relationship")
	assert.Equal(t, "5 relationship rules disabled (16 of 21 enabled)\n", out.String())

	out.Reset()
	sh.Execute("entry Sensor.Temp")
	assert.Contains(t, out.String(), "FLD-001")
	assert.NotContains(t, out.String(), "REL-")

	out.Reset()
	sh.Execute("rules relationship")
	assert.Contains(t, out.String(), "REL-001")
	assert.NotContains(t, out.String(), "FLD-001")
	assert.Contains(t, out.String(), "16 of 21 rules enabled")

	out.Reset()
	sh.Execute("enable relationship")
	assert.Contains(t, out.String(), "(21 of 21 enabled)")

	out.Reset()
	sh.Execute("disable layout")
	assert.Equal(t, "Unknown rule or category: layout (categories: field, relationship)\n", out.String())
}

func TestShell_SampleUsesLoadedDocument(t *testing.T) {
	dir := t.TempDir()
	codecPath := filepath.Join(dir, "codec.json")
	data, err := os.ReadFile(validCodec)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(codecPath, data, 0o644))

	out := &bytes.Buffer{}
	sh := NewShell(codec.NewValidator(rules.NewDefaultRegistry()), out)
	sh.Execute("load " + codecPath)

	// Replacing the file on disk must not change what the session checks.
	require.NoError(t, os.WriteFile(codecPath, []byte(`{"object": [{"id": "other"}]}`), 0o644))

	out.Reset()
	sh.Execute("sample testdata/uplink.json")
	assert.Contains(t, out.String(), `字段 "unknown_field" 在 codec.json 中未定义`)
	assert.NotContains(t, out.String(), `字段 "sensor.temperature"`)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
