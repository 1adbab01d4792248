package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codec-tools/codec-validator/internal/config"
	"github.com/codec-tools/codec-validator/pkg/codec"
	"github.com/codec-tools/codec-validator/pkg/codec/rules"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	opts := cfg.SampleOptions()
	assert.Equal(t, codec.DefaultSampleOptions(), opts)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.FailOnWarning)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".codec-validate.yaml", `
codec_path: build/device_codec.json
fail_on_warning: true
rules:
  disabled: [REL-005]
  severity:
    FLD-003: warning
sample:
  skip_array_elements: false
  skip_keys: [frame, seq]
log:
  level: debug
  format: json
metrics_file: out/codec.prom
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "build/device_codec.json", cfg.CodecPath)
	assert.True(t, cfg.FailOnWarning)
	assert.Equal(t, []string{"REL-005"}, cfg.Rules.Disabled)
	assert.Equal(t, "out/codec.prom", cfg.MetricsFile)

	opts := cfg.SampleOptions()
	assert.False(t, opts.SkipArrayElements)
	assert.Equal(t, []string{"frame", "seq"}, opts.SkipKeys)
	assert.Equal(t, []string{".reserve"}, opts.SkipSuffixes)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".codec-validate.toml", `
codec_path = "codec.json"

[rules]
disabled = ["FLD-004"]
disabled_categories = ["relationship"]

[rules.severity]
"REL-004" = "warn"

[log]
level = "warn"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "codec.json", cfg.CodecPath)
	assert.Equal(t, []string{"FLD-004"}, cfg.Rules.Disabled)
	assert.Equal(t, []string{"relationship"}, cfg.Rules.DisabledCategories)
	assert.Equal(t, "warn", cfg.Rules.Severity["REL-004"])
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()

	path := writeFile(t, dir, "bad-level.yaml", "log:\n  level: loud\n")
	_, err := config.Load(path)
	assert.ErrorContains(t, err, "validate config")

	path = writeFile(t, dir, "bad-severity.yaml", "rules:\n  severity:\n    FLD-001: fatal\n")
	_, err = config.Load(path)
	assert.ErrorContains(t, err, "validate config")

	path = writeFile(t, dir, "broken.yaml", "rules: [\n")
	_, err = config.Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvLogFormat, "JSON")
	t.Setenv(config.EnvFailOnWarning, "yes")

	cfg, err := config.LoadOrDefault("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.FailOnWarning)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, config.Find(dir))

	path := writeFile(t, dir, ".codec-validate.toml", "")
	assert.Equal(t, path, config.Find(dir))

	path = writeFile(t, dir, ".codec-validate.yaml", "")
	assert.Equal(t, path, config.Find(dir))
}

func TestApplyRules(t *testing.T) {
	registry := rules.NewDefaultRegistry()
	cfg := config.Default()
	cfg.Rules.Disabled = []string{"FLD-003"}
	cfg.Rules.Severity = map[string]string{"REL-005": "warning"}

	require.NoError(t, cfg.ApplyRules(registry))
	assert.False(t, registry.IsEnabled("FLD-003"))
	assert.Equal(t, codec.SeverityWarning, registry.GetSeverity("REL-005"))

	cfg.Rules.Disabled = []string{"FLD-999"}
	assert.ErrorContains(t, cfg.ApplyRules(registry), "unknown rule ids: FLD-999")
}

func TestApplyRulesCategories(t *testing.T) {
	registry := rules.NewDefaultRegistry()
	cfg := config.Default()
	cfg.Rules.DisabledCategories = []string{codec.CategoryRelationship}

	require.NoError(t, cfg.ApplyRules(registry))
	for _, rule := range registry.RulesByCategory(codec.CategoryRelationship) {
		assert.False(t, registry.IsEnabled(rule.ID()), rule.ID())
	}
	assert.True(t, registry.IsEnabled("FLD-001"))
	assert.Equal(t, 16, registry.EnabledCount())
}

func TestApplyRulesUnknownCategory(t *testing.T) {
	registry := rules.NewDefaultRegistry()
	cfg := config.Default()
	cfg.Rules.DisabledCategories = []string{"layout"}

	err := cfg.ApplyRules(registry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown rule categories: layout")
	assert.Contains(t, err.Error(), "field, relationship")
	assert.Equal(t, registry.Count(), registry.EnabledCount())
}

func TestDetectCodecFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()

	_, err := cfg.DetectCodecFile(dir)
	assert.ErrorIs(t, err, config.ErrNoCodecFile)

	writeFile(t, dir, "readme.md", "")
	path := writeFile(t, dir, "thermostat_codec.json", "{}")
	got, err := cfg.DetectCodecFile(dir)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	cfg.CodecPath = "explicit.json"
	got, err = cfg.DetectCodecFile(dir)
	require.NoError(t, err)
	assert.Equal(t, "explicit.json", got)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	logger := cfg.NewLogger(&buf)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}
