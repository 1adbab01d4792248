// Package config loads the optional project configuration of codec-validate.
//
// The file is looked up as .codec-validate.yaml, .codec-validate.yml or
// .codec-validate.toml in the working directory. Every setting has a default,
// so running without a file is the same as running with an empty one.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/codec-tools/codec-validator/pkg/codec"
)

// FileNames lists the config file names searched by Find, in order.
var FileNames = []string{".codec-validate.yaml", ".codec-validate.yml", ".codec-validate.toml"}

// Environment overrides, applied after the file.
const (
	EnvCodecPath     = "CODEC_VALIDATE_CODEC_PATH"
	EnvFailOnWarning = "CODEC_VALIDATE_FAIL_ON_WARNING"
	EnvLogLevel      = "CODEC_VALIDATE_LOG_LEVEL"
	EnvLogFormat     = "CODEC_VALIDATE_LOG_FORMAT"
	EnvMetricsFile   = "CODEC_VALIDATE_METRICS_FILE"
)

// ErrNoCodecFile is returned by DetectCodecFile when no candidate exists.
var ErrNoCodecFile = errors.New("no codec.json file found")

// Config is the root configuration structure.
type Config struct {
	CodecPath     string        `yaml:"codec_path" toml:"codec_path"`
	FailOnWarning bool          `yaml:"fail_on_warning" toml:"fail_on_warning"`
	Rules         RulesConfig   `yaml:"rules" toml:"rules"`
	Sample        SampleConfig  `yaml:"sample" toml:"sample"`
	Log           LoggingConfig `yaml:"log" toml:"log"`
	MetricsFile   string        `yaml:"metrics_file" toml:"metrics_file"`
}

// RulesConfig adjusts the default rule registry.
type RulesConfig struct {
	Disabled           []string          `yaml:"disabled" toml:"disabled" validate:"dive,required"`
	DisabledCategories []string          `yaml:"disabled_categories" toml:"disabled_categories" validate:"dive,required"`
	Severity           map[string]string `yaml:"severity" toml:"severity" validate:"dive,keys,required,endkeys,oneof=error warning warn"`
}

// SampleConfig configures check-sample.
type SampleConfig struct {
	// SkipArrayElements defaults to true when unset.
	SkipArrayElements *bool    `yaml:"skip_array_elements" toml:"skip_array_elements"`
	SkipKeys          []string `yaml:"skip_keys" toml:"skip_keys"`
	SkipSuffixes      []string `yaml:"skip_suffixes" toml:"skip_suffixes"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" toml:"format" validate:"oneof=console json"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML or TOML file, chosen by extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Find returns the first config file present in dir, or "" if there is none.
func Find(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadOrDefault loads path if set, otherwise the file found in dir, otherwise
// the defaults with environment overrides.
func LoadOrDefault(path, dir string) (*Config, error) {
	if path == "" {
		path = Find(dir)
	}
	if path != "" {
		return Load(path)
	}

	var cfg Config
	applyEnvOverrides(&cfg)
	setDefaults(&cfg)
	if err := validateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Sample.SkipArrayElements == nil {
		skip := true
		cfg.Sample.SkipArrayElements = &skip
	}
	if cfg.Sample.SkipKeys == nil {
		cfg.Sample.SkipKeys = []string{"frame"}
	}
	if cfg.Sample.SkipSuffixes == nil {
		cfg.Sample.SkipSuffixes = []string{".reserve"}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvCodecPath); v != "" {
		cfg.CodecPath = v
	}
	if v := os.Getenv(EnvFailOnWarning); v != "" {
		cfg.FailOnWarning = parseBool(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvMetricsFile); v != "" {
		cfg.MetricsFile = v
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// ApplyRules disables rule categories, then single rules, then overrides
// severities on registry. Unknown categories or rule ids are returned as an
// error so that typos in the config file surface.
func (c *Config) ApplyRules(registry *codec.RuleRegistry) error {
	var unknownCats []string
	for _, cat := range c.Rules.DisabledCategories {
		if registry.SetCategoryEnabled(cat, false) == 0 {
			unknownCats = append(unknownCats, cat)
		}
	}
	if len(unknownCats) > 0 {
		return fmt.Errorf("unknown rule categories: %s (known: %s)",
			strings.Join(unknownCats, ", "), strings.Join(registry.Categories(), ", "))
	}

	var unknown []string
	for _, id := range c.Rules.Disabled {
		if registry.GetRule(id) == nil {
			unknown = append(unknown, id)
			continue
		}
		registry.Disable(id)
	}
	for id, level := range c.Rules.Severity {
		if registry.GetRule(id) == nil {
			unknown = append(unknown, id)
			continue
		}
		severity, err := codec.ParseSeverity(level)
		if err != nil {
			return fmt.Errorf("rule %s: %w", id, err)
		}
		registry.SetSeverity(id, severity)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown rule ids: %s", strings.Join(unknown, ", "))
	}
	return nil
}

// SampleOptions returns the sample check options.
func (c *Config) SampleOptions() codec.SampleOptions {
	opts := codec.DefaultSampleOptions()
	if c.Sample.SkipArrayElements != nil {
		opts.SkipArrayElements = *c.Sample.SkipArrayElements
	}
	if c.Sample.SkipKeys != nil {
		opts.SkipKeys = c.Sample.SkipKeys
	}
	if c.Sample.SkipSuffixes != nil {
		opts.SkipSuffixes = c.Sample.SkipSuffixes
	}
	return opts
}

// NewLogger builds the logger described by the log settings. Console output
// is meant for humans; json is one event per line.
func (c *Config) NewLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if c.Log.Format == "json" {
		return zerolog.New(w).Level(level).With().Timestamp().Logger()
	}
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// DetectCodecFile returns the codec file to validate. The configured path
// wins; otherwise the first file in dir whose name contains "codec.json".
func (c *Config) DetectCodecFile(dir string) (string, error) {
	if c.CodecPath != "" {
		return c.CodecPath, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNoCodecFile
		}
		return "", fmt.Errorf("read dir: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() && strings.Contains(e.Name(), "codec.json") {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", ErrNoCodecFile
}
