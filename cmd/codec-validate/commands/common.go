// Package commands implements the codec-validate subcommands.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/codec-tools/codec-validator/internal/config"
	"github.com/codec-tools/codec-validator/pkg/codec"
	"github.com/codec-tools/codec-validator/pkg/codec/rules"
)

// Version is the codec-validate release.
const Version = "0.3.0"

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// env holds what every command needs after option parsing.
type env struct {
	cfg       *config.Config
	logger    zerolog.Logger
	validator *codec.Validator
}

// setup loads the configuration and builds a validator with the configured
// rule adjustments. Logs go to stderr.
func setup(configPath string, stderr io.Writer) (*env, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}

	cfg, err := config.LoadOrDefault(configPath, wd)
	if err != nil {
		return nil, err
	}

	registry := rules.NewDefaultRegistry()
	if err := cfg.ApplyRules(registry); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger := cfg.NewLogger(stderr)
	validator := codec.NewValidator(registry,
		codec.WithLogger(logger),
		codec.WithSampleOptions(cfg.SampleOptions()),
	)

	return &env{cfg: cfg, logger: logger, validator: validator}, nil
}

// codecFile resolves the codec file: the explicit path, else the configured
// or auto-detected one.
func (e *env) codecFile(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}
	return e.cfg.DetectCodecFile(wd)
}
