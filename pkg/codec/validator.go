package codec

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Report is the aggregate result of validating a codec document.
type Report struct {
	// Valid is true if no error-level failure was found.
	Valid bool `json:"valid"`
	// Errors contains one "<id>: <message>" line per error-level failure.
	Errors []string `json:"errors"`
	// Warnings contains one line per warning-level failure.
	Warnings []string `json:"warnings"`
	// Entries is the number of entries that were checked.
	Entries int `json:"entries"`
}

// AddError appends an error line and marks the report invalid.
func (r *Report) AddError(line string) {
	r.Errors = append(r.Errors, line)
	r.Valid = false
}

// AddWarning appends a warning line.
func (r *Report) AddWarning(line string) {
	r.Warnings = append(r.Warnings, line)
}

func newReport() *Report {
	return &Report{Valid: true, Errors: []string{}, Warnings: []string{}}
}

func structuralReport(line string) *Report {
	r := newReport()
	r.AddError(line)
	return r
}

// Validator runs a rule registry over codec documents.
type Validator struct {
	registry   *RuleRegistry
	source     Source
	logger     zerolog.Logger
	sampleOpts SampleOptions
}

// Option configures a Validator.
type Option func(*Validator)

// WithSource sets the file source used by ValidateFile and CheckSample.
func WithSource(src Source) Option {
	return func(v *Validator) { v.source = src }
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(v *Validator) { v.logger = logger }
}

// WithSampleOptions sets the options used by CheckSample.
func WithSampleOptions(opts SampleOptions) Option {
	return func(v *Validator) { v.sampleOpts = opts }
}

// NewValidator creates a validator for the rules in registry.
func NewValidator(registry *RuleRegistry, opts ...Option) *Validator {
	v := &Validator{
		registry:   registry,
		source:     OSSource{},
		logger:     zerolog.Nop(),
		sampleOpts: DefaultSampleOptions(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.registry == nil {
		v.registry = NewRuleRegistry()
	}
	return v
}

// Registry returns the rule registry used by the validator.
func (v *Validator) Registry() *RuleRegistry {
	return v.registry
}

// SampleOptions returns the options CheckSample applies.
func (v *Validator) SampleOptions() SampleOptions {
	return v.sampleOpts
}

// Load reads and parses a codec file through the validator's source.
func (v *Validator) Load(path string) (*Document, error) {
	doc, err := ParseFile(v.source, path)
	if err != nil {
		v.logger.Debug().Err(err).Str("path", path).Msg("codec file could not be loaded")
		return nil, err
	}

	v.logger.Debug().
		Str("path", path).
		Str("version", doc.Version).
		Int("entries", len(doc.Entries)).
		Msg("codec file loaded")
	return doc, nil
}

// ValidateFile loads and validates a codec file. Load failures are reported
// as a single error; they are never returned as Go errors.
func (v *Validator) ValidateFile(path string) *Report {
	doc, err := v.Load(path)
	if err != nil {
		return structuralReport(loadErrorLine(err, path))
	}
	return v.ValidateDocument(doc)
}

// ValidateDocument validates every entry of doc with every enabled rule.
func (v *Validator) ValidateDocument(doc *Document) (report *Report) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Error().Interface("panic", r).Msg("rule panicked during validation")
			report = structuralReport(fmt.Sprintf("codec.json 验证失败: %v", r))
		}
	}()

	report = newReport()
	if doc == nil || len(doc.Entries) == 0 {
		report.AddError(loadErrorLine(ErrEmptyDocument, ""))
		return report
	}

	for _, entry := range doc.Entries {
		for _, res := range v.registry.RunRules(entry, doc) {
			if res.Message == "" {
				continue
			}
			switch res.Severity {
			case SeverityError:
				report.AddError(res.Line())
			default:
				report.AddWarning(res.Line())
			}
		}
	}
	report.Entries = len(doc.Entries)

	v.logger.Debug().
		Bool("valid", report.Valid).
		Int("errors", len(report.Errors)).
		Int("warnings", len(report.Warnings)).
		Msg("codec document validated")

	return report
}

// ValidateEntry runs all enabled rules against one entry of doc and returns
// the failures.
func (v *Validator) ValidateEntry(entry *Entry, doc *Document) []Result {
	return v.registry.RunRules(entry, doc)
}

func loadErrorLine(err error, path string) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "codec.json 文件不存在: " + path
	case errors.Is(err, ErrMissingObjectArray):
		return "JSON 格式错误, 缺少 object 数组"
	case errors.Is(err, ErrEmptyDocument):
		return "JSON 格式错误, object 数组为空"
	default:
		return "codec.json 验证失败: " + err.Error()
	}
}
