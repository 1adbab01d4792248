package codec

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a rule failure.
type Severity int

const (
	// SeverityError makes the codec definition invalid.
	SeverityError Severity = iota
	// SeverityWarning is reported but does not affect validity.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// ParseSeverity parses "error" or "warning".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	default:
		return SeverityError, fmt.Errorf("unknown severity %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Rule categories.
const (
	CategoryField        = "field"
	CategoryRelationship = "relationship"
)

// Rule checks one entry of a codec document.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "FLD-001").
	ID() string
	// Name returns a human-readable name for the rule.
	Name() string
	// Category returns the rule category ("field" or "relationship").
	Category() string
	// DefaultSeverity returns the default severity level.
	DefaultSeverity() Severity
	// Check applies the rule to one entry. doc gives access to all entries.
	Check(entry *Entry, doc *Document) Result
}

// Result is the outcome of one rule on one entry.
type Result struct {
	// Valid is true if the entry passed the rule.
	Valid bool
	// RuleID is the ID of the rule that produced the result.
	RuleID string
	// EntryID identifies the failing entry; empty for passing results.
	EntryID string
	// Message describes the first violated constraint.
	Message string
	// Severity is the effective severity of a failure.
	Severity Severity
}

// Pass returns a passing result.
func Pass() Result {
	return Result{Valid: true}
}

// Fail returns a failing result for an entry.
func Fail(entry *Entry, message string) Result {
	return Result{EntryID: entry.DisplayID(), Message: message}
}

// Failf returns a failing result with a formatted message.
func Failf(entry *Entry, format string, args ...any) Result {
	return Fail(entry, fmt.Sprintf(format, args...))
}

// Line formats the result as a report line.
func (r Result) Line() string {
	return r.EntryID + ": " + r.Message
}

// BaseRule provides a default implementation of common Rule methods.
type BaseRule struct {
	id              string
	name            string
	category        string
	defaultSeverity Severity
}

// ID returns the rule ID.
func (r *BaseRule) ID() string { return r.id }

// Name returns the rule name.
func (r *BaseRule) Name() string { return r.name }

// Category returns the rule category.
func (r *BaseRule) Category() string { return r.category }

// DefaultSeverity returns the default severity.
func (r *BaseRule) DefaultSeverity() Severity { return r.defaultSeverity }

// NewBaseRule creates a new BaseRule with the given properties.
func NewBaseRule(id, name, category string, severity Severity) *BaseRule {
	return &BaseRule{
		id:              id,
		name:            name,
		category:        category,
		defaultSeverity: severity,
	}
}
