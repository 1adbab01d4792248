// Package rules contains the codec definition validation rules.
//
// Field rules (FLD-xxx) check one field of one entry in a fixed order:
// presence, type, byte length or range, then enumeration membership. The
// first violated constraint is reported. Relationship rules (REL-xxx) check
// combinations of fields against the static rule tables and references
// across entries.
package rules

import "github.com/codec-tools/codec-validator/pkg/codec"

// RegisterAllRules registers all validation rules with the given registry.
func RegisterAllRules(registry *codec.RuleRegistry) {
	RegisterFieldRules(registry)
	RegisterRelationshipRules(registry)
}

// NewDefaultRegistry creates a new registry with all rules registered.
func NewDefaultRegistry() *codec.RuleRegistry {
	registry := codec.NewRuleRegistry()
	RegisterAllRules(registry)
	return registry
}

// RegisterFieldRules registers the per-field rules in report order.
func RegisterFieldRules(registry *codec.RuleRegistry) {
	registry.Register(NewFLD001())
	registry.Register(NewFLD002())
	registry.Register(NewFLD003())
	registry.Register(NewFLD004())
	registry.Register(NewFLD005())
	registry.Register(NewFLD006())
	registry.Register(NewFLD007())
	registry.Register(NewFLD008())
	registry.Register(NewFLD009())
	registry.Register(NewFLD010())
	registry.Register(NewFLD011())
	registry.Register(NewFLD012())
	registry.Register(NewFLD013())
	registry.Register(NewFLD014())
	registry.Register(NewFLD015())
	registry.Register(NewFLD016())
}

// RegisterRelationshipRules registers the cross-field and cross-entry rules.
func RegisterRelationshipRules(registry *codec.RuleRegistry) {
	registry.Register(NewREL001())
	registry.Register(NewREL002())
	registry.Register(NewREL003())
	registry.Register(NewREL004())
	registry.Register(NewREL005())
}
