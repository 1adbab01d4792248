package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codec-tools/codec-validator/pkg/codec"
)

func TestRuleRegistry(t *testing.T) {
	registry := newRegistry()

	assert.Equal(t, 2, registry.Count())
	assert.Equal(t, 2, registry.EnabledCount())
	assert.Equal(t, []string{codec.CategoryField}, registry.Categories())

	registry.Disable("T-001")
	assert.False(t, registry.IsEnabled("T-001"))
	assert.Equal(t, 1, registry.EnabledCount())

	registry.Enable("T-001")
	assert.True(t, registry.IsEnabled("T-001"))

	registry.SetSeverity("T-002", codec.SeverityError)
	assert.Equal(t, codec.SeverityError, registry.GetSeverity("T-002"))

	// Unknown ids are ignored.
	registry.Disable("NOPE")
	registry.SetSeverity("NOPE", codec.SeverityWarning)
	assert.Nil(t, registry.GetRule("NOPE"))
	assert.Equal(t, 2, registry.EnabledCount())

	assert.Equal(t, 2, registry.SetCategoryEnabled(codec.CategoryField, false))
	assert.Zero(t, registry.EnabledCount())
	assert.Empty(t, registry.RunRules(codec.NewEntry(map[string]any{}), nil))
	assert.Equal(t, 2, registry.SetCategoryEnabled(codec.CategoryField, true))
	assert.Equal(t, 2, registry.EnabledCount())

	assert.Zero(t, registry.SetCategoryEnabled("nope", false))
	assert.Len(t, registry.RulesByCategory(codec.CategoryField), 2)
	assert.Empty(t, registry.RulesByCategory(codec.CategoryRelationship))
}

func TestRuleRegistryReregister(t *testing.T) {
	registry := newRegistry()
	registry.Disable("T-002")
	registry.SetSeverity("T-002", codec.SeverityError)

	registry.Register(newFieldRule("T-002", "unit", codec.SeverityWarning))

	assert.Equal(t, 2, registry.Count())
	assert.True(t, registry.IsEnabled("T-002"))
	assert.Equal(t, codec.SeverityWarning, registry.GetSeverity("T-002"))
}

func TestRuleRegistryOrder(t *testing.T) {
	registry := newRegistry()

	var ids []string
	for _, rule := range registry.AllRules() {
		ids = append(ids, rule.ID())
	}
	assert.Equal(t, []string{"T-001", "T-002"}, ids)
}

func TestParseSeverity(t *testing.T) {
	for input, want := range map[string]codec.Severity{
		"error":   codec.SeverityError,
		"warning": codec.SeverityWarning,
		"warn":    codec.SeverityWarning,
	} {
		got, err := codec.ParseSeverity(input)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := codec.ParseSeverity("fatal")
	assert.Error(t, err)
}
