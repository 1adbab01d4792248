package rules

import (
	"maps"
	"testing"

	"github.com/codec-tools/codec-validator/pkg/codec"
)

// numberPoint returns the fields of a valid NUMBER entry.
func numberPoint() map[string]any {
	return map[string]any{
		"id":                  "sensor.temperature",
		"name":                "Temperature",
		"access_mode":         "R",
		"data_type":           "NUMBER",
		"value_type":          "FLOAT",
		"bacnet_type":         "analog_input_object",
		"unit":                "°C",
		"bacnet_unit_type_id": 62,
		"bacnet_unit_type":    "temperature",
	}
}

// boolPoint returns the fields of a valid BOOL entry.
func boolPoint() map[string]any {
	return map[string]any{
		"id":          "relay.state",
		"access_mode": "RW",
		"data_type":   "BOOL",
		"value_type":  "UINT8",
		"bacnet_type": "binary_value_object",
		"values": []any{
			map[string]any{"value": 0, "name": "off"},
			map[string]any{"value": 1, "name": "on"},
		},
	}
}

// with returns a copy of fields with the overrides applied. A nil override
// removes the field.
func with(fields map[string]any, overrides map[string]any) map[string]any {
	out := maps.Clone(fields)
	for k, v := range overrides {
		if v == nil {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

func single(fields map[string]any) (*codec.Entry, *codec.Document) {
	e := codec.NewEntry(fields)
	return e, codec.NewDocument("1.0", e)
}

// check runs rule on a standalone entry built from fields.
func check(rule codec.Rule, fields map[string]any) codec.Result {
	e, doc := single(fields)
	return rule.Check(e, doc)
}

func expectPass(t *testing.T, rule codec.Rule, fields map[string]any) {
	t.Helper()
	if res := check(rule, fields); !res.Valid {
		t.Errorf("%s: expected pass, got %q", rule.ID(), res.Message)
	}
}

func expectFail(t *testing.T, rule codec.Rule, fields map[string]any, message string) {
	t.Helper()
	res := check(rule, fields)
	if res.Valid {
		t.Errorf("%s: expected failure %q, got pass", rule.ID(), message)
		return
	}
	if res.Message != message {
		t.Errorf("%s: message = %q, want %q", rule.ID(), res.Message, message)
	}
}
