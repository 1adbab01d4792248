package rules

import "slices"

// Field enumerations.
var (
	accessModes = []string{"R", "W", "RW"}
	dataTypes   = []string{"TEXT", "NUMBER", "BOOL", "ENUM"}
	valueTypes  = []string{"UINT8", "INT8", "UINT16", "INT16", "UINT32", "INT32", "FLOAT", "STRING"}
	objectTypes = []string{
		"analog_value_object",
		"analog_input_object",
		"analog_output_object",
		"binary_value_object",
		"binary_input_object",
		"binary_output_object",
		"multistate_value_object",
		"multistate_input_object",
		"multistate_output_object",
		"character_string_value_object",
	}
)

// structValueType exempts an entry from the access mode / object type check.
const structValueType = "STRUCT"

// accessModeObjectTypes maps access_mode to the legal bacnet_type values.
var accessModeObjectTypes = map[string][]string{
	"R":  {"binary_input_object", "analog_input_object", "multistate_value_object", "character_string_value_object"},
	"W":  {"binary_output_object", "analog_output_object", "multistate_value_object", "character_string_value_object"},
	"RW": {"binary_value_object", "analog_value_object", "multistate_value_object", "character_string_value_object"},
}

// dataTypeObjectTypes maps data_type to the legal bacnet_type values.
// STRING is kept for codec files written before TEXT replaced it.
var dataTypeObjectTypes = map[string][]string{
	"BOOL":   {"binary_input_object", "binary_output_object", "binary_value_object"},
	"NUMBER": {"analog_input_object", "analog_output_object", "analog_value_object"},
	"ENUM":   {"multistate_value_object"},
	"STRING": {"character_string_value_object"},
}

// dataTypeValueTypes maps data_type to the legal value_type values. This table
// is independent of valueTypes: a value type may be a valid enum member and
// still be rejected for a data type.
var dataTypeValueTypes = map[string][]string{
	"BOOL":   {"UINT8"},
	"NUMBER": {"INT8", "UINT8", "INT16", "UINT16", "INT32", "UINT32", "FLOAT"},
	"TEXT":   {"STRING"},
	"ENUM":   {"UINT8", "UINT16", "INT16"},
}

// ObjectTypes returns all known bacnet_type values.
func ObjectTypes() []string {
	return slices.Clone(objectTypes)
}
