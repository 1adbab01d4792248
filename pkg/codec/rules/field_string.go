package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/codec-tools/codec-validator/pkg/codec"
)

// requirement decides whether a field must be provided on an entry and
// returns the message reported when it is missing. An empty message means
// the field is optional for this entry.
type requirement func(e *codec.Entry) string

func required(field string) requirement {
	return func(*codec.Entry) string {
		return field + " 字段为必填项"
	}
}

// requiredForDataType makes a field mandatory when data_type has one of the
// given values. The message always names the first value.
func requiredForDataType(field string, dataTypes ...string) requirement {
	return func(e *codec.Entry) string {
		dt, _ := e.Get(codec.FieldDataType)
		for _, want := range dataTypes {
			if dt == want {
				return fmt.Sprintf("data_type 为 %s 时，%s 为必填项", dataTypes[0], field)
			}
		}
		return ""
	}
}

// stringField validates a scalar string field: presence, type, UTF-8 byte
// length, then membership in allowed (if set).
type stringField struct {
	*codec.BaseRule
	field    string
	maxBytes int
	require  requirement
	allowed  []string
	enumMsg  func(value string) string
}

func (r *stringField) Check(e *codec.Entry, _ *codec.Document) codec.Result {
	if !e.Provided(r.field) {
		if r.require != nil {
			if msg := r.require(e); msg != "" {
				return codec.Fail(e, msg)
			}
		}
		return codec.Pass()
	}

	v, _ := e.Get(r.field)
	s, ok := v.(string)
	if !ok {
		return codec.Failf(e, "%s 必须是字符串类型, 得到 %s", r.field, codec.TypeName(v))
	}

	if n := len(s); n > r.maxBytes {
		return codec.Failf(e, "%s 字段长度超过 %d 字节: %d 字节", r.field, r.maxBytes, n)
	}

	if r.allowed != nil && !slices.Contains(r.allowed, s) {
		return codec.Fail(e, r.enumMsg(s))
	}
	return codec.Pass()
}

func enumChoices(values []string) string {
	if len(values) == 1 {
		return values[0]
	}
	return strings.Join(values[:len(values)-1], "、") + " 或 " + values[len(values)-1]
}

func onlyOneOf(field string, values []string) func(string) string {
	choices := enumChoices(values)
	return func(v string) string {
		return fmt.Sprintf("%s 只能是 %s, 得到: %s", field, choices, v)
	}
}

// NewFLD003 checks the optional description (at most 1024 bytes).
func NewFLD003() codec.Rule {
	return &stringField{
		BaseRule: codec.NewBaseRule("FLD-003", "description format", codec.CategoryField, codec.SeverityError),
		field:    codec.FieldDescription,
		maxBytes: 1024,
	}
}

// NewFLD004 checks the optional display name (at most 64 bytes).
func NewFLD004() codec.Rule {
	return &stringField{
		BaseRule: codec.NewBaseRule("FLD-004", "name format", codec.CategoryField, codec.SeverityError),
		field:    codec.FieldName,
		maxBytes: 64,
	}
}

// NewFLD005 checks access_mode: required, at most 32 bytes, R, W or RW.
func NewFLD005() codec.Rule {
	return &stringField{
		BaseRule: codec.NewBaseRule("FLD-005", "access_mode format", codec.CategoryField, codec.SeverityError),
		field:    codec.FieldAccessMode,
		maxBytes: 32,
		require:  required(codec.FieldAccessMode),
		allowed:  accessModes,
		enumMsg:  onlyOneOf(codec.FieldAccessMode, accessModes),
	}
}

// NewFLD006 checks data_type: required, at most 32 bytes, TEXT, NUMBER, BOOL or ENUM.
func NewFLD006() codec.Rule {
	return &stringField{
		BaseRule: codec.NewBaseRule("FLD-006", "data_type format", codec.CategoryField, codec.SeverityError),
		field:    codec.FieldDataType,
		maxBytes: 32,
		require:  required(codec.FieldDataType),
		allowed:  dataTypes,
		enumMsg:  onlyOneOf(codec.FieldDataType, dataTypes),
	}
}

// NewFLD007 checks value_type: required for NUMBER, at most 32 bytes, one of
// the primitive value types.
func NewFLD007() codec.Rule {
	return &stringField{
		BaseRule: codec.NewBaseRule("FLD-007", "value_type format", codec.CategoryField, codec.SeverityError),
		field:    codec.FieldValueType,
		maxBytes: 32,
		require:  requiredForDataType(codec.FieldValueType, "NUMBER"),
		allowed:  valueTypes,
		enumMsg:  onlyOneOf(codec.FieldValueType, valueTypes),
	}
}

// NewFLD008 checks the optional default value (at most 16 bytes).
func NewFLD008() codec.Rule {
	return &stringField{
		BaseRule: codec.NewBaseRule("FLD-008", "value format", codec.CategoryField, codec.SeverityError),
		field:    codec.FieldValue,
		maxBytes: 16,
	}
}

// NewFLD011 checks unit: required for NUMBER, at most 16 bytes.
func NewFLD011() codec.Rule {
	return &stringField{
		BaseRule: codec.NewBaseRule("FLD-011", "unit format", codec.CategoryField, codec.SeverityError),
		field:    codec.FieldUnit,
		maxBytes: 16,
		require:  requiredForDataType(codec.FieldUnit, "NUMBER"),
	}
}

// NewFLD013 checks bacnet_type: required, at most 64 bytes, a known object type.
func NewFLD013() codec.Rule {
	return &stringField{
		BaseRule: codec.NewBaseRule("FLD-013", "bacnet_type format", codec.CategoryField, codec.SeverityError),
		field:    codec.FieldBacnetType,
		maxBytes: 64,
		require:  required(codec.FieldBacnetType),
		allowed:  objectTypes,
		enumMsg: func(v string) string {
			return "bacnet_type 不是有效的 BACnet 对象类型: " + v
		},
	}
}

// NewFLD015 checks the optional bacnet_unit_type (at most 64 bytes).
func NewFLD015() codec.Rule {
	return &stringField{
		BaseRule: codec.NewBaseRule("FLD-015", "bacnet_unit_type format", codec.CategoryField, codec.SeverityError),
		field:    codec.FieldBacnetUnitType,
		maxBytes: 64,
	}
}
