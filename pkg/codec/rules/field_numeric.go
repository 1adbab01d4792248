package rules

import (
	"github.com/codec-tools/codec-validator/pkg/codec"
)

const (
	minMaxLength = 1
	maxMaxLength = 242
)

// FLD010 checks max_length of text points: a required integer in 1..242.
type FLD010 struct {
	*codec.BaseRule
}

// NewFLD010 creates the FLD-010 rule.
func NewFLD010() *FLD010 {
	return &FLD010{
		BaseRule: codec.NewBaseRule("FLD-010", "max_length format", codec.CategoryField, codec.SeverityError),
	}
}

// Check implements codec.Rule. STRING is treated like TEXT.
func (r *FLD010) Check(e *codec.Entry, _ *codec.Document) codec.Result {
	dataType, _ := e.String(codec.FieldDataType)
	if dataType != "TEXT" && dataType != "STRING" {
		return codec.Pass()
	}

	v, ok := e.Get(codec.FieldMaxLength)
	if !ok {
		return codec.Fail(e, "data_type 为 TEXT 时，max_length 为必填项")
	}
	n, ok := codec.AsInteger(v)
	if !ok {
		return codec.Failf(e, "max_length 必须是整数类型, 得到 %s: %s", codec.TypeName(v), codec.FormatValue(v))
	}
	if n < minMaxLength || n > maxMaxLength {
		return codec.Failf(e, "max_length 必须在 %d-%d 之间, 得到: %d", minMaxLength, maxMaxLength, n)
	}
	return codec.Pass()
}

// FLD014 checks bacnet_unit_type_id of numeric points: a required
// non-negative integer. Table membership is checked by REL-004.
type FLD014 struct {
	*codec.BaseRule
}

// NewFLD014 creates the FLD-014 rule.
func NewFLD014() *FLD014 {
	return &FLD014{
		BaseRule: codec.NewBaseRule("FLD-014", "bacnet_unit_type_id format", codec.CategoryField, codec.SeverityError),
	}
}

// Check implements codec.Rule.
func (r *FLD014) Check(e *codec.Entry, _ *codec.Document) codec.Result {
	dataType, _ := e.String(codec.FieldDataType)
	if dataType != "NUMBER" {
		return codec.Pass()
	}

	v, ok := e.Get(codec.FieldBacnetUnitTypeID)
	if !ok {
		return codec.Fail(e, "data_type 为 NUMBER 时，bacnet_unit_type_id 为必填项")
	}
	n, ok := codec.AsInteger(v)
	if !ok {
		return codec.Failf(e, "bacnet_unit_type_id 必须是整数类型, 得到 %s: %s", codec.TypeName(v), codec.FormatValue(v))
	}
	if n < 0 {
		return codec.Failf(e, "bacnet_unit_type_id 必须 >= 0, 得到: %d", n)
	}
	return codec.Pass()
}
