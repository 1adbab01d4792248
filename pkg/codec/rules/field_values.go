package rules

import (
	"github.com/codec-tools/codec-validator/pkg/codec"
)

const (
	maxValues         = 50
	minEnumValues     = 2
	boolValues        = 2
	maxValueNameBytes = 127
)

// FLD009 checks the values list of BOOL and ENUM points and the shape of
// every value/name pair.
type FLD009 struct {
	*codec.BaseRule
}

// NewFLD009 creates the FLD-009 rule.
func NewFLD009() *FLD009 {
	return &FLD009{
		BaseRule: codec.NewBaseRule("FLD-009", "values format", codec.CategoryField, codec.SeverityError),
	}
}

// Check implements codec.Rule.
func (r *FLD009) Check(e *codec.Entry, _ *codec.Document) codec.Result {
	raw, _ := e.Get(codec.FieldValues)
	values, isArray := raw.([]any)
	dataType, _ := e.String(codec.FieldDataType)

	switch dataType {
	case "BOOL":
		if !isArray {
			return codec.Fail(e, "data_type 为 BOOL 时，values 为必填项")
		}
		if len(values) != boolValues {
			return codec.Failf(e, "data_type 为 BOOL 时，values 长度必须为 2, 当前长度: %d", len(values))
		}
		if !containsValue(values, 0) || !containsValue(values, 1) {
			return codec.Fail(e, "data_type 为 BOOL 时，values 必须包含 value 为 0 和 1 的元素")
		}
	case "ENUM":
		if !isArray {
			return codec.Fail(e, "data_type 为 ENUM 时，values 为必填项")
		}
		if len(values) < minEnumValues || len(values) > maxValues {
			return codec.Failf(e, "data_type 为 ENUM 时，values 长度必须在 2-50 之间, 当前长度: %d", len(values))
		}
	}

	if !isArray {
		return codec.Pass()
	}

	if len(values) > maxValues {
		return codec.Failf(e, "values 数组长度超过限制 %d, 当前长度: %d", maxValues, len(values))
	}

	for i, item := range values {
		pair, _ := item.(map[string]any)

		v := pair["value"]
		if v == nil {
			return codec.Failf(e, "values[%d] 缺少 value 字段", i)
		}
		if _, ok := codec.AsInteger(v); !ok {
			return codec.Failf(e, "values[%d].value 必须是整数类型, 得到 %s: %s", i, codec.TypeName(v), codec.FormatValue(v))
		}

		name := pair["name"]
		if name == nil || name == "" {
			continue
		}
		if n := len(codec.FormatValue(name)); n > maxValueNameBytes {
			return codec.Failf(e, "values[%d].name 长度超过 %d 字节: %d 字节", i, maxValueNameBytes, n)
		}
	}
	return codec.Pass()
}

func containsValue(values []any, want int64) bool {
	for _, item := range values {
		pair, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if v, ok := codec.AsInteger(pair["value"]); ok && v == want {
			return true
		}
	}
	return false
}
