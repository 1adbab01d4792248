package rules

import (
	"regexp"
	"strings"

	"github.com/codec-tools/codec-validator/pkg/codec"
)

const maxIDBytes = 127

// arrayIndexSegment matches a purely numeric path segment in the middle or at
// the end of a dotted id.
var arrayIndexSegment = regexp.MustCompile(`\.\d+\.|\.\d+$`)

// FLD001 checks the id format: required string, at most 127 bytes, lower
// case and free of numeric array segments.
type FLD001 struct {
	*codec.BaseRule
}

// NewFLD001 creates the FLD-001 rule.
func NewFLD001() *FLD001 {
	return &FLD001{
		BaseRule: codec.NewBaseRule("FLD-001", "id format", codec.CategoryField, codec.SeverityError),
	}
}

// Check implements codec.Rule.
func (r *FLD001) Check(e *codec.Entry, _ *codec.Document) codec.Result {
	if !e.Provided(codec.FieldID) {
		return codec.Fail(e, "id 字段为必填项")
	}

	v, _ := e.Get(codec.FieldID)
	id, ok := v.(string)
	if !ok {
		return codec.Failf(e, "id 必须是字符串类型, 得到 %s", codec.TypeName(v))
	}

	if n := len(id); n > maxIDBytes {
		return codec.Failf(e, "id 字段长度超过 %d 字节: %d 字节", maxIDBytes, n)
	}

	if id != strings.ToLower(id) {
		return codec.Fail(e, "id 必须是小写格式: "+id)
	}

	if arrayIndexSegment.MatchString(id) {
		return codec.Fail(e, "id 不支持数组格式（不能包含数字索引）: "+id)
	}
	return codec.Pass()
}

// FLD002 checks that no other entry declares the same id.
type FLD002 struct {
	*codec.BaseRule
}

// NewFLD002 creates the FLD-002 rule.
func NewFLD002() *FLD002 {
	return &FLD002{
		BaseRule: codec.NewBaseRule("FLD-002", "id unique", codec.CategoryField, codec.SeverityError),
	}
}

// Check implements codec.Rule. Every entry of a duplicated id fails with the
// total number of occurrences.
func (r *FLD002) Check(e *codec.Entry, doc *codec.Document) codec.Result {
	if doc == nil {
		return codec.Pass()
	}
	if n := doc.Occurrences(e); n > 1 {
		return codec.Failf(e, "id 重复出现 %d 次", n)
	}
	return codec.Pass()
}
