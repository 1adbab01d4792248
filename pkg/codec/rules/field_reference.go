package rules

import (
	"bytes"

	json "github.com/goccy/go-json"

	"github.com/codec-tools/codec-validator/pkg/codec"
)

const maxReferenceBytes = 1024

// FLD016 checks the optional reference list: an array of strings whose JSON
// encoding fits in 1024 bytes. Target existence is checked by REL-005.
type FLD016 struct {
	*codec.BaseRule
}

// NewFLD016 creates the FLD-016 rule.
func NewFLD016() *FLD016 {
	return &FLD016{
		BaseRule: codec.NewBaseRule("FLD-016", "reference format", codec.CategoryField, codec.SeverityError),
	}
}

// Check implements codec.Rule.
func (r *FLD016) Check(e *codec.Entry, _ *codec.Document) codec.Result {
	if !e.Provided(codec.FieldReference) {
		return codec.Pass()
	}

	v, _ := e.Get(codec.FieldReference)
	refs, ok := v.([]any)
	if !ok {
		return codec.Failf(e, "reference 必须是数组类型, 得到 %s", codec.TypeName(v))
	}
	for i, ref := range refs {
		if _, ok := ref.(string); !ok {
			return codec.Failf(e, "reference[%d] 必须是字符串类型, 得到 %s", i, codec.TypeName(ref))
		}
	}

	size, err := encodedSize(refs)
	if err != nil {
		return codec.Failf(e, "reference 序列化失败: %v", err)
	}
	if size > maxReferenceBytes {
		return codec.Failf(e, "reference 字段序列化后长度超过 %d 字节: %d 字节", maxReferenceBytes, size)
	}
	return codec.Pass()
}

// encodedSize returns the byte length of the compact JSON encoding of v
// without HTML escaping.
func encodedSize(v any) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return 0, err
	}
	return len(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
